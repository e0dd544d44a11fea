package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/store"
)

// fakeUserStore is an in-memory store.UserStore keyed by email.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]domain.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Email]; exists {
		return store.ErrEmailExists
	}
	s.users[user.Email] = *user
	return nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

var _ store.UserStore = (*fakeUserStore)(nil)

// fakeDrugStore is an in-memory store.DrugStore.
type fakeDrugStore struct {
	mu    sync.Mutex
	drugs map[uuid.UUID]domain.Drug
}

func newFakeDrugStore() *fakeDrugStore {
	return &fakeDrugStore{drugs: make(map[uuid.UUID]domain.Drug)}
}

func (s *fakeDrugStore) Create(ctx context.Context, drug *domain.Drug) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drugs[drug.ID] = *drug
	return nil
}

func (s *fakeDrugStore) List(ctx context.Context) ([]domain.Drug, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	drugs := make([]domain.Drug, 0, len(s.drugs))
	for _, d := range s.drugs {
		drugs = append(drugs, d)
	}
	return drugs, nil
}

func (s *fakeDrugStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Drug, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	drug, ok := s.drugs[id]
	if !ok {
		return nil, store.ErrDrugNotFound
	}
	return &drug, nil
}

func (s *fakeDrugStore) Update(ctx context.Context, id uuid.UUID, patch store.DrugPatch) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	drug, ok := s.drugs[id]
	if !ok {
		return 0, nil
	}
	if patch.Name != nil {
		drug.Name = *patch.Name
	}
	if patch.Approved != nil {
		drug.Approved = *patch.Approved
	}
	if patch.MinDose != nil {
		drug.MinDose = *patch.MinDose
	}
	if patch.MaxDose != nil {
		drug.MaxDose = *patch.MaxDose
	}
	if patch.AvailableAt != nil {
		drug.AvailableAt = *patch.AvailableAt
	}
	s.drugs[id] = drug
	return 1, nil
}

func (s *fakeDrugStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drugs[id]; !ok {
		return 0, nil
	}
	delete(s.drugs, id)
	return 1, nil
}

var _ store.DrugStore = (*fakeDrugStore)(nil)

// fakeVaccinationStore is an in-memory store.VaccinationStore.
type fakeVaccinationStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]domain.Vaccination
}

func newFakeVaccinationStore() *fakeVaccinationStore {
	return &fakeVaccinationStore{records: make(map[uuid.UUID]domain.Vaccination)}
}

func (s *fakeVaccinationStore) Create(ctx context.Context, v *domain.Vaccination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[v.ID] = *v
	return nil
}

func (s *fakeVaccinationStore) List(ctx context.Context) ([]domain.Vaccination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]domain.Vaccination, 0, len(s.records))
	for _, v := range s.records {
		records = append(records, v)
	}
	return records, nil
}

func (s *fakeVaccinationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vaccination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.records[id]
	if !ok {
		return nil, store.ErrVaccinationNotFound
	}
	return &v, nil
}

func (s *fakeVaccinationStore) Update(ctx context.Context, id uuid.UUID, patch store.VaccinationPatch) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.records[id]
	if !ok {
		return 0, nil
	}
	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.DrugID != nil {
		v.DrugID = *patch.DrugID
	}
	if patch.Dose != nil {
		v.Dose = *patch.Dose
	}
	if patch.Date != nil {
		v.Date = *patch.Date
	}
	s.records[id] = v
	return 1, nil
}

func (s *fakeVaccinationStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return 0, nil
	}
	delete(s.records, id)
	return 1, nil
}

var _ store.VaccinationStore = (*fakeVaccinationStore)(nil)

// doJSON executes a JSON request against the handler and returns the recorder.
func doJSON(t *testing.T, handler http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// newRawRequest builds a request with an arbitrary (possibly malformed) body.
func newRawRequest(t *testing.T, method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

// decodeBody unmarshals the recorder body into a map for assertions.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// decodeInto unmarshals the recorder body into the given value.
func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
