package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/platform/logger"
	"github.com/medtrack/medtrack-api/internal/store"
)

// DrugService owns the business rules for the drug resource. Each operation
// maps to a single store call (update adds a read-back); no transaction spans
// more than one call, so a concurrent delete between update's write and
// re-fetch surfaces as not-found rather than corrupting state.
type DrugService struct {
	drugStore store.DrugStore
	logger    *slog.Logger
}

// NewDrugService creates a new DrugService with the given dependencies.
func NewDrugService(drugStore store.DrugStore, log *slog.Logger) *DrugService {
	if log == nil {
		log = slog.Default()
	}
	return &DrugService{
		drugStore: drugStore,
		logger:    log.With(slog.String("component", "drug_service")),
	}
}

// Create persists a new drug and returns the stored record including the
// generated id. A nil or empty drug fails with ErrEmptyPayload before any
// persistence call.
func (s *DrugService) Create(ctx context.Context, drug *domain.Drug) (*domain.Drug, error) {
	if drug == nil || drug.IsEmpty() {
		return nil, fmt.Errorf("the drug object cannot be empty: %w", ErrEmptyPayload)
	}

	if err := s.drugStore.Create(ctx, drug); err != nil {
		return nil, err
	}
	return drug, nil
}

// List returns all drugs. An empty result set fails with ErrDrugNotFound;
// callers must handle the empty collection as an error condition.
func (s *DrugService) List(ctx context.Context) ([]domain.Drug, error) {
	drugs, err := s.drugStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(drugs) == 0 {
		return nil, fmt.Errorf("no drugs found: %w", store.ErrDrugNotFound)
	}
	return drugs, nil
}

// Get returns the drug matching id. A structurally empty stored record fails
// with ErrEmptyRecord.
func (s *DrugService) Get(ctx context.Context, id uuid.UUID) (*domain.Drug, error) {
	drug, err := s.drugStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if drug.IsEmpty() {
		logger.FromContextOrDefault(ctx, s.logger).Error("stored drug record is empty",
			slog.String("drug_id", id.String()))
		return nil, fmt.Errorf("drug object is empty: %w", ErrEmptyRecord)
	}
	return drug, nil
}

// Update applies the patch to the drug matching id, then re-fetches the row
// and returns the freshly fetched record as the source of truth. The write
// and the read-back are separate store calls; a delete landing between them
// surfaces as ErrDrugNotFound from the re-fetch.
func (s *DrugService) Update(ctx context.Context, id uuid.UUID, patch store.DrugPatch) (*domain.Drug, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("the drug patch cannot be empty: %w", ErrEmptyPayload)
	}

	affected, err := s.drugStore.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, store.ErrDrugNotFound
	}

	updated, err := s.drugStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes the drug matching id and returns a confirmation payload
// carrying the affected-row count.
func (s *DrugService) Remove(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	affected, err := s.drugStore.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, store.ErrDrugNotFound
	}

	return &DeleteResult{
		Message:    fmt.Sprintf("Drug with ID %s has been deleted", id),
		StatusCode: http.StatusOK,
		Data:       DeleteData{Affected: affected},
	}, nil
}
