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

// VaccinationService owns the business rules for the vaccination resource.
// It follows the same per-call store access pattern as DrugService; the
// drug_id reference is never joined or checked against the drugs table.
type VaccinationService struct {
	vaccinationStore store.VaccinationStore
	logger           *slog.Logger
}

// NewVaccinationService creates a new VaccinationService with the given
// dependencies.
func NewVaccinationService(vaccinationStore store.VaccinationStore, log *slog.Logger) *VaccinationService {
	if log == nil {
		log = slog.Default()
	}
	return &VaccinationService{
		vaccinationStore: vaccinationStore,
		logger:           log.With(slog.String("component", "vaccination_service")),
	}
}

// Create persists a new vaccination record and returns it including the
// generated id. A nil or empty record fails with ErrEmptyPayload before any
// persistence call.
func (s *VaccinationService) Create(ctx context.Context, vaccination *domain.Vaccination) (*domain.Vaccination, error) {
	if vaccination == nil || vaccination.IsEmpty() {
		return nil, fmt.Errorf("the vaccination object cannot be empty: %w", ErrEmptyPayload)
	}

	if err := s.vaccinationStore.Create(ctx, vaccination); err != nil {
		return nil, err
	}
	return vaccination, nil
}

// List returns all vaccination records. An empty result set fails with
// ErrVaccinationNotFound; callers must handle the empty collection as an
// error condition.
func (s *VaccinationService) List(ctx context.Context) ([]domain.Vaccination, error) {
	vaccinations, err := s.vaccinationStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(vaccinations) == 0 {
		return nil, fmt.Errorf("no vaccinations found: %w", store.ErrVaccinationNotFound)
	}
	return vaccinations, nil
}

// Get returns the vaccination record matching id. A structurally empty
// stored record fails with ErrEmptyRecord.
func (s *VaccinationService) Get(ctx context.Context, id uuid.UUID) (*domain.Vaccination, error) {
	vaccination, err := s.vaccinationStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vaccination.IsEmpty() {
		logger.FromContextOrDefault(ctx, s.logger).Error("stored vaccination record is empty",
			slog.String("vaccination_id", id.String()))
		return nil, fmt.Errorf("vaccination object is empty: %w", ErrEmptyRecord)
	}
	return vaccination, nil
}

// Update applies the patch to the vaccination matching id, then re-fetches
// the row and returns the freshly fetched record as the source of truth.
func (s *VaccinationService) Update(ctx context.Context, id uuid.UUID, patch store.VaccinationPatch) (*domain.Vaccination, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("the vaccination patch cannot be empty: %w", ErrEmptyPayload)
	}

	affected, err := s.vaccinationStore.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, store.ErrVaccinationNotFound
	}

	updated, err := s.vaccinationStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes the vaccination matching id and returns a confirmation
// payload carrying the affected-row count.
func (s *VaccinationService) Remove(ctx context.Context, id uuid.UUID) (*DeleteResult, error) {
	affected, err := s.vaccinationStore.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, store.ErrVaccinationNotFound
	}

	return &DeleteResult{
		Message:    fmt.Sprintf("Vaccination with ID %s has been deleted", id),
		StatusCode: http.StatusOK,
		Data:       DeleteData{Affected: affected},
	}, nil
}
