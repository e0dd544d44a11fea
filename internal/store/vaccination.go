package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medtrack/medtrack-api/internal/domain"
)

// VaccinationPatch carries a partial update for a vaccination row.
// Nil fields are left untouched by the write.
type VaccinationPatch struct {
	Name   *string
	DrugID *string
	Dose   *float64
	Date   *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p VaccinationPatch) IsEmpty() bool {
	return p.Name == nil && p.DrugID == nil && p.Dose == nil && p.Date == nil
}

// VaccinationStore defines the interface for vaccination data persistence.
type VaccinationStore interface {
	// Create saves a new vaccination record to the store.
	Create(ctx context.Context, vaccination *domain.Vaccination) error

	// List retrieves all vaccination records. An empty table yields an empty
	// slice, not an error; the service layer owns the empty-result policy.
	List(ctx context.Context) ([]domain.Vaccination, error)

	// GetByID retrieves a vaccination record by its unique ID.
	// Returns ErrVaccinationNotFound if the record does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vaccination, error)

	// Update applies the patch to the vaccination matching id and returns
	// the number of rows affected. A missing row yields affected == 0, not
	// an error; existence policy lives in the service layer.
	Update(ctx context.Context, id uuid.UUID, patch VaccinationPatch) (int64, error)

	// Delete removes the vaccination matching id and returns the number of
	// rows affected.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
