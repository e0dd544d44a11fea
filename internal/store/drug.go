package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medtrack/medtrack-api/internal/domain"
)

// DrugPatch carries a partial update for a drug row. Nil fields are left
// untouched by the write.
type DrugPatch struct {
	Name        *string
	Approved    *bool
	MinDose     *float64
	MaxDose     *float64
	AvailableAt *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p DrugPatch) IsEmpty() bool {
	return p.Name == nil && p.Approved == nil && p.MinDose == nil &&
		p.MaxDose == nil && p.AvailableAt == nil
}

// DrugStore defines the interface for drug data persistence.
type DrugStore interface {
	// Create saves a new drug to the store.
	Create(ctx context.Context, drug *domain.Drug) error

	// List retrieves all drugs. An empty table yields an empty slice, not
	// an error; the service layer owns the empty-result policy.
	List(ctx context.Context) ([]domain.Drug, error)

	// GetByID retrieves a drug by its unique ID.
	// Returns ErrDrugNotFound if the drug does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Drug, error)

	// Update applies the patch to the drug matching id and returns the
	// number of rows affected. A missing row yields affected == 0, not an
	// error; existence policy lives in the service layer.
	Update(ctx context.Context, id uuid.UUID, patch DrugPatch) (int64, error)

	// Delete removes the drug matching id and returns the number of rows
	// affected.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
