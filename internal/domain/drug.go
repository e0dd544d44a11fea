package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Drug represents a medication record tracked by the API.
// MinDose and MaxDose are independent lower bounds; no ordering between
// them is enforced.
type Drug struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Approved    bool      `json:"approved"`
	MinDose     float64   `json:"min_dose"`
	MaxDose     float64   `json:"max_dose"`
	AvailableAt time.Time `json:"available_at"`
}

// NewDrug creates a new Drug with a generated UUID.
// Returns an error if validation fails.
func NewDrug(name string, approved bool, minDose, maxDose float64, availableAt time.Time) (*Drug, error) {
	drug := &Drug{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Approved:    approved,
		MinDose:     minDose,
		MaxDose:     maxDose,
		AvailableAt: availableAt,
	}

	if err := drug.Validate(); err != nil {
		return nil, err
	}

	return drug, nil
}

// Validate checks if the Drug has valid data.
func (d *Drug) Validate() error {
	if d.ID == uuid.Nil {
		return ErrInvalidID
	}
	if d.Name == "" {
		return ErrEmptyName
	}
	if d.MinDose < 0 || d.MaxDose < 0 {
		return ErrNegativeDose
	}
	return nil
}

// IsEmpty reports whether the drug carries no data at all. Used as a
// defensive check against malformed storage responses.
func (d *Drug) IsEmpty() bool {
	return d.Name == "" && !d.Approved && d.MinDose == 0 && d.MaxDose == 0 &&
		d.AvailableAt.IsZero()
}
