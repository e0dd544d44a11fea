package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Vaccination represents an administered vaccination record.
// DrugID is a loose reference to a Drug's ID kept as a plain string;
// no referential integrity against the drugs table is enforced.
type Vaccination struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"` // patient name
	DrugID string    `json:"drug_id"`
	Dose   float64   `json:"dose"`
	Date   time.Time `json:"date"`
}

// NewVaccination creates a new Vaccination with a generated UUID.
// Returns an error if validation fails.
func NewVaccination(name, drugID string, dose float64, date time.Time) (*Vaccination, error) {
	vaccination := &Vaccination{
		ID:     uuid.New(),
		Name:   strings.TrimSpace(name),
		DrugID: strings.TrimSpace(drugID),
		Dose:   dose,
		Date:   date,
	}

	if err := vaccination.Validate(); err != nil {
		return nil, err
	}

	return vaccination, nil
}

// Validate checks if the Vaccination has valid data.
func (v *Vaccination) Validate() error {
	if v.ID == uuid.Nil {
		return ErrInvalidID
	}
	if v.Name == "" || v.DrugID == "" {
		return ErrEmptyName
	}
	if v.Dose < 0 {
		return ErrNegativeDose
	}
	return nil
}

// IsEmpty reports whether the vaccination carries no data at all. Used as a
// defensive check against malformed storage responses.
func (v *Vaccination) IsEmpty() bool {
	return v.Name == "" && v.DrugID == "" && v.Dose == 0 && v.Date.IsZero()
}
