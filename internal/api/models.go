package api

import (
	"strings"
	"time"

	"github.com/medtrack/medtrack-api/internal/domain"
)

// Common request/response structures. Textual fields are trimmed of
// leading/trailing whitespace before length/format checks run.

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize trims the textual fields prior to validation.
func (r *SignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Normalize trims the textual fields prior to validation.
func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Password = strings.TrimSpace(r.Password)
}

// CreateDrugRequest defines the payload for creating a drug.
// approved, min_dose, and max_dose are pointers so that a missing field can
// be told apart from a legitimate zero value.
type CreateDrugRequest struct {
	Name        string   `json:"name"         validate:"required,min=3"`
	Approved    *bool    `json:"approved"     validate:"required"`
	MinDose     *float64 `json:"min_dose"     validate:"required,gte=0"`
	MaxDose     *float64 `json:"max_dose"     validate:"required,gte=0"`
	AvailableAt string   `json:"available_at" validate:"required"`
}

// Normalize trims the textual fields prior to validation.
func (r *CreateDrugRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.AvailableAt = strings.TrimSpace(r.AvailableAt)
}

// UpdateDrugRequest defines the payload for partially updating a drug.
// Every field is optional; present fields obey the same rules as on create.
type UpdateDrugRequest struct {
	Name        *string  `json:"name"         validate:"omitempty,min=3"`
	Approved    *bool    `json:"approved"`
	MinDose     *float64 `json:"min_dose"     validate:"omitempty,gte=0"`
	MaxDose     *float64 `json:"max_dose"     validate:"omitempty,gte=0"`
	AvailableAt *string  `json:"available_at" validate:"omitempty,min=1"`
}

// Normalize trims the textual fields prior to validation.
func (r *UpdateDrugRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.AvailableAt != nil {
		trimmed := strings.TrimSpace(*r.AvailableAt)
		r.AvailableAt = &trimmed
	}
}

// DrugResponse represents a drug in API responses. The availability date is
// rendered as a plain date.
type DrugResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Approved    bool    `json:"approved"`
	MinDose     float64 `json:"min_dose"`
	MaxDose     float64 `json:"max_dose"`
	AvailableAt string  `json:"available_at"`
}

func drugToResponse(d *domain.Drug) DrugResponse {
	return DrugResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Approved:    d.Approved,
		MinDose:     d.MinDose,
		MaxDose:     d.MaxDose,
		AvailableAt: d.AvailableAt.Format(time.DateOnly),
	}
}

// CreateVaccinationRequest defines the payload for creating a vaccination
// record. drug_id is a loose reference to a drug; it is stored as sent.
type CreateVaccinationRequest struct {
	Name   string   `json:"name"    validate:"required,min=3"`
	DrugID string   `json:"drug_id" validate:"required,min=3"`
	Dose   *float64 `json:"dose"    validate:"required,gte=0"`
	Date   string   `json:"date"    validate:"required"`
}

// Normalize trims the textual fields prior to validation.
func (r *CreateVaccinationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.DrugID = strings.TrimSpace(r.DrugID)
	r.Date = strings.TrimSpace(r.Date)
}

// UpdateVaccinationRequest defines the payload for partially updating a
// vaccination record.
type UpdateVaccinationRequest struct {
	Name   *string  `json:"name"    validate:"omitempty,min=3"`
	DrugID *string  `json:"drug_id" validate:"omitempty,min=3"`
	Dose   *float64 `json:"dose"    validate:"omitempty,gte=0"`
	Date   *string  `json:"date"    validate:"omitempty,min=1"`
}

// Normalize trims the textual fields prior to validation.
func (r *UpdateVaccinationRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.DrugID != nil {
		trimmed := strings.TrimSpace(*r.DrugID)
		r.DrugID = &trimmed
	}
	if r.Date != nil {
		trimmed := strings.TrimSpace(*r.Date)
		r.Date = &trimmed
	}
}

// VaccinationResponse represents a vaccination record in API responses.
type VaccinationResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	DrugID string  `json:"drug_id"`
	Dose   float64 `json:"dose"`
	Date   string  `json:"date"`
}

func vaccinationToResponse(v *domain.Vaccination) VaccinationResponse {
	return VaccinationResponse{
		ID:     v.ID.String(),
		Name:   v.Name,
		DrugID: v.DrugID,
		Dose:   v.Dose,
		Date:   v.Date.Format(time.DateOnly),
	}
}
