package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/medtrack/medtrack-api/internal/api/shared"
	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/platform/logger"
	"github.com/medtrack/medtrack-api/internal/redact"
	"github.com/medtrack/medtrack-api/internal/service"
	"github.com/medtrack/medtrack-api/internal/store"
)

// VaccinationHandler handles vaccination-related HTTP requests.
type VaccinationHandler struct {
	vaccinationService *service.VaccinationService
	validator          *validator.Validate
	logger             *slog.Logger
}

// NewVaccinationHandler creates a new VaccinationHandler with the given
// dependencies.
func NewVaccinationHandler(vaccinationService *service.VaccinationService, log *slog.Logger) *VaccinationHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for VaccinationHandler")
	}
	return &VaccinationHandler{
		vaccinationService: vaccinationService,
		validator:          newValidator(),
		logger:             log.With(slog.String("component", "vaccination_handler")),
	}
}

// Create handles POST /vaccination requests.
func (h *VaccinationHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateVaccinationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			"Validation error", ValidationFieldErrors(err))
		return
	}

	date, err := shared.ParseDate(req.Date)
	if err != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest, "Validation error",
			map[string]string{"date": "The date must be a valid date"})
		return
	}

	vaccination, err := domain.NewVaccination(req.Name, req.DrugID, *req.Dose, date)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.vaccinationService.Create(r.Context(), vaccination)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("vaccination created", slog.String("vaccination_id", created.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, vaccinationToResponse(created))
}

// List handles GET /vaccination requests. An empty table is reported as
// 404, not as an empty list.
func (h *VaccinationHandler) List(w http.ResponseWriter, r *http.Request) {
	vaccinations, err := h.vaccinationService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	responses := make([]VaccinationResponse, 0, len(vaccinations))
	for i := range vaccinations {
		responses = append(responses, vaccinationToResponse(&vaccinations[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Get handles GET /vaccination/{id} requests.
func (h *VaccinationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	vaccination, err := h.vaccinationService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vaccinationToResponse(vaccination))
}

// Update handles PATCH /vaccination/{id} requests. The response carries the
// re-fetched record, not the submitted fields.
func (h *VaccinationHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateVaccinationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			"Validation error", ValidationFieldErrors(err))
		return
	}

	patch := store.VaccinationPatch{
		Name:   req.Name,
		DrugID: req.DrugID,
		Dose:   req.Dose,
	}
	if req.Date != nil {
		date, err := shared.ParseDate(*req.Date)
		if err != nil {
			shared.RespondWithFieldErrors(w, r, http.StatusBadRequest, "Validation error",
				map[string]string{"date": "The date must be a valid date"})
			return
		}
		patch.Date = &date
	}

	updated, err := h.vaccinationService.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("vaccination updated", slog.String("vaccination_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, vaccinationToResponse(updated))
}

// Delete handles DELETE /vaccination/{id} requests.
func (h *VaccinationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.vaccinationService.Remove(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("vaccination deleted", slog.String("vaccination_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
