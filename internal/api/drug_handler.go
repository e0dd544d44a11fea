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

// DrugHandler handles drug-related HTTP requests.
type DrugHandler struct {
	drugService *service.DrugService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewDrugHandler creates a new DrugHandler with the given dependencies.
func NewDrugHandler(drugService *service.DrugService, log *slog.Logger) *DrugHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DrugHandler")
	}
	return &DrugHandler{
		drugService: drugService,
		validator:   newValidator(),
		logger:      log.With(slog.String("component", "drug_handler")),
	}
}

// Create handles POST /drugs requests.
func (h *DrugHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateDrugRequest
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

	availableAt, err := shared.ParseDate(req.AvailableAt)
	if err != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest, "Validation error",
			map[string]string{"available_at": "The available_at must be a valid date"})
		return
	}

	drug, err := domain.NewDrug(req.Name, *req.Approved, *req.MinDose, *req.MaxDose, availableAt)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.drugService.Create(r.Context(), drug)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("drug created", slog.String("drug_id", created.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, drugToResponse(created))
}

// List handles GET /drugs requests. An empty table is reported as 404, not
// as an empty list.
func (h *DrugHandler) List(w http.ResponseWriter, r *http.Request) {
	drugs, err := h.drugService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	responses := make([]DrugResponse, 0, len(drugs))
	for i := range drugs {
		responses = append(responses, drugToResponse(&drugs[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Get handles GET /drugs/{id} requests.
func (h *DrugHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	drug, err := h.drugService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, drugToResponse(drug))
}

// Update handles PATCH /drugs/{id} requests. The response carries the
// re-fetched record, not the submitted fields.
func (h *DrugHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateDrugRequest
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

	patch := store.DrugPatch{
		Name:     req.Name,
		Approved: req.Approved,
		MinDose:  req.MinDose,
		MaxDose:  req.MaxDose,
	}
	if req.AvailableAt != nil {
		availableAt, err := shared.ParseDate(*req.AvailableAt)
		if err != nil {
			shared.RespondWithFieldErrors(w, r, http.StatusBadRequest, "Validation error",
				map[string]string{"available_at": "The available_at must be a valid date"})
			return
		}
		patch.AvailableAt = &availableAt
	}

	updated, err := h.drugService.Update(r.Context(), id, patch)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("drug updated", slog.String("drug_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, drugToResponse(updated))
}

// Delete handles DELETE /drugs/{id} requests.
func (h *DrugHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.drugService.Remove(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("drug deleted", slog.String("drug_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
