package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"hangar-booking/internal/dto/request"
	"hangar-booking/internal/usecase"
	"hangar-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HangarHandler struct {
	service usecase.HangarService
	log     *zap.Logger
}

func NewHangarHandler(service usecase.HangarService, log *zap.Logger) *HangarHandler {
	return &HangarHandler{
		service: service,
		log:     log.With(zap.String("handler", "hangar")),
	}
}

// CreateHangar handles POST /api/hangars (protected)
func (h *HangarHandler) CreateHangar(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetCustomerIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateHangarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hangar, err := h.service.CreateHangar(r.Context(), ownerID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create hangar")
		return
	}

	utils.ResponseCreated(w, "success", hangar)
}

// GetHangars handles GET /api/hangars (public)
func (h *HangarHandler) GetHangars(w http.ResponseWriter, r *http.Request) {
	hangars, err := h.service.GetHangars(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list hangars")
		return
	}

	utils.ResponseSuccess(w, "success", hangars)
}

// GetHangarByID handles GET /api/hangars/{id} (public)
func (h *HangarHandler) GetHangarByID(w http.ResponseWriter, r *http.Request) {
	hangarID := chi.URLParam(r, "id")
	if hangarID == "" {
		utils.ResponseBadRequest(w, "Hangar ID is required", nil)
		return
	}

	hangar, err := h.service.GetHangarByID(r.Context(), hangarID)
	if err != nil {
		h.handleServiceError(w, err, "get hangar by ID")
		return
	}

	utils.ResponseSuccess(w, "success", hangar)
}

// UpdatePrice handles PATCH /api/hangars/{id}/price and the legacy
// PATCH /api/bookings/{id}/price route (protected)
func (h *HangarHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	hangarID := chi.URLParam(r, "id")
	if hangarID == "" {
		utils.ResponseBadRequest(w, "Hangar ID is required", nil)
		return
	}

	var req request.UpdateHangarPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hangar, err := h.service.UpdatePrice(r.Context(), hangarID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update hangar price")
		return
	}

	utils.ResponseSuccess(w, "success", hangar)
}

// handleServiceError translates hangar service failures to HTTP statuses
func (h *HangarHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrHangarNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidPricing):
		h.log.Warn(operation+" failed - invalid price", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
