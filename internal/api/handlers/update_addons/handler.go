package update_addons

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/explorio/booking-service/internal/api/handlers"
	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/internal/service/wizard"
	wizardModels "github.com/explorio/booking-service/internal/service/wizard/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingAddOnID     = "addonId is required"
	msgQuantityOrDelta    = "exactly one of quantity or delta is required"
	msgNotFound           = "booking session not found"
	msgWrongStep          = "add-ons can only be changed on the add-ons step"
	msgSessionConfirmed   = "booking is already confirmed"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/sessions/{sessionId}/addons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	var req UpdateAddOnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/addons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.AddOnID == "" {
		h.logger.Warn("PATCH /sessions/{id}/addons - Missing addon id: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingAddOnID)
		return
	}
	if (req.Quantity == nil) == (req.Delta == nil) {
		h.logger.Warn("PATCH /sessions/{id}/addons - Ambiguous update: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgQuantityOrDelta)
		return
	}

	var (
		session *wizardModels.SessionResponse
		err     error
	)
	if req.Quantity != nil {
		session, err = h.service.SetAddOn(r.Context(), sessionID, req.AddOnID, *req.Quantity)
	} else {
		session, err = h.service.AdjustAddOn(r.Context(), sessionID, req.AddOnID, *req.Delta)
	}

	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/addons - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrSessionConfirmed):
			h.logger.Warn("PATCH /sessions/{id}/addons - Session confirmed: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSessionConfirmed)

		case errors.Is(err, domain.ErrWrongStep):
			h.logger.Warn("PATCH /sessions/{id}/addons - Wrong step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		default:
			h.logger.Error("PATCH /sessions/{id}/addons - Failed to update addon: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/addons - Addon updated: session_id=%s, addon_id=%s",
		sessionID, req.AddOnID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
