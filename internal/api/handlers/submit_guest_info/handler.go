package submit_guest_info

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/explorio/booking-service/internal/api/handlers"
	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidGuestInfo   = "first name, last name and email are required"
	msgNotFound           = "booking session not found"
	msgWrongStep          = "guest info can only be submitted on the guest info step"
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

// Handle POST /api/v1/bookings/sessions/{sessionId}/guest-info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	var req GuestInfoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/guest-info - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SubmitGuestInfo(r.Context(), sessionID, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/guest-info - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrInvalidGuestInfo):
			h.logger.Warn("POST /sessions/{id}/guest-info - Invalid guest info: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidGuestInfo)

		case errors.Is(err, domain.ErrSessionConfirmed):
			h.logger.Warn("POST /sessions/{id}/guest-info - Session confirmed: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSessionConfirmed)

		case errors.Is(err, domain.ErrWrongStep):
			h.logger.Warn("POST /sessions/{id}/guest-info - Wrong step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		default:
			h.logger.Error("POST /sessions/{id}/guest-info - Failed to submit guest info: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/guest-info - Guest info accepted: session_id=%s, step=%s",
		sessionID, session.Step)
	handlers.RespondJSON(w, http.StatusOK, session)
}
