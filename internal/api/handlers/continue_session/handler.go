package continue_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/explorio/booking-service/internal/api/handlers"
	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/internal/service/wizard"
)

const (
	msgNotFound         = "booking session not found"
	msgWrongStep        = "continue is only available on the add-ons step"
	msgSessionConfirmed = "booking is already confirmed"
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

// Handle POST /api/v1/bookings/sessions/{sessionId}/continue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	session, err := h.service.Continue(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/continue - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrSessionConfirmed):
			h.logger.Warn("POST /sessions/{id}/continue - Session confirmed: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSessionConfirmed)

		case errors.Is(err, domain.ErrWrongStep):
			h.logger.Warn("POST /sessions/{id}/continue - Wrong step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		default:
			h.logger.Error("POST /sessions/{id}/continue - Failed to continue: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/continue - Session advanced: session_id=%s, step=%s",
		sessionID, session.Step)
	handlers.RespondJSON(w, http.StatusOK, session)
}
