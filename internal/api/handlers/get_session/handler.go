package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/explorio/booking-service/internal/api/handlers"
	"github.com/explorio/booking-service/internal/service/wizard"
)

const msgNotFound = "booking session not found"

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

// Handle GET /api/v1/bookings/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	session, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("GET /bookings/sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/sessions/{id} - Failed to get session: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/sessions/{id} - Session retrieved: session_id=%s, step=%s",
		sessionID, session.Step)
	handlers.RespondJSON(w, http.StatusOK, session)
}
