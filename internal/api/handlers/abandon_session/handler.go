package abandon_session

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/explorio/booking-service/internal/api/handlers"
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

// Handle DELETE /api/v1/bookings/sessions/{sessionId}
//
// Удаление идемпотентно: повторный вызов для несуществующей сессии
// также возвращает 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	h.service.Abandon(r.Context(), sessionID)

	h.logger.Info("DELETE /bookings/sessions/{id} - Session abandoned: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
