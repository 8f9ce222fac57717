package get_activity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/explorio/booking-service/internal/api/handlers"
	"github.com/explorio/booking-service/internal/service/catalog"
)

const msgNotFound = "activity not found"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	activityID := vars["activityId"]

	activity, err := h.service.FindActivity(r.Context(), activityID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrActivityNotFound):
			h.logger.Warn("GET /activities/{id} - Activity not found: activity_id=%s", activityID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /activities/{id} - Failed to get activity: activity_id=%s, error=%v",
				activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /activities/{id} - Activity retrieved: activity_id=%s", activityID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(activity))
}
