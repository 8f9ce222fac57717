package list_activities

import (
	"net/http"

	"github.com/explorio/booking-service/internal/api/handlers"
)

const msgInvalidPriceFilter = "invalid price filter, expected a number"

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

// Handle GET /api/v1/activities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /activities - Invalid price filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPriceFilter)
		return
	}

	activities, err := h.service.ListActivities(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /activities - Failed to list activities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /activities - Retrieved %d activities", len(activities))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(activities))
}
