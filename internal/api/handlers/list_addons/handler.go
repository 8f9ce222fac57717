package list_addons

import (
	"net/http"

	"github.com/explorio/booking-service/internal/api/handlers"
)

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

// Handle GET /api/v1/addons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	addOns, err := h.service.ListAddOns(r.Context())
	if err != nil {
		h.logger.Error("GET /addons - Failed to list addons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /addons - Retrieved %d addons", len(addOns))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(addOns))
}
