package get_provider

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/explorio/booking-service/internal/api/handlers"
	"github.com/explorio/booking-service/internal/service/catalog"
)

const msgNotFound = "provider not found"

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

// Handle GET /api/v1/providers/{providerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	providerID := vars["providerId"]

	provider, err := h.service.FindProvider(r.Context(), providerID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProviderNotFound):
			h.logger.Warn("GET /providers/{id} - Provider not found: provider_id=%s", providerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /providers/{id} - Failed to get provider: provider_id=%s, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id} - Provider retrieved: provider_id=%s", providerID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(provider))
}
