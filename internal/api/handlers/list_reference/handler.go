package list_reference

import (
	"net/http"

	"github.com/explorio/booking-service/internal/api/handlers"
)

// Handler обслуживает справочные списки каталога: бандлы, слоты
// начала, категории и города
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

// HandleBundles GET /api/v1/bundles
func (h *Handler) HandleBundles(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.service.ListBundles(r.Context())
	if err != nil {
		h.logger.Error("GET /bundles - Failed to list bundles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bundles - Retrieved %d bundles", len(bundles))
	handlers.RespondJSON(w, http.StatusOK, FromDomainBundles(bundles))
}

// HandleTimeSlots GET /api/v1/time-slots
func (h *Handler) HandleTimeSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.ListTimeSlots(r.Context())
	if err != nil {
		h.logger.Error("GET /time-slots - Failed to list time slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /time-slots - Retrieved %d time slots", len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromDomainTimeSlots(slots))
}

// HandleCategories GET /api/v1/categories
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /categories - Failed to list categories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /categories - Retrieved %d categories", len(categories))
	handlers.RespondJSON(w, http.StatusOK, FromDomainCategories(categories))
}

// HandleCities GET /api/v1/cities
func (h *Handler) HandleCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.ListCities(r.Context())
	if err != nil {
		h.logger.Error("GET /cities - Failed to list cities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cities - Retrieved %d cities", len(cities))
	handlers.RespondJSON(w, http.StatusOK, FromDomainCities(cities))
}
