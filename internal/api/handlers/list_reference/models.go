package list_reference

import (
	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/pkg/types"
)

// BundleResponse элемент списка промо-бандлов
type BundleResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListBundlesResponse HTTP response model
type ListBundlesResponse struct {
	Bundles []BundleResponse `json:"bundles"`
}

// ListTimeSlotsResponse HTTP response model
type ListTimeSlotsResponse struct {
	TimeSlots []string `json:"timeSlots"`
}

// ReferenceItem пара id/name для категорий и городов
type ReferenceItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListCategoriesResponse HTTP response model
type ListCategoriesResponse struct {
	Categories []ReferenceItem `json:"categories"`
}

// ListCitiesResponse HTTP response model
type ListCitiesResponse struct {
	Cities []ReferenceItem `json:"cities"`
}

// FromDomainBundles конвертирует список бандлов в HTTP response
func FromDomainBundles(bundles []domain.Bundle) *ListBundlesResponse {
	items := make([]BundleResponse, 0, len(bundles))
	for _, b := range bundles {
		items = append(items, BundleResponse{
			Name:        b.Name,
			Description: b.Description,
		})
	}
	return &ListBundlesResponse{Bundles: items}
}

// FromDomainTimeSlots конвертирует список слотов в HTTP response
func FromDomainTimeSlots(slots []types.TimeString) *ListTimeSlotsResponse {
	items := make([]string, 0, len(slots))
	for _, s := range slots {
		items = append(items, s.String())
	}
	return &ListTimeSlotsResponse{TimeSlots: items}
}

// FromDomainCategories конвертирует список категорий в HTTP response
func FromDomainCategories(categories []domain.Category) *ListCategoriesResponse {
	items := make([]ReferenceItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, ReferenceItem{ID: c.ID, Name: c.Name})
	}
	return &ListCategoriesResponse{Categories: items}
}

// FromDomainCities конвертирует список городов в HTTP response
func FromDomainCities(cities []domain.City) *ListCitiesResponse {
	items := make([]ReferenceItem, 0, len(cities))
	for _, c := range cities {
		items = append(items, ReferenceItem{ID: c.ID, Name: c.Name})
	}
	return &ListCitiesResponse{Cities: items}
}
