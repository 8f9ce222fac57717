package list_activities

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/pkg/ptr"
)

// ActivityListItem элемент списка активностей (краткая карточка)
type ActivityListItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	City       string   `json:"city"`
	ProviderID string   `json:"providerId"`
	Currency   string   `json:"currency"`
	Price      float64  `json:"price"`
	Duration   string   `json:"duration,omitempty"`
	Distance   float64  `json:"distance"`
	Images     []string `json:"images,omitempty"`
}

// ListActivitiesResponse HTTP response model
type ListActivitiesResponse struct {
	Activities []ActivityListItem `json:"activities"`
	Total      int                `json:"total"`
}

// ParseFilter собирает фильтр каталога из query-параметров
//
//	?query=jet&categories=water-sports,adventure&cities=ayia-napa
//	&minPrice=20&maxPrice=100&sort=price-asc
func ParseFilter(query url.Values) (domain.ActivityFilter, error) {
	filter := domain.ActivityFilter{
		Query:      query.Get("query"),
		Categories: splitCSV(query.Get("categories")),
		Cities:     splitCSV(query.Get("cities")),
		Sort:       query.Get("sort"),
	}

	if raw := query.Get("minPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.ActivityFilter{}, err
		}
		filter.MinPrice = ptr.Ptr(value)
	}
	if raw := query.Get("maxPrice"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.ActivityFilter{}, err
		}
		filter.MaxPrice = ptr.Ptr(value)
	}

	return filter, nil
}

// FromDomainList конвертирует список активностей в HTTP response
func FromDomainList(activities []domain.Activity) *ListActivitiesResponse {
	items := make([]ActivityListItem, 0, len(activities))
	for _, a := range activities {
		items = append(items, ActivityListItem{
			ID:         a.ID,
			Name:       a.Name,
			Category:   a.Category,
			City:       a.City,
			ProviderID: a.ProviderID,
			Currency:   a.Currency,
			Price:      a.Price,
			Duration:   a.Duration,
			Distance:   a.Distance,
			Images:     a.Images,
		})
	}
	return &ListActivitiesResponse{
		Activities: items,
		Total:      len(items),
	}
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
