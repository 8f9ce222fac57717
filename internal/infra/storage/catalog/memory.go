package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/pkg/types"
)

// MemoryStore каталог в памяти
// Данные неизменяемы после создания, поэтому синхронизация не требуется
type MemoryStore struct {
	activities []domain.Activity
	providers  []domain.Provider
	addOns     []domain.AddOn
	bundles    []domain.Bundle
	timeSlots  []types.TimeString
	categories []domain.Category
	cities     []domain.City
}

// NewMemoryStore создает каталог в памяти с переданными данными
func NewMemoryStore(
	activities []domain.Activity,
	providers []domain.Provider,
	addOns []domain.AddOn,
	bundles []domain.Bundle,
	timeSlots []types.TimeString,
	categories []domain.Category,
	cities []domain.City,
) *MemoryStore {
	return &MemoryStore{
		activities: activities,
		providers:  providers,
		addOns:     addOns,
		bundles:    bundles,
		timeSlots:  timeSlots,
		categories: categories,
		cities:     cities,
	}
}

// NewSeededMemoryStore создает каталог в памяти с демо-данными
func NewSeededMemoryStore() *MemoryStore {
	return NewMemoryStore(
		seedActivities, seedProviders, seedAddOns,
		seedBundles, seedTimeSlots, seedCategories, seedCities,
	)
}

// FindActivity возвращает активность по id
func (s *MemoryStore) FindActivity(_ context.Context, id string) (*domain.Activity, error) {
	for i := range s.activities {
		if s.activities[i].ID == id {
			activity := s.activities[i]
			return &activity, nil
		}
	}
	return nil, ErrActivityNotFound
}

// FindProvider возвращает провайдера по id
func (s *MemoryStore) FindProvider(_ context.Context, id string) (*domain.Provider, error) {
	for i := range s.providers {
		if s.providers[i].ID == id {
			provider := s.providers[i]
			return &provider, nil
		}
	}
	return nil, ErrProviderNotFound
}

// ListActivities возвращает активности, удовлетворяющие фильтру,
// в порядке, заданном filter.Sort
func (s *MemoryStore) ListActivities(_ context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	result := make([]domain.Activity, 0, len(s.activities))

	for _, a := range s.activities {
		if !matchesFilter(&a, filter) {
			continue
		}
		result = append(result, a)
	}

	switch filter.Sort {
	case domain.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case domain.SortDistance:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Distance < result[j].Distance })
	default:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	}

	return result, nil
}

// ListAddOns возвращает глобальный список add-on'ов
func (s *MemoryStore) ListAddOns(_ context.Context) ([]domain.AddOn, error) {
	return append([]domain.AddOn(nil), s.addOns...), nil
}

// ListBundles возвращает список промо-бандлов
func (s *MemoryStore) ListBundles(_ context.Context) ([]domain.Bundle, error) {
	return append([]domain.Bundle(nil), s.bundles...), nil
}

// ListTimeSlots возвращает доступные слоты начала
func (s *MemoryStore) ListTimeSlots(_ context.Context) ([]types.TimeString, error) {
	return append([]types.TimeString(nil), s.timeSlots...), nil
}

// ListCategories возвращает список категорий
func (s *MemoryStore) ListCategories(_ context.Context) ([]domain.Category, error) {
	return append([]domain.Category(nil), s.categories...), nil
}

// ListCities возвращает список городов
func (s *MemoryStore) ListCities(_ context.Context) ([]domain.City, error) {
	return append([]domain.City(nil), s.cities...), nil
}

func matchesFilter(a *domain.Activity, filter domain.ActivityFilter) bool {
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.Category), q) {
			return false
		}
	}

	if len(filter.Categories) > 0 && !containsString(filter.Categories, a.Category) {
		return false
	}

	if len(filter.Cities) > 0 && !containsString(filter.Cities, a.City) {
		return false
	}

	if filter.MinPrice != nil && a.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && a.Price > *filter.MaxPrice {
		return false
	}

	return true
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
