package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/explorio/booking-service/internal/domain"
	catalogRepo "github.com/explorio/booking-service/internal/infra/storage/catalog"
	"github.com/explorio/booking-service/pkg/types"
)

// Service read-only сервис каталога активностей
type Service struct {
	store  Store
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(store Store, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// FindActivity возвращает активность по id
func (s *Service) FindActivity(ctx context.Context, id string) (*domain.Activity, error) {
	activity, err := s.store.FindActivity(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrActivityNotFound) {
			s.logger.Warn("FindActivity: activity id=%s not found", id)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("FindActivity: store error for activity id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: FindActivity - store error: %v", ErrInternal, err)
	}
	return activity, nil
}

// FindProvider возвращает провайдера по id
func (s *Service) FindProvider(ctx context.Context, id string) (*domain.Provider, error) {
	provider, err := s.store.FindProvider(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProviderNotFound) {
			s.logger.Warn("FindProvider: provider id=%s not found", id)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("FindProvider: store error for provider id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: FindProvider - store error: %v", ErrInternal, err)
	}
	return provider, nil
}

// ListActivities возвращает активности по фильтру
// Неизвестное значение сортировки заменяется сортировкой по возрастанию цены
func (s *Service) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	switch filter.Sort {
	case domain.SortPriceAsc, domain.SortPriceDesc, domain.SortDistance:
	default:
		filter.Sort = domain.SortPriceAsc
	}

	activities, err := s.store.ListActivities(ctx, filter)
	if err != nil {
		s.logger.Error("ListActivities: store error: %v", err)
		return nil, fmt.Errorf("%w: ListActivities - store error: %v", ErrInternal, err)
	}

	s.logger.Info("ListActivities: fetched %d activities", len(activities))
	return activities, nil
}

// ListAddOns возвращает глобальный список add-on'ов
func (s *Service) ListAddOns(ctx context.Context) ([]domain.AddOn, error) {
	addOns, err := s.store.ListAddOns(ctx)
	if err != nil {
		s.logger.Error("ListAddOns: store error: %v", err)
		return nil, fmt.Errorf("%w: ListAddOns - store error: %v", ErrInternal, err)
	}
	return addOns, nil
}

// ListBundles возвращает список промо-бандлов
func (s *Service) ListBundles(ctx context.Context) ([]domain.Bundle, error) {
	bundles, err := s.store.ListBundles(ctx)
	if err != nil {
		s.logger.Error("ListBundles: store error: %v", err)
		return nil, fmt.Errorf("%w: ListBundles - store error: %v", ErrInternal, err)
	}
	return bundles, nil
}

// ListTimeSlots возвращает доступные слоты начала
func (s *Service) ListTimeSlots(ctx context.Context) ([]types.TimeString, error) {
	slots, err := s.store.ListTimeSlots(ctx)
	if err != nil {
		s.logger.Error("ListTimeSlots: store error: %v", err)
		return nil, fmt.Errorf("%w: ListTimeSlots - store error: %v", ErrInternal, err)
	}
	return slots, nil
}

// ListCategories возвращает список категорий
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: store error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - store error: %v", ErrInternal, err)
	}
	return categories, nil
}

// ListCities возвращает список городов
func (s *Service) ListCities(ctx context.Context) ([]domain.City, error) {
	cities, err := s.store.ListCities(ctx)
	if err != nil {
		s.logger.Error("ListCities: store error: %v", err)
		return nil, fmt.Errorf("%w: ListCities - store error: %v", ErrInternal, err)
	}
	return cities, nil
}
