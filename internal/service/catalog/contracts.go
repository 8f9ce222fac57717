package catalog

import (
	"context"

	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/pkg/types"
)

// Store интерфейс хранилища каталога
// Реализации: in-memory каталог с демо-данными и PostgreSQL репозиторий
type Store interface {
	FindActivity(ctx context.Context, id string) (*domain.Activity, error)
	FindProvider(ctx context.Context, id string) (*domain.Provider, error)
	ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
	ListAddOns(ctx context.Context) ([]domain.AddOn, error)
	ListBundles(ctx context.Context) ([]domain.Bundle, error)
	ListTimeSlots(ctx context.Context) ([]types.TimeString, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListCities(ctx context.Context) ([]domain.City, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
