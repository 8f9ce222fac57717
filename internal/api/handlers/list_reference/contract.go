package list_reference

import (
	"context"

	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/pkg/types"
)

type CatalogService interface {
	ListBundles(ctx context.Context) ([]domain.Bundle, error)
	ListTimeSlots(ctx context.Context) ([]types.TimeString, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListCities(ctx context.Context) ([]domain.City, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
