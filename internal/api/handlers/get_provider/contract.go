package get_provider

import (
	"context"

	"github.com/explorio/booking-service/internal/domain"
)

type CatalogService interface {
	FindProvider(ctx context.Context, id string) (*domain.Provider, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
