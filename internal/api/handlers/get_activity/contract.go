package get_activity

import (
	"context"

	"github.com/explorio/booking-service/internal/domain"
)

type CatalogService interface {
	FindActivity(ctx context.Context, id string) (*domain.Activity, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
