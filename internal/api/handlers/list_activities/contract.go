package list_activities

import (
	"context"

	"github.com/explorio/booking-service/internal/domain"
)

type CatalogService interface {
	ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
