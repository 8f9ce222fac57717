package start_session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/internal/service/pricing"
)

// Catalog интерфейс каталога для валидации входного контекста
type Catalog interface {
	FindActivity(ctx context.Context, id string) (*domain.Activity, error)
	FindProvider(ctx context.Context, id string) (*domain.Provider, error)
	ListAddOns(ctx context.Context) ([]domain.AddOn, error)
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Create(session *domain.Session)
}

// Pricer интерфейс калькулятора стоимости
type Pricer interface {
	Quote(activity *domain.Activity, selection *domain.BookingSelection, addOns []domain.AddOn) pricing.Quote
}

// IDGenerator интерфейс генератора идентификаторов сессий (для тестирования)
type IDGenerator interface {
	NewID() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDGenerator генератор идентификаторов на основе uuid v4
type UUIDGenerator struct{}

// NewID возвращает новый uuid
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
