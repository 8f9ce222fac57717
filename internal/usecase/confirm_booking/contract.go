package confirm_booking

import (
	"context"
	"time"

	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/internal/service/pricing"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Update(id string, fn func(*domain.Session) error) (*domain.Session, error)
}

// Catalog интерфейс каталога для расчёта итоговой стоимости
type Catalog interface {
	ListAddOns(ctx context.Context) ([]domain.AddOn, error)
}

// Pricer интерфейс калькулятора стоимости
type Pricer interface {
	Quote(activity *domain.Activity, selection *domain.BookingSelection, addOns []domain.AddOn) pricing.Quote
}

// TimeProvider интерфейс для получения текущего времени (для тестирования
// и детерминированной генерации идентификатора бронирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
