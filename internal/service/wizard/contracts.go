package wizard

import (
	"context"

	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/internal/service/pricing"
)

// SessionStore интерфейс хранилища сессий мастера
type SessionStore interface {
	Create(session *domain.Session)
	Get(id string) (*domain.Session, error)
	Update(id string, fn func(*domain.Session) error) (*domain.Session, error)
	Delete(id string)
}

// CatalogService интерфейс каталога, используемый мастером
// Каталог нужен мастеру только для расчёта стоимости add-on'ов
type CatalogService interface {
	ListAddOns(ctx context.Context) ([]domain.AddOn, error)
}

// Pricer интерфейс калькулятора стоимости
type Pricer interface {
	Quote(activity *domain.Activity, selection *domain.BookingSelection, addOns []domain.AddOn) pricing.Quote
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
