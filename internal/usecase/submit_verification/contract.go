package submit_verification

import (
	"context"

	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/internal/service/pricing"
	"github.com/explorio/booking-service/internal/service/verification"
)

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Update(id string, fn func(*domain.Session) error) (*domain.Session, error)
}

// Gate интерфейс verification gate
type Gate interface {
	SubmitCode(channel verification.Channel, code string) error
}

// Catalog интерфейс каталога для расчёта стоимости в ответе
type Catalog interface {
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
