package confirm_payment

import (
	"context"

	wizardModels "github.com/explorio/booking-service/internal/service/wizard/models"
	confirmBooking "github.com/explorio/booking-service/internal/usecase/confirm_booking"
)

type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, req *confirmBooking.Request) (*wizardModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
