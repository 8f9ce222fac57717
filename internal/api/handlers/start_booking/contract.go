package start_booking

import (
	"context"

	startSession "github.com/explorio/booking-service/internal/usecase/start_session"
	wizardModels "github.com/explorio/booking-service/internal/service/wizard/models"
)

type StartSessionUseCase interface {
	Execute(ctx context.Context, req *startSession.Request) (*wizardModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
