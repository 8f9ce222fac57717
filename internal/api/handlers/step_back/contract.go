package step_back

import (
	"context"

	wizardModels "github.com/explorio/booking-service/internal/service/wizard/models"
)

type WizardService interface {
	Back(ctx context.Context, sessionID string) (*wizardModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
