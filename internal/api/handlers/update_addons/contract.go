package update_addons

import (
	"context"

	wizardModels "github.com/explorio/booking-service/internal/service/wizard/models"
)

type WizardService interface {
	SetAddOn(ctx context.Context, sessionID, addOnID string, quantity int) (*wizardModels.SessionResponse, error)
	AdjustAddOn(ctx context.Context, sessionID, addOnID string, delta int) (*wizardModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
