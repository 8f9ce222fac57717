package submit_guest_info

import (
	"context"

	"github.com/explorio/booking-service/internal/domain"
	wizardModels "github.com/explorio/booking-service/internal/service/wizard/models"
)

type WizardService interface {
	SubmitGuestInfo(ctx context.Context, sessionID string, guest domain.GuestInfo) (*wizardModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
