package submit_verification

import (
	"context"

	wizardModels "github.com/explorio/booking-service/internal/service/wizard/models"
	submitVerification "github.com/explorio/booking-service/internal/usecase/submit_verification"
)

type SubmitVerificationUseCase interface {
	Execute(ctx context.Context, req *submitVerification.Request) (*wizardModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
