package abandon_session

import "context"

type WizardService interface {
	Abandon(ctx context.Context, sessionID string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
