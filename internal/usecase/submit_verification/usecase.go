package submit_verification

import (
	"context"
	"errors"
	"fmt"

	"github.com/explorio/booking-service/internal/domain"
	sessionStore "github.com/explorio/booking-service/internal/infra/storage/session"
	"github.com/explorio/booking-service/internal/service/verification"
	"github.com/explorio/booking-service/internal/service/wizard/models"
)

// UseCase use case проверки кода подтверждения email или телефона
// Объединяет verification gate и ветвление мастера: после email
// следует шаг телефона только если телефон был указан
type UseCase struct {
	sessions SessionStore
	gate     Gate
	catalog  Catalog
	pricer   Pricer
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionStore,
	gate Gate,
	catalog Catalog,
	pricer Pricer,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions: sessions,
		gate:     gate,
		catalog:  catalog,
		pricer:   pricer,
		logger:   logger,
	}
}

// Execute проверяет код и продвигает мастер на следующий шаг
//
// Неполный код не меняет шаг мастера: в сессии фиксируется только
// текст ошибки для пользователя, и вызывающему возвращается
// verification.ErrIncompleteCode
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.SessionResponse, error) {
	uc.logger.Info("SubmitVerification: session=%s channel=%s", req.SessionID, req.Channel)

	if err := uc.gate.SubmitCode(req.Channel, req.Code); err != nil {
		if errors.Is(err, verification.ErrIncompleteCode) {
			if recordErr := uc.recordFailure(req); recordErr != nil {
				return nil, recordErr
			}
			uc.logger.Warn("SubmitVerification: incomplete code for session=%s channel=%s",
				req.SessionID, req.Channel)
		}
		return nil, err
	}

	session, err := uc.sessions.Update(req.SessionID, func(session *domain.Session) error {
		switch req.Channel {
		case verification.ChannelPhone:
			return session.MarkPhoneVerified(req.Code)
		default:
			return session.MarkEmailVerified(req.Code)
		}
	})
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("SubmitVerification: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		// Guard-ошибки мастера (неверный шаг) возвращаем как есть
		return nil, err
	}

	uc.logger.Info("SubmitVerification: session=%s channel=%s verified, step=%s",
		req.SessionID, req.Channel, session.Step)

	addOns, err := uc.catalog.ListAddOns(ctx)
	if err != nil {
		uc.logger.Error("SubmitVerification: failed to list addons: %v", err)
		return nil, fmt.Errorf("%w: failed to list addons: %v", ErrInternal, err)
	}
	quote := uc.pricer.Quote(&session.Activity, &session.Selection, addOns)

	return models.FromDomainSession(session, quote), nil
}

// recordFailure сохраняет текст ошибки неполного кода в состоянии сессии
func (uc *UseCase) recordFailure(req *Request) error {
	_, err := uc.sessions.Update(req.SessionID, func(session *domain.Session) error {
		session.Verification.LastError = verification.IncompleteMessage(req.Channel)
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("%w: failed to record verification error: %v", ErrInternal, err)
	}
	return nil
}
