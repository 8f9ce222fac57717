package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/explorio/booking-service/internal/domain"
	sessionStore "github.com/explorio/booking-service/internal/infra/storage/session"
	"github.com/explorio/booking-service/internal/service/wizard/models"
)

// UseCase use case подтверждения оплаты и сборки итогового бронирования
type UseCase struct {
	sessions     SessionStore
	catalog      Catalog
	pricer       Pricer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionStore,
	catalog Catalog,
	pricer Pricer,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		catalog:      catalog,
		pricer:       pricer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет переход Payment -> Confirmed
// Guard: согласие с условиями; BookingRecord собирается только после
// проверки инварианта (валидный гость, подтверждённые контакты)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.SessionResponse, error) {
	uc.logger.Info("ConfirmBooking: session=%s terms_accepted=%t", req.SessionID, req.TermsAccepted)

	// Каталог add-on'ов нужен внутри мутации для итогового расчёта
	addOns, err := uc.catalog.ListAddOns(ctx)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to list addons: %v", err)
		return nil, fmt.Errorf("%w: failed to list addons: %v", ErrInternal, err)
	}

	session, err := uc.sessions.Update(req.SessionID, func(session *domain.Session) error {
		if session.Step != domain.StepPayment {
			if session.Step == domain.StepConfirmed {
				return domain.ErrSessionConfirmed
			}
			return domain.ErrWrongStep
		}
		if !req.TermsAccepted {
			return domain.ErrTermsNotAccepted
		}
		if !session.CanBuildRecord() {
			return ErrVerificationIncomplete
		}

		record := uc.buildRecord(session, addOns)
		return session.Confirm(record, req.TermsAccepted)
	})
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("ConfirmBooking: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Warn("ConfirmBooking: session=%s rejected: %v", req.SessionID, err)
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: session=%s confirmed, booking_id=%s, total=%.2f",
		req.SessionID, session.Record.ID, session.Record.TotalPrice)

	quote := uc.pricer.Quote(&session.Activity, &session.Selection, addOns)
	return models.FromDomainSession(session, quote), nil
}

// buildRecord собирает неизменяемый снапшот подтверждённого бронирования
func (uc *UseCase) buildRecord(session *domain.Session, addOns []domain.AddOn) *domain.BookingRecord {
	now := uc.timeProvider.Now()
	quote := uc.pricer.Quote(&session.Activity, &session.Selection, addOns)

	participants := session.Selection.Participants
	if participants == "" {
		participants = "1 person"
	}

	duration := session.Selection.Duration
	if duration == "" {
		duration = session.Activity.Duration
	}

	return &domain.BookingRecord{
		ID:            domain.NewBookingID(now),
		Activity:      session.Activity,
		Provider:      session.Provider,
		Participants:  participants,
		Date:          session.Selection.Date,
		Time:          session.Selection.Time,
		Duration:      duration,
		TotalPrice:    quote.TotalPrice,
		BookingFee:    quote.BookingFee,
		PayAtProvider: quote.PayAtProvider,
		ConfirmedAt:   now,
	}
}
