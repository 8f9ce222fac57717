package start_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/explorio/booking-service/internal/domain"
	catalogService "github.com/explorio/booking-service/internal/service/catalog"
	"github.com/explorio/booking-service/internal/service/wizard/models"
)

// UseCase use case старта сессии мастера бронирования
type UseCase struct {
	catalog      Catalog
	sessions     SessionStore
	pricer       Pricer
	idGen        IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog Catalog,
	sessions SessionStore,
	pricer Pricer,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		sessions:     sessions,
		pricer:       pricer,
		idGen:        &UUIDGenerator{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute валидирует входной контекст против каталога и создает
// сессию мастера на шаге выбора add-on'ов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.SessionResponse, error) {
	uc.logger.Info("StartSession: activity=%s, duration=%q, adults=%d, children=%d, date=%s, time=%s",
		req.ActivityID, req.Duration, req.Adults, req.Children,
		req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Активность из каталога
	activity, err := uc.catalog.FindActivity(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, catalogService.ErrActivityNotFound) {
			uc.logger.Warn("StartSession: activity id=%s not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("StartSession: failed to get activity id=%s: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	// 3. Провайдер активности
	provider, err := uc.catalog.FindProvider(ctx, activity.ProviderID)
	if err != nil {
		if errors.Is(err, catalogService.ErrProviderNotFound) {
			uc.logger.Warn("StartSession: provider id=%s not found for activity id=%s",
				activity.ProviderID, req.ActivityID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("StartSession: failed to get provider id=%s: %v", activity.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 4. Проверка режима тарификации
	if err := validatePricingMode(activity, req); err != nil {
		uc.logger.Warn("StartSession: pricing mode validation failed for activity id=%s: %v",
			req.ActivityID, err)
		return nil, err
	}

	// 5. Создаем сессию на первом шаге мастера
	participants := req.Participants
	if participants == "" {
		participants = buildParticipantSummary(req.Adults, req.Children)
	}

	selection := domain.BookingSelection{
		Duration:        req.Duration,
		Adults:          req.Adults,
		Children:        req.Children,
		Participants:    participants,
		Date:            req.Date,
		Time:            req.Time,
		AddOnQuantities: make(map[string]int),
	}

	session := domain.NewSession(uc.idGen.NewID(), *activity, *provider, selection, uc.timeProvider.Now())
	uc.sessions.Create(session)

	// 6. Расчёт стоимости для ответа
	addOns, err := uc.catalog.ListAddOns(ctx)
	if err != nil {
		uc.logger.Error("StartSession: failed to list addons: %v", err)
		return nil, fmt.Errorf("%w: failed to list addons: %v", ErrInternal, err)
	}
	quote := uc.pricer.Quote(&session.Activity, &session.Selection, addOns)

	uc.logger.Info("StartSession: session=%s created for activity=%s at step=%s",
		session.ID, activity.ID, session.Step)
	return models.FromDomainSession(session, quote), nil
}
