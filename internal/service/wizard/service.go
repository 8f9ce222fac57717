package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/explorio/booking-service/internal/domain"
	sessionStore "github.com/explorio/booking-service/internal/infra/storage/session"
	"github.com/explorio/booking-service/internal/service/wizard/models"
)

// Service операции над сессией мастера, не требующие оркестрации
// других сервисов: чтение, add-on'ы, данные гостя, шаг назад
type Service struct {
	sessions SessionStore
	catalog  CatalogService
	pricer   Pricer
	logger   Logger
}

// NewService создает новый экземпляр сервиса мастера
func NewService(sessions SessionStore, catalog CatalogService, pricer Pricer, logger Logger) *Service {
	return &Service{
		sessions: sessions,
		catalog:  catalog,
		pricer:   pricer,
		logger:   logger,
	}
}

// Get возвращает текущее состояние сессии с расчётом стоимости
func (s *Service) Get(ctx context.Context, sessionID string) (*models.SessionResponse, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			s.logger.Warn("Get: session id=%s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Get: store error for session id=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Get - store error: %v", ErrInternal, err)
	}

	return s.respond(ctx, session)
}

// SetAddOn устанавливает количество add-on'а (абсолютное значение)
func (s *Service) SetAddOn(ctx context.Context, sessionID, addOnID string, quantity int) (*models.SessionResponse, error) {
	session, err := s.update(sessionID, func(session *domain.Session) error {
		return session.SetAddOnQuantity(addOnID, quantity)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SetAddOn: session=%s addon=%s quantity=%d", sessionID, addOnID, quantity)
	return s.respond(ctx, session)
}

// AdjustAddOn изменяет количество add-on'а на delta (счётчик +/-)
func (s *Service) AdjustAddOn(ctx context.Context, sessionID, addOnID string, delta int) (*models.SessionResponse, error) {
	session, err := s.update(sessionID, func(session *domain.Session) error {
		return session.AdjustAddOnQuantity(addOnID, delta)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AdjustAddOn: session=%s addon=%s delta=%d", sessionID, addOnID, delta)
	return s.respond(ctx, session)
}

// Continue переводит мастер с шага add-on'ов на шаг данных гостя
func (s *Service) Continue(ctx context.Context, sessionID string) (*models.SessionResponse, error) {
	session, err := s.update(sessionID, func(session *domain.Session) error {
		return session.ContinueToGuestInfo()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Continue: session=%s -> %s", sessionID, session.Step)
	return s.respond(ctx, session)
}

// SubmitGuestInfo сохраняет данные гостя и переводит мастер на шаг
// верификации email
func (s *Service) SubmitGuestInfo(ctx context.Context, sessionID string, guest domain.GuestInfo) (*models.SessionResponse, error) {
	session, err := s.update(sessionID, func(session *domain.Session) error {
		return session.SubmitGuestInfo(guest)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SubmitGuestInfo: session=%s email=%s phone_supplied=%t",
		sessionID, guest.Email, guest.HasPhone())
	return s.respond(ctx, session)
}

// Back возвращает мастер на шаг-предшественник
func (s *Service) Back(ctx context.Context, sessionID string) (*models.SessionResponse, error) {
	session, err := s.update(sessionID, func(session *domain.Session) error {
		return session.Back()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Back: session=%s -> %s", sessionID, session.Step)
	return s.respond(ctx, session)
}

// Abandon удаляет сессию мастера (пользователь ушёл с экрана)
func (s *Service) Abandon(_ context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
	s.logger.Info("Abandon: session=%s discarded", sessionID)
}

// update выполняет мутацию сессии с маппингом ошибок хранилища
func (s *Service) update(sessionID string, fn func(*domain.Session) error) (*domain.Session, error) {
	session, err := s.sessions.Update(sessionID, fn)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			s.logger.Warn("update: session id=%s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		// Guard-ошибки domain уровня возвращаем как есть
		return nil, err
	}
	return session, nil
}

// respond собирает DTO сессии с актуальным расчётом стоимости
func (s *Service) respond(ctx context.Context, session *domain.Session) (*models.SessionResponse, error) {
	addOns, err := s.catalog.ListAddOns(ctx)
	if err != nil {
		s.logger.Error("respond: failed to list addons: %v", err)
		return nil, fmt.Errorf("%w: failed to list addons: %v", ErrInternal, err)
	}

	quote := s.pricer.Quote(&session.Activity, &session.Selection, addOns)
	return models.FromDomainSession(session, quote), nil
}
