package domain

import (
	"errors"
	"time"

	"github.com/explorio/booking-service/pkg/types"
)

// Step шаг мастера бронирования
type Step string

const (
	StepAddOns            Step = "addons"
	StepGuestInfo         Step = "guest_info"
	StepEmailVerification Step = "email_verification"
	StepPhoneVerification Step = "phone_verification"
	StepPayment           Step = "payment"
	StepConfirmed         Step = "confirmed"
)

var (
	// ErrWrongStep возвращается при попытке действия, недопустимого на текущем шаге
	ErrWrongStep = errors.New("domain: action is not allowed at the current step")

	// ErrInvalidGuestInfo возвращается, когда обязательные поля гостя не заполнены
	ErrInvalidGuestInfo = errors.New("domain: guest info is incomplete")

	// ErrTermsNotAccepted возвращается при подтверждении оплаты без согласия с условиями
	ErrTermsNotAccepted = errors.New("domain: terms and conditions are not accepted")

	// ErrNoPreviousStep возвращается при попытке вернуться назад с первого шага
	ErrNoPreviousStep = errors.New("domain: no previous step")

	// ErrSessionConfirmed возвращается при попытке изменить завершённую сессию
	ErrSessionConfirmed = errors.New("domain: session is already confirmed")
)

// BookingSelection выбор пользователя, сделанный на экране активности
// и дополненный на шаге add-on'ов
type BookingSelection struct {
	// Ровно один режим: Duration для duration-based активностей,
	// Adults/Children для participant-based
	Duration string
	Adults   int
	Children int

	// Participants готовая сводка участников ("2 Adults, 1 Child"),
	// передаётся экраном выбора
	Participants string

	Date time.Time
	Time types.TimeString

	// AddOnQuantities количество по id add-on'а; отсутствие ключа = 0
	AddOnQuantities map[string]int
}

// GuestInfo контактные данные гостя
type GuestInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string // Опционально; непустой телефон включает шаг SMS-верификации
}

// Valid returns true if all required fields are filled
func (g *GuestInfo) Valid() bool {
	return g.FirstName != "" && g.LastName != "" && g.Email != ""
}

// HasPhone returns true if a phone number was supplied
func (g *GuestInfo) HasPhone() bool {
	return g.Phone != ""
}

// VerificationState состояние подтверждения контактов гостя
type VerificationState struct {
	EmailCode     string
	PhoneCode     string
	EmailVerified bool
	PhoneVerified bool
	LastError     string
}

// Session сессия мастера бронирования
// Все переходы между шагами выполняются только методами-мутаторами ниже,
// каждый из которых проверяет guard-условия своего перехода
type Session struct {
	ID   string
	Step Step

	// Снапшоты каталога на момент старта сессии
	Activity Activity
	Provider Provider

	Selection     BookingSelection
	Guest         GuestInfo
	Verification  VerificationState
	TermsAccepted bool

	// Record заполняется единственный раз при входе в StepConfirmed
	Record *BookingRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession создает сессию мастера на шаге выбора add-on'ов
func NewSession(id string, activity Activity, provider Provider, selection BookingSelection, now time.Time) *Session {
	if selection.AddOnQuantities == nil {
		selection.AddOnQuantities = make(map[string]int)
	}
	return &Session{
		ID:        id,
		Step:      StepAddOns,
		Activity:  activity,
		Provider:  provider,
		Selection: selection,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetAddOnQuantity устанавливает количество add-on'а
// Отрицательные значения обрезаются до нуля
func (s *Session) SetAddOnQuantity(addOnID string, quantity int) error {
	if s.Step != StepAddOns {
		return s.wrongStep()
	}
	if quantity < 0 {
		quantity = 0
	}
	s.Selection.AddOnQuantities[addOnID] = quantity
	return nil
}

// AdjustAddOnQuantity изменяет количество add-on'а на delta (счётчик +/-)
// Итоговое количество не опускается ниже нуля
func (s *Session) AdjustAddOnQuantity(addOnID string, delta int) error {
	if s.Step != StepAddOns {
		return s.wrongStep()
	}
	next := s.Selection.AddOnQuantities[addOnID] + delta
	if next < 0 {
		next = 0
	}
	s.Selection.AddOnQuantities[addOnID] = next
	return nil
}

// ContinueToGuestInfo переход AddOns -> GuestInfo (безусловный)
func (s *Session) ContinueToGuestInfo() error {
	if s.Step != StepAddOns {
		return s.wrongStep()
	}
	s.Step = StepGuestInfo
	return nil
}

// SubmitGuestInfo переход GuestInfo -> EmailVerification
// Guard: обязательные поля (имя, фамилия, email) непустые
func (s *Session) SubmitGuestInfo(guest GuestInfo) error {
	if s.Step != StepGuestInfo {
		return s.wrongStep()
	}
	if !guest.Valid() {
		return ErrInvalidGuestInfo
	}
	s.Guest = guest
	s.Step = StepEmailVerification
	return nil
}

// MarkEmailVerified фиксирует успешную верификацию email и выполняет
// переход EmailVerification -> PhoneVerification (если указан телефон)
// или EmailVerification -> Payment (если телефон не указан)
func (s *Session) MarkEmailVerified(code string) error {
	if s.Step != StepEmailVerification {
		return s.wrongStep()
	}
	s.Verification.EmailCode = code
	s.Verification.EmailVerified = true
	s.Verification.LastError = ""

	if s.Guest.HasPhone() {
		s.Step = StepPhoneVerification
	} else {
		s.Step = StepPayment
	}
	return nil
}

// MarkPhoneVerified фиксирует успешную верификацию телефона и выполняет
// переход PhoneVerification -> Payment
func (s *Session) MarkPhoneVerified(code string) error {
	if s.Step != StepPhoneVerification {
		return s.wrongStep()
	}
	s.Verification.PhoneCode = code
	s.Verification.PhoneVerified = true
	s.Verification.LastError = ""
	s.Step = StepPayment
	return nil
}

// Confirm переход Payment -> Confirmed
// Guard: согласие с условиями; record собирается вызывающей стороной
// только после выполнения всех инвариантов (валидный гость, верификации)
func (s *Session) Confirm(record *BookingRecord, termsAccepted bool) error {
	if s.Step != StepPayment {
		return s.wrongStep()
	}
	if !termsAccepted {
		return ErrTermsNotAccepted
	}
	s.TermsAccepted = true
	s.Record = record
	s.Step = StepConfirmed
	return nil
}

// PreviousStep возвращает единственного логического предшественника текущего шага
// Для Payment предшественник зависит от того, был ли указан телефон
func (s *Session) PreviousStep() (Step, error) {
	switch s.Step {
	case StepAddOns:
		return "", ErrNoPreviousStep
	case StepGuestInfo:
		return StepAddOns, nil
	case StepEmailVerification:
		return StepGuestInfo, nil
	case StepPhoneVerification:
		return StepEmailVerification, nil
	case StepPayment:
		if s.Guest.HasPhone() {
			return StepPhoneVerification, nil
		}
		return StepEmailVerification, nil
	case StepConfirmed:
		return "", ErrSessionConfirmed
	default:
		return "", ErrWrongStep
	}
}

// Back возвращает мастер на шаг-предшественник
// Значения всех полей сохраняются: back + повторный forward с теми же
// входными данными возвращают сессию в эквивалентное состояние
func (s *Session) Back() error {
	prev, err := s.PreviousStep()
	if err != nil {
		return err
	}
	s.Step = prev
	return nil
}

// CanBuildRecord проверяет инвариант конструирования BookingRecord:
// валидные данные гостя, подтверждённый email и, если указан телефон,
// подтверждённый телефон
func (s *Session) CanBuildRecord() bool {
	if !s.Guest.Valid() {
		return false
	}
	if !s.Verification.EmailVerified {
		return false
	}
	if s.Guest.HasPhone() && !s.Verification.PhoneVerified {
		return false
	}
	return true
}

func (s *Session) wrongStep() error {
	if s.Step == StepConfirmed {
		return ErrSessionConfirmed
	}
	return ErrWrongStep
}
