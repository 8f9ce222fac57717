package models

import (
	"time"

	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/internal/service/pricing"
)

// SessionResponse полное состояние сессии мастера для клиента
type SessionResponse struct {
	ID   string `json:"id"`
	Step string `json:"step"`

	Activity ActivityResponse  `json:"activity"`
	Provider ProviderResponse  `json:"provider"`

	Selection    SelectionResponse    `json:"selection"`
	Guest        *GuestResponse       `json:"guest,omitempty"`
	Verification VerificationResponse `json:"verification"`

	TermsAccepted bool `json:"termsAccepted"`

	Quote QuoteResponse `json:"quote"`

	// Record присутствует только после подтверждения бронирования
	Record *RecordResponse `json:"record,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ActivityResponse краткие данные активности в сессии
type ActivityResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Currency string  `json:"currency"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration,omitempty"`
}

// ProviderResponse краткие данные провайдера в сессии
type ProviderResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// SelectionResponse выбор пользователя
type SelectionResponse struct {
	Duration        string         `json:"duration,omitempty"`
	Adults          int            `json:"adults"`
	Children        int            `json:"children"`
	Participants    string         `json:"participants,omitempty"`
	Date            string         `json:"date"` // YYYY-MM-DD
	Time            string         `json:"time"` // HH:MM
	AddOnQuantities map[string]int `json:"addonQuantities"`
}

// GuestResponse контактные данные гостя
type GuestResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// VerificationResponse состояние верификации контактов
type VerificationResponse struct {
	EmailVerified bool   `json:"emailVerified"`
	PhoneVerified bool   `json:"phoneVerified"`
	LastError     string `json:"lastError,omitempty"`
}

// QuoteResponse раскладка стоимости, округлённая до двух знаков
type QuoteResponse struct {
	Currency      string  `json:"currency"`
	BasePrice     float64 `json:"basePrice"`
	AddOnsTotal   float64 `json:"addonsTotal"`
	TotalPrice    float64 `json:"totalPrice"`
	BookingFee    float64 `json:"bookingFee"`
	PayAtProvider float64 `json:"payAtProvider"`
}

// RecordResponse подтверждённое бронирование
type RecordResponse struct {
	ID            string  `json:"id"`
	ActivityName  string  `json:"activityName"`
	ProviderName  string  `json:"providerName"`
	Participants  string  `json:"participants"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Duration      string  `json:"duration,omitempty"`
	Currency      string  `json:"currency"`
	TotalPrice    float64 `json:"totalPrice"`
	BookingFee    float64 `json:"bookingFee"`
	PayAtProvider float64 `json:"payAtProvider"`
	ConfirmedAt   string  `json:"confirmedAt"` // ISO 8601
}

// FromDomainSession конвертирует domain сессию и расчёт стоимости в DTO
func FromDomainSession(session *domain.Session, quote pricing.Quote) *SessionResponse {
	if session == nil {
		return nil
	}

	resp := &SessionResponse{
		ID:   session.ID,
		Step: string(session.Step),
		Activity: ActivityResponse{
			ID:       session.Activity.ID,
			Name:     session.Activity.Name,
			Currency: session.Activity.Currency,
			Price:    session.Activity.Price,
			Duration: session.Activity.Duration,
		},
		Provider: ProviderResponse{
			ID:      session.Provider.ID,
			Name:    session.Provider.Name,
			Address: session.Provider.Address,
		},
		Selection: SelectionResponse{
			Duration:        session.Selection.Duration,
			Adults:          session.Selection.Adults,
			Children:        session.Selection.Children,
			Participants:    session.Selection.Participants,
			Date:            session.Selection.Date.Format(domain.DateFormat),
			Time:            session.Selection.Time.String(),
			AddOnQuantities: session.Selection.AddOnQuantities,
		},
		Verification: VerificationResponse{
			EmailVerified: session.Verification.EmailVerified,
			PhoneVerified: session.Verification.PhoneVerified,
			LastError:     session.Verification.LastError,
		},
		TermsAccepted: session.TermsAccepted,
		Quote:         FromQuote(session.Activity.Currency, quote),
		Record:        FromDomainRecord(session.Record),
		CreatedAt:     session.CreatedAt,
		UpdatedAt:     session.UpdatedAt,
	}

	if session.Guest != (domain.GuestInfo{}) {
		resp.Guest = &GuestResponse{
			FirstName: session.Guest.FirstName,
			LastName:  session.Guest.LastName,
			Email:     session.Guest.Email,
			Phone:     session.Guest.Phone,
		}
	}

	return resp
}

// FromQuote конвертирует расчёт стоимости в DTO
// Округление до двух знаков выполняется здесь, на границе ответа
func FromQuote(currency string, quote pricing.Quote) QuoteResponse {
	return QuoteResponse{
		Currency:      currency,
		BasePrice:     pricing.Round2(quote.BasePrice),
		AddOnsTotal:   pricing.Round2(quote.AddOnsTotal),
		TotalPrice:    pricing.Round2(quote.TotalPrice),
		BookingFee:    pricing.Round2(quote.BookingFee),
		PayAtProvider: pricing.Round2(quote.PayAtProvider),
	}
}

// FromDomainRecord конвертирует подтверждённое бронирование в DTO
func FromDomainRecord(record *domain.BookingRecord) *RecordResponse {
	if record == nil {
		return nil
	}
	return &RecordResponse{
		ID:            record.ID,
		ActivityName:  record.Activity.Name,
		ProviderName:  record.Provider.Name,
		Participants:  record.Participants,
		Date:          record.Date.Format(domain.DateFormat),
		Time:          record.Time.String(),
		Duration:      record.Duration,
		Currency:      record.Activity.Currency,
		TotalPrice:    pricing.Round2(record.TotalPrice),
		BookingFee:    pricing.Round2(record.BookingFee),
		PayAtProvider: pricing.Round2(record.PayAtProvider),
		ConfirmedAt:   record.ConfirmedAt.Format(time.RFC3339),
	}
}
