package start_booking

import (
	"time"

	"github.com/explorio/booking-service/internal/domain"
	startSession "github.com/explorio/booking-service/internal/usecase/start_session"
	"github.com/explorio/booking-service/pkg/types"
)

// StartBookingRequest HTTP request model
type StartBookingRequest struct {
	ActivityID   string `json:"activityId"`
	Duration     string `json:"duration,omitempty"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Participants string `json:"participants,omitempty"`
	Date         string `json:"date"` // "2026-08-30"
	Time         string `json:"time"` // "10:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StartBookingRequest) ToUseCaseRequest() (*startSession.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время начала
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &startSession.Request{
		ActivityID:   r.ActivityID,
		Duration:     r.Duration,
		Adults:       r.Adults,
		Children:     r.Children,
		Participants: r.Participants,
		Date:         date,
		Time:         startTime,
	}, nil
}
