package domain

import (
	"strconv"
	"time"

	"github.com/explorio/booking-service/pkg/types"
)

// BookingRecord итоговое подтверждённое бронирование
// Создается один раз при входе в StepConfirmed и далее не изменяется
type BookingRecord struct {
	ID string

	Activity Activity
	Provider Provider

	Participants string
	Date         time.Time
	Time         types.TimeString
	Duration     string

	// Инвариант: BookingFee + PayAtProvider == TotalPrice,
	// BookingFee = TotalPrice * BookingFeeRate
	TotalPrice    float64
	BookingFee    float64
	PayAtProvider float64

	ConfirmedAt time.Time
}

// NewBookingID генерирует идентификатор бронирования: префикс "BK" плюс
// последние десять цифр unix-времени в миллисекундах.
// Уникальность практическая, в пределах сессии; два бронирования в одну
// миллисекунду теоретически могут совпасть.
func NewBookingID(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > BookingIDSuffixLength {
		millis = millis[len(millis)-BookingIDSuffixLength:]
	}
	return BookingIDPrefix + millis
}
