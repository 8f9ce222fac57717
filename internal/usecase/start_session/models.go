package start_session

import (
	"time"

	"github.com/explorio/booking-service/pkg/types"
)

// Request контекст, передаваемый экраном выбора активности
// Мастер использует его как read-only данные первого шага
type Request struct {
	ActivityID string

	// Ровно один режим: Duration для duration-based активностей,
	// Adults/Children для participant-based
	Duration string
	Adults   int
	Children int

	// Participants готовая сводка участников; при пустом значении
	// собирается из счётчиков
	Participants string

	Date time.Time
	Time types.TimeString
}
