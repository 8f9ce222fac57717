package start_session

import (
	"fmt"

	"github.com/explorio/booking-service/internal/domain"
)

// validateRequest валидирует входной контекст
func validateRequest(req *Request) error {
	if req.ActivityID == "" {
		return fmt.Errorf("%w: activityID is required", ErrInvalidInput)
	}

	if req.Adults < 0 || req.Children < 0 {
		return fmt.Errorf("%w: participant counts must not be negative", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validatePricingMode проверяет, что выбор соответствует режиму
// тарификации активности: ровно один режим, определяемый наличием
// вариантов длительности
func validatePricingMode(activity *domain.Activity, req *Request) error {
	if activity.IsParticipantBased() {
		if req.Duration != "" {
			return fmt.Errorf("%w: activity is priced per participant, duration is not selectable", ErrInvalidInput)
		}
		return nil
	}

	if req.Duration == "" {
		return fmt.Errorf("%w: duration is required for this activity", ErrInvalidInput)
	}
	if !activity.HasDuration(req.Duration) {
		return ErrInvalidDuration
	}
	if req.Adults != 0 || req.Children != 0 {
		return fmt.Errorf("%w: activity is priced per duration, participant counts are not selectable", ErrInvalidInput)
	}

	return nil
}

// buildParticipantSummary собирает сводку участников ("2 Adults, 1 Child"),
// когда экран выбора её не передал
func buildParticipantSummary(adults, children int) string {
	if adults+children == 0 {
		return "1 person"
	}

	summary := fmt.Sprintf("%d Adult", adults)
	if adults != 1 {
		summary += "s"
	}
	if children > 0 {
		summary += fmt.Sprintf(", %d Child", children)
		if children != 1 {
			summary += "ren"
		}
	}
	return summary
}
