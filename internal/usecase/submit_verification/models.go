package submit_verification

import "github.com/explorio/booking-service/internal/service/verification"

// Request запрос на проверку кода подтверждения
type Request struct {
	SessionID string
	Channel   verification.Channel
	Code      string
}
