package record_actions

// Действия экрана подтверждения
const (
	ActionPrint       = "print"
	ActionResendEmail = "resend_email"
)

// RecordActionRequest HTTP request model
type RecordActionRequest struct {
	Action string `json:"action"` // "print" или "resend_email"
}

// RecordActionResponse HTTP response model
type RecordActionResponse struct {
	Status    string `json:"status"`
	Action    string `json:"action"`
	BookingID string `json:"bookingId"`
}
