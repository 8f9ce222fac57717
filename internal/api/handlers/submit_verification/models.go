package submit_verification

// VerificationRequest HTTP request model
type VerificationRequest struct {
	Channel string `json:"channel"` // "email" или "phone"
	Code    string `json:"code"`
}
