package confirm_payment

// ConfirmPaymentRequest HTTP request model
type ConfirmPaymentRequest struct {
	TermsAccepted bool `json:"termsAccepted"`
}
