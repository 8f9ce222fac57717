package confirm_booking

// Request запрос на подтверждение оплаты
type Request struct {
	SessionID     string
	TermsAccepted bool
}
