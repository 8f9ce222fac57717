package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/explorio/booking-service/internal/api/handlers"
	"github.com/explorio/booking-service/internal/domain"
	confirmBooking "github.com/explorio/booking-service/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking session not found"
	msgWrongStep          = "payment is only available on the payment step"
	msgSessionConfirmed   = "booking is already confirmed"
	msgTermsNotAccepted   = "terms and conditions must be accepted"
	msgIncomplete         = "guest info or contact verification is incomplete"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/sessions/{sessionId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		SessionID:     sessionID,
		TermsAccepted: req.TermsAccepted,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/payment - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrSessionConfirmed):
			h.logger.Warn("POST /sessions/{id}/payment - Session already confirmed: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSessionConfirmed)

		case errors.Is(err, domain.ErrWrongStep):
			h.logger.Warn("POST /sessions/{id}/payment - Wrong step: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, domain.ErrTermsNotAccepted):
			h.logger.Warn("POST /sessions/{id}/payment - Terms not accepted: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgTermsNotAccepted)

		case errors.Is(err, confirmBooking.ErrVerificationIncomplete):
			h.logger.Warn("POST /sessions/{id}/payment - Verification incomplete: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgIncomplete)

		default:
			h.logger.Error("POST /sessions/{id}/payment - Failed to confirm: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/payment - Booking confirmed: session_id=%s, booking_id=%s",
		sessionID, result.Record.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
