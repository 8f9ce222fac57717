package submit_verification

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/explorio/booking-service/internal/api/handlers"
	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/internal/service/verification"
	submitVerification "github.com/explorio/booking-service/internal/usecase/submit_verification"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownChannel     = "unknown verification channel"
	msgNotFound           = "booking session not found"
	msgWrongStep          = "verification is not expected on the current step"
	msgSessionConfirmed   = "booking is already confirmed"
)

type Handler struct {
	useCase SubmitVerificationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitVerificationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/sessions/{sessionId}/verification
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	var req VerificationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/verification - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	channel := verification.Channel(req.Channel)
	if !verification.ValidChannel(channel) {
		h.logger.Warn("POST /sessions/{id}/verification - Unknown channel: session_id=%s, channel=%s",
			sessionID, req.Channel)
		handlers.RespondBadRequest(w, msgUnknownChannel)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitVerification.Request{
		SessionID: sessionID,
		Channel:   channel,
		Code:      req.Code,
	})
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrIncompleteCode),
			errors.Is(err, verification.ErrNonNumericCode):
			// Текст ошибки зависит от канала: продуктовая копия для
			// email и телефона различается
			h.logger.Warn("POST /sessions/{id}/verification - Code rejected: session_id=%s, channel=%s",
				sessionID, req.Channel)
			handlers.RespondBadRequest(w, verification.IncompleteMessage(channel))

		case errors.Is(err, submitVerification.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/verification - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrSessionConfirmed):
			h.logger.Warn("POST /sessions/{id}/verification - Session confirmed: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSessionConfirmed)

		case errors.Is(err, domain.ErrWrongStep):
			h.logger.Warn("POST /sessions/{id}/verification - Wrong step: session_id=%s, channel=%s",
				sessionID, req.Channel)
			handlers.RespondConflict(w, msgWrongStep)

		default:
			h.logger.Error("POST /sessions/{id}/verification - Failed to verify: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/verification - Code accepted: session_id=%s, channel=%s, step=%s",
		sessionID, req.Channel, result.Step)
	handlers.RespondJSON(w, http.StatusOK, result)
}
