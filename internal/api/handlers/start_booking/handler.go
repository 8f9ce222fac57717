package start_booking

import (
	"errors"
	"net/http"

	"github.com/explorio/booking-service/internal/api/handlers"
	startSession "github.com/explorio/booking-service/internal/usecase/start_session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgActivityNotFound   = "activity not found"
	msgProviderNotFound   = "provider not found"
	msgInvalidDuration    = "activity does not offer this duration"
	msgInvalidInput       = "invalid booking context"
)

type Handler struct {
	useCase StartSessionUseCase
	logger  Logger
}

func NewHandler(useCase StartSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/sessions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, startSession.ErrActivityNotFound):
			h.logger.Warn("POST /bookings/sessions - Activity not found: activity_id=%s", req.ActivityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case errors.Is(err, startSession.ErrProviderNotFound):
			h.logger.Warn("POST /bookings/sessions - Provider not found: activity_id=%s", req.ActivityID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, startSession.ErrInvalidDuration):
			h.logger.Warn("POST /bookings/sessions - Invalid duration: activity_id=%s, duration=%s",
				req.ActivityID, req.Duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, startSession.ErrInvalidInput):
			h.logger.Warn("POST /bookings/sessions - Invalid input: activity_id=%s, error=%v", req.ActivityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/sessions - Failed to start session: activity_id=%s, error=%v",
				req.ActivityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/sessions - Session started: session_id=%s, activity_id=%s",
		result.ID, req.ActivityID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
