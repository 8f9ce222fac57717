package record_actions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/explorio/booking-service/internal/api/handlers"
	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownAction      = "unknown record action"
	msgNotFound           = "booking session not found"
	msgNotConfirmed       = "booking is not confirmed yet"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/sessions/{sessionId}/record/actions
//
// Демо-режим: печать и повторная отправка письма подтверждаются
// без фактической доставки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	var req RecordActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/record/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Action != ActionPrint && req.Action != ActionResendEmail {
		h.logger.Warn("POST /sessions/{id}/record/actions - Unknown action: session_id=%s, action=%s",
			sessionID, req.Action)
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	session, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/record/actions - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/record/actions - Failed to get session: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Действия имеют смысл только после подтверждения бронирования
	if session.Step != string(domain.StepConfirmed) || session.Record == nil {
		h.logger.Warn("POST /sessions/{id}/record/actions - Booking not confirmed: session_id=%s, step=%s",
			sessionID, session.Step)
		handlers.RespondConflict(w, msgNotConfirmed)
		return
	}

	h.logger.Info("POST /sessions/{id}/record/actions - Action accepted: session_id=%s, action=%s, booking_id=%s",
		sessionID, req.Action, session.Record.ID)
	handlers.RespondJSON(w, http.StatusAccepted, RecordActionResponse{
		Status:    "accepted",
		Action:    req.Action,
		BookingID: session.Record.ID,
	})
}
