package submit_verification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explorio/booking-service/internal/service/verification"
	wizardModels "github.com/explorio/booking-service/internal/service/wizard/models"
	submitVerification "github.com/explorio/booking-service/internal/usecase/submit_verification"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *wizardModels.SessionResponse
	err  error

	gotReq *submitVerification.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *submitVerification.Request) (*wizardModels.SessionResponse, error) {
	s.gotReq = req
	return s.resp, s.err
}

func doRequest(t *testing.T, useCase SubmitVerificationUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/sessions/{sessionId}/verification", handler.Handle).
		Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/bookings/sessions/sess-1/verification", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHandle_Success(t *testing.T) {
	stub := &stubUseCase{resp: &wizardModels.SessionResponse{ID: "sess-1", Step: "payment"}}

	rec := doRequest(t, stub, `{"channel": "email", "code": "123456"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.gotReq)
	assert.Equal(t, "sess-1", stub.gotReq.SessionID)
	assert.Equal(t, verification.ChannelEmail, stub.gotReq.Channel)
	assert.Equal(t, "123456", stub.gotReq.Code)
}

func TestHandle_IncompleteEmailCode_ExactMessage(t *testing.T) {
	stub := &stubUseCase{err: verification.ErrIncompleteCode}

	rec := doRequest(t, stub, `{"channel": "email", "code": "123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please enter all 6 digits", decodeError(t, rec))
}

func TestHandle_IncompletePhoneCode_ExactMessage(t *testing.T) {
	stub := &stubUseCase{err: verification.ErrIncompleteCode}

	rec := doRequest(t, stub, `{"channel": "phone", "code": "99"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Wrong OTP Code, please try again", decodeError(t, rec))
}

func TestHandle_UnknownChannel(t *testing.T) {
	stub := &stubUseCase{}

	rec := doRequest(t, stub, `{"channel": "sms", "code": "123456"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Use case не вызывается для неизвестного канала
	assert.Nil(t, stub.gotReq)
}

func TestHandle_SessionNotFound(t *testing.T) {
	stub := &stubUseCase{err: submitVerification.ErrSessionNotFound}

	rec := doRequest(t, stub, `{"channel": "email", "code": "123456"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	stub := &stubUseCase{}

	rec := doRequest(t, stub, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, stub.gotReq)
}
