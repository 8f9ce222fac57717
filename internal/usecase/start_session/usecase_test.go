package start_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogStorage "github.com/explorio/booking-service/internal/infra/storage/catalog"
	sessionStorage "github.com/explorio/booking-service/internal/infra/storage/session"
	catalogService "github.com/explorio/booking-service/internal/service/catalog"
	"github.com/explorio/booking-service/internal/service/pricing"
	"github.com/explorio/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedIDGenerator struct{ id string }

func (g *fixedIDGenerator) NewID() string { return g.id }

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

func newTestUseCase(t *testing.T) (*UseCase, *sessionStorage.Store) {
	t.Helper()

	sessions := sessionStorage.NewStore()
	catalog := catalogService.NewService(catalogStorage.NewSeededMemoryStore(), nopLogger{})

	uc := NewUseCase(catalog, sessions, pricing.NewCalculator(), nopLogger{})
	uc.idGen = &fixedIDGenerator{id: "sess-test"}
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}

	return uc, sessions
}

func validRequest() *Request {
	return &Request{
		ActivityID: "act-jetski",
		Adults:     2,
		Date:       time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Time:       types.TimeString("10:00"),
	}
}

func TestExecute_ParticipantBased(t *testing.T) {
	uc, sessions := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "sess-test", resp.ID)
	assert.Equal(t, "addons", resp.Step)
	assert.Equal(t, "act-jetski", resp.Activity.ID)
	assert.Equal(t, "pr-blue-lagoon", resp.Provider.ID)
	assert.Equal(t, "2 Adults", resp.Selection.Participants)

	// База 2 * 50, комиссия 10%
	assert.InDelta(t, 100, resp.Quote.TotalPrice, 1e-9)
	assert.InDelta(t, 10, resp.Quote.BookingFee, 1e-9)
	assert.InDelta(t, 90, resp.Quote.PayAtProvider, 1e-9)

	// Сессия действительно сохранена
	stored, err := sessions.Get("sess-test")
	require.NoError(t, err)
	assert.Equal(t, "act-jetski", stored.Activity.ID)
}

func TestExecute_DurationBased(t *testing.T) {
	uc, _ := newTestUseCase(t)

	req := &Request{
		ActivityID: "act-scuba",
		Duration:   "2 hours",
		Date:       time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Time:       types.TimeString("10:00"),
	}
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "2 hours", resp.Selection.Duration)
	// Счётчики участников равны нулю: тарифицируется одна единица
	assert.InDelta(t, 80, resp.Quote.TotalPrice, 1e-9)
}

func TestExecute_ParticipantSummary(t *testing.T) {
	uc, _ := newTestUseCase(t)

	tests := []struct {
		name     string
		adults   int
		children int
		passed   string
		want     string
	}{
		{"single adult", 1, 0, "", "1 Adult"},
		{"adults and one child", 2, 1, "", "2 Adults, 1 Child"},
		{"adults and children", 2, 2, "", "2 Adults, 2 Children"},
		{"explicit summary wins", 2, 0, "Family of 2", "Family of 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Adults = tt.adults
			req.Children = tt.children
			req.Participants = tt.passed

			resp, err := uc.Execute(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Selection.Participants)
		})
	}
}

func TestExecute_ActivityNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)

	req := validRequest()
	req.ActivityID = "act-missing"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestExecute_PricingModeValidation(t *testing.T) {
	uc, _ := newTestUseCase(t)
	date := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			"duration on participant-based activity",
			Request{ActivityID: "act-jetski", Duration: "1 hour", Adults: 2, Date: date, Time: "10:00"},
			ErrInvalidInput,
		},
		{
			"missing duration on duration-based activity",
			Request{ActivityID: "act-scuba", Date: date, Time: "10:00"},
			ErrInvalidInput,
		},
		{
			"unknown duration option",
			Request{ActivityID: "act-scuba", Duration: "6 hours", Date: date, Time: "10:00"},
			ErrInvalidDuration,
		},
		{
			"participant counts on duration-based activity",
			Request{ActivityID: "act-scuba", Duration: "2 hours", Adults: 2, Date: date, Time: "10:00"},
			ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_InputValidation(t *testing.T) {
	uc, _ := newTestUseCase(t)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing activity id", func(r *Request) { r.ActivityID = "" }},
		{"negative adults", func(r *Request) { r.Adults = -1 }},
		{"negative children", func(r *Request) { r.Children = -1 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time", func(r *Request) { r.Time = "" }},
		{"malformed time", func(r *Request) { r.Time = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
