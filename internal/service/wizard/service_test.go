package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explorio/booking-service/internal/domain"
	catalogStorage "github.com/explorio/booking-service/internal/infra/storage/catalog"
	sessionStorage "github.com/explorio/booking-service/internal/infra/storage/session"
	catalogService "github.com/explorio/booking-service/internal/service/catalog"
	"github.com/explorio/booking-service/internal/service/pricing"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *sessionStorage.Store) {
	t.Helper()

	sessions := sessionStorage.NewStore()
	catalog := catalogService.NewService(catalogStorage.NewSeededMemoryStore(), nopLogger{})

	return NewService(sessions, catalog, pricing.NewCalculator(), nopLogger{}), sessions
}

func seedSession(t *testing.T, sessions *sessionStorage.Store) {
	t.Helper()

	sessions.Create(domain.NewSession(
		"sess-1",
		domain.Activity{ID: "act-jetski", Name: "Jet Ski Safari", Currency: "€", Price: 50},
		domain.Provider{ID: "pr-blue-lagoon", Name: "Blue Lagoon Watersports"},
		domain.BookingSelection{
			Adults:       2,
			Participants: "2 Adults",
			Date:         time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			Time:         "10:00",
		},
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	))
}

func TestGet(t *testing.T) {
	svc, sessions := newTestService(t)
	seedSession(t, sessions)

	resp, err := svc.Get(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "sess-1", resp.ID)
	assert.Equal(t, string(domain.StepAddOns), resp.Step)
	assert.InDelta(t, 100, resp.Quote.TotalPrice, 1e-9)
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSetAddOn_RecalculatesQuote(t *testing.T) {
	svc, sessions := newTestService(t)
	seedSession(t, sessions)

	// База 100 + фотопакет 20*2: комиссия 14
	resp, err := svc.SetAddOn(context.Background(), "sess-1", "addon-photos", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Selection.AddOnQuantities["addon-photos"])
	assert.InDelta(t, 140, resp.Quote.TotalPrice, 1e-9)
	assert.InDelta(t, 14, resp.Quote.BookingFee, 1e-9)
	assert.InDelta(t, 126, resp.Quote.PayAtProvider, 1e-9)
}

func TestAdjustAddOn(t *testing.T) {
	svc, sessions := newTestService(t)
	seedSession(t, sessions)

	_, err := svc.AdjustAddOn(context.Background(), "sess-1", "addon-gopro", 1)
	require.NoError(t, err)

	resp, err := svc.AdjustAddOn(context.Background(), "sess-1", "addon-gopro", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Selection.AddOnQuantities["addon-gopro"])

	// Счётчик не уходит ниже нуля
	resp, err = svc.AdjustAddOn(context.Background(), "sess-1", "addon-gopro", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Selection.AddOnQuantities["addon-gopro"])
}

func TestContinueAndSubmitGuestInfo(t *testing.T) {
	svc, sessions := newTestService(t)
	seedSession(t, sessions)
	ctx := context.Background()

	resp, err := svc.Continue(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StepGuestInfo), resp.Step)

	resp, err = svc.SubmitGuestInfo(ctx, "sess-1", domain.GuestInfo{
		FirstName: "Anna", LastName: "Georgiou", Email: "anna@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StepEmailVerification), resp.Step)
	require.NotNil(t, resp.Guest)
	assert.Equal(t, "anna@example.com", resp.Guest.Email)
}

func TestSubmitGuestInfo_InvalidGuest(t *testing.T) {
	svc, sessions := newTestService(t)
	seedSession(t, sessions)
	ctx := context.Background()

	_, err := svc.Continue(ctx, "sess-1")
	require.NoError(t, err)

	_, err = svc.SubmitGuestInfo(ctx, "sess-1", domain.GuestInfo{FirstName: "Anna"})
	assert.ErrorIs(t, err, domain.ErrInvalidGuestInfo)
}

func TestBack(t *testing.T) {
	svc, sessions := newTestService(t)
	seedSession(t, sessions)
	ctx := context.Background()

	_, err := svc.Continue(ctx, "sess-1")
	require.NoError(t, err)

	resp, err := svc.Back(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StepAddOns), resp.Step)

	_, err = svc.Back(ctx, "sess-1")
	assert.ErrorIs(t, err, domain.ErrNoPreviousStep)
}

func TestAbandon(t *testing.T) {
	svc, sessions := newTestService(t)
	seedSession(t, sessions)
	ctx := context.Background()

	svc.Abandon(ctx, "sess-1")

	_, err := svc.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Повторный вызов для удалённой сессии безопасен
	svc.Abandon(ctx, "sess-1")
}
