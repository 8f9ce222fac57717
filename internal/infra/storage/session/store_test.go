package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explorio/booking-service/internal/domain"
)

func newTestSession(id string) *domain.Session {
	return domain.NewSession(
		id,
		domain.Activity{ID: "act-jetski", Price: 50},
		domain.Provider{ID: "pr-blue-lagoon"},
		domain.BookingSelection{Adults: 2},
		time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	)
}

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore()
	store.Create(newTestSession("sess-1"))

	got, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.ID)
	assert.Equal(t, domain.StepAddOns, got.Step)
}

func TestStore_Get_NotFound(t *testing.T) {
	store := NewStore()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Get_ReturnsDetachedCopy(t *testing.T) {
	store := NewStore()
	store.Create(newTestSession("sess-1"))

	got, err := store.Get("sess-1")
	require.NoError(t, err)

	// Мутация копии не затрагивает хранимое состояние
	got.Step = domain.StepPayment
	got.Selection.AddOnQuantities["addon-photos"] = 5

	fresh, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepAddOns, fresh.Step)
	assert.Empty(t, fresh.Selection.AddOnQuantities)
}

func TestStore_Update(t *testing.T) {
	store := NewStore()
	store.Create(newTestSession("sess-1"))

	updated, err := store.Update("sess-1", func(s *domain.Session) error {
		return s.SetAddOnQuantity("addon-photos", 2)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Selection.AddOnQuantities["addon-photos"])

	fresh, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Selection.AddOnQuantities["addon-photos"])
}

func TestStore_Update_NotFound(t *testing.T) {
	store := NewStore()

	_, err := store.Update("missing", func(s *domain.Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Update_FailedMutationLeavesStateUnchanged(t *testing.T) {
	store := NewStore()
	store.Create(newTestSession("sess-1"))

	sentinel := errors.New("rejected")
	_, err := store.Update("sess-1", func(s *domain.Session) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	// Guard-ошибка мутатора не продвигает шаг
	_, err = store.Update("sess-1", func(s *domain.Session) error {
		return s.SubmitGuestInfo(domain.GuestInfo{})
	})
	assert.ErrorIs(t, err, domain.ErrWrongStep)

	fresh, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepAddOns, fresh.Step)
}

func TestStore_Update_BumpsUpdatedAt(t *testing.T) {
	store := NewStore()
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Create(newTestSession("sess-1"))

	updated, err := store.Update("sess-1", func(s *domain.Session) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, now, updated.UpdatedAt)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	store.Create(newTestSession("sess-1"))

	store.Delete("sess-1")

	_, err := store.Get("sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Повторное удаление безопасно
	store.Delete("sess-1")
}

func TestStore_ConcurrentAdjustments(t *testing.T) {
	store := NewStore()
	store.Create(newTestSession("sess-1"))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := store.Update("sess-1", func(s *domain.Session) error {
				return s.AdjustAddOnQuantity("addon-photos", 1)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, workers, got.Selection.AddOnQuantities["addon-photos"])
}
