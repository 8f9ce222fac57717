package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explorio/booking-service/internal/domain"
	catalogStorage "github.com/explorio/booking-service/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(catalogStorage.NewSeededMemoryStore(), nopLogger{})
}

func TestFindActivity_MapsStorageError(t *testing.T) {
	svc := newTestService()

	activity, err := svc.FindActivity(context.Background(), "act-jetski")
	require.NoError(t, err)
	assert.Equal(t, "Jet Ski Safari", activity.Name)

	_, err = svc.FindActivity(context.Background(), "act-missing")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestFindProvider_MapsStorageError(t *testing.T) {
	svc := newTestService()

	provider, err := svc.FindProvider(context.Background(), "pr-blue-lagoon")
	require.NoError(t, err)
	assert.Equal(t, "Blue Lagoon Watersports", provider.Name)

	_, err = svc.FindProvider(context.Background(), "pr-missing")
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestListActivities_NormalizesUnknownSort(t *testing.T) {
	svc := newTestService()

	// Неизвестная сортировка заменяется ценой по возрастанию
	activities, err := svc.ListActivities(context.Background(), domain.ActivityFilter{Sort: "rating"})
	require.NoError(t, err)
	require.NotEmpty(t, activities)
	for i := 1; i < len(activities); i++ {
		assert.LessOrEqual(t, activities[i-1].Price, activities[i].Price)
	}
}

func TestListActivities_KeepsKnownSort(t *testing.T) {
	svc := newTestService()

	activities, err := svc.ListActivities(context.Background(), domain.ActivityFilter{Sort: domain.SortPriceDesc})
	require.NoError(t, err)
	require.NotEmpty(t, activities)
	for i := 1; i < len(activities); i++ {
		assert.GreaterOrEqual(t, activities[i-1].Price, activities[i].Price)
	}
}
