package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/pkg/ptr"
)

func TestMemoryStore_FindActivity(t *testing.T) {
	store := NewSeededMemoryStore()

	activity, err := store.FindActivity(context.Background(), "act-jetski")
	require.NoError(t, err)
	assert.Equal(t, "Jet Ski Safari", activity.Name)
	assert.True(t, activity.IsParticipantBased())

	scuba, err := store.FindActivity(context.Background(), "act-scuba")
	require.NoError(t, err)
	assert.False(t, scuba.IsParticipantBased())
	assert.True(t, scuba.HasDuration("Half day"))
}

func TestMemoryStore_FindActivity_NotFound(t *testing.T) {
	store := NewSeededMemoryStore()

	_, err := store.FindActivity(context.Background(), "act-missing")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestMemoryStore_FindActivity_ReturnsCopy(t *testing.T) {
	store := NewSeededMemoryStore()

	activity, err := store.FindActivity(context.Background(), "act-jetski")
	require.NoError(t, err)
	activity.Name = "mutated"

	fresh, err := store.FindActivity(context.Background(), "act-jetski")
	require.NoError(t, err)
	assert.Equal(t, "Jet Ski Safari", fresh.Name)
}

func TestMemoryStore_FindProvider(t *testing.T) {
	store := NewSeededMemoryStore()

	provider, err := store.FindProvider(context.Background(), "pr-blue-lagoon")
	require.NoError(t, err)
	assert.Equal(t, "Blue Lagoon Watersports", provider.Name)
	assert.True(t, provider.IsClosedOn("Sunday"))
	assert.False(t, provider.IsClosedOn("Monday"))
	assert.True(t, provider.OffersActivity("act-jetski"))

	_, err = store.FindProvider(context.Background(), "pr-missing")
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestMemoryStore_ListActivities_NoFilter(t *testing.T) {
	store := NewSeededMemoryStore()

	activities, err := store.ListActivities(context.Background(), domain.ActivityFilter{})
	require.NoError(t, err)
	assert.Len(t, activities, 8)

	// Сортировка по умолчанию: цена по возрастанию
	for i := 1; i < len(activities); i++ {
		assert.LessOrEqual(t, activities[i-1].Price, activities[i].Price)
	}
}

func TestMemoryStore_ListActivities_QueryMatchesNameAndCategory(t *testing.T) {
	store := NewSeededMemoryStore()

	byName, err := store.ListActivities(context.Background(), domain.ActivityFilter{Query: "jet ski"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "act-jetski", byName[0].ID)

	// Запрос сопоставляется и с категорией, без учёта регистра
	byCategory, err := store.ListActivities(context.Background(), domain.ActivityFilter{Query: "ADVENTURE"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 3)
}

func TestMemoryStore_ListActivities_CategoryAndCityFilters(t *testing.T) {
	store := NewSeededMemoryStore()

	filter := domain.ActivityFilter{
		Categories: []string{"watersports"},
		Cities:     []string{"ayia-napa"},
	}
	activities, err := store.ListActivities(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	for _, a := range activities {
		assert.Equal(t, "watersports", a.Category)
		assert.Equal(t, "ayia-napa", a.City)
	}
}

func TestMemoryStore_ListActivities_PriceRange(t *testing.T) {
	store := NewSeededMemoryStore()

	filter := domain.ActivityFilter{
		MinPrice: ptr.Ptr(40.0),
		MaxPrice: ptr.Ptr(70.0),
	}
	activities, err := store.ListActivities(context.Background(), filter)
	require.NoError(t, err)
	require.NotEmpty(t, activities)
	for _, a := range activities {
		assert.GreaterOrEqual(t, a.Price, 40.0)
		assert.LessOrEqual(t, a.Price, 70.0)
	}
}

func TestMemoryStore_ListActivities_Sorts(t *testing.T) {
	store := NewSeededMemoryStore()

	desc, err := store.ListActivities(context.Background(), domain.ActivityFilter{Sort: domain.SortPriceDesc})
	require.NoError(t, err)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}

	byDistance, err := store.ListActivities(context.Background(), domain.ActivityFilter{Sort: domain.SortDistance})
	require.NoError(t, err)
	for i := 1; i < len(byDistance); i++ {
		assert.LessOrEqual(t, byDistance[i-1].Distance, byDistance[i].Distance)
	}
}

func TestMemoryStore_ReferenceLists(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	addOns, err := store.ListAddOns(ctx)
	require.NoError(t, err)
	assert.Len(t, addOns, 5)

	bundles, err := store.ListBundles(ctx)
	require.NoError(t, err)
	assert.Len(t, bundles, 2)

	slots, err := store.ListTimeSlots(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0].String())

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 6)

	cities, err := store.ListCities(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, 4)
}

func TestSeedData_Consistency(t *testing.T) {
	store := NewSeededMemoryStore()
	ctx := context.Background()

	activities, err := store.ListActivities(ctx, domain.ActivityFilter{})
	require.NoError(t, err)

	// Каждая активность ссылается на существующего провайдера,
	// и этот провайдер её предлагает
	for _, a := range activities {
		provider, err := store.FindProvider(ctx, a.ProviderID)
		require.NoError(t, err, "activity %s references provider %s", a.ID, a.ProviderID)
		assert.True(t, provider.OffersActivity(a.ID),
			"provider %s does not list activity %s", provider.ID, a.ID)
	}
}
