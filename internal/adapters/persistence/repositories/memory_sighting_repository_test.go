package repositories

import (
	"context"
	"testing"
	"time"

	"gateway-discoveries/internal/adapters/persistence/models"
	"gateway-discoveries/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSighting(id, species, status string, reportedAt time.Time) *models.AnimalSighting {
	return &models.AnimalSighting{
		ID:         id,
		Species:    species,
		Location:   "Skukuza Rest Camp Area",
		Gate:       "Paul Kruger Gate",
		Count:      1,
		Confidence: 90,
		Status:     status,
		ReportedAt: reportedAt,
	}
}

func TestMemorySightingListOrdering(t *testing.T) {
	repo := NewMemorySightingRepository()
	ctx := context.Background()

	older := time.Now().Add(-2 * time.Hour)
	newer := time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, newSighting("s1", "Leopard", models.SightingStatusActive, older)))
	require.NoError(t, repo.Create(ctx, newSighting("s2", "African Lion", models.SightingStatusActive, newer)))

	sightings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sightings, 2)
	assert.Equal(t, "s2", sightings[0].ID)
	assert.Equal(t, "s1", sightings[1].ID)
}

func TestMemorySightingListTiesByInsertionOrder(t *testing.T) {
	repo := NewMemorySightingRepository()
	ctx := context.Background()

	at := time.Now()
	require.NoError(t, repo.Create(ctx, newSighting("first", "Leopard", models.SightingStatusActive, at)))
	require.NoError(t, repo.Create(ctx, newSighting("second", "Cape Buffalo", models.SightingStatusActive, at)))

	sightings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sightings, 2)
	assert.Equal(t, "second", sightings[0].ID)
	assert.Equal(t, "first", sightings[1].ID)
}

func TestMemorySightingListRecentExcludesHistorical(t *testing.T) {
	repo := NewMemorySightingRepository()
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repo.Create(ctx, newSighting("h", "Leopard", models.SightingStatusHistorical, now)))
	require.NoError(t, repo.Create(ctx, newSighting("a", "African Lion", models.SightingStatusActive, now.Add(-time.Minute))))
	require.NoError(t, repo.Create(ctx, newSighting("r", "African Elephant", models.SightingStatusRecent, now.Add(-2*time.Minute))))

	sightings, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sightings, 2)
	for _, s := range sightings {
		assert.NotEqual(t, models.SightingStatusHistorical, s.Status)
	}
}

func TestMemorySightingListRecentLimit(t *testing.T) {
	repo := NewMemorySightingRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		id := string(rune('a' + i))
		require.NoError(t, repo.Create(ctx, newSighting(id, "Leopard", models.SightingStatusActive, time.Now())))
	}

	sightings, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, sightings, 3)
}

func TestMemorySightingUpdateMergesNonZeroFields(t *testing.T) {
	repo := NewMemorySightingRepository()
	ctx := context.Background()

	reportedAt := time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(ctx, newSighting("s1", "Leopard", models.SightingStatusRecent, reportedAt)))

	updated, err := repo.Update(ctx, "s1", &models.SightingUpdate{Status: models.SightingStatusHistorical})
	require.NoError(t, err)

	// Only the supplied field changes; the rest keep their prior values
	// and the reported timestamp is untouched.
	assert.Equal(t, models.SightingStatusHistorical, updated.Status)
	assert.Equal(t, "Leopard", updated.Species)
	assert.Equal(t, 1, updated.Count)
	assert.Equal(t, 90, updated.Confidence)
	assert.True(t, updated.ReportedAt.Equal(reportedAt))
}

func TestMemorySightingUpdateNotFound(t *testing.T) {
	repo := NewMemorySightingRepository()

	_, err := repo.Update(context.Background(), "missing", &models.SightingUpdate{Status: "active"})
	assert.ErrorIs(t, err, domain.ErrSightingNotFound)
}

func TestMemorySightingDeleteEchoesAndIsPermanent(t *testing.T) {
	repo := NewMemorySightingRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSighting("s1", "African Lion", models.SightingStatusActive, time.Now())))

	deleted, err := repo.Delete(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", deleted.ID)
	assert.Equal(t, "African Lion", deleted.Species)

	_, err = repo.Delete(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSightingNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemorySightingStats(t *testing.T) {
	repo := NewMemorySightingRepository()
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repo.Create(ctx, newSighting("s1", "African Lion", models.SightingStatusRecent, now)))
	require.NoError(t, repo.Create(ctx, newSighting("s2", "White Rhinoceros", models.SightingStatusActive, now)))
	require.NoError(t, repo.Create(ctx, newSighting("s3", "Impala", models.SightingStatusActive, now)))
	require.NoError(t, repo.Create(ctx, newSighting("s4", "african lion", models.SightingStatusHistorical, now)))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalSightings)
	assert.Equal(t, int64(1), stats.RecentCount)
	assert.Equal(t, int64(2), stats.ActiveCount)
	// Species matching is case-sensitive, "african lion" does not count.
	assert.Equal(t, int64(2), stats.BigFiveCount)
}
