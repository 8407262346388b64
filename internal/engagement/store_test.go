package engagement

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/systemfailed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*miniredis.Miniredis, *Store) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewStore(client)
}

func TestRecordUpvote_PersistsBothKeys(t *testing.T) {
	mr, store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordUpvote(ctx, "device-1", "1", 13))

	voted, err := store.HasUpvoted(ctx, "device-1", "1")
	require.NoError(t, err)
	assert.True(t, voted)

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 13}, counts)

	// формат хранения - JSON в двух ключах
	ids, err := mr.Get("systemfailed_upvoted:device-1")
	require.NoError(t, err)
	assert.JSONEq(t, `["1"]`, ids)
	raw, err := mr.Get("systemfailed_upvote_counts")
	require.NoError(t, err)
	assert.JSONEq(t, `{"1":13}`, raw)
}

func TestRecordUpvote_AlreadyVoted(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordUpvote(ctx, "device-1", "1", 13))
	err := store.RecordUpvote(ctx, "device-1", "1", 14)

	require.ErrorIs(t, err, models.ErrAlreadyVoted)
	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13, counts["1"])
}

func TestHasUpvoted_ScopedByDevice(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.MarkUpvoted(ctx, "device-1", "h1"))

	voted, err := store.HasUpvoted(ctx, "device-2", "h1")
	require.NoError(t, err)
	assert.False(t, voted)

	// повторная отметка ничего не ломает
	require.NoError(t, store.MarkUpvoted(ctx, "device-1", "h1"))
	voted, err = store.HasUpvoted(ctx, "device-1", "h1")
	require.NoError(t, err)
	assert.True(t, voted)
}

func TestIncrementUpvote_UsesOverrideThenBaseline(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	count, err := store.IncrementUpvote(ctx, "device-1", "2", 8)
	require.NoError(t, err)
	assert.Equal(t, 9, count)

	// baseline игнорируется, когда уже есть сохранённый счётчик
	count, err = store.IncrementUpvote(ctx, "device-2", "2", 8)
	require.NoError(t, err)
	assert.Equal(t, 10, count)
}

func TestIncrementUpvote_ConcurrentDevices(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, device := range []string{"a", "b", "c", "d", "e"} {
		wg.Add(1)
		go func(device string) {
			defer wg.Done()
			_, err := store.IncrementUpvote(ctx, device, "3", 5)
			assert.NoError(t, err)
		}(device)
	}
	wg.Wait()

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, counts["3"])
}

func TestOverrideCount(t *testing.T) {
	incident := &models.Incident{ID: "1", UpvoteCount: 12}
	counts := map[string]int{"1": 20}

	overridden := OverrideCount(incident, counts)
	assert.Equal(t, 20, overridden.UpvoteCount)
	assert.Equal(t, 12, incident.UpvoteCount, "original must stay untouched")

	hazard := &models.Hazard{ID: "h9", UpvoteCount: 4}
	assert.Same(t, hazard, OverrideCount(hazard, counts))
}
