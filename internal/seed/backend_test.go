package seed

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/systemfailed/internal/engagement"
	"github.com/shenikar/systemfailed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) (*Backend, *engagement.Store) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := engagement.NewStore(client)
	return NewBackend(store), store
}

func TestListIncidents_NewestFirst(t *testing.T) {
	backend, _ := newTestBackend(t)

	incidents, err := backend.ListIncidents(context.Background())

	require.NoError(t, err)
	require.Len(t, incidents, 3)
	assert.Equal(t, []string{"1", "2", "3"}, []string{incidents[0].ID, incidents[1].ID, incidents[2].ID})
}

func TestListIncidentsPage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	var incidents []*models.Incident
	for i := 0; i < 10; i++ {
		incidents = append(incidents, &models.Incident{ID: fmt.Sprint(i), CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	backend := NewBackendWithData(engagement.NewStore(client), incidents, nil)

	page, total, err := backend.ListIncidentsPage(context.Background(), 7, 7)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
	require.Len(t, page, 3)
	assert.Equal(t, "2", page[0].ID)

	page, _, err = backend.ListIncidentsPage(context.Background(), 20, 7)
	require.NoError(t, err)
	assert.Empty(t, page)

	page, _, err = backend.ListIncidentsPage(context.Background(), math.MaxInt, math.MaxInt)
	require.NoError(t, err)
	assert.Empty(t, page)

	page, _, err = backend.ListIncidentsPage(context.Background(), -5, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "9", page[0].ID)
}

func TestGetIncident_NotFound(t *testing.T) {
	backend, _ := newTestBackend(t)

	incident, err := backend.GetIncident(context.Background(), "missing")

	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpvoteIncident_AppliesOverrideOnReads(t *testing.T) {
	backend, _ := newTestBackend(t)
	ctx := context.Background()

	count, err := backend.UpvoteIncident(ctx, "device-1", "3")
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	_, err = backend.UpvoteIncident(ctx, "device-1", "3")
	assert.ErrorIs(t, err, models.ErrAlreadyVoted)

	incident, err := backend.GetIncident(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, 6, incident.UpvoteCount)

	_, err = backend.UpvoteIncident(ctx, "device-2", "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMostUpvotedIncidents(t *testing.T) {
	backend, _ := newTestBackend(t)
	ctx := context.Background()

	top, err := backend.MostUpvotedIncidents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "1", top[0].ID)
	assert.Equal(t, "2", top[1].ID)

	all, err := backend.MostUpvotedIncidents(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateHazard_PrependsAndAssignsID(t *testing.T) {
	backend, _ := newTestBackend(t)
	ctx := context.Background()
	hazard := &models.Hazard{Description: "Open manhole", CreatedAt: time.Now()}

	require.NoError(t, backend.CreateHazard(ctx, hazard))
	assert.NotEmpty(t, hazard.ID)

	hazards, err := backend.ListHazards(ctx)
	require.NoError(t, err)
	require.Len(t, hazards, 4)
	assert.Equal(t, hazard.ID, hazards[0].ID)

	count, err := backend.UpvoteHazard(ctx, "device-1", hazard.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSnapshotsAreCopies(t *testing.T) {
	backend, _ := newTestBackend(t)
	ctx := context.Background()

	incident, err := backend.GetIncident(ctx, "1")
	require.NoError(t, err)
	incident.Title = "changed"
	incident.Victims[0].Name = "changed"

	again, err := backend.GetIncident(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Bank Manager Falls Into Uncovered DJB Pit", again.Title)
	assert.Equal(t, "Kamal Dhyani", again.Victims[0].Name)
}
