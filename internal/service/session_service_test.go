package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitforge/coaching-app/internal/repository/memory"
)

func newTestSessionService(t *testing.T) (*sessionService, *memory.CompletionRepository, *time.Time) {
	t.Helper()
	repo := memory.NewCompletionRepository()
	svc := NewSessionService(repo, time.Second).(*sessionService)

	// Fixed clock; the ticker never fires in tests, ticks are driven by
	// calling tick() directly.
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	t.Cleanup(svc.Shutdown)
	return svc, repo, &now
}

func TestSessionStartStopWithoutTicks(t *testing.T) {
	svc, repo, now := newTestSessionService(t)
	ctx := context.Background()

	state, err := svc.Start(ctx, "athlete-1", "program-1")
	require.NoError(t, err)
	assert.True(t, state.Active)
	assert.Equal(t, 0, state.Duration)

	// Clock moves but no tick runs: the recorded duration stays 0.
	*now = now.Add(90 * time.Second)

	completion, err := svc.Stop(ctx, "athlete-1", "program-1")
	require.NoError(t, err)
	require.NotNil(t, completion)
	assert.Equal(t, 0, completion.Duration)
	assert.NotEmpty(t, completion.ID)
	assert.False(t, completion.EndTime.Before(completion.StartTime))

	stored, err := repo.GetByAthleteID(ctx, "athlete-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestSessionTickRecomputesFromStart(t *testing.T) {
	svc, _, now := newTestSessionService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, "athlete-1", "program-1")
	require.NoError(t, err)

	// Ticks arrive late and unevenly; each one must land on the true
	// elapsed time, not accumulate an increment per tick.
	*now = now.Add(3 * time.Second)
	svc.tick()
	state, err := svc.Get(ctx, "athlete-1", "program-1")
	require.NoError(t, err)
	assert.Equal(t, 3, state.Duration)

	*now = now.Add(7 * time.Second)
	svc.tick()
	state, err = svc.Get(ctx, "athlete-1", "program-1")
	require.NoError(t, err)
	assert.Equal(t, 10, state.Duration)

	completion, err := svc.Stop(ctx, "athlete-1", "program-1")
	require.NoError(t, err)
	require.NotNil(t, completion)
	assert.Equal(t, 10, completion.Duration)
}

func TestSessionStartIsIdempotent(t *testing.T) {
	svc, _, now := newTestSessionService(t)
	ctx := context.Background()

	first, err := svc.Start(ctx, "athlete-1", "program-1")
	require.NoError(t, err)

	*now = now.Add(5 * time.Second)
	svc.tick()

	again, err := svc.Start(ctx, "athlete-1", "program-1")
	require.NoError(t, err)
	assert.Equal(t, first.StartTime, again.StartTime)
	assert.Equal(t, 5, again.Duration)
}

func TestSessionStopWithoutStartIsNoop(t *testing.T) {
	svc, repo, _ := newTestSessionService(t)
	ctx := context.Background()

	completion, err := svc.Stop(ctx, "athlete-1", "program-1")
	require.NoError(t, err)
	assert.Nil(t, completion)

	stored, err := repo.GetByAthleteID(ctx, "athlete-1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSessionPairsAreIndependent(t *testing.T) {
	svc, _, now := newTestSessionService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, "athlete-1", "program-1")
	require.NoError(t, err)
	*now = now.Add(4 * time.Second)
	_, err = svc.Start(ctx, "athlete-1", "program-2")
	require.NoError(t, err)
	_, err = svc.Start(ctx, "athlete-2", "program-1")
	require.NoError(t, err)

	*now = now.Add(6 * time.Second)
	svc.tick()

	active, err := svc.ActiveForAthlete(ctx, "athlete-1")
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, 10, active["program-1"].Duration)
	assert.Equal(t, 6, active["program-2"].Duration)

	// Stopping one pair leaves the others running.
	_, err = svc.Stop(ctx, "athlete-1", "program-1")
	require.NoError(t, err)

	state, err := svc.Get(ctx, "athlete-1", "program-1")
	require.NoError(t, err)
	assert.False(t, state.Active)

	state, err = svc.Get(ctx, "athlete-2", "program-1")
	require.NoError(t, err)
	assert.True(t, state.Active)
}

func TestSessionTickerLifecycle(t *testing.T) {
	svc, _, _ := newTestSessionService(t)
	ctx := context.Background()

	assert.Nil(t, svc.ticker)

	_, err := svc.Start(ctx, "athlete-1", "program-1")
	require.NoError(t, err)
	assert.NotNil(t, svc.ticker)

	_, err = svc.Start(ctx, "athlete-1", "program-2")
	require.NoError(t, err)

	_, err = svc.Stop(ctx, "athlete-1", "program-1")
	require.NoError(t, err)
	assert.NotNil(t, svc.ticker, "ticker must keep running while a session is active")

	_, err = svc.Stop(ctx, "athlete-1", "program-2")
	require.NoError(t, err)
	assert.Nil(t, svc.ticker, "ticker must stop once the active set empties")
}

func TestSessionRequiresIDs(t *testing.T) {
	svc, _, _ := newTestSessionService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, "", "program-1")
	assert.ErrorIs(t, err, ErrSessionIDsRequired)
	_, err = svc.Stop(ctx, "athlete-1", "")
	assert.ErrorIs(t, err, ErrSessionIDsRequired)
	_, err = svc.Get(ctx, "", "")
	assert.ErrorIs(t, err, ErrSessionIDsRequired)
}
