package session

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colordash/go-server/internal/achievements"
	"github.com/colordash/go-server/internal/game"
	"github.com/colordash/go-server/internal/prefs"
	"github.com/colordash/go-server/internal/scores"
)

type fixture struct {
	mgr *Manager
	sc  *scores.Store
	ach *achievements.Store
}

func newFixture(t *testing.T, seed int64, tick time.Duration) *fixture {
	t.Helper()
	p := prefs.NewMemory()
	f := &fixture{
		sc:  scores.NewStore(p),
		ach: achievements.NewStore(p),
	}
	f.mgr = NewManager(NewManagerOptions{
		Scores:       f.sc,
		Achievements: f.ach,
		TickInterval: tick,
		NewEngine: func() *game.Engine {
			return game.NewEngine(rand.New(rand.NewSource(seed)))
		},
	})
	t.Cleanup(f.mgr.Shutdown)
	return f
}

// targetIndex finds a cell holding the snapshot's target color.
func targetIndex(t *testing.T, snap Snapshot) int {
	t.Helper()
	for i, c := range snap.Grid {
		if c == snap.Target {
			return i
		}
	}
	t.Fatalf("target %s not in grid", snap.Target)
	return -1
}

func hasEvent(events []game.Event, typ game.EventType) bool {
	for _, ev := range events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

func TestManager_StartAndTap(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1, time.Hour) // tick far away; taps drive everything

	snap, err := f.mgr.Start("p1", game.DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, game.StatusActive, snap.Status)
	assert.Len(t, snap.Grid, 9)
	assert.Equal(t, 3, snap.Columns)

	snap, events, err := f.mgr.Tap(ctx, "p1", targetIndex(t, snap))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, 1, snap.CorrectStreak)
	assert.True(t, hasEvent(events, game.EventScoreChanged))
	assert.True(t, hasEvent(events, game.EventAchievementUnlocked), "first point unlocks first_game")

	// Second match: score moves, but no repeat unlock.
	snap, events, err = f.mgr.Tap(ctx, "p1", targetIndex(t, snap))
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Score)
	assert.False(t, hasEvent(events, game.EventAchievementUnlocked))
}

func TestManager_TapValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 2, time.Hour)

	_, _, err := f.mgr.Tap(ctx, "ghost", 0)
	assert.ErrorIs(t, err, ErrNoSession)

	snap, err := f.mgr.Start("p1", game.DifficultyEasy)
	require.NoError(t, err)
	_, _, err = f.mgr.Tap(ctx, "p1", len(snap.Grid))
	assert.ErrorIs(t, err, ErrBadIndex)
	_, _, err = f.mgr.Tap(ctx, "p1", -1)
	assert.ErrorIs(t, err, ErrBadIndex)
}

func TestManager_ExitPersistsScoreAndFlawless(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3, time.Hour)

	snap, err := f.mgr.Start("p1", game.DifficultyEasy)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		snap, _, err = f.mgr.Tap(ctx, "p1", targetIndex(t, snap))
		require.NoError(t, err)
	}

	snap, events, err := f.mgr.Exit(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, game.StatusEnded, snap.Status)
	assert.Equal(t, game.EndReasonExit, snap.EndReason)
	assert.True(t, hasEvent(events, game.EventRoundEnded))

	entries := f.sc.Load(ctx, "p1")
	require.Len(t, entries, 1, "one entry per finished scoring round")
	assert.Equal(t, 4, entries[0].Score)
	assert.Equal(t, game.DifficultyEasy, entries[0].Difficulty)

	var flawless bool
	for _, a := range f.ach.Load(ctx, "p1") {
		if a.Kind == game.KindFlawlessEasy {
			flawless = a.UnlockedAt != nil
		}
	}
	assert.True(t, flawless, "all-match round exits flawless")

	// The ended round accepts no further taps.
	_, _, err = f.mgr.Tap(ctx, "p1", 0)
	assert.ErrorIs(t, err, ErrRoundEnded)
}

func TestManager_ExitWithoutInputPersistsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 4, time.Hour)

	_, err := f.mgr.Start("p1", game.DifficultyHard)
	require.NoError(t, err)
	_, _, err = f.mgr.Exit(ctx, "p1")
	require.NoError(t, err)

	assert.Empty(t, f.sc.Load(ctx, "p1"), "zero score appends nothing")
	for _, a := range f.ach.Load(ctx, "p1") {
		assert.Nil(t, a.UnlockedAt, "kind %s must stay locked without input", a.Kind)
	}
}

func TestManager_TimeoutWithoutInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 5, time.Millisecond)

	_, err := f.mgr.Start("p1", game.DifficultyEasy)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		snap, _, err := f.mgr.State("p1")
		return err == nil && snap.Status == game.StatusEnded
	}, 2*time.Second, 5*time.Millisecond, "round should time out")

	snap, _, err := f.mgr.State("p1")
	require.NoError(t, err)
	assert.Equal(t, game.EndReasonTimeout, snap.EndReason)
	assert.Zero(t, snap.TimeLeft)

	assert.Empty(t, f.sc.Load(ctx, "p1"))
	for _, a := range f.ach.Load(ctx, "p1") {
		assert.Nil(t, a.UnlockedAt, "kind %s unlocked on an untouched timeout", a.Kind)
	}
}

func TestManager_StatePollDrainsEvents(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 6, time.Hour)

	snap, err := f.mgr.Start("p1", game.DifficultyEasy)
	require.NoError(t, err)
	_, _, err = f.mgr.Tap(ctx, "p1", targetIndex(t, snap))
	require.NoError(t, err)

	// Tap already drained its own events; a poll right after sees none.
	_, events, err := f.mgr.State("p1")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestManager_Retry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 7, time.Hour)

	_, err := f.mgr.Retry("ghost")
	assert.ErrorIs(t, err, ErrNoSession)

	snap, err := f.mgr.Start("p1", game.DifficultyMedium)
	require.NoError(t, err)
	firstID := snap.RoundID
	_, _, err = f.mgr.Exit(ctx, "p1")
	require.NoError(t, err)

	snap, err = f.mgr.Retry("p1")
	require.NoError(t, err)
	assert.NotEqual(t, firstID, snap.RoundID)
	assert.Equal(t, game.DifficultyMedium, snap.Difficulty)
	assert.Equal(t, game.StatusActive, snap.Status)
	assert.Zero(t, snap.Score)
}

func TestManager_Close(t *testing.T) {
	f := newFixture(t, 8, time.Hour)

	_, err := f.mgr.Start("p1", game.DifficultyEasy)
	require.NoError(t, err)
	f.mgr.Close("p1")

	_, _, err = f.mgr.State("p1")
	assert.ErrorIs(t, err, ErrNoSession)
}
