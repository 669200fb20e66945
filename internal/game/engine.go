// internal/game/engine.go
//
// Core round engine for a single colordash session.
// Responsibilities:
//   - Create new rounds from a difficulty profile (grid + target + timer).
//   - Apply tap events: score and streak bookkeeping, time bonus/penalty
//     every third consecutive hit/miss, partial grid reshuffle and a fresh
//     target after each correct match.
//   - Apply timer ticks and drive the timeout transition.
//   - Apply explicit exits.
//
// Notes:
//   - The engine performs no IO. Persistence and achievement unlocks are
//     orchestrated by the session layer from the returned events.
//   - Randomness comes from an injected *rand.Rand so tests can fix the
//     seed; a nil source falls back to a time-seeded generator.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	crand "crypto/rand"
	"encoding/hex"
	"math/rand"
	"time"
)

const (
	streakStep         = 3 // every Nth consecutive hit/miss triggers a time adjustment
	timeBonusSeconds   = 5
	timePenaltySeconds = 5
)

// Engine applies round state transitions. One engine serves one session;
// it is not safe for concurrent use without external locking.
type Engine struct {
	rng *rand.Rand
}

// NewEngine constructs an engine around the given random source.
// A nil rng yields a time-seeded one.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// NewRound builds a fresh active round for the tier: new palette, new grid,
// a target drawn from the grid, timer at the profile's duration. Setup is
// instantaneous; the returned round is already active.
func (e *Engine) NewRound(d Difficulty) *Round {
	p := ProfileFor(d)
	palette := SelectPalette(e.rng, AllColors, p.ColorCount)
	grid := BuildGrid(e.rng, palette, p.CellCount, p.ColumnCount, p.AdjacencyAware)
	return &Round{
		ID:         randomID(),
		Difficulty: d,
		Grid:       grid,
		Target:     grid[e.rng.Intn(len(grid))],
		TimeLeft:   p.RoundSeconds,
		Status:     StatusActive,
	}
}

// Tap applies a tap on grid cell index and returns the emitted events.
// The index must be in range; the HTTP layer validates it.
//
// Match: score +1, correct streak +1, wrong streak reset. Every third
// consecutive match adds timeBonusSeconds (no upper clamp) and emits a
// bonus event. The grid is partially reshuffled against a freshly drawn
// palette and a new target is picked from the refreshed grid.
//
// Mismatch: score −1 (floored at 0), wrong streak +1, correct streak
// reset. Every third consecutive miss removes timePenaltySeconds (floored
// at 0) and emits a penalty event. Grid and target are unchanged.
func (e *Engine) Tap(r *Round, index int) []Event {
	if r.Status == StatusEnded {
		return nil
	}
	r.HadInput = true

	var events []Event
	if r.Grid[index] == r.Target {
		r.Score++
		r.CorrectStreak++
		r.WrongStreak = 0
		events = append(events, Event{Type: EventScoreChanged, Score: r.Score})
		if r.CorrectStreak%streakStep == 0 {
			r.TimeLeft += timeBonusSeconds
			events = append(events,
				Event{Type: EventBonus, Seconds: timeBonusSeconds},
				Event{Type: EventTimeChanged, TimeLeft: r.TimeLeft})
		}
		p := ProfileFor(r.Difficulty)
		palette := SelectPalette(e.rng, AllColors, p.ColorCount)
		r.Grid = PartialReshuffle(e.rng, r.Grid, palette, p.ColumnCount, defaultReshuffleCount, p.AdjacencyAware)
		r.Target = r.Grid[e.rng.Intn(len(r.Grid))]
		return events
	}

	if r.Score > 0 {
		r.Score--
		events = append(events, Event{Type: EventScoreChanged, Score: r.Score})
	}
	r.WrongStreak++
	r.CorrectStreak = 0
	if r.WrongStreak%streakStep == 0 {
		r.TimeLeft -= timePenaltySeconds
		if r.TimeLeft < 0 {
			r.TimeLeft = 0
		}
		events = append(events,
			Event{Type: EventPenalty, Seconds: -timePenaltySeconds},
			Event{Type: EventTimeChanged, TimeLeft: r.TimeLeft})
	}
	return events
}

// Tick advances the round clock by one second. When the clock reaches zero
// the round ends via the timeout path.
func (e *Engine) Tick(r *Round) []Event {
	if r.Status == StatusEnded {
		return nil
	}
	var events []Event
	if r.TimeLeft > 0 {
		r.TimeLeft--
		events = append(events, Event{Type: EventTimeChanged, TimeLeft: r.TimeLeft})
	}
	if r.TimeLeft == 0 {
		events = append(events, e.end(r, EndReasonTimeout)...)
	}
	return events
}

// Exit ends the round on user request. A no-op if the round already ended.
func (e *Engine) Exit(r *Round) []Event {
	if r.Status == StatusEnded {
		return nil
	}
	return e.end(r, EndReasonExit)
}

// end performs the single irreversible active → ended transition.
func (e *Engine) end(r *Round, reason EndReason) []Event {
	r.Status = StatusEnded
	r.EndReason = reason
	return []Event{{Type: EventRoundEnded, Score: r.Score, Reason: reason}}
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return hex.EncodeToString(b[:])
}
