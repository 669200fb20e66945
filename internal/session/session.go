// internal/session/session.go
//
// One live play session: the round, its engine, the pending event buffer,
// and the 1 Hz ticker driving the clock. All transitions — ticks from the
// goroutine and taps/exits from HTTP handlers — are serialized on the
// session mutex, so a tap racing a timeout tick resolves deterministically:
// whichever acquires the lock first applies, and the loser no-ops against
// the ended round.

package session

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/colordash/go-server/internal/game"
	"github.com/colordash/go-server/internal/scores"
)

// Snapshot is the read-only view of a session's round handed to clients.
type Snapshot struct {
	RoundID       string          `json:"roundId"`
	Difficulty    game.Difficulty `json:"difficulty"`
	Grid          []game.Color    `json:"grid"`
	Columns       int             `json:"columns"`
	Target        game.Color      `json:"target"`
	Score         int             `json:"score"`
	TimeLeft      int             `json:"timeLeft"`
	CorrectStreak int             `json:"correctStreak"`
	WrongStreak   int             `json:"wrongStreak"`
	Status        game.Status     `json:"status"`
	EndReason     game.EndReason  `json:"endReason,omitempty"`
}

// Session holds the live state for one owner. Access is guarded by the
// manager: every method that touches round state runs under mgr.mu.
type Session struct {
	mgr     *Manager
	owner   string
	engine  *game.Engine
	round   *game.Round
	pending []game.Event       // buffered for the next client poll
	cancel  context.CancelFunc // stops the ticker goroutine
}

// snapshot renders the current round. Callers hold s.mu via the manager.
func (s *Session) snapshot() Snapshot {
	r := s.round
	grid := make([]game.Color, len(r.Grid))
	copy(grid, r.Grid)
	return Snapshot{
		RoundID:       r.ID,
		Difficulty:    r.Difficulty,
		Grid:          grid,
		Columns:       game.ProfileFor(r.Difficulty).ColumnCount,
		Target:        r.Target,
		Score:         r.Score,
		TimeLeft:      r.TimeLeft,
		CorrectStreak: r.CorrectStreak,
		WrongStreak:   r.WrongStreak,
		Status:        r.Status,
		EndReason:     r.EndReason,
	}
}

// drain returns and clears the pending event buffer.
func (s *Session) drain() []game.Event {
	out := s.pending
	s.pending = nil
	return out
}

// absorb runs the side effects of freshly emitted engine events and appends
// everything (plus any achievement unlocks) to the pending buffer.
// Persistence is fire-and-forget: failures log a warning and gameplay
// proceeds.
func (s *Session) absorb(ctx context.Context, events []game.Event) {
	s.pending = append(s.pending, events...)
	for _, ev := range events {
		if ev.Type != game.EventRoundEnded {
			continue
		}
		// Ticks against an ended round are pointless; stop the clock.
		s.stopTicker()
		if s.round.Score > 0 {
			entry := scores.NewEntry(s.round.Difficulty, s.round.Score)
			if err := s.mgr.scores.Append(ctx, s.owner, entry); err != nil {
				log.Warn().Err(err).Str("owner", s.owner).Msg("append score entry")
			}
		}
		s.unlock(ctx, game.EndUnlocks(s.round))
	}
}

// unlock records each kind with the achievement store and buffers an
// unlocked event for the ones that are new.
func (s *Session) unlock(ctx context.Context, kinds []game.Kind) {
	for _, kind := range kinds {
		newly, err := s.mgr.achievements.Unlock(ctx, s.owner, kind)
		if err != nil {
			log.Warn().Err(err).Str("kind", string(kind)).Msg("unlock achievement")
			continue
		}
		if newly {
			s.pending = append(s.pending, game.Event{Type: game.EventAchievementUnlocked, Achievement: kind})
		}
	}
}

// stopTicker cancels the ticker goroutine if it is running.
func (s *Session) stopTicker() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// run is the ticker goroutine: one engine tick per interval until the
// context is cancelled or the round ends.
func (s *Session) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mgr.mu.Lock()
			if s.round.Status == game.StatusEnded {
				s.mgr.mu.Unlock()
				return
			}
			s.absorb(context.Background(), s.engine.Tick(s.round))
			done := s.round.Status == game.StatusEnded
			s.mgr.mu.Unlock()
			if done {
				return
			}
		}
	}
}
