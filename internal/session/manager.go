// internal/session/manager.go
//
// Session registry: one active session per owner (user id or anonymous
// cookie id). The manager orchestrates the round engine, the per-session
// clock, and the score/achievement collaborators. A single mutex guards
// every session's state; transitions are short and synchronous, so one
// lock is enough at this scale.

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/colordash/go-server/internal/achievements"
	"github.com/colordash/go-server/internal/game"
	"github.com/colordash/go-server/internal/scores"
)

const defaultTickInterval = time.Second

var (
	ErrNoSession  = errors.New("no active session")
	ErrRoundEnded = errors.New("round ended")
	ErrBadIndex   = errors.New("tile index out of range")
)

// Manager owns all live sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	scores       *scores.Store
	achievements *achievements.Store
	tickInterval time.Duration
	newEngine    func() *game.Engine
}

// NewManagerOptions contains options for creating a new Manager.
type NewManagerOptions struct {
	Scores       *scores.Store
	Achievements *achievements.Store
	TickInterval time.Duration       // defaults to one second
	NewEngine    func() *game.Engine // defaults to a time-seeded engine; tests inject seeded ones
}

// NewManager creates a new Manager.
func NewManager(opts NewManagerOptions) *Manager {
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTickInterval
	}
	if opts.NewEngine == nil {
		opts.NewEngine = func() *game.Engine { return game.NewEngine(nil) }
	}
	return &Manager{
		sessions:     make(map[string]*Session),
		scores:       opts.Scores,
		achievements: opts.Achievements,
		tickInterval: opts.TickInterval,
		newEngine:    opts.NewEngine,
	}
}

// Start begins a new round for owner at the given difficulty, replacing
// any existing session (its ticker is stopped first).
func (m *Manager) Start(owner string, d game.Difficulty) (Snapshot, error) {
	if !d.Valid() {
		return Snapshot{}, errors.New("unknown difficulty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.sessions[owner]; ok {
		old.stopTicker()
	}
	s := &Session{mgr: m, owner: owner, engine: m.newEngine()}
	m.sessions[owner] = s
	m.startRound(s, d)
	return s.snapshot(), nil
}

// Retry starts a brand-new round in the existing session, keeping the
// owner's engine. The previous round must have ended or be abandoned.
func (m *Manager) Retry(owner string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[owner]
	if !ok {
		return Snapshot{}, ErrNoSession
	}
	s.stopTicker()
	m.startRound(s, s.round.Difficulty)
	return s.snapshot(), nil
}

// startRound resets session state around a fresh round and launches the
// ticker. Callers hold m.mu.
func (m *Manager) startRound(s *Session, d game.Difficulty) {
	s.round = s.engine.NewRound(d)
	s.pending = nil
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.run(ctx, m.tickInterval)
}

// Tap applies a tap on the owner's active round and returns the new
// snapshot plus all events buffered since the last call.
func (m *Manager) Tap(ctx context.Context, owner string, index int) (Snapshot, []game.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[owner]
	if !ok {
		return Snapshot{}, nil, ErrNoSession
	}
	if s.round.Status == game.StatusEnded {
		return s.snapshot(), s.drain(), ErrRoundEnded
	}
	if index < 0 || index >= len(s.round.Grid) {
		return s.snapshot(), nil, ErrBadIndex
	}
	s.absorb(ctx, s.engine.Tap(s.round, index))
	s.unlock(ctx, game.LiveUnlocks(s.round))
	return s.snapshot(), s.drain(), nil
}

// Exit ends the owner's round on request. Exiting an already ended round
// returns the final snapshot without error.
func (m *Manager) Exit(ctx context.Context, owner string) (Snapshot, []game.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[owner]
	if !ok {
		return Snapshot{}, nil, ErrNoSession
	}
	s.absorb(ctx, s.engine.Exit(s.round))
	return s.snapshot(), s.drain(), nil
}

// State returns the current snapshot and drains buffered events. Clients
// poll this to observe tick-driven time changes and the timeout.
func (m *Manager) State(owner string) (Snapshot, []game.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[owner]
	if !ok {
		return Snapshot{}, nil, ErrNoSession
	}
	return s.snapshot(), s.drain(), nil
}

// Close discards the owner's session and stops its clock.
func (m *Manager) Close(owner string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[owner]; ok {
		s.stopTicker()
		delete(m.sessions, owner)
	}
}

// Shutdown stops every session's clock. Used on server teardown.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		s.stopTicker()
	}
}
