// internal/httpserver/routes_round.go
//
// HTTP routes for gameplay. Exposes five endpoints under /round:
//   - POST /round/new   → start a round {difficulty}
//   - POST /round/tap   → tap a tile {index}
//   - POST /round/exit  → end the round on request
//   - POST /round/retry → fresh round at the same difficulty
//   - GET  /round       → current snapshot + buffered events (client poll)
//
// One session per owner; starting a new round replaces the previous one.
// The ticking clock lives server-side in the session manager; responses
// carry the snapshot plus every engine event since the last call so the
// client can render score/time changes, bonus/penalty flashes, the round
// end, and achievement unlocks.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/colordash/go-server/internal/game"
	"github.com/colordash/go-server/internal/session"
)

// mountRound registers all /round routes.
func (s *Server) mountRound(r chi.Router) {
	r.Route("/round", func(r chi.Router) {
		r.Get("/", s.handleRoundState)
		r.Post("/new", s.handleRoundNew)
		r.Post("/tap", s.handleRoundTap)
		r.Post("/exit", s.handleRoundExit)
		r.Post("/retry", s.handleRoundRetry)
	})
}

// roundRes is the common response shape for round endpoints.
type roundRes struct {
	Round  session.Snapshot `json:"round"`
	Events []game.Event     `json:"events,omitempty"`
}

// newRoundReq is the payload for POST /round/new.
type newRoundReq struct {
	Difficulty game.Difficulty `json:"difficulty"`
}

// handleRoundNew starts a round for the current owner.
func (s *Server) handleRoundNew(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if !req.Difficulty.Valid() {
		http.Error(w, `{"error":"unknown_difficulty"}`, http.StatusBadRequest)
		return
	}
	snap, err := s.sessions.Start(s.owner(w, r), req.Difficulty)
	if err != nil {
		http.Error(w, `{"error":"start_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(roundRes{Round: snap})
}

// tapReq is the payload for POST /round/tap.
type tapReq struct {
	Index int `json:"index"`
}

// handleRoundTap applies a tap to the owner's active round.
func (s *Server) handleRoundTap(w http.ResponseWriter, r *http.Request) {
	var req tapReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	snap, events, err := s.sessions.Tap(r.Context(), s.owner(w, r), req.Index)
	switch {
	case errors.Is(err, session.ErrNoSession):
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	case errors.Is(err, session.ErrBadIndex):
		http.Error(w, `{"error":"bad_index"}`, http.StatusBadRequest)
		return
	case errors.Is(err, session.ErrRoundEnded):
		// The clock may have run out between taps; hand back the final state.
		_ = json.NewEncoder(w).Encode(roundRes{Round: snap, Events: events})
		return
	}
	_ = json.NewEncoder(w).Encode(roundRes{Round: snap, Events: events})
}

// handleRoundExit ends the round on user request.
func (s *Server) handleRoundExit(w http.ResponseWriter, r *http.Request) {
	snap, events, err := s.sessions.Exit(r.Context(), s.owner(w, r))
	if errors.Is(err, session.ErrNoSession) {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}
	_ = json.NewEncoder(w).Encode(roundRes{Round: snap, Events: events})
}

// handleRoundRetry starts a fresh round at the session's difficulty.
func (s *Server) handleRoundRetry(w http.ResponseWriter, r *http.Request) {
	snap, err := s.sessions.Retry(s.owner(w, r))
	if errors.Is(err, session.ErrNoSession) {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}
	_ = json.NewEncoder(w).Encode(roundRes{Round: snap})
}

// handleRoundState returns the current snapshot and drains buffered events.
func (s *Server) handleRoundState(w http.ResponseWriter, r *http.Request) {
	snap, events, err := s.sessions.State(s.owner(w, r))
	if errors.Is(err, session.ErrNoSession) {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}
	_ = json.NewEncoder(w).Encode(roundRes{Round: snap, Events: events})
}
