// internal/httpserver/routes_progress.go
//
// HTTP routes for persisted progress: score history and achievements.
//   - GET    /scores            → full history, newest first
//   - DELETE /scores/{id}       → remove one entry
//   - DELETE /scores            → clear the history
//   - GET    /achievements      → catalog with unlock timestamps
//   - POST   /achievements/reset → lock everything again
//
// Progress is keyed by owner (account or anon cookie), same as gameplay.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/colordash/go-server/internal/scores"
)

// mountProgress registers /scores and /achievements routes.
func (s *Server) mountProgress(r chi.Router) {
	r.Route("/scores", func(r chi.Router) {
		r.Get("/", s.handleScoresList)
		r.Delete("/", s.handleScoresClear)
		r.Delete("/{id}", s.handleScoresDelete)
	})
	r.Route("/achievements", func(r chi.Router) {
		r.Get("/", s.handleAchievementsList)
		r.Post("/reset", s.handleAchievementsReset)
	})
}

// scoresRes is returned by GET /scores.
type scoresRes struct {
	Entries []scores.Entry `json:"entries"`
}

func (s *Server) handleScoresList(w http.ResponseWriter, r *http.Request) {
	entries := s.scores.Load(r.Context(), s.owner(w, r))
	_ = json.NewEncoder(w).Encode(scoresRes{Entries: entries})
}

func (s *Server) handleScoresDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.scores.Delete(r.Context(), s.owner(w, r), id); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("delete score entry")
		http.Error(w, `{"error":"delete_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (s *Server) handleScoresClear(w http.ResponseWriter, r *http.Request) {
	if err := s.scores.Clear(r.Context(), s.owner(w, r)); err != nil {
		log.Warn().Err(err).Msg("clear score history")
		http.Error(w, `{"error":"clear_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (s *Server) handleAchievementsList(w http.ResponseWriter, r *http.Request) {
	items := s.achievements.Load(r.Context(), s.owner(w, r))
	_ = json.NewEncoder(w).Encode(items)
}

// handleAchievementsReset clears all unlocks — the explicit user "reset
// progress" action, the only thing that relocks achievements.
func (s *Server) handleAchievementsReset(w http.ResponseWriter, r *http.Request) {
	if err := s.achievements.Reset(r.Context(), s.owner(w, r)); err != nil {
		log.Warn().Err(err).Msg("reset achievements")
		http.Error(w, `{"error":"reset_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
