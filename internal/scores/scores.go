// internal/scores/scores.go
//
// Append-only score history over the prefs store.
//
// Entries are immutable {id, timestamp, difficulty, score} records created
// only when a round ends with a positive score. The whole history is one
// JSON array under a fixed namespaced key; an unreadable or corrupt blob
// loads as an empty history, never as an error the player sees.

package scores

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/colordash/go-server/internal/game"
	"github.com/colordash/go-server/internal/prefs"
)

// storageKey is the namespaced prefs key holding the serialized history.
const storageKey = "colordash.scores.v1"

// Entry is one persisted round result.
type Entry struct {
	ID         string          `json:"id"`
	CreatedAt  time.Time       `json:"createdAt"`
	Difficulty game.Difficulty `json:"difficulty"`
	Score      int             `json:"score"`
}

// NewEntry builds an Entry for a finished round.
func NewEntry(difficulty game.Difficulty, score int) Entry {
	return Entry{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Difficulty: difficulty,
		Score:      score,
	}
}

// Store reads and writes the history for one owner at a time.
type Store struct {
	prefs prefs.Store
}

// NewStore constructs a score Store over a prefs backend.
func NewStore(p prefs.Store) *Store {
	return &Store{prefs: p}
}

// Load returns the owner's history, newest first. Missing or undecodable
// data yields an empty slice.
func (s *Store) Load(ctx context.Context, owner string) []Entry {
	raw, err := s.prefs.Load(ctx, owner, storageKey)
	if err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("load score history")
		return []Entry{}
	}
	if len(raw) == 0 {
		return []Entry{}
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Treat corrupt history as absent.
		log.Warn().Err(err).Str("owner", owner).Msg("decode score history")
		return []Entry{}
	}
	return entries
}

// Append adds an entry to the front of the history and persists it.
func (s *Store) Append(ctx context.Context, owner string, e Entry) error {
	entries := append([]Entry{e}, s.Load(ctx, owner)...)
	return s.save(ctx, owner, entries)
}

// Delete removes a single entry by id. Unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, owner, id string) error {
	entries := s.Load(ctx, owner)
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return s.save(ctx, owner, kept)
}

// Clear removes the whole history. Clearing an empty history is a no-op
// that leaves the store empty.
func (s *Store) Clear(ctx context.Context, owner string) error {
	return s.save(ctx, owner, []Entry{})
}

func (s *Store) save(ctx context.Context, owner string, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.prefs.Save(ctx, owner, storageKey, raw)
}
