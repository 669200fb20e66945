// internal/achievements/achievements.go
//
// Achievement progress over the prefs store.
//
// The canonical catalog lives in the game package; this store persists only
// the unlock timestamps, one JSON array under a fixed namespaced key.
// Load merges persisted unlocks onto the catalog by kind so renamed or
// removed kinds simply read as locked. Unlock is idempotent: an already
// unlocked kind keeps its original timestamp.

package achievements

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/colordash/go-server/internal/game"
	"github.com/colordash/go-server/internal/prefs"
)

// storageKey is the namespaced prefs key holding the serialized unlocks.
const storageKey = "colordash.achievements.v1"

// Achievement is one catalog entry with its unlock state.
type Achievement struct {
	game.AchievementInfo
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// unlockRecord is the persisted form: kind plus timestamp.
type unlockRecord struct {
	Kind       game.Kind `json:"kind"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// Store reads and writes achievement progress for one owner at a time.
type Store struct {
	prefs prefs.Store
}

// NewStore constructs an achievement Store over a prefs backend.
func NewStore(p prefs.Store) *Store {
	return &Store{prefs: p}
}

// Load returns the full catalog with unlock timestamps merged in.
// Missing or undecodable data yields an all-locked catalog.
func (s *Store) Load(ctx context.Context, owner string) []Achievement {
	unlocked := s.loadRecords(ctx, owner)
	byKind := make(map[game.Kind]time.Time, len(unlocked))
	for _, r := range unlocked {
		byKind[r.Kind] = r.UnlockedAt
	}
	catalog := game.Catalog()
	out := make([]Achievement, 0, len(catalog))
	for _, info := range catalog {
		a := Achievement{AchievementInfo: info}
		if at, ok := byKind[info.Kind]; ok {
			t := at
			a.UnlockedAt = &t
		}
		out = append(out, a)
	}
	return out
}

// Unlock sets the timestamp for kind if it is not already set and persists.
// Returns true when the unlock is new. Re-unlocking is a no-op.
func (s *Store) Unlock(ctx context.Context, owner string, kind game.Kind) (bool, error) {
	records := s.loadRecords(ctx, owner)
	for _, r := range records {
		if r.Kind == kind {
			return false, nil
		}
	}
	records = append(records, unlockRecord{Kind: kind, UnlockedAt: time.Now().UTC()})
	return true, s.save(ctx, owner, records)
}

// Reset clears all unlocks back to the locked catalog.
func (s *Store) Reset(ctx context.Context, owner string) error {
	return s.save(ctx, owner, []unlockRecord{})
}

func (s *Store) loadRecords(ctx context.Context, owner string) []unlockRecord {
	raw, err := s.prefs.Load(ctx, owner, storageKey)
	if err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("load achievements")
		return nil
	}
	if len(raw) == 0 {
		return nil
	}
	var records []unlockRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("decode achievements")
		return nil
	}
	return records
}

func (s *Store) save(ctx context.Context, owner string, records []unlockRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.prefs.Save(ctx, owner, storageKey, raw)
}
