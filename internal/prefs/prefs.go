// internal/prefs/prefs.go
//
// Namespaced key/value collection store, the durable backing for score
// history and achievement progress. Values are opaque serialized blobs
// (JSON in practice) stored per owner under a fixed key, mirroring a
// client-side preferences store.
//
// Characteristics:
//   - Load returns nil (no error) when the key has never been written.
//   - Callers treat undecodable values as "no data"; a corrupt blob is
//     never surfaced to the user.

package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Store is the persistence contract. Implementations may be backed by
// SQLite (this package), memory (tests), or any other medium.
type Store interface {
	// Load returns the blob stored for (owner, key), or nil if absent.
	Load(ctx context.Context, owner, key string) ([]byte, error)

	// Save writes the blob for (owner, key), replacing any previous value.
	Save(ctx context.Context, owner, key string, value []byte) error
}

// SQL is the SQLite-backed Store over the kv table.
type SQL struct {
	db *sql.DB
}

// NewSQL constructs a Store over an open database handle.
func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

// Load fetches the value for (owner, key). A missing row is not an error.
func (s *SQL) Load(ctx context.Context, owner, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE owner_id=? AND key=?`, owner, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return value, nil
}

// Save upserts the value for (owner, key).
func (s *SQL) Save(ctx context.Context, owner, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO kv (owner_id, key, value, updated_at)
        VALUES (?,?,?,?)
        ON CONFLICT(owner_id, key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		owner, key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
