// internal/prefs/memory.go
//
// In-memory implementation of the prefs.Store interface.
// Used in tests and when durability is not required.
//
// Characteristics:
//   - Blobs keyed by owner and key in nested maps.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package prefs

import (
	"context"
	"sync"
)

// memory is a map-based Store implementation.
type memory struct {
	mu   sync.RWMutex                 // guards data
	data map[string]map[string][]byte // owner → key → value
}

// NewMemory constructs a new in-memory Store.
func NewMemory() Store {
	return &memory{data: make(map[string]map[string][]byte)}
}

// Load returns the stored blob, or nil if the key was never written.
func (m *memory) Load(ctx context.Context, owner, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if kv, ok := m.data[owner]; ok {
		if v, ok := kv[key]; ok {
			out := make([]byte, len(v))
			copy(out, v)
			return out, nil
		}
	}
	return nil, nil
}

// Save stores a copy of the blob.
func (m *memory) Save(ctx context.Context, owner, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kv, ok := m.data[owner]
	if !ok {
		kv = make(map[string][]byte)
		m.data[owner] = kv
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	kv[key] = stored
	return nil
}
