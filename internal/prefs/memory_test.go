package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	got, err := m.Load(ctx, "alice", "k")
	require.NoError(t, err)
	assert.Nil(t, got, "unwritten key loads as nil")

	require.NoError(t, m.Save(ctx, "alice", "k", []byte(`[1,2]`)))
	got, err = m.Load(ctx, "alice", "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), got)

	// Owners are isolated.
	got, err = m.Load(ctx, "bob", "k")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Overwrite replaces.
	require.NoError(t, m.Save(ctx, "alice", "k", []byte(`[]`)))
	got, _ = m.Load(ctx, "alice", "k")
	assert.Equal(t, []byte(`[]`), got)
}

func TestMemory_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Save(ctx, "a", "k", []byte("abc")))

	got, _ := m.Load(ctx, "a", "k")
	got[0] = 'z'
	again, _ := m.Load(ctx, "a", "k")
	assert.Equal(t, []byte("abc"), again)
}
