package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/aws-reservations/model"
)

func TestMemoryReplaceAllSupersedesNamespace(t *testing.T) {
	memory := NewMemoryService()
	ctx := context.Background()

	err := memory.ReplaceAll(ctx, "reports", []model.CacheEntry{
		{ID: "latest", Attributes: map[string]any{"run": "one"}},
		{ID: "stale", Attributes: map[string]any{"run": "one"}},
	})
	require.NoError(t, err)

	err = memory.ReplaceAll(ctx, "reports", []model.CacheEntry{
		{ID: "latest", Attributes: map[string]any{"run": "two"}},
	})
	require.NoError(t, err)

	entries, err := memory.List(ctx, "reports")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "latest", entries[0].ID)
	assert.Equal(t, "two", entries[0].Attributes["run"])

	// The superseded entry is gone, not just shadowed.
	stale, err := memory.Get(ctx, "reports", "stale")
	require.NoError(t, err)
	assert.Nil(t, stale)
}

func TestMemoryNamespacesAreIsolated(t *testing.T) {
	memory := NewMemoryService()
	ctx := context.Background()

	require.NoError(t, memory.ReplaceAll(ctx, "a", []model.CacheEntry{{ID: "x"}}))
	require.NoError(t, memory.ReplaceAll(ctx, "b", []model.CacheEntry{{ID: "y"}}))
	require.NoError(t, memory.ReplaceAll(ctx, "a", nil))

	entriesA, err := memory.List(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, entriesA)

	entriesB, err := memory.List(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, entriesB, 1)
}

func TestMemoryGetMissingEntry(t *testing.T) {
	memory := NewMemoryService()

	entry, err := memory.Get(context.Background(), "reports", "latest")
	require.NoError(t, err)
	assert.Nil(t, entry)
}
