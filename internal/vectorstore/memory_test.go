package vectorstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SearchOrdersBySimilarity(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "book1_character", "a", []float32{1, 0, 0}, map[string]any{"name": "luna"}))
	require.NoError(t, store.Insert(ctx, "book1_character", "b", []float32{0, 1, 0}, map[string]any{"name": "kai"}))
	require.NoError(t, store.Insert(ctx, "book1_character", "c", []float32{0.9, 0.1, 0}, map[string]any{"name": "luna"}))

	matches, err := store.Search(ctx, "book1_character", []float32{1, 0, 0}, 2, nil)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "a", matches[0].ID)
	assert.Equal(t, "c", matches[1].ID)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestMemoryStore_SearchFilter(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "coll", "a", []float32{1, 0}, map[string]any{"name": "luna"}))
	require.NoError(t, store.Insert(ctx, "coll", "b", []float32{1, 0}, map[string]any{"name": "kai"}))

	matches, err := store.Search(ctx, "coll", []float32{1, 0}, 10, map[string]any{"name": "kai"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].ID)
}

func TestMemoryStore_UnknownCollection(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Search(context.Background(), "missing", []float32{1}, 1, nil)
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestMemoryStore_InsertUpsertsByID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "coll", "a", []float32{1, 0}, nil))
	require.NoError(t, store.Insert(ctx, "coll", "a", []float32{0, 1}, nil))

	count, err := store.Count(ctx, "coll")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	matches, err := store.Search(ctx, "coll", []float32{0, 1}, 1, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2}, []float32{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
}
