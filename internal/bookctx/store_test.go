package bookctx

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"promptgen-server/internal/cache"
	"promptgen-server/internal/models"
)

func newTestStore() *Store {
	return NewStore(NewMemoryRepository(), cache.NewMemoryCache(), zap.NewNop())
}

func TestStore_GetUnknownBookReturnsEmptyContext(t *testing.T) {
	store := newTestStore()

	bctx, err := store.Get(context.Background(), "book-404")

	require.NoError(t, err)
	assert.Equal(t, "book-404", bctx.BookID)
	assert.Empty(t, bctx.Characters)
	assert.Equal(t, int64(0), bctx.Version)
}

func TestStore_UpdatePersistsAndBumpsVersion(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	_, err := store.Update(ctx, "book-1", func(bctx *models.BookContext) error {
		bctx.AddCharacter(&models.CharacterProfile{Name: "Luna", Appearance: "silver hair"})
		return nil
	})
	require.NoError(t, err)

	loaded, err := store.Get(ctx, "book-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.Version)
	require.NotNil(t, loaded.GetCharacter("luna"))
	assert.Equal(t, "silver hair", loaded.GetCharacter("Luna").Appearance)
}

func TestStore_ColdLoadFromRepositoryIsLossless(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	original := models.NewBookContext("book-1")
	original.AddCharacter(&models.CharacterProfile{Name: "Luna", Eyes: "green", GenerationCount: 3})
	original.Version = 7
	require.NoError(t, repo.Save(ctx, original))

	// Свежий Store с пустым кэшем - загрузка идет из репозитория.
	store := NewStore(repo, cache.NewMemoryCache(), zap.NewNop())
	loaded, err := store.Get(ctx, "book-1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), loaded.Version)
	character := loaded.GetCharacter("Luna")
	require.NotNil(t, character)
	assert.Equal(t, "green", character.Eyes)
	assert.Equal(t, 3, character.GenerationCount)
}

func TestStore_ConcurrentUpdatesBothApplied(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, "book-1", func(bctx *models.BookContext) error {
				bctx.CurrentPage++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	loaded, err := store.Get(ctx, "book-1")
	require.NoError(t, err)
	assert.Equal(t, writers, loaded.CurrentPage)
	assert.Equal(t, int64(writers), loaded.Version)
}

func TestStore_UpdateErrorDoesNotPersist(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	_, err := store.Update(ctx, "book-1", func(bctx *models.BookContext) error {
		bctx.CurrentPage = 42
		return assert.AnError
	})
	require.Error(t, err)

	loaded, err := store.Get(ctx, "book-1")
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.CurrentPage)
	assert.Equal(t, int64(0), loaded.Version)
}
