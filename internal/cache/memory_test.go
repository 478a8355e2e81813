package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, found, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "key", "value", 0))
	got, found, err := c.Get(ctx, "key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "value", got)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", "v", 10*time.Millisecond))
	_, found, err := c.Get(ctx, "short")
	require.NoError(t, err)
	assert.True(t, found)

	time.Sleep(20 * time.Millisecond)
	_, found, err = c.Get(ctx, "short")
	require.NoError(t, err)
	assert.False(t, found, "запись должна истечь по TTL")
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_Incr(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	n, err := c.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = c.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// Не-числовое значение трактуется как ноль
	require.NoError(t, c.Set(ctx, "garbage", "abc", 0))
	n, err = c.Incr(ctx, "garbage")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryCache_IncrAfterExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "counter", "41", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	n, err := c.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "истекший счетчик начинается заново")

	got, found, err := c.Get(ctx, "counter")
	require.NoError(t, err)
	require.True(t, found, "новый счетчик не должен наследовать истекший TTL")
	assert.Equal(t, "1", got)
}

func TestMemoryCache_ExpireAndDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "v", 0))
	require.NoError(t, c.Expire(ctx, "key", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)
	_, found, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "other", "v", 0))
	require.NoError(t, c.Delete(ctx, "other"))
	_, found, err = c.Get(ctx, "other")
	require.NoError(t, err)
	assert.False(t, found)

	// Expire несуществующего ключа - no-op
	require.NoError(t, c.Expire(ctx, "ghost", time.Minute))
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Incr(ctx, "shared")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, found, err := c.Get(ctx, "shared")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "50", got)
}
