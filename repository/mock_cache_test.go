package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCache_GetSet(t *testing.T) {
	cache := NewMockCache()
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "solar:report:1", "payload"))
	val, ok := cache.Get(ctx, "solar:report:1")
	assert.True(t, ok)
	assert.Equal(t, "payload", val)
	assert.Equal(t, 1, cache.Len())
}

func TestMockCache_ConcurrentAccess(t *testing.T) {
	cache := NewMockCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				key := fmt.Sprintf("key_%d_%d", id, j)
				_ = cache.Set(ctx, key, "v")
				_, _ = cache.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 400, cache.Len())
}
