package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetDelete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "link-shortener-settings", `{"saveKey":true}`))
	v, ok, err := store.Get(ctx, "link-shortener-settings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"saveKey":true}`, v)

	require.NoError(t, store.Set(ctx, "link-shortener-settings", `{"saveKey":false}`))
	v, _, _ = store.Get(ctx, "link-shortener-settings")
	assert.Equal(t, `{"saveKey":false}`, v)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "link-shortener-settings"))
	_, ok, err = store.Get(ctx, "link-shortener-settings")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting a missing key is fine
	require.NoError(t, store.Delete(ctx, "link-shortener-settings"))
	require.NoError(t, store.Delete(ctx, ""))
}

func TestStore_EmptyKey(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, _, err := store.Get(ctx, "")
	require.Error(t, err)
	require.Error(t, store.Set(ctx, "", "v"))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, "k", "v")
			_, _, _ = store.Get(ctx, "k")
		}()
	}
	wg.Wait()

	v, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
