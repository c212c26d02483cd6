package redis

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trifall/link-shortener-ui/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestStore_SetAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStore(client)
	ctx := context.Background()

	err := store.Set(ctx, "link-shortener-settings", `{"saveKey":true}`)
	require.NoError(t, err)

	val, ok, err := store.Get(ctx, "link-shortener-settings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"saveKey":true}`, val)
}

func TestStore_GetMissing(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStore(client)

	val, ok, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "to-delete", "x"))
	require.NoError(t, store.Delete(ctx, "to-delete"))

	_, ok, err := store.Get(ctx, "to-delete")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is a no-op.
	require.NoError(t, store.Delete(ctx, "to-delete"))
}

func TestStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStoreWithPrefix(client, "test-prefix:")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "settings", "v"))

	exists := client.Exists(ctx, "test-prefix:settings").Val()
	assert.Equal(t, int64(1), exists)

	ttl := client.TTL(ctx, "test-prefix:settings").Val()
	assert.Less(t, int64(ttl), int64(0), "values should not expire")
}

func TestStore_EmptyKey(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStore(client)
	ctx := context.Background()

	err := store.Set(ctx, "", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key cannot be empty")

	_, _, err = store.Get(ctx, "")
	require.Error(t, err)

	require.NoError(t, store.Delete(ctx, ""))
}
