package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "cart", "[]"))
	v, ok, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	require.NoError(t, s.Remove(ctx, "cart"))
	require.NoError(t, s.Remove(ctx, "cart"))
	assert.Equal(t, 0, s.Len())
}

func TestNamespace_IsolatesSessions(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()
	a := Namespace(base, "guest:a")
	b := Namespace(base, "guest:b")

	require.NoError(t, a.Set(ctx, "cart", `[{"id":1}]`))

	_, ok, err := b.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err := base.Get(ctx, "guest:a:cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)

	require.NoError(t, b.Remove(ctx, "cart"))
	assert.Equal(t, 1, base.Len())
}

func TestRedisStore_GetMissing(t *testing.T) {
	store, _ := setupTestRedis(t, 0)

	v, ok, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestRedisStore_SetGetRemove(t *testing.T) {
	store, mr := setupTestRedis(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user:1:cart", "[]"))
	assert.True(t, mr.Exists("storefront:user:1:cart"))
	assert.Equal(t, time.Duration(0), mr.TTL("storefront:user:1:cart"))

	v, ok, err := store.Get(ctx, "user:1:cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	require.NoError(t, store.Remove(ctx, "user:1:cart"))
	assert.False(t, mr.Exists("storefront:user:1:cart"))
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart", "[]"))
	assert.Equal(t, time.Hour, mr.TTL("storefront:cart"))

	mr.FastForward(2 * time.Hour)
	_, ok, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := setupTestRedis(t, 0)
	mr.Close()

	_, _, err := store.Get(context.Background(), "cart")
	assert.Error(t, err)
	assert.Error(t, store.Set(context.Background(), "cart", "[]"))
}
