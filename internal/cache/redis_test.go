package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedis(client, ttl)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedis_SetGet(t *testing.T) {
	store, _ := newTestRedis(t, time.Minute)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "items:search:pune:dosa")
	require.NoError(t, err)
	assert.False(t, ok)

	payload := []byte(`[{"id":3,"name":"Mysore Dosa"}]`)
	require.NoError(t, store.Set(ctx, "items:search:pune:dosa", payload))

	got, ok, err := store.Get(ctx, "items:search:pune:dosa")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestRedis_ExpiryAfterTTL(t *testing.T) {
	store, mr := newTestRedis(t, 5*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "items:city:pune", []byte(`[]`)))

	mr.FastForward(5*time.Minute + time.Second)

	_, ok, err := store.Get(ctx, "items:city:pune")
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire after ttl")
}

func TestRedis_GetErrorOnClosedServer(t *testing.T) {
	store, mr := newTestRedis(t, time.Minute)
	mr.Close()

	_, ok, err := store.Get(context.Background(), "items:city:pune")
	assert.Error(t, err)
	assert.False(t, ok)
}
