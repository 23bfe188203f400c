package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cache "github.com/veda-labs/jyotish/internal/adapters/cache"
)

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store := cache.NewRedis(mr.Addr())
	defer store.Close()

	ctx := context.Background()

	t.Run("miss before set", func(t *testing.T) {
		_, err := store.Get(ctx, "daily:leo:2026-08-29")
		assert.True(t, errors.Is(err, cache.ErrMiss))
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "daily:leo:2026-08-29", []byte(`{"text":"x"}`), time.Hour))

		got, err := store.Get(ctx, "daily:leo:2026-08-29")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"text":"x"}`), got)
	})

	t.Run("entries expire", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "daily:aries:2026-08-29", []byte("y"), time.Minute))
		mr.FastForward(2 * time.Minute)

		_, err := store.Get(ctx, "daily:aries:2026-08-29")
		assert.True(t, errors.Is(err, cache.ErrMiss))
	})
}

func TestNoopStore(t *testing.T) {
	ctx := context.Background()
	var store cache.Noop

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Hour))
	_, err := store.Get(ctx, "k")
	assert.True(t, errors.Is(err, cache.ErrMiss))
}
