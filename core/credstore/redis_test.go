package credstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/adminkit/core/credstore"
)

func newRedisStore(t *testing.T, opts ...credstore.Option) (*credstore.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return credstore.NewRedisStore(client, opts), srv
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	t.Run("put then get round-trips the value", func(t *testing.T) {
		t.Parallel()

		store, _ := newRedisStore(t)
		ctx := context.Background()

		store.Put(ctx, "access-token", "T1")

		var got string
		require.True(t, store.Get(ctx, "access-token", &got))
		assert.Equal(t, "T1", got)
	})

	t.Run("keys are namespaced under the prefix", func(t *testing.T) {
		t.Parallel()

		store, srv := newRedisStore(t)
		ctx := context.Background()

		store.Put(ctx, "refresh-token", "R1")

		assert.True(t, srv.Exists("credstore:refresh-token"))
		assert.ElementsMatch(t, []string{"refresh-token"}, store.Keys(ctx))
	})

	t.Run("native ttl removes entries server-side", func(t *testing.T) {
		t.Parallel()

		store, srv := newRedisStore(t)
		ctx := context.Background()

		store.Put(ctx, "short-lived", "v", credstore.WithTTL(time.Second))
		srv.FastForward(2 * time.Second)

		assert.False(t, store.Get(ctx, "short-lived", new(string)))
		assert.Empty(t, store.Keys(ctx))
	})

	t.Run("envelope expiry honors an injected clock", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		store, _ := newRedisStore(t, credstore.WithClock(clock.Now))
		ctx := context.Background()

		store.Put(ctx, "short-lived", "v", credstore.WithTTL(time.Hour))
		clock.Advance(2 * time.Hour)

		assert.False(t, store.Get(ctx, "short-lived", new(string)))
		assert.Empty(t, store.Keys(ctx), "expired read deletes the redis key too")
	})

	t.Run("connection failure is swallowed and reported to the hook", func(t *testing.T) {
		t.Parallel()

		var failures []string
		hook := func(op, key string, err error) {
			failures = append(failures, op+":"+key)
		}

		srv := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		store := credstore.NewRedisStore(client, []credstore.Option{credstore.WithFailureHook(hook)})
		srv.Close()

		ctx := context.Background()
		store.Put(ctx, "k", "v")
		assert.False(t, store.Get(ctx, "k", new(string)))

		assert.Equal(t, []string{"put:k", "get:k"}, failures)
	})

	t.Run("custom prefix", func(t *testing.T) {
		t.Parallel()

		srv := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		store := credstore.NewRedisStore(client, nil, credstore.WithRedisPrefix("console:"))

		ctx := context.Background()
		store.Put(ctx, "k", "v")

		assert.True(t, srv.Exists("console:k"))
		assert.ElementsMatch(t, []string{"k"}, store.Keys(ctx))
	})
}
