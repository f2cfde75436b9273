package credstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/adminkit/core/credstore"
)

// fakeClock is an adjustable time source for expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// storeFactory builds a fresh store for the shared contract tests.
type storeFactory func(t *testing.T, clock *fakeClock, opts ...credstore.Option) credstore.Store

func memoryFactory(_ *testing.T, clock *fakeClock, opts ...credstore.Option) credstore.Store {
	opts = append([]credstore.Option{credstore.WithClock(clock.Now)}, opts...)
	return credstore.NewMemoryStore(opts...)
}

func fileFactory(t *testing.T, clock *fakeClock, opts ...credstore.Option) credstore.Store {
	t.Helper()
	opts = append([]credstore.Option{credstore.WithClock(clock.Now)}, opts...)
	store, err := credstore.NewFileStore(t.TempDir(), opts...)
	require.NoError(t, err)
	return store
}

func TestStoreContract(t *testing.T) {
	t.Parallel()

	factories := map[string]storeFactory{
		"memory": memoryFactory,
		"file":   fileFactory,
	}

	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			t.Run("put then get round-trips the value", func(t *testing.T) {
				t.Parallel()

				store := factory(t, newFakeClock())
				ctx := context.Background()

				store.Put(ctx, "access-token", "T1")

				var got string
				require.True(t, store.Get(ctx, "access-token", &got))
				assert.Equal(t, "T1", got)
			})

			t.Run("get of an absent key reports not found", func(t *testing.T) {
				t.Parallel()

				store := factory(t, newFakeClock())

				got := "fallback"
				assert.False(t, store.Get(context.Background(), "missing", &got))
				assert.Equal(t, "fallback", got, "dest stays untouched so the default wins")
			})

			t.Run("put overwrites an existing entry", func(t *testing.T) {
				t.Parallel()

				store := factory(t, newFakeClock())
				ctx := context.Background()

				store.Put(ctx, "k", "old")
				store.Put(ctx, "k", "new")

				var got string
				require.True(t, store.Get(ctx, "k", &got))
				assert.Equal(t, "new", got)
			})

			t.Run("entry with ttl expires under the simulated clock", func(t *testing.T) {
				t.Parallel()

				clock := newFakeClock()
				store := factory(t, clock)
				ctx := context.Background()

				store.Put(ctx, "short-lived", "v", credstore.WithTTL(time.Second))
				clock.Advance(2 * time.Second)

				got := "default"
				assert.False(t, store.Get(ctx, "short-lived", &got))
				assert.Equal(t, "default", got)
				assert.NotContains(t, store.Keys(ctx), "short-lived", "expired read deletes the entry")
			})

			t.Run("keys lists expired entries until they are read", func(t *testing.T) {
				t.Parallel()

				clock := newFakeClock()
				store := factory(t, clock)
				ctx := context.Background()

				store.Put(ctx, "stale", "v", credstore.WithTTL(time.Second))
				clock.Advance(time.Minute)

				assert.Contains(t, store.Keys(ctx), "stale")
			})

			t.Run("entry without ttl never expires", func(t *testing.T) {
				t.Parallel()

				clock := newFakeClock()
				store := factory(t, clock)
				ctx := context.Background()

				store.Put(ctx, "durable", "v")
				clock.Advance(1000 * time.Hour)

				var got string
				assert.True(t, store.Get(ctx, "durable", &got))
			})

			t.Run("remove deletes and tolerates absent keys", func(t *testing.T) {
				t.Parallel()

				store := factory(t, newFakeClock())
				ctx := context.Background()

				store.Put(ctx, "k", "v")
				store.Remove(ctx, "k")
				store.Remove(ctx, "k")

				assert.False(t, store.Get(ctx, "k", new(string)))
				assert.Empty(t, store.Keys(ctx))
			})

			t.Run("structured values round-trip", func(t *testing.T) {
				t.Parallel()

				store := factory(t, newFakeClock())
				ctx := context.Background()

				type profile struct {
					UserID string   `json:"userId"`
					Roles  []string `json:"roles"`
				}
				store.Put(ctx, "user-profile", profile{UserID: "1", Roles: []string{"SUPER_ADMIN"}})

				var got profile
				require.True(t, store.Get(ctx, "user-profile", &got))
				assert.Equal(t, "1", got.UserID)
				assert.Equal(t, []string{"SUPER_ADMIN"}, got.Roles)
			})

			t.Run("unserializable value is swallowed and reported to the hook", func(t *testing.T) {
				t.Parallel()

				var mu sync.Mutex
				var failures []string
				hook := func(op, key string, err error) {
					mu.Lock()
					failures = append(failures, op+":"+key)
					mu.Unlock()
					assert.Error(t, err)
				}
				store := factory(t, newFakeClock(), credstore.WithFailureHook(hook))
				ctx := context.Background()

				store.Put(ctx, "bad", func() {})

				assert.False(t, store.Get(ctx, "bad", new(string)))
				mu.Lock()
				defer mu.Unlock()
				assert.Equal(t, []string{"put:bad"}, failures)
			})

			t.Run("type mismatch on read is swallowed and reported", func(t *testing.T) {
				t.Parallel()

				var mu sync.Mutex
				var failures []string
				hook := func(op, key string, err error) {
					mu.Lock()
					failures = append(failures, op+":"+key)
					mu.Unlock()
				}
				store := factory(t, newFakeClock(), credstore.WithFailureHook(hook))
				ctx := context.Background()

				store.Put(ctx, "k", "a string")

				var got int
				assert.False(t, store.Get(ctx, "k", &got))
				mu.Lock()
				defer mu.Unlock()
				assert.Equal(t, []string{"get:k"}, failures)
			})
		})
	}
}

func TestFileStore_Durability(t *testing.T) {
	t.Parallel()

	t.Run("entries survive reopening the store", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		ctx := context.Background()

		first, err := credstore.NewFileStore(dir)
		require.NoError(t, err)
		first.Put(ctx, "access-token", "T1", credstore.WithTTL(24*time.Hour))

		second, err := credstore.NewFileStore(dir)
		require.NoError(t, err)

		var got string
		require.True(t, second.Get(ctx, "access-token", &got))
		assert.Equal(t, "T1", got)
	})

	t.Run("keys with path separators stay inside the directory", func(t *testing.T) {
		t.Parallel()

		store, err := credstore.NewFileStore(t.TempDir())
		require.NoError(t, err)
		ctx := context.Background()

		store.Put(ctx, "../escape", "v")

		var got string
		require.True(t, store.Get(ctx, "../escape", &got))
		assert.Equal(t, "v", got)
		assert.Contains(t, store.Keys(ctx), "../escape")
	})
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := credstore.NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := []string{"a", "b", "c"}[i%3]
			for j := range 100 {
				switch j % 4 {
				case 0:
					store.Put(ctx, key, j)
				case 1:
					store.Get(ctx, key, new(int))
				case 2:
					store.Keys(ctx)
				case 3:
					store.Remove(ctx, key)
				}
			}
		}()
	}
	wg.Wait()
}
