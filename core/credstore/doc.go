// Package credstore provides durable best-effort key-value persistence for
// credentials and small client-side state, with optional per-key expiry.
//
// Every value is wrapped in an envelope carrying its write timestamp and an
// optional absolute expiry. Reads of expired entries delete the entry and
// report not-found, so callers always fall back to their own default value.
//
// The store boundary swallows all backend failures: quota exhaustion,
// serialization errors, and I/O errors turn writes into no-ops and reads
// into not-found results. Swallowed failures are logged and, when a failure
// hook is configured, reported to it so tests can assert on best-effort
// behavior.
//
// # Basic Usage
//
//	store := credstore.NewMemoryStore()
//
//	store.Put(ctx, "access-token", "T1", credstore.WithTTL(24*time.Hour))
//
//	var token string
//	if store.Get(ctx, "access-token", &token) {
//		// token == "T1"
//	}
//
// # Backends
//
// Three backends are provided:
//
//   - MemoryStore: in-process map, for tests and ephemeral tooling
//   - FileStore: one JSON file per key with atomic writes, survives restarts
//   - RedisStore: shared cache with native server-side TTLs
//
// # Observing Failures
//
//	store := credstore.NewMemoryStore(
//		credstore.WithLogger(log),
//		credstore.WithFailureHook(func(op, key string, err error) {
//			metrics.Count("credstore_failure", op)
//		}),
//	)
//
// # Testing Expiry
//
// The clock is injectable, so expiry can be exercised without sleeping:
//
//	now := time.Now()
//	store := credstore.NewMemoryStore(credstore.WithClock(func() time.Time { return now }))
//	store.Put(ctx, "k", "v", credstore.WithTTL(time.Second))
//	now = now.Add(2 * time.Second)
//	store.Get(ctx, "k", &v) // false: entry expired and deleted
package credstore
