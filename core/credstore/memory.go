package credstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore implements Store using an in-process map. Entries do not
// survive restarts; it is the default backend for tests and for tools that
// do not need durable credentials.
type MemoryStore struct {
	settings

	mu      sync.RWMutex
	entries map[string]envelope
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{
		settings: newSettings(opts),
		entries:  make(map[string]envelope),
	}
}

func (ms *MemoryStore) Put(ctx context.Context, key string, value any, opts ...PutOption) {
	env, err := ms.seal(value, opts)
	if err != nil {
		ms.fail(ctx, "put", key, err)
		return
	}

	ms.mu.Lock()
	ms.entries[key] = env
	ms.mu.Unlock()
}

func (ms *MemoryStore) Get(ctx context.Context, key string, dest any) bool {
	ms.mu.RLock()
	env, ok := ms.entries[key]
	ms.mu.RUnlock()
	if !ok {
		return false
	}

	if env.expired(ms.clock()) {
		ms.mu.Lock()
		delete(ms.entries, key)
		ms.mu.Unlock()
		return false
	}

	if err := json.Unmarshal(env.Value, dest); err != nil {
		ms.fail(ctx, "get", key, err)
		return false
	}
	return true
}

func (ms *MemoryStore) Remove(_ context.Context, key string) {
	ms.mu.Lock()
	delete(ms.entries, key)
	ms.mu.Unlock()
}

func (ms *MemoryStore) Keys(_ context.Context) []string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	keys := make([]string, 0, len(ms.entries))
	for key := range ms.entries {
		keys = append(keys, key)
	}
	return keys
}
