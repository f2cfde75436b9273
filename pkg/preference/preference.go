package preference

import (
	"context"
	"strings"
	"time"

	"github.com/gamevault/adminkit/core/credstore"
)

// Key prefixes separating user preferences from response caches within a
// shared credential store.
const (
	preferencePrefix = "pref_"
	cachePrefix      = "cache_"
)

// defaultCacheTTL bounds cached server responses.
const defaultCacheTTL = time.Hour

// Namespace scopes a credential store under a key prefix, so unrelated
// client-side state can share one backend without key collisions.
type Namespace struct {
	store      credstore.Store
	prefix     string
	defaultTTL time.Duration
}

// NewPreferences creates the user-preference namespace. Entries never
// expire on their own.
func NewPreferences(store credstore.Store) *Namespace {
	return &Namespace{store: store, prefix: preferencePrefix}
}

// NewCache creates the response-cache namespace with a 1-hour default TTL.
func NewCache(store credstore.Store) *Namespace {
	return &Namespace{store: store, prefix: cachePrefix, defaultTTL: defaultCacheTTL}
}

// NewNamespace creates a namespace with a custom prefix and no default TTL.
func NewNamespace(store credstore.Store, prefix string) *Namespace {
	return &Namespace{store: store, prefix: prefix}
}

// Set stores a value under the namespaced key. A TTL argument overrides
// the namespace default; pass none to use it.
func (n *Namespace) Set(ctx context.Context, key string, value any, ttl ...time.Duration) {
	effective := n.defaultTTL
	if len(ttl) > 0 {
		effective = ttl[0]
	}

	if effective > 0 {
		n.store.Put(ctx, n.prefix+key, value, credstore.WithTTL(effective))
		return
	}
	n.store.Put(ctx, n.prefix+key, value)
}

// Get reads a value by its namespaced key, reporting whether a live entry
// was found.
func (n *Namespace) Get(ctx context.Context, key string, dest any) bool {
	return n.store.Get(ctx, n.prefix+key, dest)
}

// Remove deletes a single entry.
func (n *Namespace) Remove(ctx context.Context, key string) {
	n.store.Remove(ctx, n.prefix+key)
}

// Keys returns the namespace's keys with the prefix stripped.
func (n *Namespace) Keys(ctx context.Context) []string {
	var keys []string
	for _, key := range n.store.Keys(ctx) {
		if strings.HasPrefix(key, n.prefix) {
			keys = append(keys, strings.TrimPrefix(key, n.prefix))
		}
	}
	return keys
}

// Clear removes every entry in the namespace, leaving the rest of the
// store untouched.
func (n *Namespace) Clear(ctx context.Context) {
	for _, key := range n.store.Keys(ctx) {
		if strings.HasPrefix(key, n.prefix) {
			n.store.Remove(ctx, key)
		}
	}
}
