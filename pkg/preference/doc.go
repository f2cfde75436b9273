// Package preference layers named key namespaces over a credential store,
// letting user preferences, response caches, and other client-side state
// share one backend without key collisions.
//
// Two ready-made namespaces cover the common cases:
//
//	store := credstore.NewMemoryStore()
//
//	prefs := preference.NewPreferences(store) // durable, no expiry
//	prefs.Set(ctx, "theme", "dark")
//
//	cache := preference.NewCache(store) // entries expire after an hour
//	cache.Set(ctx, "user-list", users)
//
// A custom namespace takes any prefix:
//
//	drafts := preference.NewNamespace(store, "draft_")
//	drafts.Set(ctx, "announcement", body, 24*time.Hour)
//
// Set accepts an optional TTL that overrides the namespace default. Clear
// removes every entry under the namespace's prefix and nothing else.
package preference
