// Package session manages the client-side authentication state of the
// admin console: the access token, the refresh token, and the cached user
// profile, kept consistent between memory and a durable credential store.
//
// # Session States
//
// A Manager moves through three observable states:
//
//   - Anonymous: no access token; IsAuthenticated() is false
//   - Authenticated without profile: token present, profile not yet fetched
//   - Authenticated with profile: token and full server-reported profile
//
// A successful Login lands in the second state with a partial profile built
// from the login response; FetchProfile upgrades to the third. Logout
// returns to Anonymous from any state.
//
// # Basic Usage
//
//	store, err := credstore.NewFileStore(dir)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mgr := session.NewManager(apiClient, store,
//		session.WithAccessTokenTTL(24*time.Hour),
//		session.WithLogger(log),
//	)
//
//	if err := mgr.Login(ctx, session.Credentials{Username: "admin", Password: pass}); err != nil {
//		// bad credentials: session state is untouched
//	}
//
//	if mgr.IsAdmin() {
//		// roles derived from the cached profile on every call
//	}
//
// # Consistency Guarantees
//
// Mutating operations are all-or-nothing: a failed Login or FetchProfile
// leaves both memory and the credential store exactly as they were. After
// any successful mutation the store holds the same values as memory for
// every affected key.
//
// Login and FetchProfile are serialized against each other; Logout is not,
// and always wins: a profile fetch that completes after a logout detects
// the changed session generation and discards its result instead of
// resurrecting the logged-out session.
//
// # External Collaborators
//
// The Manager only issues the login and profile calls itself, through the
// Client interface. Token refresh and server-side logout are transport
// concerns; see core/apiclient for the refresh flow that feeds RotateToken.
package session
