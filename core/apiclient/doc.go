// Package apiclient implements the session manager's HTTP capability over
// net/http: base-URL resolution, JSON request and response bodies, bearer
// authorization from a token source, per-request IDs, optional client-side
// rate limiting, and silent access-token refresh.
//
// # Silent Refresh
//
// When a request comes back 401 and a token source is wired, the client
// posts the refresh token to the refresh endpoint, rotates the new access
// token into the session, and retries the original request once. If the
// refresh itself fails — the refresh token is gone or rejected — the client
// logs the session out and returns the original 401, leaving the guard to
// redirect to login. Concurrent refreshes are single-flighted.
//
// Access tokens that happen to be JWTs are additionally refreshed shortly
// before their exp claim to avoid the extra round trip; opaque tokens rely
// on the 401 path alone.
//
// # Usage
//
//	client, err := apiclient.New("https://api.example.com",
//		apiclient.WithTimeout(10*time.Second),
//		apiclient.WithRateLimit(20, 5),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mgr := session.NewManager(client, store)
//
//	// Wire the refresh loop after both exist.
//	client.SetTokenSource(mgr)
//
// The two-step wiring above exists because the client authorizes requests
// with the manager's token while the manager issues its login and profile
// calls through the client.
package apiclient
