// Package guard decides, once per navigation attempt, whether the current
// session may proceed to its target. The decision is a pure function of
// the target's auth requirement and the session state; Resolve additionally
// executes the fetch-then-proceed branch.
//
//	decision, err := guard.Resolve(ctx, route.RequiresAuth, sessionManager)
//	switch decision {
//	case guard.Proceed:
//		// render the page
//	case guard.RedirectToLogin:
//		// err carries the profile-fetch failure when one caused the redirect
//	}
//
// Navigations are expected to be serialized by the caller: one decision,
// including any awaited profile fetch, completes before the next begins.
package guard
