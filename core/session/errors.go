package session

import "errors"

var (
	// ErrAuthentication is returned when the login endpoint rejects the
	// supplied credentials. Safe to surface at the login form.
	ErrAuthentication = errors.New("authentication failed")
	// ErrNotAuthenticated is returned when an operation requires a live
	// access token and none is present. Reaching it usually indicates a
	// guard bug rather than a user-facing condition.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrProfileFetch is returned when the profile endpoint cannot be
	// reached or reports an error. The previously cached profile, if any,
	// survives the failure.
	ErrProfileFetch = errors.New("failed to fetch user profile")
)
