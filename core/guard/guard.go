package guard

import "context"

// Decision is the outcome of a navigation-time authorization check.
type Decision int

const (
	// Proceed allows the navigation immediately.
	Proceed Decision = iota
	// RedirectToLogin denies the navigation and sends the user to login.
	RedirectToLogin
	// ProceedAfterFetch allows the navigation once the user profile has
	// been fetched. Resolve executes this branch.
	ProceedAfterFetch
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case RedirectToLogin:
		return "redirect-to-login"
	case ProceedAfterFetch:
		return "proceed-after-fetch"
	default:
		return "unknown"
	}
}

// SessionState is the slice of the session manager the guard consumes.
// *session.Manager satisfies it.
type SessionState interface {
	IsAuthenticated() bool
	HasProfile() bool
	FetchProfile(ctx context.Context) error
}

// Evaluate applies the guard decision table to the current session state.
//
//	requires auth | authenticated | profile | decision
//	no            | any           | any     | Proceed
//	yes           | false         | any     | RedirectToLogin
//	yes           | true          | true    | Proceed
//	yes           | true          | false   | ProceedAfterFetch
func Evaluate(requiresAuth bool, sess SessionState) Decision {
	if !requiresAuth {
		return Proceed
	}
	if !sess.IsAuthenticated() {
		return RedirectToLogin
	}
	if sess.HasProfile() {
		return Proceed
	}
	return ProceedAfterFetch
}

// Resolve evaluates the decision table and executes the ProceedAfterFetch
// branch: it awaits the profile fetch and downgrades to RedirectToLogin if
// the fetch fails, returning the fetch error alongside for logging.
// The returned decision is always Proceed or RedirectToLogin.
func Resolve(ctx context.Context, requiresAuth bool, sess SessionState) (Decision, error) {
	decision := Evaluate(requiresAuth, sess)
	if decision != ProceedAfterFetch {
		return decision, nil
	}

	if err := sess.FetchProfile(ctx); err != nil {
		return RedirectToLogin, err
	}
	return Proceed, nil
}
