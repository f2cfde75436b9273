package guard

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gamevault/adminkit/pkg/logger"
)

// MiddlewareConfig configures the HTTP middleware adapter.
type MiddlewareConfig struct {
	// Session is the session state consulted per request (required).
	Session SessionState
	// LoginURL is the redirect target for denied navigations.
	// Default: "/login".
	LoginURL string
	// RequiresAuth decides per request whether the target needs
	// authentication. Default: every request does.
	RequiresAuth func(r *http.Request) bool
	// Logger for fetch failures (default: discard).
	Logger *slog.Logger
}

// Middleware applies the guard once per request: it resolves the decision
// table, awaiting a profile fetch when needed, and either forwards the
// request or redirects to the login URL.
func Middleware(cfg MiddlewareConfig) func(http.Handler) http.Handler {
	if cfg.Session == nil {
		panic("guard middleware: session is required")
	}
	if cfg.LoginURL == "" {
		cfg.LoginURL = "/login"
	}
	if cfg.RequiresAuth == nil {
		cfg.RequiresAuth = func(*http.Request) bool { return true }
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, err := Resolve(r.Context(), cfg.RequiresAuth(r), cfg.Session)
			if err != nil {
				cfg.Logger.WarnContext(r.Context(), "profile fetch failed during guard check",
					logger.Component("guard"), logger.Error(err))
			}

			if decision == RedirectToLogin {
				http.Redirect(w, r, cfg.LoginURL, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
