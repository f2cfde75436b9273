package apiclient

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds API client configuration loadable through core/config.
type Config struct {
	BaseURL     string        `env:"API_BASE_URL,required"`
	Timeout     time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
	RefreshPath string        `env:"API_REFRESH_PATH" envDefault:"/auth/refresh"`
}

// Option is a functional option for configuring the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithTokenSource wires the session whose access token authorizes requests
// and which receives rotated tokens after a silent refresh.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithRefreshPath sets the refresh endpoint path. Default: "/auth/refresh".
func WithRefreshPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.refreshPath = path
		}
	}
}

// WithRefreshLeeway refreshes JWT access tokens this long before their exp
// claim instead of waiting for a 401. Opaque tokens are unaffected.
// Default: 30s.
func WithRefreshLeeway(leeway time.Duration) Option {
	return func(c *Client) {
		if leeway > 0 {
			c.refreshLeeway = leeway
		}
	}
}

// WithRateLimit throttles outgoing requests client-side.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps > 0 && burst > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithLogger sets the logger for refresh and transport events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = logger
		}
	}
}
