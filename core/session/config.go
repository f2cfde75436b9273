package session

import (
	"log/slog"
	"time"
)

// Fixed credential-store keys. The access and refresh tokens hydrate
// eagerly at construction; the profile slot is read lazily on first use.
const (
	KeyAccessToken  = "access-token"
	KeyRefreshToken = "refresh-token"
	KeyUserProfile  = "user-profile"
)

// Config holds session manager configuration. The env tags allow loading
// through core/config in applications that configure via environment.
type Config struct {
	// AccessTokenTTL bounds how long a persisted access token survives
	// a restart before the user must re-authenticate.
	AccessTokenTTL time.Duration `env:"SESSION_ACCESS_TOKEN_TTL" envDefault:"24h"`
	// RefreshTokenTTL bounds the persisted refresh token.
	RefreshTokenTTL time.Duration `env:"SESSION_REFRESH_TOKEN_TTL" envDefault:"168h"`

	LoginPath   string `env:"SESSION_LOGIN_PATH" envDefault:"/auth/login"`
	ProfilePath string `env:"SESSION_PROFILE_PATH" envDefault:"/user/profile"`
}

func defaultConfig() Config {
	return Config{
		AccessTokenTTL:  24 * time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		LoginPath:       "/auth/login",
		ProfilePath:     "/user/profile",
	}
}

// Option is a functional option for configuring the session manager.
type Option func(*Manager)

// WithConfig replaces the entire manager configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.cfg = cfg
	}
}

// WithAccessTokenTTL sets the persisted access token's time-to-live.
func WithAccessTokenTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.cfg.AccessTokenTTL = ttl
		}
	}
}

// WithRefreshTokenTTL sets the persisted refresh token's time-to-live.
func WithRefreshTokenTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.cfg.RefreshTokenTTL = ttl
		}
	}
}

// WithLoginPath sets the login endpoint path.
func WithLoginPath(path string) Option {
	return func(m *Manager) {
		if path != "" {
			m.cfg.LoginPath = path
		}
	}
}

// WithProfilePath sets the profile endpoint path.
func WithProfilePath(path string) Option {
	return func(m *Manager) {
		if path != "" {
			m.cfg.ProfilePath = path
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.log = logger
		}
	}
}
