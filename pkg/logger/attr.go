package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit nil checks.

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the emitting subsystem (e.g. "credstore", "session").
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a lifecycle event (e.g. "login", "logout", "token_rotated").
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Key creates an attribute for a credential-store key.
// Returns empty Attr for empty keys.
func Key(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("key", key)
}

// UserID creates an attribute for the authenticated user identifier.
// Returns empty Attr for empty IDs.
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// Status creates an attribute for an HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
