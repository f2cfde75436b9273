package credstore

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"
)

// Store defines durable best-effort key-value persistence with optional
// per-key expiry. Implementations never surface backend failures: writes
// degrade to no-ops and reads report not-found, with every swallowed
// failure logged and passed to the configured failure hook.
type Store interface {
	// Put serializes value with a write timestamp and optional expiry,
	// overwriting any existing entry for key.
	Put(ctx context.Context, key string, value any, opts ...PutOption)
	// Get deserializes the entry into dest and reports whether a live
	// entry was found. Expired entries are deleted on read and reported
	// as not found, leaving dest untouched so the caller's default wins.
	Get(ctx context.Context, key string, dest any) bool
	// Remove deletes the entry if present. Removing an absent key is not
	// an error.
	Remove(ctx context.Context, key string)
	// Keys returns all currently stored keys, including entries that have
	// expired but have not yet been deleted by a read.
	Keys(ctx context.Context) []string
}

// FailureHook observes failures swallowed at the store boundary.
// op is one of "put", "get", "remove", "keys".
type FailureHook func(op, key string, err error)

// envelope wraps every stored value with its write timestamp and optional
// absolute expiry, both in unix milliseconds.
type envelope struct {
	Value     json.RawMessage `json:"value"`
	WrittenAt int64           `json:"time"`
	ExpiresAt int64           `json:"expire,omitempty"`
}

func (e envelope) expired(now time.Time) bool {
	return e.ExpiresAt > 0 && e.ExpiresAt <= now.UnixMilli()
}

// PutOption configures a single Put call.
type PutOption func(*putOptions)

type putOptions struct {
	ttl time.Duration
}

// WithTTL sets the entry's time-to-live. Entries written without a TTL
// never expire.
func WithTTL(ttl time.Duration) PutOption {
	return func(o *putOptions) {
		o.ttl = ttl
	}
}

// Option configures a store backend.
type Option func(*settings)

type settings struct {
	clock  func() time.Time
	logger *slog.Logger
	hook   FailureHook
}

func newSettings(opts []Option) settings {
	s := settings{
		clock:  time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithClock overrides the time source used for write timestamps and expiry
// checks. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *settings) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger sets the logger for swallowed failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFailureHook registers a hook invoked for every swallowed failure,
// in addition to logging. Useful for test assertions on best-effort writes.
func WithFailureHook(hook FailureHook) Option {
	return func(s *settings) {
		s.hook = hook
	}
}

func (s settings) fail(ctx context.Context, op, key string, err error) {
	s.logger.ErrorContext(ctx, "credstore operation failed",
		slog.String("op", op), slog.String("key", key), slog.Any("error", err))
	if s.hook != nil {
		s.hook(op, key, err)
	}
}

func (s settings) seal(value any, opts []PutOption) (envelope, error) {
	var po putOptions
	for _, opt := range opts {
		opt(&po)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return envelope{}, err
	}

	now := s.clock()
	env := envelope{
		Value:     raw,
		WrittenAt: now.UnixMilli(),
	}
	if po.ttl > 0 {
		env.ExpiresAt = now.Add(po.ttl).UnixMilli()
	}
	return env, nil
}
