package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/adminkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestComponent(t *testing.T) {
	t.Parallel()
	attr := logger.Component("session")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "session", attr.Value.String())
}

func TestEvent(t *testing.T) {
	t.Parallel()
	attr := logger.Event("token_rotated")
	require.Equal(t, "event", attr.Key)
	assert.Equal(t, "token_rotated", attr.Value.String())
}

func TestKey(t *testing.T) {
	t.Parallel()
	attr := logger.Key("access-token")
	require.Equal(t, "key", attr.Key)
	assert.Equal(t, "access-token", attr.Value.String())

	empty := logger.Key("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestUserID(t *testing.T) {
	t.Parallel()
	attr := logger.UserID("42")
	require.Equal(t, "user_id", attr.Key)
	assert.Equal(t, "42", attr.Value.String())

	empty := logger.UserID("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestStatus(t *testing.T) {
	t.Parallel()
	attr := logger.Status(401)
	require.Equal(t, "status", attr.Key)
	assert.Equal(t, int64(401), attr.Value.Int64())
}

func TestDuration(t *testing.T) {
	t.Parallel()
	d := 5 * time.Second
	attr := logger.Duration(d)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	start := time.Now().Add(-500 * time.Millisecond)
	attr := logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), 500*time.Millisecond)
}
