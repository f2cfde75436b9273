package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamevault/adminkit/core/config"
)

// Each test uses its own config type: parsed values are cached per type,
// so sharing one struct across tests would leak state between them.

func TestLoad(t *testing.T) {
	t.Run("populates fields from the environment", func(t *testing.T) {
		type testConfig struct {
			BaseURL string        `env:"TEST_LOAD_BASE_URL"`
			Timeout time.Duration `env:"TEST_LOAD_TIMEOUT" envDefault:"15s"`
		}

		t.Setenv("TEST_LOAD_BASE_URL", "https://api.example.com")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
	})

	t.Run("caches the first parse per type", func(t *testing.T) {
		type testConfig struct {
			Value string `env:"TEST_CACHE_VALUE" envDefault:"first"`
		}

		var first testConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		t.Setenv("TEST_CACHE_VALUE", "second")

		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value, "cached value wins over a changed environment")
	})

	t.Run("reports missing required variables", func(t *testing.T) {
		type testConfig struct {
			Secret string `env:"TEST_REQUIRED_SECRET,required"`
		}

		var cfg testConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_REQUIRED_SECRET")
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type testConfig struct {
			Secret string `env:"TEST_MUST_SECRET,required"`
		}

		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds with defaults", func(t *testing.T) {
		type testConfig struct {
			Level string `env:"TEST_MUST_LEVEL" envDefault:"info"`
		}

		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "info", cfg.Level)
	})
}
