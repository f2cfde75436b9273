package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// loadDotEnv ensures .env files are read at most once per process.
	loadDotEnv sync.Once

	// cache holds one parsed value per configuration type.
	cache sync.Map // reflect.Type -> any
)

// Load populates cfg from environment variables, reading .env files on
// first use. Each configuration type is parsed once per process; later
// calls for the same type return the cached value.
func Load[T any](cfg *T) error {
	loadDotEnv.Do(func() {
		// Missing .env files are normal outside local development.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", key, err)
	}

	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load but panics on failure. Useful during application startup
// where a missing required variable should halt the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
