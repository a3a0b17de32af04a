package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache   sync.Map // reflect.Type -> parsed config value
	envOnce sync.Once
)

// Load populates cfg from environment variables using `env` struct tags.
// A .env file in the working directory is loaded once per process before
// the first parse. Each config type is parsed once and cached; later calls
// for the same type return the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}

	envOnce.Do(func() {
		// Missing .env files are fine; the environment is authoritative
		_ = godotenv.Load()
	})

	t := reflect.TypeFor[T]()
	if v, ok := cache.Load(t); ok {
		*cfg = v.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}

	actual, _ := cache.LoadOrStore(t, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load but panics on failure. Intended for application startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
