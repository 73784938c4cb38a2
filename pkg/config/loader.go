package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/validation"
)

// Validatable is implemented by config structs that check their own values.
type Validatable interface {
	Validate() validation.Result
}

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)
)

var dotenv sync.Once

// Load parses environment variables into v. The first successful load of a
// type is cached and returned for later calls.
func Load[T any](v *T) error {
	dotenv.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := validate(&parsed); err != nil {
		return err
	}

	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment.
// Variables that are already set are not overridden.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache forgets every loaded configuration.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	clear(cache)
}

func validate(v any) error {
	var r validation.Result
	switch c := v.(type) {
	case Validatable:
		r = c.Validate()
	default:
		return nil
	}
	if err := r.Err(fmt.Sprintf("%T", v)); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
