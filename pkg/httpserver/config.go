package httpserver

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/validation"
)

type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Validate checks the settings. Zero timeouts mean "use the default".
func (c Config) Validate() validation.Result {
	return validation.Merge(
		validation.NotNullOrEmpty(&c.Addr, "HTTP_ADDR"),
		notNegative(c.ReadTimeout, "HTTP_READ_TIMEOUT"),
		notNegative(c.WriteTimeout, "HTTP_WRITE_TIMEOUT"),
		notNegative(c.IdleTimeout, "HTTP_IDLE_TIMEOUT"),
		notNegative(c.ShutdownTimeout, "HTTP_SHUTDOWN_TIMEOUT"),
	)
}

func notNegative(d time.Duration, name string) validation.Result {
	if d < 0 {
		return validation.Error(fmt.Sprintf("%s should not be negative, got %s", name, d))
	}
	return validation.Ok()
}

// NewFromConfig creates a Server from cfg. Options are applied after the config.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	base := []Option{
		WithAddr(cfg.Addr),
		WithReadTimeout(cfg.ReadTimeout),
		WithWriteTimeout(cfg.WriteTimeout),
		WithIdleTimeout(cfg.IdleTimeout),
	}
	if cfg.ShutdownTimeout > 0 {
		base = append(base, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	return build(append(base, opts...))
}
