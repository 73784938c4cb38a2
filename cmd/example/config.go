package main

import (
	"github.com/dmitrymomot/validation"
	"github.com/dmitrymomot/validation/pkg/httpserver"
)

// AppConfig is loaded from the environment or a .env file.
type AppConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_NAME" envDefault:"validation-example"`

	HTTP httpserver.Config
}

func (c AppConfig) Validate() validation.Result {
	return validation.Merge(
		validation.NotNullAndMatches(&c.Env, "development|staging|production|dev|stage|prod", "APP_ENV"),
		validation.NotNullOrEmpty(&c.ServiceName, "APP_NAME"),
		c.HTTP.Validate(),
	)
}
