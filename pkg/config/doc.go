// Package config loads application settings from environment variables into
// tagged structs and checks them with the validation engine.
//
// Parsing is delegated to github.com/caarlos0/env/v11; a .env file in the
// working directory is read once through github.com/joho/godotenv before the
// first load. Each configuration type is parsed once and cached.
//
// A configuration struct may implement Validatable. Load calls Validate after
// parsing and returns ErrInvalidConfig joined with the *validation.Failure
// when the result has errors, so every bad setting is reported together:
//
//	type AppConfig struct {
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	    Name string `env:"APP_NAME" envDefault:"example"`
//	}
//
//	func (c AppConfig) Validate() validation.Result {
//	    return validation.Merge(
//	        validation.NotNullAndMatches(&c.Env, "development|staging|production", "APP_ENV"),
//	        validation.NotNullOrEmpty(&c.Name, "APP_NAME"),
//	    )
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// Tests can call ResetCache between loads and LoadEnv to read custom files.
package config
