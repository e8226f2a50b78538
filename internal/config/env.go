package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/raglet/raglet/settings"
)

// parseEnv applies environment variable overrides to cfg using the
// caarlos0/env library. Fields are mapped via the `env` and `envPrefix`
// tags on [settings.Settings] and its nested types; only variables that
// are actually set override the current values, so the environment layer
// always wins over the file layer.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *settings.Settings) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error applying environment overrides: %w", err)
	}

	return nil
}

// loadDotenv seeds the process environment from the .env file at path
// without overriding variables that are already set. A missing file is not
// an error; deployments are not required to ship one.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}

	return nil
}
