package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading from YAML and Environment variables.
// Priority: Env Vars > YAML > Defaults.
// This loader is immutable. It runs once at startup.
type Loader[T any] struct {
	envPrefix  string
	configPath string
	validate   *validator.Validate
}

func NewLoader[T any](envPrefix, configPath string) *Loader[T] {
	return &Loader[T]{
		envPrefix:  envPrefix,
		configPath: configPath,
		validate:   validator.New(),
	}
}

// Load reads, overrides and validates the configuration.
// A missing config file is not an error; a malformed one is.
func (l *Loader[T]) Load() (*T, error) {
	var cfg T

	if l.configPath != "" {
		data, err := os.ReadFile(l.configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("helix-db/config: failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("helix-db/config: failed to decode config file: %w", err)
			}
		}
	}

	if err := envconfig.Process(l.envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("helix-db/config: failed to process env vars: %w", err)
	}

	if err := l.validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("helix-db/config: validation failed: %w", err)
	}

	return &cfg, nil
}

// Load is NewLoader(envPrefix, configPath).Load().
func Load[T any](envPrefix, configPath string) (*T, error) {
	return NewLoader[T](envPrefix, configPath).Load()
}
