// Package config resolves runtime settings for the almanac command.
//
// Precedence, lowest first: built-in defaults, a .env file in the working
// directory, process environment, command-line flags (applied by the caller).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"almanac/internal/pipeline"
)

// DefaultInputPath is the almanac read when nothing else is configured.
const DefaultInputPath = "data/day5"

// Environment variable names.
const (
	EnvInput   = "ALMANAC_INPUT"
	EnvWorkers = "ALMANAC_WORKERS"
	EnvVerbose = "ALMANAC_VERBOSE"
)

type Config struct {
	InputPath string
	Workers   int
	Verbose   bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InputPath: DefaultInputPath,
		Workers:   pipeline.DefaultConfig().Workers,
		Verbose:   false,
	}
}

// Load returns the default configuration overridden by .env and environment
// variables. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv applies overrides read through getenv to the defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvInput)); v != "" {
		cfg.InputPath = v
	}

	if v := strings.TrimSpace(getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid %s %q: want a non-negative integer", EnvWorkers, v)
		}

		cfg.Workers = n
	}

	if v := strings.TrimSpace(getenv(EnvVerbose)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvVerbose, v, err)
		}

		cfg.Verbose = b
	}

	return cfg, nil
}

// ResolverConfig returns the pipeline resolver settings.
func (c Config) ResolverConfig() pipeline.Config {
	return pipeline.Config{Workers: c.Workers}
}
