package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.ApplyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadEnvFile loads variables from a dotenv file into the process environment.
// Variables that are already set are not overridden.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Validate checks a configuration for errors and normalizes its values.
func Validate(cfg *Config) error {
	if cfg.ProgressEvery < 1 {
		return fmt.Errorf("progress_every: must be >= 1, got %d", cfg.ProgressEvery)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level: invalid level %q (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if err := validateFormat(cfg.LogFormat); err != nil {
		return fmt.Errorf("log_format: %w", err)
	}

	if err := validateFormat(cfg.SummaryFormat); err != nil {
		return fmt.Errorf("summary_format: %w", err)
	}

	return nil
}

func validateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	case "":
		return errors.New("format is required")
	default:
		return fmt.Errorf("invalid format %q (must be text or json)", format)
	}
}
