package config

import (
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultProgressEvery = 1000000
	DefaultLogLevel      = "info"
	DefaultLogFormat     = FormatText
	DefaultSummaryFormat = FormatText
)

// Environment variable names.
const (
	EnvProgressEvery = "EDGECONV_PROGRESS_EVERY"
	EnvLogLevel      = "EDGECONV_LOG_LEVEL"
	EnvLogFormat     = "EDGECONV_LOG_FORMAT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ProgressEvery: DefaultProgressEvery,
		LogLevel:      DefaultLogLevel,
		LogFormat:     DefaultLogFormat,
		SummaryFormat: DefaultSummaryFormat,
	}
}

// ApplyEnvironmentOverrides applies environment variable overrides to the config.
// An unparseable progress value becomes -1 so Validate rejects it.
func (c *Config) ApplyEnvironmentOverrides() {
	if v := os.Getenv(EnvProgressEvery); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			n = -1
		}
		c.ProgressEvery = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
}
