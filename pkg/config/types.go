// Package config provides configuration loading and validation for edgeconv.
package config

// Config is the run configuration loaded from YAML.
type Config struct {
	// ProgressEvery is how often, in data lines, a progress notice is logged.
	ProgressEvery int `yaml:"progress_every"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`

	// SummaryFormat selects the completion report format (text or json).
	SummaryFormat string `yaml:"summary_format"`
}

// Log and summary formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)
