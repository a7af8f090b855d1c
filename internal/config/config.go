// Package config handles configuration loading and defaults.
package config

import "fmt"

// Default values.
const (
	DefaultTasksFile      = "tasks.json"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultRefreshSeconds = 1
)

// Config holds the full configuration for tasktrack.
type Config struct {
	// TasksFile is the path of the JSON tasks file. The store itself takes
	// the path as a constructor argument; config only decides what the CLI
	// hands it.
	TasksFile string `toml:"tasks_file"`

	// Logging configuration
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// RefreshSeconds is the TUI redraw interval.
	RefreshSeconds int `toml:"refresh_seconds"`

	// NoColor disables colored menu output.
	NoColor bool `toml:"no_color"`
}

// setDefaults fills cfg with the built-in defaults.
func setDefaults(cfg *Config) {
	cfg.TasksFile = DefaultTasksFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.RefreshSeconds = DefaultRefreshSeconds
	cfg.NoColor = false
}

// finalizeConfig computes derived values and validates the result.
func finalizeConfig(cfg *Config) error {
	cfg.TasksFile = expandPath(cfg.TasksFile)
	if cfg.TasksFile == "" {
		return fmt.Errorf("tasks_file must not be empty")
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q, must be text or json", cfg.LogFormat)
	}

	if cfg.RefreshSeconds < 1 {
		cfg.RefreshSeconds = DefaultRefreshSeconds
	}
	return nil
}

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasktrack configuration file
# Values can be overridden by environment variables or CLI flags

# Tasks file (supports ~ expansion)
tasks_file = "tasks.json"

# Log level: debug, info, warn, error
log_level = "info"

# Log format: text or json
log_format = "text"

# TUI refresh interval in seconds
refresh_seconds = 1

# Disable colored menu output
no_color = false
`
}
