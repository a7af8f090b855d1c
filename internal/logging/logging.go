// Package logging constructs the application logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"

	"tasktrack/internal/config"
)

// New builds a logger from the logging section of the config. The logger
// writes to w; the store engine itself stays logger-free and callers log
// around its operations.
func New(w io.Writer, cfg *config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           parseLevel(cfg.LogLevel),
		Formatter:       parseFormat(cfg.LogFormat),
		ReportTimestamp: true,
		Prefix:          "tasktrack",
	})
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func parseFormat(format string) log.Formatter {
	if format == "json" {
		return log.JSONFormatter
	}
	return log.TextFormatter
}
