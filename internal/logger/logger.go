// Package logger configures the application's structured logging.
//
// It uses zerolog and builds the base logger from config.LoggingConfig:
// JSON output for pipelines, console output for local development.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/oretally/oretally/internal/config"
)

// New builds the application's base logger from the logging config. Unknown
// levels fall back to info rather than failing; logging misconfiguration
// should not take the service down.
func New(cfg *config.LoggingConfig) zerolog.Logger {
	var out io.Writer = os.Stderr
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
