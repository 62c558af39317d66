// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), maps them into structured Go types, and validates that
// required values are present so the application fails fast on bad or
// missing config.
//
// Env vars use the ORETALLY_ prefix and dot-delimited nesting:
//
//	ORETALLY_SERVER.PORT -> server.port -> Config.Server.Port
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process env, if one
	// exists, before anything reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces this service's env vars.
const envPrefix = "ORETALLY_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from; the
// `validate:"required"` tags enforce presence via go-playground/validator.
// Logging is a pointer because it is optional; defaults are injected when it
// is missing.
type Config struct {
	Primary Primary        `koanf:"primary" validate:"required"`
	Server  ServerConfig   `koanf:"server" validate:"required"`
	Logging *LoggingConfig `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment, used to
// tag logs and switch behavior per environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server hosting this layer.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// LoggingConfig controls structured logger behavior.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects the log output format, "json" or "console".
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// DefaultLoggingConfig is the logging setup used when none is configured:
// info-level JSON, which log pipelines can ingest as-is.
func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:  "info",
		Format: "json",
	}
}

// New loads configuration from the environment, validates it, applies
// defaults, and returns the result.
func New() (*Config, error) {
	k := koanf.New(".")

	// Only env vars with the ORETALLY_ prefix are read; the prefix is
	// stripped and the remainder lowercased to form the koanf key path.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Logging == nil {
		cfg.Logging = DefaultLoggingConfig()
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
