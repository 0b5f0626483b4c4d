package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
		Output:     os.Stderr,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config level name to a zerolog level.
// Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	if lvl, ok := LookupLevel(level); ok {
		return lvl
	}
	return zerolog.InfoLevel
}

// LookupLevel maps a config level name to a zerolog level and reports whether the name is known.
func LookupLevel(level string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

// NewFromConfigValues creates a logger from the raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// SHADES_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// SHADES_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	level := os.Getenv("SHADES_LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	return NewFromConfigValues(level, os.Getenv("SHADES_LOG_FORMAT"))
}
