package utils

import (
	"io"
	"os"
	"time"

	"github.com/extforge/extforge-go/internal/domain"
	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// LoggerOptions contains options for creating a logger
type LoggerOptions struct {
	Level   string
	Format  string // "pretty" or "json"
	Output  io.Writer
	Verbose bool
}

// NewLogger creates a new logger with the given options
func NewLogger(opts LoggerOptions) *Logger {
	var output io.Writer = os.Stderr
	if opts.Output != nil {
		output = opts.Output
	}

	if opts.Format == "pretty" {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	level := parseLogLevel(opts.Level)
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger}
}

// NewDefaultLogger creates a logger with default settings
func NewDefaultLogger() *Logger {
	return NewLogger(LoggerOptions{
		Level:  "info",
		Format: "pretty",
	})
}

// parseLogLevel parses a log level string
func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithComponent returns a logger with a component field
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("component", component).Logger(),
	}
}

// WithEntrypoint returns a logger with an entrypoint field
func (l *Logger) WithEntrypoint(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("entrypoint", name).Logger(),
	}
}

// WithTarget returns a logger with browser and manifest-version fields
func (l *Logger) WithTarget(browser domain.Browser, manifestVersion int) *Logger {
	return &Logger{
		Logger: l.Logger.With().
			Str("browser", string(browser)).
			Int("manifest_version", manifestVersion).
			Logger(),
	}
}

// WarningSink adapts the logger into the sink the compatibility policy
// reports skipped features through
func (l *Logger) WarningSink() domain.WarningSink {
	return domain.WarnFunc(func(feature, reason string) {
		l.Warn().Str("feature", feature).Msg(reason)
	})
}

// SetGlobalLevel sets the global log level
func SetGlobalLevel(level string) {
	zerolog.SetGlobalLevel(parseLogLevel(level))
}
