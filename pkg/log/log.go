package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	// Logger is the global logger instance. It discards everything until Init is called.
	Logger = zerolog.Nop()
)

// Level represents log level
type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// ParseLevel validates a level name given on the command line
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return Level(s), nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

// Config holds logging configuration
type Config struct {
	Level      Level
	JSONOutput bool
	Output     io.Writer
}

// Init initializes the global logger
func Init(cfg Config) {
	var level zerolog.Level
	switch cfg.Level {
	case DebugLevel:
		level = zerolog.DebugLevel
	case WarnLevel:
		level = zerolog.WarnLevel
	case ErrorLevel:
		level = zerolog.ErrorLevel
	default:
		level = zerolog.InfoLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if !cfg.JSONOutput {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// WithComponent creates a child logger with component field
func WithComponent(component string) zerolog.Logger {
	return Logger.With().Str("component", component).Logger()
}

// WithService creates a child logger tagged with the supervised package and its group
func WithService(ident, group string) zerolog.Logger {
	ctx := Logger.With().Str("package", ident)
	if group != "" {
		ctx = ctx.Str("group", group)
	}
	return ctx.Logger()
}
