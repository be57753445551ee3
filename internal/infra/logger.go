package infra

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the service logger: JSON on stdout, or a debug-level
// console writer when appEnv is "development".
func NewLogger(appEnv string) zerolog.Logger {
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", "promptstudio").
		Logger()

	if appEnv == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return logger
}

// Logger lets packages take a logger without importing zerolog directly.
type Logger = zerolog.Logger
