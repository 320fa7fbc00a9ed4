// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup configures the global slog logger based on environment. Production
// gets JSON on stderr, everything else human readable text.
func Setup(environment string, level slog.Level) *slog.Logger {
	return SetupTo(os.Stderr, environment, level)
}

// SetupTo is Setup writing to w.
func SetupTo(w io.Writer, environment string, level slog.Level) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// WithLevel adds the dungeon level number to logger context
func WithLevel(logger *slog.Logger, number int) *slog.Logger {
	return logger.With("level_number", number)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
