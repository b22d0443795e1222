package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type implLogger struct {
	logger zerolog.Logger
}

// New creates a Logger at the given level. Format "json" emits structured
// output; anything else uses the human-readable console writer.
func New(level, format string) Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if strings.ToLower(format) == "json" {
		zl = zerolog.New(os.Stdout)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	return &implLogger{
		logger: zl.Level(lvl).With().Timestamp().Logger(),
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Debug().Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Info().Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Warn().Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Error().Msgf(msg, args...)
}

// FormatError renders an error for log fields, empty string for nil.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}
