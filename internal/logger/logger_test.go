package logger

import (
	"context"
	"errors"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"unknown level falls back to info", "verbose"},
		{"empty level falls back to info", ""},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, "console")
			if log == nil {
				t.Fatal("New() returned nil")
			}
			// All levels must accept calls without panicking.
			log.Debug(ctx, "debug %s", "msg")
			log.Info(ctx, "info %s", "msg")
			log.Warn(ctx, "warn %s", "msg")
			log.Error(ctx, "error %s", "msg")
		})
	}
}

func TestFormatError(t *testing.T) {
	if got := FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}
	if got := FormatError(errors.New("boom")); got != "boom" {
		t.Errorf("FormatError() = %q, want boom", got)
	}
}
