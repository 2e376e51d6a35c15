package logger

import (
	"context"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Fatal("New() returned nil")
			}

			// All methods must be callable regardless of level
			ctx := context.Background()
			log.Debug(ctx, "debug message")
			log.Info(ctx, "info message")
			log.Warn(ctx, "warn message")
			log.Error(ctx, "error message")
		})
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		want    bool
	}{
		{"debug logs debug", "debug", "debug", true},
		{"info suppresses debug", "info", "debug", false},
		{"info logs warn", "info", "warn", true},
		{"error suppresses info", "error", "info", false},
		{"error logs error", "error", "error", true},
		{"unknown level defaults to info", "bogus", "info", true},
		{"unknown target always logs", "info", "trace", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.current).(*implLogger)
			if got := l.shouldLog(tt.target); got != tt.want {
				t.Errorf("shouldLog(%q) with level %q = %v, want %v", tt.target, tt.current, got, tt.want)
			}
		})
	}
}
