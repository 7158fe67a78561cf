package platform

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		expect slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expect {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expect)
		}
	}
}

func TestInitLogger_SetsDefault(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	logger := InitLogger("warn")
	if logger == nil {
		t.Fatal("InitLogger returned nil")
	}
	if slog.Default() != logger {
		t.Error("InitLogger did not install the returned logger as default")
	}
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("warn-level logger reports info level enabled")
	}
}
