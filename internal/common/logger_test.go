package common

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    LogLevel
		expected slog.Level
	}{
		{"error level", LogLevelError, slog.LevelError},
		{"warn level", LogLevelWarn, slog.LevelWarn},
		{"info level", LogLevelInfo, slog.LevelInfo},
		{"debug level", LogLevelDebug, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ToSlogLevel(); got != tt.expected {
				t.Fatalf("ToSlogLevel() = %v, want %v", got, tt.expected)
			}
			if NewLogger(tt.level).Level() != tt.level {
				t.Fatalf("logger level not retained")
			}
		})
	}
}

func TestTextLogger_MasksAPIKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, LogLevelInfo).WithComponent("postman")

	logger.Info("calling vendor API", "x-api-key", "PMAK-123456", "url", "https://api.getpostman.com/collections")

	out := buf.String()
	if strings.Contains(out, "PMAK-123456") {
		t.Fatalf("api key leaked into log output: %s", out)
	}
	if !strings.Contains(out, Masked) {
		t.Fatalf("expected masked marker in %s", out)
	}
	if !strings.Contains(out, "component=postman") {
		t.Fatalf("expected component attr in %s", out)
	}
}

func TestTextLogger_MaskingDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, LogLevelInfo)
	logger.EnableMasking(false)

	logger.Info("raw", "api_key", "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected raw value when masking disabled: %s", buf.String())
	}
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := GetLogger()
	defer SetDefaultLogger(prev)

	SetDefaultLogger(NewTextLogger(&buf, LogLevelDebug))

	LogInfo("info message", "key", "value")
	LogDebug("debug message")
	LogWarn("warn message")
	LogError("error message", nil)

	out := buf.String()
	for _, want := range []string{"info message", "debug message", "warn message", "error message"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}
