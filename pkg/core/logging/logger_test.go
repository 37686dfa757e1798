package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLevel_Constants(t *testing.T) {
	if LevelDebug != 0 {
		t.Errorf("LevelDebug = %d, want 0", LevelDebug)
	}
	if LevelInfo != 1 {
		t.Errorf("LevelInfo = %d, want 1", LevelInfo)
	}
	if LevelWarn != 2 {
		t.Errorf("LevelWarn = %d, want 2", LevelWarn)
	}
	if LevelError != 3 {
		t.Errorf("LevelError = %d, want 3", LevelError)
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelDebug},
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"warning", LevelWarn},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"fatal", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName: "test",
		Level:       "warn",
		Output:      &buf,
	})

	logger.Info("hidden message")
	logger.Warn("visible message", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "key=value") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName: "cmdcall",
		Level:       "debug",
		Format:      "json",
		Output:      &buf,
	})

	logger.Debug("dispatched", "command", "add")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "dispatched" {
		t.Errorf("msg = %v, want dispatched", entry["msg"])
	}
	if entry["command"] != "add" {
		t.Errorf("command = %v, want add", entry["command"])
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Level:             "info",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("fan out")

	if !strings.Contains(primary.String(), "fan out") {
		t.Errorf("primary output missing entry: %q", primary.String())
	}
	if !strings.Contains(extra.String(), "fan out") {
		t.Errorf("additional output missing entry: %q", extra.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger == nil {
		t.Fatal("Discard() returned nil")
	}
	if logger.GetLevel() != log.FatalLevel {
		t.Errorf("level = %v, want fatal", logger.GetLevel())
	}

	// Should not panic
	logger.Error("dropped", "key", "value")
}
