package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("LogLevel(%d).String() = '%s', expected '%s'", tt.level, result, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"WARNING", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo}, // Default
		{"", LogLevelInfo},        // Default
	}

	for _, tt := range tests {
		result := ParseLogLevel(tt.input)
		if result != tt.expected {
			t.Errorf("ParseLogLevel('%s') = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}

func newBufferLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "test"}), &buf
}

func TestNewLogger_DefaultOutput(t *testing.T) {
	logger := NewLogger(LoggerConfig{Output: nil})
	if logger.core.output == nil {
		t.Error("expected default output to be set")
	}
}

func TestLogger_Log(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelDebug)

	logger.Info("hello %s", "world")

	output := buf.String()
	if !strings.Contains(output, "[INFO] test: hello world") {
		t.Errorf("unexpected output: %q", output)
	}
	if !strings.HasSuffix(output, "\n") {
		t.Error("log line should end with newline")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	output := buf.String()
	if strings.Contains(output, "debug") || strings.Contains(output, "info") {
		t.Errorf("filtered levels were written: %q", output)
	}
	if !strings.Contains(output, "[WARN]") || !strings.Contains(output, "[ERROR]") {
		t.Errorf("expected warn and error output: %q", output)
	}
}

func TestLogger_FieldsSorted(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	logger.WithFields(map[string]any{"zeta": 1, "alpha": "a"}).WithComponent("editor").Info("msg")

	if !strings.Contains(buf.String(), "{alpha=a, component=editor, zeta=1}") {
		t.Errorf("fields not rendered in key order: %q", buf.String())
	}
}

func TestLogger_WithFieldDoesNotModifyParent(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)

	_ = logger.WithField("key", "value")
	logger.Info("plain")

	if strings.Contains(buf.String(), "key=value") {
		t.Error("parent logger gained child field")
	}
}

func TestLogger_SharedLevel(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelInfo)
	child := logger.WithComponent("child")

	logger.SetLevel(LogLevelDebug)
	child.Debug("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Error("child logger should follow parent level")
	}
	if child.Level() != LogLevelDebug {
		t.Errorf("child.Level() = %v, want DEBUG", child.Level())
	}
}

func TestLogger_DisableEnable(t *testing.T) {
	logger, buf := newBufferLogger(LogLevelDebug)

	logger.Disable()
	logger.Error("hidden")
	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}

	logger.Enable()
	logger.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("enabled logger should write")
	}
}

func TestLogger_SetOutput(t *testing.T) {
	logger, first := newBufferLogger(LogLevelInfo)
	var second bytes.Buffer

	logger.SetOutput(&second)
	logger.Info("moved")

	if first.Len() != 0 || !strings.Contains(second.String(), "moved") {
		t.Error("SetOutput did not redirect output")
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Error("nothing")
	logger.WithField("a", 1).Warn("nothing")
}
