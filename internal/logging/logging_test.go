package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(&buf, "info", "json")
	if err != nil {
		t.Fatalf("NewWithOutput failed: %v", err)
	}

	logger.Debug().Msg("hidden")
	logger.Info().Str("component", "state").Msg("store loaded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["message"] != "store loaded" || entry["component"] != "state" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewWithOutput_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithOutput(&buf, "", "console")
	if err != nil {
		t.Fatalf("NewWithOutput failed: %v", err)
	}

	logger.Info().Msg("hidden")
	logger.Warn().Msg("could not load saved data")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("default level should drop info messages")
	}
	if !strings.Contains(out, "could not load saved data") {
		t.Errorf("expected warning in output, got %q", out)
	}
}

func TestNewWithOutput_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"bad level", "loud", "json"},
		{"bad format", "info", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if _, err := NewWithOutput(&buf, tt.level, tt.format); err == nil {
				t.Error("expected error")
			}
		})
	}
}
