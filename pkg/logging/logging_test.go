package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		enable slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug},
		{"warn level", "warn", slog.LevelWarn},
		{"default info", "", slog.LevelInfo},
	}

	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.level)
			if !logger.Enabled(ctx, tt.enable) {
				t.Fatalf("expected level %s to be enabled", tt.enable)
			}
		})
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", &buf)

	logger.Info("turn processed", "stage", "clarifying", "dialect", "egyptian")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if record["stage"] != "clarifying" {
		t.Fatalf("expected stage attribute, got %v", record["stage"])
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", &buf).With("chat_id", "abc")

	logger.Info("hello")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if record["chat_id"] != "abc" {
		t.Fatalf("expected chat_id attribute, got %v", record["chat_id"])
	}
}
