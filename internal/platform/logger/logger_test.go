package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/p-n-ai/pai-curriculum/internal/platform/config"
	"github.com/p-n-ai/pai-curriculum/internal/platform/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := logger.ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, config.LogConfig{Level: "warn", Format: "json"})

	l.Info("dropped")
	l.Warn("kept", "epoch_id", "epoch-0")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "kept" {
		t.Errorf("msg = %v, want kept", entry["msg"])
	}
	if entry["epoch_id"] != "epoch-0" {
		t.Errorf("epoch_id = %v, want epoch-0", entry["epoch_id"])
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, config.LogConfig{Level: "debug", Format: "text"})

	l.Debug("loaded", "epochs", 3)

	out := buf.String()
	if !strings.Contains(out, "msg=loaded") || !strings.Contains(out, "epochs=3") {
		t.Errorf("text output = %q", out)
	}
}

func TestSetup_SetsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.Setup(&buf, config.LogConfig{Level: "info", Format: "json"})

	slog.Info("via default")
	if !strings.Contains(buf.String(), "via default") {
		t.Errorf("default logger did not write to buffer: %q", buf.String())
	}
}
