package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"streamlens/internal/logging"
)

func TestNewConsoleWritesHeaderAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "loader")
	logger.Info("table loaded", logging.Int("rows", 42))

	out := buf.String()
	if !strings.Contains(out, "INFO") {
		t.Fatalf("expected level label in output: %q", out)
	}
	if !strings.Contains(out, "[loader]") {
		t.Fatalf("expected component in output: %q", out)
	}
	if !strings.Contains(out, "table loaded") {
		t.Fatalf("expected message in output: %q", out)
	}
	if !strings.Contains(out, "rows: 42") {
		t.Fatalf("expected field listing in output: %q", out)
	}
}

func TestNewConsoleSuppressesBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected info output suppressed at warn level, got %q", buf.String())
	}
	logger.Warn("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("expected warn output, got %q", buf.String())
	}
}

func TestNewJSONEmitsCanonicalKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("analysis complete", logging.String("stage", "analyze"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json log line: %v", err)
	}
	if entry["msg"] != "analysis complete" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["level"] != "info" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatal("expected ts key")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAttachesRunAndStage(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithRunID(context.Background(), "run-123")
	ctx = logging.WithStage(ctx, "clean")
	logging.WithContext(ctx, logger).Info("stage started")

	out := buf.String()
	if !strings.Contains(out, "run-123") {
		t.Fatalf("expected run id in output: %q", out)
	}
	if !strings.Contains(out, "clean") {
		t.Fatalf("expected stage in output: %q", out)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("goes nowhere", logging.Error(nil))
}
