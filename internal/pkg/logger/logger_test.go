package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	log.Error("download failed", errors.New("boom"), map[string]interface{}{"resource": "punkt"})

	var event map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if event["message"] != "download failed" || event["resource"] != "punkt" || event["error"] != "boom" {
		t.Fatalf("unexpected event %v", event)
	}
	if event["level"] != "error" {
		t.Fatalf("expected error level, got %v", event["level"])
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("ignored", nil)
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
}

func TestNewWithoutSinksIsNop(t *testing.T) {
	log := New(Options{})
	log.Info("dropped", map[string]interface{}{"k": "v"})
}
