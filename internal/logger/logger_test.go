package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	log, err := New(Options{JSON: true, RunID: "run-42", Output: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Debug("hidden")
	log.Info("analysis finished", DocumentFields("cv.pdf", "DevOps Engineer")...)
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 entry at info level, got %d: %s", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry["step"] != "analysis finished" {
		t.Fatalf("expected step key, got %v", entry)
	}
	if entry["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", entry["level"])
	}
	if entry[FieldDocument] != "cv.pdf" || entry[FieldRole] != "DevOps Engineer" {
		t.Fatalf("expected document fields, got %v", entry)
	}
	if entry[FieldRunID] != "run-42" {
		t.Fatalf("expected run id, got %v", entry[FieldRunID])
	}
}

func TestNewDebug(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.txt")
	log, err := New(Options{Debug: true, Output: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Debug("role detected")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "role detected") {
		t.Fatalf("expected debug entry, got %q", data)
	}
	if strings.Contains(string(data), FieldRunID) {
		t.Fatalf("expected no run id without one configured, got %q", data)
	}
}

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "hello world",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "hello",
			limit:  10,
			expect: "hello",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "Senior Go developer",
			limit:  6,
			expect: "Senior...",
		},
		{
			name:   "counts runes",
			input:  "  Résumé analysis  ",
			limit:  6,
			expect: "Résumé...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
