package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "syslog"}); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestNewWritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dotkit.log")

	logger, err := New(Options{
		Level:       "info",
		Format:      "json",
		OutputPaths: []string{path},
		RunID:       "test-run",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello", String("component", "test"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for _, want := range []string{`"msg":"hello"`, `"run_id":"test-run"`, `"level":"info"`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("log output missing %q:\n%s", want, data)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()

	old := filepath.Join(dir, "old.log")
	fresh := filepath.Join(dir, "fresh.log")
	other := filepath.Join(dir, "notes.txt")
	for _, path := range []string{old, fresh, other} {
		if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	stale := time.Now().AddDate(0, 0, -40)
	for _, path := range []string{old, other} {
		if err := os.Chtimes(path, stale, stale); err != nil {
			t.Fatalf("age %s: %v", path, err)
		}
	}

	CleanupOldLogs(NewNop(), dir, "*.log", 30)

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Errorf("expected %s to be pruned", old)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Errorf("expected %s to survive: %v", fresh, err)
	}
	if _, err := os.Stat(other); err != nil {
		t.Errorf("expected non-matching %s to survive: %v", other, err)
	}
}

func TestCleanupOldLogsDisabled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.log")
	if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	stale := time.Now().AddDate(0, 0, -400)
	if err := os.Chtimes(path, stale, stale); err != nil {
		t.Fatalf("age: %v", err)
	}

	CleanupOldLogs(NewNop(), dir, "*.log", 0)

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to survive with retention disabled: %v", path, err)
	}
}
