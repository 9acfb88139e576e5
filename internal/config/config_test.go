package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"dotkit/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantSettings := filepath.Join(tempHome, ".config", "zed")
	if cfg.Paths.SettingsDir != wantSettings {
		t.Fatalf("unexpected settings dir: got %q want %q", cfg.Paths.SettingsDir, wantSettings)
	}
	wantLogs := filepath.Join(tempHome, ".local", "share", "dotkit", "logs")
	if cfg.Paths.LogDir != wantLogs {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogs)
	}
	if cfg.Output.Indent != 2 {
		t.Fatalf("unexpected indent: %d", cfg.Output.Indent)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
	if cfg.Logging.RetentionDays != 30 {
		t.Fatalf("unexpected retention: %d", cfg.Logging.RetentionDays)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "dotkit.toml")

	type payload struct {
		Paths struct {
			SettingsDir string `toml:"settings_dir"`
		} `toml:"paths"`
		Output struct {
			Indent int `toml:"indent"`
		} `toml:"output"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.SettingsDir = filepath.Join(tempDir, "zed")
	custom.Output.Indent = 4
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Debug"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.SettingsDir != filepath.Join(tempDir, "zed") {
		t.Fatalf("unexpected settings dir: %q", cfg.Paths.SettingsDir)
	}
	if cfg.Output.Indent != 4 {
		t.Fatalf("expected indent 4, got %d", cfg.Output.Indent)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized format json, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized level debug, got %q", cfg.Logging.Level)
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	missing := filepath.Join(tempHome, "nope.toml")
	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists to be false for missing path")
	}
	if resolved != missing {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Output.Indent != 2 {
		t.Fatalf("expected default indent, got %d", cfg.Output.Indent)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "settings_dir") {
		t.Fatalf("sample config missing settings_dir: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected sample format: %q", cfg.Logging.Format)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"bad format", "[logging]\nformat = \"yaml\"\n"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n"},
		{"indent too wide", "[output]\nindent = 12\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dotkit.toml")
			if err := os.WriteFile(path, []byte(tt.toml), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/settings")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(tempHome, "settings") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
