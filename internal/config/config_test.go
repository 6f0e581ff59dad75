package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.SurrealDBURL != "ws://localhost:8000/rpc" {
		t.Errorf("unexpected default URL: %q", cfg.SurrealDBURL)
	}
	if cfg.SurrealDBNamespace != "bpmlens" {
		t.Errorf("unexpected default namespace: %q", cfg.SurrealDBNamespace)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("unexpected default log level: %v", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SURREALDB_DATABASE", "custom")
	t.Setenv("BPMLENS_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.SurrealDBDatabase != "custom" {
		t.Errorf("env override ignored, got %q", cfg.SurrealDBDatabase)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("log level override ignored, got %v", cfg.LogLevel)
	}
}

func TestLoadWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bpmlens.yaml")
	contents := "surrealdb_namespace: filens\nlog_level: error\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithFile(path)
	if err != nil {
		t.Fatalf("LoadWithFile failed: %v", err)
	}

	// File values win; unset fields keep environment defaults.
	if cfg.SurrealDBNamespace != "filens" {
		t.Errorf("file override ignored, got %q", cfg.SurrealDBNamespace)
	}
	if cfg.LogLevel != slog.LevelError {
		t.Errorf("file log level ignored, got %v", cfg.LogLevel)
	}
	if cfg.SurrealDBURL != "ws://localhost:8000/rpc" {
		t.Errorf("unset field should keep default, got %q", cfg.SurrealDBURL)
	}
}

func TestLoadWithFileMissing(t *testing.T) {
	if _, err := LoadWithFile("/nonexistent/bpmlens.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}

	cfg, err := LoadWithFile("")
	if err != nil {
		t.Fatalf("blank path should not error: %v", err)
	}
	if cfg.SurrealDBNamespace != "bpmlens" {
		t.Errorf("blank path should load defaults, got %q", cfg.SurrealDBNamespace)
	}
}
