package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/teamit2026-cmd/cgpatracker/internal/platform/config"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir, "")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Backend != config.BackendFile {
		t.Fatalf("expected file backend by default, got %q", cfg.Backend)
	}
	if cfg.KVPath != filepath.Join(dir, ".cgpatrack", "kv.json") {
		t.Fatalf("unexpected kv path %s", cfg.KVPath)
	}
	if cfg.DBPath != filepath.Join(dir, ".cgpatrack", "cgpatrack.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected info log level, got %q", cfg.LogLevel)
	}
}

func TestNewReadsConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("store:\n  backend: sqlite\nlog:\n  level: debug\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(dir, "")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Backend != config.BackendSQLite || cfg.LogLevel != "debug" {
		t.Fatalf("config file not applied: %+v", cfg)
	}
}

func TestNewRejectsInvalidBackends(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("store:\n  backend: postgres\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(dir, path); err == nil {
		t.Fatalf("postgres without dsn should fail")
	}
	if _, err := config.New(dir, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("explicit missing config file should fail")
	}
	bad := config.Config{Backend: "redis"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("unknown backend should fail")
	}
}

func TestNewCurriculumPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("catalog:\n  path: /srv/curricula/mech.yaml\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(dir, "")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.CurriculumPath != "/srv/curricula/mech.yaml" {
		t.Fatalf("unexpected curriculum path %q", cfg.CurriculumPath)
	}
}
