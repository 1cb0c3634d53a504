package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VIEWSHELL_CONFIG", filepath.Join(dir, "missing.toml"))
	t.Setenv("HOME", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Database.Enabled {
		t.Error("database should be enabled by default")
	}
	if cfg.Session.Name != "default" {
		t.Errorf("session.name = %q, want default", cfg.Session.Name)
	}
	if cfg.UI.Title != "viewshell" {
		t.Errorf("ui.title = %q, want viewshell", cfg.UI.Title)
	}
	if cfg.UI.StartPath != "" {
		t.Errorf("ui.start_path = %q, want empty", cfg.UI.StartPath)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log.level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte(`
[database]
enabled = false

[session]
name = "  work  "

[ui]
start_path = "/x"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VIEWSHELL_CONFIG", path)
	t.Setenv("VIEWSHELL_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Enabled {
		t.Error("database.enabled should be false")
	}
	if cfg.Session.Name != "work" {
		t.Errorf("session.name = %q, want work", cfg.Session.Name)
	}
	if cfg.UI.StartPath != "/x" {
		t.Errorf("ui.start_path = %q, want /x", cfg.UI.StartPath)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[ui\nbroken"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VIEWSHELL_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("VIEWSHELL_CONFIG", path)

	want := Config{
		Database: DatabaseConfig{Path: "/tmp/v.db", Enabled: true},
		Session:  SessionConfig{Name: "laptop"},
		UI:       UIConfig{Title: "Shell", StartPath: "/y"},
		Log:      LogConfig{Path: "/tmp/v.log", Level: "warn"},
	}
	if err := Save(want, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}
