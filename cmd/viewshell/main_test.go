package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/viewshell/internal/config"
	"github.com/jask/viewshell/internal/router"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestRoutesCommand(t *testing.T) {
	out := execute(t, "routes")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 routes, got %q", out)
	}
	for i, want := range []string{"Home", "X", "Y"} {
		if !strings.HasPrefix(lines[i+1], want) {
			t.Fatalf("line %d = %q, want prefix %q", i+1, lines[i+1], want)
		}
	}
}

func TestResolveCommand(t *testing.T) {
	out := execute(t, "resolve", "/", "/x", "/y", "/unknown")
	want := "/ -> home\n/x -> x\n/y -> y\n/unknown -> home\n"
	if out != want {
		t.Fatalf("resolve output = %q, want %q", out, want)
	}
}

func TestKeysWrite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VIEWSHELL_CONFIG", filepath.Join(dir, "config.toml"))
	t.Cleanup(func() { writeKeys = false })

	out := execute(t, "keys", "--write")
	path := filepath.Join(dir, config.KeybindingsFile)
	if !strings.Contains(out, path) {
		t.Fatalf("expected written path in %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}

	writeKeys = false
	out = execute(t, "keys")
	if !strings.Contains(out, "nav-next") || !strings.Contains(out, "link-2") {
		t.Fatalf("keys output missing actions: %q", out)
	}
}

func TestConfigWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	t.Setenv("VIEWSHELL_CONFIG", path)
	t.Setenv("VIEWSHELL_SESSION_NAME", "work")
	t.Cleanup(func() { writeConfig = false })

	if out := execute(t, "config"); !strings.Contains(out, "work") {
		t.Fatalf("config output missing env override: %q", out)
	}
	execute(t, "config", "--write")
	writeConfig = false

	t.Setenv("VIEWSHELL_SESSION_NAME", "")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Session.Name != "work" {
		t.Fatalf("session.name = %q, want work", cfg.Session.Name)
	}
}

func TestUsesFallback(t *testing.T) {
	r := router.Default()
	for path, want := range map[string]bool{
		"/":        false,
		"/?q=1":    false,
		"/x#frag":  false,
		"/unknown": true,
		"":         true,
	} {
		if got := usesFallback(r, path); got != want {
			t.Fatalf("usesFallback(%q) = %v, want %v", path, got, want)
		}
	}
}
