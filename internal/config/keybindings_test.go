package config

import (
	"os"
	"path/filepath"
	"testing"
)

var knownActions = []string{"quit", "back", "address"}

func TestParseKeybindings(t *testing.T) {
	data := []byte(`
[[binding]]
action = "quit"
keys = ["Ctrl+Q", " "]

[[binding]]
action = "back"
keys = ["backspace", "b"]
`)
	got, err := ParseKeybindings(data, knownActions)
	if err != nil {
		t.Fatalf("ParseKeybindings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if keys := got["quit"]; len(keys) != 1 || keys[0] != "ctrl+q" {
		t.Errorf("quit = %#v, want [ctrl+q]", keys)
	}
	if keys := got["back"]; len(keys) != 2 || keys[1] != "b" {
		t.Errorf("back = %#v", keys)
	}
}

func TestParseKeybindingsErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[[binding]\n"},
		{"missing action", "[[binding]]\nkeys = [\"x\"]\n"},
		{"unknown action", "[[binding]]\naction = \"fly\"\nkeys = [\"f\"]\n"},
		{"no keys", "[[binding]]\naction = \"quit\"\nkeys = []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseKeybindings([]byte(tt.data), knownActions); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestWriteAndLoadKeybindings(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VIEWSHELL_CONFIG", filepath.Join(dir, "config.toml"))

	none, err := LoadKeybindings(knownActions)
	if err != nil || none != nil {
		t.Fatalf("missing file: (%v, %v), want (nil, nil)", none, err)
	}

	path := filepath.Join(Dir(), KeybindingsFile)
	if err := WriteKeybindings(path, []Keybinding{{Action: "address", Keys: []string{"ctrl+l"}}}); err != nil {
		t.Fatalf("WriteKeybindings: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
	got, err := LoadKeybindings(knownActions)
	if err != nil {
		t.Fatalf("LoadKeybindings: %v", err)
	}
	if keys := got["address"]; len(keys) != 1 || keys[0] != "ctrl+l" {
		t.Fatalf("address = %#v", keys)
	}
}
