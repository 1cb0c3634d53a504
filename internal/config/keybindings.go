package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// KeybindingsFile is the name of the keybinding override file in Dir.
const KeybindingsFile = "keybindings.toml"

// Keybinding overrides the keys of one action.
type Keybinding struct {
	Action string   `toml:"action"`
	Keys   []string `toml:"keys"`
}

type keybindingFile struct {
	Binding []Keybinding `toml:"binding"`
}

// ParseKeybindings decodes override TOML into action -> keys. Every action
// must be one of known and carry at least one key.
func ParseKeybindings(data []byte, known []string) (map[string][]string, error) {
	var f keybindingFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", KeybindingsFile, err)
	}
	out := make(map[string][]string, len(f.Binding))
	for i, b := range f.Binding {
		action := strings.TrimSpace(b.Action)
		if action == "" {
			return nil, fmt.Errorf("binding[%d]: action is required", i)
		}
		if !slices.Contains(known, action) {
			return nil, fmt.Errorf("binding[%d]: unknown action %q", i, action)
		}
		keys := make([]string, 0, len(b.Keys))
		for _, k := range b.Keys {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("binding[%d] %q: keys are required", i, action)
		}
		out[action] = keys
	}
	return out, nil
}

// LoadKeybindings reads Dir()/keybindings.toml. A missing file yields no
// overrides.
func LoadKeybindings(known []string) (map[string][]string, error) {
	data, err := os.ReadFile(filepath.Join(Dir(), KeybindingsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", KeybindingsFile, err)
	}
	return ParseKeybindings(data, known)
}

// EncodeKeybindings renders bindings in the override file format.
func EncodeKeybindings(bindings []Keybinding) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(keybindingFile{Binding: bindings}); err != nil {
		return nil, fmt.Errorf("encode %s: %w", KeybindingsFile, err)
	}
	return buf.Bytes(), nil
}

// WriteKeybindings writes bindings to path, creating the directory.
func WriteKeybindings(path string, bindings []Keybinding) error {
	data, err := EncodeKeybindings(bindings)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", KeybindingsFile, err)
	}
	return nil
}
