package tui

import (
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	actionQuit    = "quit"
	actionPrev    = "nav-prev"
	actionNext    = "nav-next"
	actionOpen    = "nav-open"
	actionAddress = "address"
	actionPicker  = "picker"
	actionHistory = "history"
	actionBack    = "back"
	actionClose   = "close"
	actionSelect  = "select"
	actionSuggest = "complete"
)

const (
	scopeShell   = "shell"
	scopeAddress = "screen:address"
	scopePicker  = "screen:picker"
	scopeHistory = "screen:history"
)

// KeyBinding maps keys to an action within the listed scopes. No scopes
// means every scope.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

func (b KeyBinding) inScope(scope string) bool {
	return len(b.Scopes) == 0 || slices.Contains(b.Scopes, scope)
}

type KeyRegistry struct {
	bindings []KeyBinding
	byKey    map[string][]int
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{
		bindings: make([]KeyBinding, 0, len(bindings)),
		byKey:    make(map[string][]int),
	}
	for _, b := range bindings {
		i := len(r.bindings)
		keys := make([]string, 0, len(b.Keys))
		for _, k := range b.Keys {
			k = normalizeKey(k)
			if k == "" || slices.Contains(keys, k) {
				continue
			}
			keys = append(keys, k)
			r.byKey[k] = append(r.byKey[k], i)
		}
		b.Keys = keys
		b.Scopes = slices.Clone(b.Scopes)
		r.bindings = append(r.bindings, b)
	}
	return r
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.inScope(scope) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, i := range r.byKey[normalizeKey(msg.String())] {
		if b := r.bindings[i]; b.Action == action && b.inScope(scope) {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func linkAction(i int) string {
	return "link-" + strconv.Itoa(i+1)
}

// DefaultKeyBindings returns the shell bindings for a menu with the given
// link labels. Links past the ninth get no digit key.
func DefaultKeyBindings(linkLabels []string) []KeyBinding {
	out := []KeyBinding{
		{Keys: []string{"q"}, Action: actionQuit, Description: "quit", Scopes: []string{scopeShell}},
	}
	for i, label := range linkLabels {
		if i >= 9 {
			break
		}
		out = append(out, KeyBinding{
			Keys:        []string{strconv.Itoa(i + 1)},
			Action:      linkAction(i),
			Description: strings.ToLower(label),
			Scopes:      []string{scopeShell},
		})
	}
	return append(out,
		KeyBinding{Keys: []string{"left", "shift+tab"}, Action: actionPrev, Description: "prev link", Scopes: []string{scopeShell}},
		KeyBinding{Keys: []string{"right", "tab"}, Action: actionNext, Description: "next link", Scopes: []string{scopeShell}},
		KeyBinding{Keys: []string{"enter"}, Action: actionOpen, Description: "open link", Scopes: []string{scopeShell}},
		KeyBinding{Keys: []string{"g"}, Action: actionAddress, Description: "go to path", Scopes: []string{scopeShell}},
		KeyBinding{Keys: []string{"v"}, Action: actionPicker, Description: "links", Scopes: []string{scopeShell}},
		KeyBinding{Keys: []string{"h"}, Action: actionHistory, Description: "history", Scopes: []string{scopeShell}},
		KeyBinding{Keys: []string{"b", "backspace"}, Action: actionBack, Description: "back", Scopes: []string{scopeShell}},
		KeyBinding{Keys: []string{"tab"}, Action: actionSuggest, Description: "complete", Scopes: []string{scopeAddress}},
		KeyBinding{Keys: []string{"enter"}, Action: actionSelect, Description: "go", Scopes: []string{scopeAddress, scopePicker, scopeHistory}},
		KeyBinding{Keys: []string{"esc"}, Action: actionClose, Description: "close", Scopes: []string{scopeAddress, scopePicker, scopeHistory}},
	)
}

// Actions lists every action name that may be rebound.
func Actions(bindings []KeyBinding) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !slices.Contains(out, b.Action) {
			out = append(out, b.Action)
		}
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every action named in
// actionKeys and leaves the rest alone.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
