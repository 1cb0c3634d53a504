package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/viewshell/internal/router"
)

// addressScreen is the editable address bar. Whatever is typed is handed to
// the router as is; unknown paths land on the fallback view.
type addressScreen struct {
	router *router.Router
	keys   *KeyRegistry
	input  textinput.Model
}

func newAddressScreen(r *router.Router, keys *KeyRegistry) *addressScreen {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = router.HomePath
	in.CharLimit = 256
	in.SetValue(r.Path())
	in.CursorEnd()
	in.Focus()
	return &addressScreen{router: r, keys: keys, input: in}
}

func (s *addressScreen) Title() string { return "Go to path" }
func (s *addressScreen) Scope() string { return scopeAddress }

func (s *addressScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case s.keys.IsAction(km, actionClose, scopeAddress):
			return s, nil, true
		case s.keys.IsAction(km, actionSelect, scopeAddress):
			path := strings.TrimSpace(s.input.Value())
			if path == "" {
				return s, nil, true
			}
			return s, NavigateCmd(path), true
		case s.keys.IsAction(km, actionSuggest, scopeAddress):
			if link, ok := s.router.Closest(s.input.Value()); ok {
				s.input.SetValue(link.Path)
				s.input.CursorEnd()
			}
			return s, nil, false
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

func (s *addressScreen) View(width, height int) string {
	s.input.Width = max(10, width-4)
	hint := "enter to go · esc to cancel"
	if link, ok := s.router.Closest(s.input.Value()); ok {
		hint = "tab → " + link.Path + " (" + link.Label + ")"
	}
	return s.input.View() + "\n\n" + hintStyle.Render(hint)
}
