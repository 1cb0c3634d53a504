package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/viewshell/internal/host"
)

const historyLimit = 20

// historyScreen shows recent navigations; enter revisits the selected path.
type historyScreen struct {
	keys    *KeyRegistry
	entries []host.Entry
	table   table.Model
	saved   bool
}

func newHistoryScreen(entries []host.Entry, keys *KeyRegistry, saved bool) *historyScreen {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{e.At.Local().Format("01-02 15:04:05"), e.Path, string(e.View)})
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "When", Width: 14},
			{Title: "Path", Width: 24},
			{Title: "View", Width: 8},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(max(1, len(rows)), 10)),
	)
	return &historyScreen{keys: keys, entries: entries, table: t, saved: saved}
}

func (s *historyScreen) Title() string { return "History" }
func (s *historyScreen) Scope() string { return scopeHistory }

func (s *historyScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case s.keys.IsAction(km, actionClose, scopeHistory):
			return s, nil, true
		case s.keys.IsAction(km, actionSelect, scopeHistory):
			i := s.table.Cursor()
			if i < 0 || i >= len(s.entries) {
				return s, nil, true
			}
			return s, NavigateCmd(s.entries[i].Path), true
		}
	}
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd, false
}

func (s *historyScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return hintStyle.Render("Nothing visited yet")
	}
	s.table.SetHeight(min(max(1, height-2), max(1, len(s.entries))+1))
	out := s.table.View()
	if s.saved {
		out += "\n" + hintStyle.Render("saved across runs")
	}
	return out
}
