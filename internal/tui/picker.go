package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/viewshell/internal/router"
)

type linkItem struct {
	link router.Link
}

func (i linkItem) Title() string       { return i.link.Label }
func (i linkItem) Description() string { return i.link.Path }
func (i linkItem) FilterValue() string { return i.link.Label }

// linkPicker lists the navigation links in menu order.
type linkPicker struct {
	keys *KeyRegistry
	list list.Model
	size int
}

func newLinkPicker(r *router.Router, keys *KeyRegistry) *linkPicker {
	links := r.Links()
	items := make([]list.Item, 0, len(links))
	selected := 0
	current, _ := r.Route(r.Current())
	for i, l := range links {
		items = append(items, linkItem{link: l})
		if l.Path == current.Path {
			selected = i
		}
	}
	l := list.New(items, list.NewDefaultDelegate(), 40, 3*len(items)+1)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.Select(selected)
	return &linkPicker{keys: keys, list: l, size: len(items)}
}

func (p *linkPicker) Title() string { return "Links" }
func (p *linkPicker) Scope() string { return scopePicker }

func (p *linkPicker) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case p.keys.IsAction(km, actionClose, scopePicker):
			return p, nil, true
		case p.keys.IsAction(km, actionSelect, scopePicker):
			item, ok := p.list.SelectedItem().(linkItem)
			if !ok {
				return p, nil, true
			}
			return p, NavigateCmd(item.link.Path), true
		}
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd, false
}

func (p *linkPicker) View(width, height int) string {
	p.list.SetSize(max(20, width), min(max(3, height), 3*p.size+1))
	return p.list.View()
}
