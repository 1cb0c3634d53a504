package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case NavigateMsg:
		m.navigate(msg.Path)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screens.Top() != nil {
			cmd := m.screens.Update(msg)
			return m, cmd
		}
		return m.handleShellKey(msg)
	}

	if m.screens.Top() != nil {
		cmd := m.screens.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleShellKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.ActiveScope()
	links := m.router.Links()

	switch {
	case m.keys.IsAction(msg, actionQuit, scope):
		m.quitting = true
		return m, tea.Quit
	case m.keys.IsAction(msg, actionPrev, scope):
		if len(links) > 0 {
			m.cursor = (m.cursor - 1 + len(links)) % len(links)
		}
		return m, nil
	case m.keys.IsAction(msg, actionNext, scope):
		if len(links) > 0 {
			m.cursor = (m.cursor + 1) % len(links)
		}
		return m, nil
	case m.keys.IsAction(msg, actionOpen, scope):
		if m.cursor >= 0 && m.cursor < len(links) {
			m.navigate(links[m.cursor].Path)
		}
		return m, nil
	case m.keys.IsAction(msg, actionBack, scope):
		m.back()
		return m, nil
	case m.keys.IsAction(msg, actionAddress, scope):
		m.screens.Push(newAddressScreen(m.router, m.keys))
		return m, nil
	case m.keys.IsAction(msg, actionPicker, scope):
		m.screens.Push(newLinkPicker(m.router, m.keys))
		return m, nil
	case m.keys.IsAction(msg, actionHistory, scope):
		if m.loc == nil {
			m.SetStatus("No history")
			return m, nil
		}
		entries, err := m.loc.History(historyLimit)
		if err != nil {
			m.SetError(err)
			return m, nil
		}
		m.screens.Push(newHistoryScreen(entries, m.keys, m.loc.Persistent()))
		return m, nil
	}

	for i, l := range links {
		if m.keys.IsAction(msg, linkAction(i), scope) {
			m.cursor = i
			m.navigate(l.Path)
			return m, nil
		}
	}
	return m, nil
}
