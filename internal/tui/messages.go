package tui

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg asks the shell to navigate to Path, exactly as typed.
type NavigateMsg struct {
	Path string
}

func NavigateCmd(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}
