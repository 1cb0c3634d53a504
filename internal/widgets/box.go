package widgets

import "github.com/charmbracelet/lipgloss"

// Box draws Content inside a rounded border with Title on the first line.
type Box struct {
	Title   string
	Content string
	Border  lipgloss.TerminalColor
	Center  bool
}

func (b Box) Render(width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height)
	if b.Border != nil {
		style = style.BorderForeground(b.Border)
	}
	body := b.Content
	if b.Center {
		inner := height - 2
		if b.Title != "" {
			inner--
		}
		body = lipgloss.Place(max(1, width-4), max(1, inner), lipgloss.Center, lipgloss.Center, body)
	}
	if b.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Render(b.Title) + "\n" + body
	}
	return style.Render(body)
}
