package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBar renders a single full-width line in style.
func RenderBar(style lipgloss.Style, width int, text string) string {
	width = max(1, width)
	line := PadRight(strings.ReplaceAll(text, "\n", " "), width)
	return style.Width(width).MaxWidth(width).Render(line)
}

// SpreadBar places left and right on one line separated by at least one space.
func SpreadBar(style lipgloss.Style, width int, left, right string) string {
	width = max(1, width)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return RenderBar(style, width, left+strings.Repeat(" ", gap)+right)
}
