package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderPopup draws popup in a bordered card centred over base. Cells of base
// outside the card stay visible.
func RenderPopup(base, popup string, width, height int, border lipgloss.TerminalColor) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cardStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	if border != nil {
		cardStyle = cardStyle.BorderForeground(border)
	}
	card := cardStyle.Render(popup)
	over := strings.Split(FitHeight(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card), height), "\n")
	under := strings.Split(FitHeight(base, height), "\n")

	out := make([]string, height)
	for i := range out {
		b := PadRight(under[i], width)
		o := PadRight(over[i], width)
		start, end, ok := inkBounds(o, width)
		if !ok {
			out[i] = b
			continue
		}
		left := ansi.Truncate(b, start, "")
		mid := ansi.Truncate(skipCells(o, start), end-start, "")
		out[i] = PadRight(left+mid+skipCells(b, end), width)
	}
	return strings.Join(out, "\n")
}

// inkBounds finds the first and one-past-last non-blank cell of line.
func inkBounds(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	start = len(trimmed) - len(strings.TrimLeft(trimmed, " "))
	return start, ansi.StringWidth(trimmed), true
}

func skipCells(s string, n int) string {
	if n <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, n, ""))
}
