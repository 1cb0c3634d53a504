package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack renders its widgets top to bottom. Fixed holds the height of each
// widget; a zero entry shares whatever height is left.
type VStack struct {
	Widgets []Widget
	Fixed   []int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := make([]int, len(v.Widgets))
	used, flex := 0, 0
	for i := range v.Widgets {
		if i < len(v.Fixed) && v.Fixed[i] > 0 {
			heights[i] = v.Fixed[i]
			used += v.Fixed[i]
			continue
		}
		flex++
	}
	if flex > 0 {
		rest := max(0, height-used)
		share, extra := rest/flex, rest%flex
		for i := range heights {
			if heights[i] != 0 {
				continue
			}
			heights[i] = share
			if extra > 0 {
				heights[i]++
				extra--
			}
		}
	}
	parts := make([]string, 0, len(v.Widgets))
	for i, w := range v.Widgets {
		if heights[i] <= 0 {
			continue
		}
		parts = append(parts, FitHeight(w.Render(width, heights[i]), heights[i]))
	}
	return FitHeight(strings.Join(parts, "\n"), height)
}

// FitHeight pads or clips s to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// TruncateLines clips every line of s to width cells.
func TruncateLines(s string, width int) string {
	if width <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}

// PadRight clips or pads s to exactly width cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
