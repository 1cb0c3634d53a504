package widgets

// Widget renders itself into a width x height cell area.
type Widget interface {
	Render(width, height int) string
}

// Text is a Widget that renders a fixed string.
type Text string

func (t Text) Render(width, height int) string {
	return FitHeight(TruncateLines(string(t), width), height)
}
