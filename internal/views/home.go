package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/viewshell/internal/router"
	"github.com/jask/viewshell/internal/widgets"
)

// Greeting is the text of the home page header.
const Greeting = "Hello, This is Shashank!!"

// Home is the landing page.
type Home struct {
	Accent lipgloss.TerminalColor
}

func (Home) ID() router.ViewID { return router.ViewHome }
func (Home) Title() string     { return "Home" }

func (h Home) Render(width, height int) string {
	text := lipgloss.NewStyle().Bold(true)
	if h.Accent != nil {
		text = text.Foreground(h.Accent)
	}
	return widgets.Box{Content: text.Render(Greeting), Border: h.Accent, Center: true}.Render(width, height)
}
