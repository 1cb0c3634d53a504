package views

import (
	"github.com/jask/viewshell/internal/router"
	"github.com/jask/viewshell/internal/widgets"
)

// Placeholder stands in for a page whose content lives elsewhere. It renders
// its name and nothing else.
type Placeholder struct {
	Name string
	View router.ViewID
}

func (p Placeholder) ID() router.ViewID { return p.View }
func (p Placeholder) Title() string     { return p.Name }

func (p Placeholder) Render(width, height int) string {
	return widgets.Box{Title: p.Name, Content: p.Name, Center: true}.Render(width, height)
}
