// Package views holds the rendering collaborators selected by the router.
// Each view is a parameterless render unit: it knows its size and nothing
// about navigation.
package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/viewshell/internal/router"
)

// View renders one routed page.
type View interface {
	ID() router.ViewID
	Title() string
	Render(width, height int) string
}

// Registry maps view ids to views.
type Registry struct {
	views    map[router.ViewID]View
	fallback router.ViewID
}

// NewRegistry indexes views by id. fallback names the view Lookup returns
// for an unknown id; it must be one of views.
func NewRegistry(fallback router.ViewID, views ...View) *Registry {
	reg := &Registry{views: make(map[router.ViewID]View, len(views)), fallback: fallback}
	for _, v := range views {
		if v == nil {
			continue
		}
		reg.views[v.ID()] = v
	}
	if _, ok := reg.views[fallback]; !ok {
		panic("views: fallback view " + string(fallback) + " is not registered")
	}
	return reg
}

// Default returns the Home, X and Y views keyed by the default router ids.
func Default(accent lipgloss.TerminalColor) *Registry {
	return NewRegistry(router.ViewHome,
		Home{Accent: accent},
		Placeholder{Name: "X", View: router.ViewX},
		Placeholder{Name: "Y", View: router.ViewY},
	)
}

// Lookup returns the view for id, or the fallback view.
func (r *Registry) Lookup(id router.ViewID) View {
	if v, ok := r.views[id]; ok {
		return v
	}
	return r.views[r.fallback]
}

// Has reports whether id has its own view.
func (r *Registry) Has(id router.ViewID) bool {
	_, ok := r.views[id]
	return ok
}
