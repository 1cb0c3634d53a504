package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/viewshell/internal/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width, height := max(1, m.width), max(1, m.height)
	layout := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Text(m.renderHeader()),
			widgets.Text(m.renderStatusBar()),
			shellBody{m: m},
			widgets.Text(m.renderFooter()),
		},
		Fixed: []int{1, 1, 0, 1},
	}
	return appStyle.Width(width).MaxWidth(width).Render(layout.Render(width, height))
}

// shellBody is the active view with the top overlay, if any, drawn over it.
type shellBody struct {
	m Model
}

func (b shellBody) Render(width, height int) string {
	body := b.m.views.Lookup(b.m.active.id).Render(width, height)
	if top := b.m.screens.Top(); top != nil {
		popup := overlayTitleStyle.Render(top.Title()) + "\n\n" + top.View(max(20, width-16), max(6, height-6))
		body = widgets.RenderPopup(body, popup, width, height, colorFocus)
	}
	return body
}

func (m Model) renderHeader() string {
	active := m.activeLink()
	links := m.router.Links()
	parts := make([]string, 0, len(links))
	for i, l := range links {
		switch {
		case i == active:
			parts = append(parts, activeLinkStyle.Render(l.Label))
		case i == m.cursor:
			parts = append(parts, cursorLinkStyle.Render(l.Label))
		default:
			parts = append(parts, inactiveLinkStyle.Render(l.Label))
		}
	}
	left := headerAppStyle.Render(" " + m.title)
	right := strings.Join(parts, navSepStyle.Render("│"))
	return widgets.SpreadBar(headerBarStyle, m.width, left, right)
}

func (m Model) renderStatusBar() string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = m.router.Path() + "  " + m.views.Lookup(m.active.id).Title()
	}
	if m.statusErr {
		return widgets.RenderBar(statusErrBarStyle, m.width, " "+msg)
	}
	return widgets.RenderBar(statusBarStyle, m.width, " "+msg)
}

func (m Model) renderFooter() string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	space := footerStyle.Render(" ")
	sep := footerStyle.Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, footerKeyStyle.Render(h.Key)+space+footerDescStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = footerDescStyle.Render("No shortcuts")
	}
	return widgets.RenderBar(footerStyle, m.width, " "+line)
}
