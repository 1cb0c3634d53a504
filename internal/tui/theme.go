package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorBrand   = colorMauve
	colorFocus   = colorLavender
	colorLink    = colorBlue
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorSubtext0
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerBarStyle = lipgloss.NewStyle().Background(colorMantle).Foreground(colorText)
	headerAppStyle = lipgloss.NewStyle().Background(colorMantle).Foreground(colorBrand).Bold(true)
	navSepStyle    = lipgloss.NewStyle().Background(colorMantle).Foreground(colorSurface2)

	activeLinkStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	cursorLinkStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorFocus).
			Underline(true).
			Padding(0, 1)
	inactiveLinkStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorLink).
				Padding(0, 1)

	statusBarStyle    = lipgloss.NewStyle().Background(colorSurface0).Foreground(colorSuccess)
	statusErrBarStyle = lipgloss.NewStyle().Background(colorSurface0).Foreground(colorError)
	footerStyle       = lipgloss.NewStyle().Background(colorMantle)
	footerKeyStyle    = lipgloss.NewStyle().Background(colorMantle).Foreground(colorAccent).Bold(true)
	footerDescStyle   = lipgloss.NewStyle().Background(colorMantle).Foreground(colorMuted)

	overlayTitleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	hintStyle         = lipgloss.NewStyle().Foreground(colorOverlay1)
)
