// Package tui is the bubbletea page shell.
//
// Allowed here:
// - the shell model: header, navigation list, status bar, footer, overlays
// - key registry and scope policy
// - turning key presses into router navigation
//
// Not allowed here:
// - path resolution (internal/router)
// - page content (internal/views)
// - low-level drawing primitives (internal/widgets)
package tui
