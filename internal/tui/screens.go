package tui

import tea "github.com/charmbracelet/bubbletea"

// Screen is an overlay drawn on top of the active view. Update reports done
// when the screen wants to close.
type Screen interface {
	Update(msg tea.Msg) (next Screen, cmd tea.Cmd, done bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// ScreenStack holds open overlays; only the top one sees input.
type ScreenStack struct {
	open []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen != nil {
		s.open = append(s.open, screen)
	}
}

func (s *ScreenStack) Pop() {
	if n := len(s.open); n > 0 {
		s.open = s.open[:n-1]
	}
}

func (s ScreenStack) Top() Screen {
	if n := len(s.open); n > 0 {
		return s.open[n-1]
	}
	return nil
}

func (s ScreenStack) Len() int { return len(s.open) }

// Update routes msg to the top screen, closing it when it reports done.
func (s *ScreenStack) Update(msg tea.Msg) tea.Cmd {
	top := s.Top()
	if top == nil {
		return nil
	}
	next, cmd, done := top.Update(msg)
	switch {
	case done:
		s.Pop()
	case next != nil:
		s.open[len(s.open)-1] = next
	}
	return cmd
}
