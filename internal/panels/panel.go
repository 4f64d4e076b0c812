// Package panels holds the panel stack the window draws each frame and routes
// events through.
package panels

import "github.com/openneighborhood/neighborhood/internal/events"

// Panel is one layer of the window.
type Panel interface {
	OnEvent(e events.AppEvent)
	OnRender()
}

// Stack renders bottom to top and dispatches top to bottom.
type Stack struct {
	panels []Panel
}

// Push adds p on top of the stack.
func (s *Stack) Push(p Panel) {
	s.panels = append(s.panels, p)
}

// Render draws every panel, topmost last.
func (s *Stack) Render() {
	for _, p := range s.panels {
		p.OnRender()
	}
}

// Dispatch offers e to each panel from the top until one marks it handled.
func (s *Stack) Dispatch(e events.AppEvent) {
	for i := len(s.panels) - 1; i >= 0; i-- {
		if e.Handled() {
			return
		}
		s.panels[i].OnEvent(e)
	}
}
