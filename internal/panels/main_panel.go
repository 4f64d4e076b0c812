package panels

import (
	"github.com/openneighborhood/neighborhood/internal/elements"
	"github.com/openneighborhood/neighborhood/internal/events"
)

// MainPanel sits at the bottom of the stack. It tracks the window size and
// turns keyboard shortcuts into navigation.
type MainPanel struct {
	env     *elements.Env
	emit    elements.EventCallback
	onClose func()

	width, height int
	closing       bool
}

func NewMainPanel(env *elements.Env, emit elements.EventCallback, width, height int) *MainPanel {
	return &MainPanel{env: env, emit: emit, width: width, height: height}
}

// SetOnClose registers the shutdown request raised by WindowClose.
func (p *MainPanel) SetOnClose(fn func()) { p.onClose = fn }

func (p *MainPanel) Size() (int, int) { return p.width, p.height }

// Closing reports whether the window asked to close.
func (p *MainPanel) Closing() bool { return p.closing }

func (p *MainPanel) OnRender() {}

func (p *MainPanel) OnEvent(e events.AppEvent) {
	events.Dispatch(e, func(ev *events.WindowResizeEvent) bool {
		p.width, p.height = ev.Width, ev.Height
		return false
	})
	events.Dispatch(e, func(*events.WindowCloseEvent) bool {
		p.closing = true
		if p.onClose != nil {
			p.onClose()
		}
		return true
	})
	events.Dispatch(e, p.onKeyPressed)
}

func (p *MainPanel) onKeyPressed(ev *events.KeyPressedEvent) bool {
	ctrl := ev.Modifiers&(events.ModControl|events.ModSuper) != 0
	shift := ev.Modifiers&events.ModShift != 0

	switch {
	case ev.Key == "BackSpace" && ev.Modifiers == 0:
		elements.GoToParent(p.env, p.emit)
	case ev.Key == "F5" && !ev.Repeat:
		elements.Refresh(p.env, p.emit)
	case ev.Key == "V" && ctrl && !shift && !ev.Repeat:
		elements.Paste(p.env, p.emit)
	case ev.Key == "N" && ctrl && shift && !ev.Repeat:
		elements.NewFolder(p.env, p.emit)
	default:
		return false
	}
	return true
}
