package panels

import (
	"github.com/openneighborhood/neighborhood/internal/elements"
	"github.com/openneighborhood/neighborhood/internal/events"
	"github.com/openneighborhood/neighborhood/internal/state"
)

// Presenter shows the modals raised during a frame.
type Presenter interface {
	Confirm(req state.ConfirmRequest)
	Input(req state.InputRequest)
	AddConsole(req state.AddConsoleRequest)
	Error(message string)
	Success(message string)
}

// Layer owns the panel stack and runs frames.
type Layer struct {
	env       *elements.Env
	presenter Presenter
	stack     Stack

	Main     *MainPanel
	Path     *PathPanel
	Contents *ContentsPanel
}

// NewLayer builds the stack showing the console list.
func NewLayer(env *elements.Env, presenter Presenter, width, height int) *Layer {
	l := &Layer{env: env, presenter: presenter}

	env.Engine.Location.GoToConsoleList()
	l.Main = NewMainPanel(env, l.OnEvent, width, height)
	l.Path = NewPathPanel(env, l.OnEvent)
	l.Contents = NewContentsPanel(env, l.OnEvent, elements.CreateRootElements(env))

	l.stack.Push(l.Main)
	l.stack.Push(l.Path)
	l.stack.Push(l.Contents)
	return l
}

// OnEvent dispatches e through the stack. Elements emit into this too.
func (l *Layer) OnEvent(e events.AppEvent) {
	l.env.Engine.Logger.Debug().Str("event", e.String()).Msg("Dispatch")
	l.stack.Dispatch(e)
}

// OnUpdate runs one frame: render the stack, then present the pending
// modals, at most one of each kind.
func (l *Layer) OnUpdate() {
	l.stack.Render()

	m := l.env.Engine.Modals
	if req, ok := m.TakeConfirm(); ok {
		l.presenter.Confirm(req)
	}
	if req, ok := m.TakeInput(); ok {
		l.presenter.Input(req)
	}
	if req, ok := m.TakeAddConsole(); ok {
		l.presenter.AddConsole(req)
	}
	if msg, ok := m.TakeError(); ok {
		l.presenter.Error(msg)
	}
	if msg, ok := m.TakeSuccess(); ok {
		l.presenter.Success(msg)
	}
}
