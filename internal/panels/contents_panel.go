package panels

import (
	"github.com/openneighborhood/neighborhood/internal/elements"
	"github.com/openneighborhood/neighborhood/internal/events"
	"github.com/openneighborhood/neighborhood/internal/state"
)

// ContentsPanel shows the elements of the current location.
type ContentsPanel struct {
	env      *elements.Env
	emit     elements.EventCallback
	parent   *elements.GoToParentButton
	elems    []elements.Element
	revision uint64
}

func NewContentsPanel(env *elements.Env, emit elements.EventCallback, initial []elements.Element) *ContentsPanel {
	p := &ContentsPanel{
		env:    env,
		emit:   emit,
		parent: elements.NewGoToParentButton(env),
	}
	p.parent.SetEventCallback(emit)
	p.set(initial, false)
	return p
}

// Elements returns what is displayed, in order.
func (p *ContentsPanel) Elements() []elements.Element { return p.elems }

// Revision changes every time the elements change.
func (p *ContentsPanel) Revision() uint64 { return p.revision }

// ParentButton returns the go-to-parent button, or nil where there is no parent.
func (p *ContentsPanel) ParentButton() *elements.GoToParentButton {
	if p.env.Engine.Location.Location() <= state.ConsoleList {
		return nil
	}
	return p.parent
}

// Actions returns the background context menu of the current location.
func (p *ContentsPanel) Actions() []elements.Action {
	return elements.LocationActions(p.env, p.emit)
}

// OnEvent applies a contents change and leaves it unhandled so the path bar
// below sees it too.
func (p *ContentsPanel) OnEvent(e events.AppEvent) {
	events.Dispatch(e, func(ev *elements.ContentsChangeEvent) bool {
		p.set(ev.Elements, ev.Append)
		return false
	})
}

func (p *ContentsPanel) OnRender() {}

func (p *ContentsPanel) set(elems []elements.Element, appendMode bool) {
	for _, e := range elems {
		e.SetEventCallback(p.emit)
	}
	if appendMode {
		p.elems = append(p.elems, elems...)
	} else {
		p.elems = append([]elements.Element(nil), elems...)
	}
	p.revision++
}
