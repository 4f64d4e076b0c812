package panels

import (
	"github.com/openneighborhood/neighborhood/internal/elements"
	"github.com/openneighborhood/neighborhood/internal/events"
)

// PathPanel shows the path bar. A contents change is held in a single slot
// and the nodes are rebuilt on the next render, once the location has moved.
type PathPanel struct {
	env      *elements.Env
	emit     elements.EventCallback
	nodes    []elements.Element
	pending  *elements.ContentsChangeEvent
	revision uint64
}

func NewPathPanel(env *elements.Env, emit elements.EventCallback) *PathPanel {
	p := &PathPanel{env: env, emit: emit}
	p.rebuild()
	return p
}

// Nodes returns the path nodes from the last render.
func (p *PathPanel) Nodes() []elements.Element { return p.nodes }

// Revision changes every time the nodes are rebuilt.
func (p *PathPanel) Revision() uint64 { return p.revision }

func (p *PathPanel) OnEvent(e events.AppEvent) {
	events.Dispatch(e, func(ev *elements.ContentsChangeEvent) bool {
		p.pending = ev
		return true
	})
}

func (p *PathPanel) OnRender() {
	if p.pending == nil {
		return
	}
	p.pending = nil
	p.rebuild()
}

func (p *PathPanel) rebuild() {
	p.nodes = elements.CreatePathNodes(p.env)
	for _, n := range p.nodes {
		n.SetEventCallback(p.emit)
	}
	p.revision++
}
