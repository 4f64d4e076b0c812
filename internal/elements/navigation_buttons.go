package elements

import (
	"github.com/openneighborhood/neighborhood/internal/constants"
	"github.com/openneighborhood/neighborhood/internal/state"
)

// GoToParentButton moves one level up.
type GoToParentButton struct {
	base
}

func NewGoToParentButton(env *Env) *GoToParentButton {
	return &GoToParentButton{base: base{env: env, label: "Parent directory", icon: IconParent}}
}

func (b *GoToParentButton) OnClick()              { b.goToParent() }
func (b *GoToParentButton) ContextMenu() []Action { return nil }

// PathNodeKind tells what a path node jumps to.
type PathNodeKind int

const (
	PathNodeRoot PathNodeKind = iota
	PathNodeConsole
	PathNodeDirectory
)

// PathNode is one segment of the path bar.
type PathNode struct {
	base
	kind  PathNodeKind
	depth int // directory nodes only, drive counted as 1
}

func NewPathNode(env *Env, label string, kind PathNodeKind, depth int) *PathNode {
	return &PathNode{
		base:  base{env: env, label: label, icon: IconPathNode},
		kind:  kind,
		depth: depth,
	}
}

func (n *PathNode) Kind() PathNodeKind { return n.kind }
func (n *PathNode) Depth() int         { return n.depth }

func (n *PathNode) OnClick() {
	switch n.kind {
	case PathNodeRoot:
		n.navigate(state.Position{Location: state.ConsoleList}, func(m *state.LocationMover) error {
			m.GoToConsoleList()
			return nil
		})
	case PathNodeConsole:
		n.navigate(state.Position{Location: state.DriveList}, func(m *state.LocationMover) error {
			m.GoToDriveList()
			return nil
		})
	case PathNodeDirectory:
		target, err := n.engine().Location.AtDepth(n.depth)
		if err != nil {
			n.engine().Logger.Warn().Err(err).Msg("Stale path node")
			return
		}
		n.navigate(target, func(m *state.LocationMover) error {
			return m.GoToDepth(n.depth)
		})
	}
}

func (n *PathNode) ContextMenu() []Action { return nil }

// CreatePathNodes builds the path bar for the current location: the root
// node, the console node from DriveList down, and one node per path segment
// inside a drive.
func CreatePathNodes(env *Env) []Element {
	e := env.Engine
	nodes := []Element{NewPathNode(env, constants.AppTitle, PathNodeRoot, 0)}

	pos := e.Location.Position()
	if pos.Location >= state.DriveList && e.Store.HasConsole() {
		nodes = append(nodes, NewPathNode(env, e.Store.GetConsole().Name(), PathNodeConsole, 0))
	}
	if pos.Location == state.DriveContents {
		nodes = append(nodes, NewPathNode(env, pos.Path.Drive(), PathNodeDirectory, 1))
		for i, seg := range pos.Path.Segments() {
			nodes = append(nodes, NewPathNode(env, seg, PathNodeDirectory, i+2))
		}
	}
	return nodes
}
