// Package elements implements the clickable nodes of the file manager:
// consoles, drives, files, the add-console and go-to-parent buttons and the
// path bar nodes.
//
// An element never changes what is displayed directly. Clicking one runs at
// most one remote operation through the console store and, on success, emits
// a ContentsChangeEvent through its event callback; the panels rebuild from
// that event.
package elements

import (
	"fmt"

	"github.com/openneighborhood/neighborhood/internal/core"
	"github.com/openneighborhood/neighborhood/internal/events"
)

// Icon names an element's picture. The GUI maps these to theme resources.
type Icon string

const (
	IconConsole    Icon = "console"
	IconDrive      Icon = "drive"
	IconFolder     Icon = "folder"
	IconFile       Icon = "file"
	IconExecutable Icon = "xex"
	IconAdd        Icon = "add"
	IconParent     Icon = "parent"
	IconPathNode   Icon = "path"
)

// EventCallback receives events emitted by an element.
type EventCallback func(events.AppEvent)

// Action is one context-menu entry.
type Action struct {
	Label       string
	Run         func()
	Destructive bool
}

// Element is a node shown by the panels.
type Element interface {
	Label() string
	Icon() Icon
	OnClick()
	ContextMenu() []Action
	SetEventCallback(EventCallback)
}

// Property is one row of a properties view.
type Property struct {
	Name  string
	Value string
}

// Dialogs are the native interactions elements need from the window layer.
// Every callback reports cancellation as an empty path and a nil error.
type Dialogs interface {
	SaveFile(defaultName string, cb func(path string, err error))
	OpenFile(cb func(path string, err error))
	ShowProperties(title string, props []Property)
	CopyToClipboard(text string) error
}

// Env is what every element works against.
type Env struct {
	Engine  *core.Engine
	Dialogs Dialogs
}

// ContentsChangeEvent replaces (or, with Append, extends) the displayed elements.
type ContentsChangeEvent struct {
	events.Handling
	Elements []Element
	Append   bool
}

func (*ContentsChangeEvent) Kind() events.AppEventKind   { return events.KindContentsChange }
func (*ContentsChangeEvent) Categories() events.Category { return events.CategoryContents }
func (e *ContentsChangeEvent) String() string {
	return fmt.Sprintf("ContentsChange: %d elements (append %t)", len(e.Elements), e.Append)
}

// base carries what all elements share.
type base struct {
	env   *Env
	label string
	icon  Icon
	emit  EventCallback
}

func (b *base) Label() string { return b.label }
func (b *base) Icon() Icon    { return b.icon }

func (b *base) SetEventCallback(cb EventCallback) { b.emit = cb }

func (b *base) engine() *core.Engine { return b.env.Engine }

// emitContents sends a ContentsChangeEvent, wiring the new elements to the
// same callback first.
func (b *base) emitContents(elems []Element, appendMode bool) {
	if b.emit == nil {
		return
	}
	for _, e := range elems {
		e.SetEventCallback(b.emit)
	}
	b.emit(&ContentsChangeEvent{Elements: elems, Append: appendMode})
}
