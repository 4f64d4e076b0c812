// Package events carries two kinds of events.
//
// App events (AppEvent) are synchronous: window and input callbacks and
// content changes are dispatched through the panel stack on the UI goroutine
// and may be marked handled to stop propagation.
//
// Bus events (Event) are asynchronous notifications such as transfer progress
// and log lines, fanned out over an EventBus to the status bar or the CLI
// progress display.
package events

import "fmt"

// AppEventKind identifies an AppEvent.
type AppEventKind int

const (
	KindNone AppEventKind = iota
	KindWindowResize
	KindWindowClose
	KindKeyPressed
	KindKeyReleased
	KindKeyTyped
	KindMouseButtonPressed
	KindMouseButtonReleased
	KindMouseMoved
	KindMouseScrolled
	KindContentsChange
)

// Category is a bit set used to filter events.
type Category int

const (
	CategoryApplication Category = 1 << iota
	CategoryInput
	CategoryKeyboard
	CategoryMouse
	CategoryMouseButton
	CategoryContents
)

// AppEvent is an event dispatched synchronously through the panel stack.
type AppEvent interface {
	Kind() AppEventKind
	Categories() Category
	Handled() bool
	SetHandled()
	fmt.Stringer
}

// InCategory reports whether e belongs to c.
func InCategory(e AppEvent, c Category) bool {
	return e.Categories()&c != 0
}

// Handling is embedded by AppEvent implementations to carry the handled flag.
type Handling struct {
	handled bool
}

func (h *Handling) Handled() bool { return h.handled }
func (h *Handling) SetHandled()   { h.handled = true }

// Dispatch calls fn when e is of type T and marks e handled if fn returns
// true. It reports whether fn was called.
func Dispatch[T AppEvent](e AppEvent, fn func(T) bool) bool {
	typed, ok := e.(T)
	if !ok {
		return false
	}
	if fn(typed) {
		e.SetHandled()
	}
	return true
}

type WindowResizeEvent struct {
	Handling
	Width, Height int
}

func (*WindowResizeEvent) Kind() AppEventKind   { return KindWindowResize }
func (*WindowResizeEvent) Categories() Category { return CategoryApplication }
func (e *WindowResizeEvent) String() string {
	return fmt.Sprintf("WindowResize: %d, %d", e.Width, e.Height)
}

type WindowCloseEvent struct {
	Handling
}

func (*WindowCloseEvent) Kind() AppEventKind   { return KindWindowClose }
func (*WindowCloseEvent) Categories() Category { return CategoryApplication }
func (*WindowCloseEvent) String() string       { return "WindowClose" }

// Modifier is a bit set of held modifier keys.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Key names follow fyne.KeyName ("BackSpace", "F5", "V").
type KeyPressedEvent struct {
	Handling
	Key       string
	Modifiers Modifier
	Repeat    bool
}

func (*KeyPressedEvent) Kind() AppEventKind { return KindKeyPressed }
func (*KeyPressedEvent) Categories() Category {
	return CategoryInput | CategoryKeyboard
}
func (e *KeyPressedEvent) String() string {
	return fmt.Sprintf("KeyPressed: %s (mods %d, repeat %t)", e.Key, e.Modifiers, e.Repeat)
}

type KeyReleasedEvent struct {
	Handling
	Key string
}

func (*KeyReleasedEvent) Kind() AppEventKind { return KindKeyReleased }
func (*KeyReleasedEvent) Categories() Category {
	return CategoryInput | CategoryKeyboard
}
func (e *KeyReleasedEvent) String() string { return "KeyReleased: " + e.Key }

type KeyTypedEvent struct {
	Handling
	Char rune
}

func (*KeyTypedEvent) Kind() AppEventKind { return KindKeyTyped }
func (*KeyTypedEvent) Categories() Category {
	return CategoryInput | CategoryKeyboard
}
func (e *KeyTypedEvent) String() string { return fmt.Sprintf("KeyTyped: %q", e.Char) }

// MouseButton numbers the primary button 0.
type MouseButton int

const (
	MouseButtonPrimary MouseButton = iota
	MouseButtonSecondary
	MouseButtonTertiary
)

type MouseButtonPressedEvent struct {
	Handling
	Button MouseButton
	X, Y   float32
}

func (*MouseButtonPressedEvent) Kind() AppEventKind { return KindMouseButtonPressed }
func (*MouseButtonPressedEvent) Categories() Category {
	return CategoryInput | CategoryMouse | CategoryMouseButton
}
func (e *MouseButtonPressedEvent) String() string {
	return fmt.Sprintf("MouseButtonPressed: %d", e.Button)
}

type MouseButtonReleasedEvent struct {
	Handling
	Button MouseButton
	X, Y   float32
}

func (*MouseButtonReleasedEvent) Kind() AppEventKind { return KindMouseButtonReleased }
func (*MouseButtonReleasedEvent) Categories() Category {
	return CategoryInput | CategoryMouse | CategoryMouseButton
}
func (e *MouseButtonReleasedEvent) String() string {
	return fmt.Sprintf("MouseButtonReleased: %d", e.Button)
}

type MouseMovedEvent struct {
	Handling
	X, Y float32
}

func (*MouseMovedEvent) Kind() AppEventKind   { return KindMouseMoved }
func (*MouseMovedEvent) Categories() Category { return CategoryInput | CategoryMouse }
func (e *MouseMovedEvent) String() string {
	return fmt.Sprintf("MouseMoved: %.1f, %.1f", e.X, e.Y)
}

type MouseScrolledEvent struct {
	Handling
	DX, DY float32
}

func (*MouseScrolledEvent) Kind() AppEventKind   { return KindMouseScrolled }
func (*MouseScrolledEvent) Categories() Category { return CategoryInput | CategoryMouse }
func (e *MouseScrolledEvent) String() string {
	return fmt.Sprintf("MouseScrolled: %.1f, %.1f", e.DX, e.DY)
}
