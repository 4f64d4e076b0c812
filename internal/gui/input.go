package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/openneighborhood/neighborhood/internal/events"
)

// modifierTracker follows held modifier keys, since fyne key events carry
// only the key name.
type modifierTracker struct {
	held    events.Modifier
	pressed map[fyne.KeyName]bool
}

func modifierFor(name fyne.KeyName) events.Modifier {
	switch name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		return events.ModShift
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		return events.ModControl
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		return events.ModAlt
	case desktop.KeySuperLeft, desktop.KeySuperRight:
		return events.ModSuper
	}
	return 0
}

// down records a key press. Modifier keys only update the held set and
// yield no event.
func (t *modifierTracker) down(name fyne.KeyName) *events.KeyPressedEvent {
	if m := modifierFor(name); m != 0 {
		t.held |= m
		return nil
	}
	if t.pressed == nil {
		t.pressed = make(map[fyne.KeyName]bool)
	}
	repeat := t.pressed[name]
	t.pressed[name] = true
	return &events.KeyPressedEvent{Key: string(name), Modifiers: t.held, Repeat: repeat}
}

func (t *modifierTracker) up(name fyne.KeyName) *events.KeyReleasedEvent {
	if m := modifierFor(name); m != 0 {
		t.held &^= m
	}
	delete(t.pressed, name)
	return &events.KeyReleasedEvent{Key: string(name)}
}

func mouseButton(b desktop.MouseButton) events.MouseButton {
	switch b {
	case desktop.MouseButtonSecondary:
		return events.MouseButtonSecondary
	case desktop.MouseButtonTertiary:
		return events.MouseButtonTertiary
	default:
		return events.MouseButtonPrimary
	}
}
