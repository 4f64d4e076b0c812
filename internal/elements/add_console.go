package elements

import (
	"fmt"

	"github.com/openneighborhood/neighborhood/internal/config"
	"github.com/openneighborhood/neighborhood/internal/constants"
	"github.com/openneighborhood/neighborhood/internal/remote"
	"github.com/openneighborhood/neighborhood/internal/state"
)

// AddConsoleButton asks for an address, connects and adds the console.
type AddConsoleButton struct {
	base
}

func NewAddConsoleButton(env *Env) *AddConsoleButton {
	return &AddConsoleButton{base: base{env: env, label: "Add console", icon: IconAdd}}
}

func (b *AddConsoleButton) OnClick() {
	b.engine().Modals.AddConsole(state.AddConsoleRequest{
		Default:  constants.DefaultConsoleAddress,
		OnSubmit: func(bytes [4]int) { b.Add(remote.FormatIPv4(bytes)) },
	})
}

func (b *AddConsoleButton) ContextMenu() []Action {
	return []Action{{Label: "Add console", Run: b.OnClick}}
}

// Add connects to address, saves it and appends its element.
func (b *AddConsoleButton) Add(address string) bool {
	e := b.engine()
	if _, found, err := e.Consoles.Find(address); err == nil && found {
		e.Modals.Error(fmt.Sprintf("Console with IP address %s already exists.", address))
		return false
	}
	if !e.Store.CreateConsole(address) {
		return false
	}

	console := e.Store.GetConsole()
	if err := e.Consoles.Add(config.KnownConsole{Name: console.Name(), IPAddress: address}); err != nil {
		e.Logger.Warn().Err(err).Str("address", address).Msg("Saving console failed")
		e.Modals.Error(err.Error())
		return false
	}
	b.emitContents([]Element{NewConsole(b.env, console.Name(), address)}, true)
	return true
}

// ByteState flags a byte of an IPv4Entry that was clamped.
type ByteState int

const (
	ByteValid ByteState = iota
	ByteTooHigh
	ByteTooLow
)

// IPv4Entry is the model behind the four address fields of the add-console
// dialog. Out-of-range values are clamped and flagged; a flagged entry
// cannot be submitted until the byte is set again in range.
type IPv4Entry struct {
	bytes  [4]int
	states [4]ByteState
}

func NewIPv4Entry(initial [4]int) *IPv4Entry {
	e := &IPv4Entry{}
	for i, v := range initial {
		e.Set(i, v)
	}
	return e
}

// Set stores v at index i, clamping to 0..255.
func (e *IPv4Entry) Set(i, v int) ByteState {
	switch {
	case v > 255:
		e.bytes[i], e.states[i] = 255, ByteTooHigh
	case v < 0:
		e.bytes[i], e.states[i] = 0, ByteTooLow
	default:
		e.bytes[i], e.states[i] = v, ByteValid
	}
	return e.states[i]
}

func (e *IPv4Entry) Byte(i int) int        { return e.bytes[i] }
func (e *IPv4Entry) State(i int) ByteState { return e.states[i] }
func (e *IPv4Entry) Bytes() [4]int         { return e.bytes }

// Valid reports whether no byte is flagged.
func (e *IPv4Entry) Valid() bool {
	for _, s := range e.states {
		if s != ByteValid {
			return false
		}
	}
	return true
}

// Submit returns the address, refusing while any byte is flagged.
func (e *IPv4Entry) Submit() ([4]int, bool) {
	if !e.Valid() {
		return [4]int{}, false
	}
	return e.bytes, true
}

// String renders the current bytes as a dotted quad.
func (e *IPv4Entry) String() string {
	return remote.FormatIPv4(e.bytes)
}
