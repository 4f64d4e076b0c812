// Package core ties the file manager together: the console session, the
// navigation state, the pending modals and the settings they run with.
package core

import (
	"fmt"

	"github.com/openneighborhood/neighborhood/internal/config"
	"github.com/openneighborhood/neighborhood/internal/events"
	"github.com/openneighborhood/neighborhood/internal/logging"
	"github.com/openneighborhood/neighborhood/internal/remote"
	"github.com/openneighborhood/neighborhood/internal/state"
)

// Engine is passed explicitly to every element and panel in place of global
// state.
type Engine struct {
	Config   *config.Config
	Consoles *config.KnownConsoles
	Bus      *events.EventBus
	Logger   *logging.Logger

	Store    *ConsoleStore
	Location *state.LocationMover
	Modals   *state.Modals
}

// Options configures NewEngine. Zero fields get defaults.
type Options struct {
	Config   *config.Config
	Consoles *config.KnownConsoles
	Dialer   remote.Dialer
	Bus      *events.EventBus
	Logger   *logging.Logger
}

// NewEngine builds an engine at the Home location with nothing connected.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Dialer == nil {
		return nil, fmt.Errorf("engine requires a console dialer")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	consoles := opts.Consoles
	if consoles == nil {
		consoles = config.NewKnownConsoles(config.DefaultConsolesPath())
	}
	bus := opts.Bus
	if bus == nil {
		bus = events.NewEventBus(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	modals := state.NewModals()
	return &Engine{
		Config:   cfg,
		Consoles: consoles,
		Bus:      bus,
		Logger:   logger,
		Store:    NewConsoleStore(opts.Dialer, modals, logger, bus, cfg.ConnectTimeout, cfg.OperationTimeout),
		Location: state.NewLocationMover(),
		Modals:   modals,
	}, nil
}

// Shutdown closes the console session and the event bus.
func (e *Engine) Shutdown() {
	e.Store.Disconnect()
	e.Bus.Close()
}
