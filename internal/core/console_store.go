package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openneighborhood/neighborhood/internal/events"
	"github.com/openneighborhood/neighborhood/internal/logging"
	"github.com/openneighborhood/neighborhood/internal/remote"
	"github.com/openneighborhood/neighborhood/internal/state"
)

// ErrNoConsole is the panic value of GetConsole when nothing is connected.
var ErrNoConsole = errors.New("no console connected")

// ConnectFailedMessage is shown when dialing a console fails.
const ConnectFailedMessage = "Couldn't find console"

// ConsoleStore owns the single live console session and funnels every
// remote call through Try, which turns failures into the error modal.
type ConsoleStore struct {
	dialer remote.Dialer
	modals *state.Modals
	logger *logging.Logger
	bus    *events.EventBus

	connectTimeout   time.Duration
	operationTimeout time.Duration

	console remote.Console
	cut     []remote.Path
}

// NewConsoleStore returns a store with no console connected.
func NewConsoleStore(dialer remote.Dialer, modals *state.Modals, logger *logging.Logger, bus *events.EventBus, connectTimeout, operationTimeout time.Duration) *ConsoleStore {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &ConsoleStore{
		dialer:           dialer,
		modals:           modals,
		logger:           logger,
		bus:              bus,
		connectTimeout:   connectTimeout,
		operationTimeout: operationTimeout,
	}
}

// CreateConsole dials address and makes it the current console. On failure
// the error modal is raised and the current console, if any, stays.
func (s *ConsoleStore) CreateConsole(address string) bool {
	ctx, cancel := s.context(s.connectTimeout)
	defer cancel()

	console, err := s.dialer.Dial(ctx, address)
	if err != nil {
		s.logger.Warn().Err(err).Str("address", address).Msg("Connect failed")
		s.modals.Error(ConnectFailedMessage)
		return false
	}

	if s.console == nil || s.console.Address() != console.Address() {
		s.cut = nil
	}
	if s.console != nil && s.console != console {
		s.closeCurrent()
	}
	s.console = console
	s.logger.Info().Str("name", console.Name()).Str("address", address).Msg("Connected to console")
	s.bus.PublishConsole(events.EventConsoleConnected, console.Name(), address)
	return true
}

// GetConsole returns the current console. Calling it with no console
// connected is a programming error and panics.
func (s *ConsoleStore) GetConsole() remote.Console {
	if s.console == nil {
		panic(ErrNoConsole)
	}
	return s.console
}

// HasConsole reports whether a console is connected.
func (s *ConsoleStore) HasConsole() bool {
	return s.console != nil
}

// Disconnect closes the current console, if any.
func (s *ConsoleStore) Disconnect() {
	if s.console == nil {
		return
	}
	s.closeCurrent()
	s.cut = nil
}

func (s *ConsoleStore) closeCurrent() {
	name, address := s.console.Name(), s.console.Address()
	if err := s.console.Close(); err != nil {
		s.logger.Warn().Err(err).Str("address", address).Msg("Closing console failed")
	}
	s.console = nil
	s.bus.PublishConsole(events.EventConsoleDisconnected, name, address)
}

// Try runs op against the current console with the operation timeout.
// A failure is logged, recorded in the error modal and reported as false.
// No retries.
func (s *ConsoleStore) Try(op func(ctx context.Context, console remote.Console) error) bool {
	console := s.GetConsole()

	ctx, cancel := s.context(s.operationTimeout)
	defer cancel()

	if err := op(ctx, console); err != nil {
		s.logger.Warn().Err(err).Str("address", console.Address()).Msg("Console operation failed")
		s.modals.Error(ErrorMessage(err))
		return false
	}
	return true
}

// Cut remembers paths to move on the next paste, replacing earlier ones.
func (s *ConsoleStore) Cut(paths ...remote.Path) {
	s.cut = append([]remote.Path(nil), paths...)
}

// CutPaths returns the remembered paths.
func (s *ConsoleStore) CutPaths() []remote.Path {
	return append([]remote.Path(nil), s.cut...)
}

// ClearCut forgets the remembered paths.
func (s *ConsoleStore) ClearCut() {
	s.cut = nil
}

func (s *ConsoleStore) context(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// ErrorMessage renders err for the error modal.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "The console did not respond in time"
	case errors.Is(err, remote.ErrClosed):
		return "The connection to the console was closed"
	default:
		return fmt.Sprintf("%v", err)
	}
}
