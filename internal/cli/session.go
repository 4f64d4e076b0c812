package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/openneighborhood/neighborhood/internal/config"
	"github.com/openneighborhood/neighborhood/internal/events"
	"github.com/openneighborhood/neighborhood/internal/progress"
	"github.com/openneighborhood/neighborhood/internal/remote"
	"github.com/openneighborhood/neighborhood/internal/remote/mirror"
)

// session is one connected console for the duration of a command.
type session struct {
	cfg     *config.Config
	bus     *events.EventBus
	console remote.Console
}

// connect dials address with the configured connect timeout.
func connect(address string) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if !remote.IsValidIPv4(address) {
		return nil, fmt.Errorf("%w: %q", remote.ErrInvalidAddress, address)
	}

	bus := events.NewEventBus(0)
	dialer := &mirror.Dialer{
		Root:       cfg.MirrorRoot,
		ShowHidden: cfg.ShowHidden,
		Bus:        bus,
		Logger:     GetLogger(),
	}

	ctx, cancel := context.WithTimeout(GetContext(), cfg.ConnectTimeout)
	defer cancel()

	spinner := progress.StartSpinner("Connecting to " + address)
	console, err := dialer.Dial(ctx, address)
	spinner.Stop()
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("couldn't find console %s: %w", address, err)
	}
	GetLogger().Debug().Str("name", console.Name()).Str("address", address).Msg("Connected")
	return &session{cfg: cfg, bus: bus, console: console}, nil
}

// run calls op with the per-operation timeout.
func (s *session) run(op func(ctx context.Context, c remote.Console) error) error {
	ctx, cancel := context.WithTimeout(GetContext(), s.cfg.OperationTimeout)
	defer cancel()
	return op(ctx, s.console)
}

// transfer is run with progress bars following the session's transfer events.
func (s *session) transfer(op func(ctx context.Context, c remote.Console) error) error {
	ui := progress.NewTransferUI()
	ui.Follow(s.bus)
	prev := GetLogger().Output()
	GetLogger().SetOutput(ui.Writer())

	err := s.run(op)

	ui.Stop()
	GetLogger().SetOutput(prev)
	if completed, failed := ui.Summary(); completed+failed > 1 {
		fmt.Fprintf(os.Stderr, "%d transfer(s) completed, %d failed\n", completed, failed)
	}
	return err
}

func (s *session) close() {
	if err := s.console.Close(); err != nil {
		GetLogger().Debug().Err(err).Msg("Close failed")
	}
	s.bus.Close()
}

// withConsole connects to address, runs fn and disconnects.
func withConsole(address string, fn func(s *session) error) error {
	s, err := connect(address)
	if err != nil {
		return err
	}
	defer s.close()
	return fn(s)
}

// parseRemotePath parses a console path argument.
func parseRemotePath(arg string) (remote.Path, error) {
	p, err := remote.ParsePath(arg)
	if err != nil {
		return remote.Path{}, err
	}
	if p.IsEmpty() {
		return remote.Path{}, fmt.Errorf("path %q has no drive", arg)
	}
	return p, nil
}
