package elements

import (
	"context"

	"github.com/openneighborhood/neighborhood/internal/remote"
	"github.com/openneighborhood/neighborhood/internal/state"
)

// CreateRootElements returns the known consoles followed by the add button.
// A console file that cannot be read raises the error modal and yields only
// the button.
func CreateRootElements(env *Env) []Element {
	var elems []Element
	known, err := env.Engine.Consoles.List()
	if err != nil {
		env.Engine.Logger.Warn().Err(err).Msg("Reading known consoles failed")
		env.Engine.Modals.Error(err.Error())
	}
	for _, k := range known {
		elems = append(elems, NewConsole(env, k.Name, k.IPAddress))
	}
	return append(elems, NewAddConsoleButton(env))
}

// CreateDriveElements wraps drives in the order the console listed them.
func CreateDriveElements(env *Env, drives []remote.Drive) []Element {
	elems := make([]Element, 0, len(drives))
	for _, d := range drives {
		elems = append(elems, NewDrive(env, d))
	}
	return elems
}

// CreateFileElements wraps the entries of dir, directories first.
func CreateFileElements(env *Env, dir remote.Path, files []remote.File) []Element {
	sorted := append([]remote.File(nil), files...)
	remote.SortFiles(sorted)
	elems := make([]Element, 0, len(sorted))
	for _, f := range sorted {
		elems = append(elems, NewFile(env, dir, f))
	}
	return elems
}

// listPosition fetches what is shown at pos. It reports false when a remote
// call failed, in which case the error modal is already raised.
func listPosition(env *Env, pos state.Position) ([]Element, bool) {
	store := env.Engine.Store
	switch pos.Location {
	case state.DriveList:
		var drives []remote.Drive
		ok := store.Try(func(ctx context.Context, c remote.Console) error {
			var err error
			drives, err = c.GetDrives(ctx)
			return err
		})
		return CreateDriveElements(env, drives), ok
	case state.DriveContents:
		var files []remote.File
		ok := store.Try(func(ctx context.Context, c remote.Console) error {
			var err error
			files, err = c.GetDirectoryContents(ctx, pos.Path)
			return err
		})
		return CreateFileElements(env, pos.Path, files), ok
	default:
		return CreateRootElements(env), true
	}
}

// navigate lists target and, only if that succeeded, applies move and emits
// the listing. A nil move re-displays the current location.
func (b *base) navigate(target state.Position, move func(*state.LocationMover) error) bool {
	elems, ok := listPosition(b.env, target)
	if !ok {
		return false
	}
	if move != nil {
		if err := move(b.engine().Location); err != nil {
			b.engine().Logger.Warn().Err(err).Msg("Navigation rejected")
			return false
		}
	}
	b.emitContents(elems, false)
	return true
}

// Refresh re-lists the current location and emits it through cb.
func Refresh(env *Env, cb EventCallback) bool {
	b := &base{env: env, emit: cb}
	return b.navigate(env.Engine.Location.Position(), nil)
}

// GoToParent lists the parent location, moves there and emits it through cb.
func GoToParent(env *Env, cb EventCallback) bool {
	b := &base{env: env, emit: cb}
	return b.goToParent()
}

func (b *base) goToParent() bool {
	loc := b.engine().Location
	return b.navigate(loc.Parent(), func(m *state.LocationMover) error {
		m.GoToParent()
		return nil
	})
}
