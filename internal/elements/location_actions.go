package elements

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/openneighborhood/neighborhood/internal/remote"
	"github.com/openneighborhood/neighborhood/internal/state"
)

// LocationActions are the background actions of the current location: the
// context menu of empty space in the contents panel.
func LocationActions(env *Env, cb EventCallback) []Action {
	b := &base{env: env, emit: cb}
	actions := []Action{{Label: "Refresh", Run: func() { b.navigate(env.Engine.Location.Position(), nil) }}}

	if env.Engine.Location.Location() != state.DriveContents {
		return actions
	}
	if len(env.Engine.Store.CutPaths()) > 0 {
		actions = append(actions, Action{Label: "Paste", Run: func() { Paste(env, cb) }})
	}
	return append(actions,
		Action{Label: "New folder", Run: func() { NewFolder(env, cb) }},
		Action{Label: "Upload file", Run: func() { Upload(env, cb) }},
	)
}

// NewFolder asks for a name and creates the directory in the current location.
func NewFolder(env *Env, cb EventCallback) {
	e := env.Engine
	if e.Location.Location() != state.DriveContents {
		return
	}
	dir := e.Location.Path()
	b := &base{env: env, emit: cb}
	e.Modals.Input(state.InputRequest{
		Header:   "Enter a folder name",
		Default:  "New folder",
		Validate: ValidateName,
		OnSubmit: func(name string) {
			name = strings.TrimSpace(name)
			if err := ValidateName(name); err != nil {
				e.Modals.Error(err.Error())
				return
			}
			if e.Store.Try(func(ctx context.Context, c remote.Console) error {
				return c.CreateDirectory(ctx, dir.Join(name))
			}) {
				b.navigate(e.Location.Position(), nil)
			}
		},
	})
}

// Upload asks for a local file and sends it into the current location.
func Upload(env *Env, cb EventCallback) {
	e := env.Engine
	if e.Location.Location() != state.DriveContents {
		return
	}
	dir := e.Location.Path()
	b := &base{env: env, emit: cb}
	env.Dialogs.OpenFile(func(local string, err error) {
		if err != nil {
			e.Modals.Error(err.Error())
			return
		}
		if local == "" {
			return
		}
		target := dir.Join(filepath.Base(local))
		if e.Store.Try(func(ctx context.Context, c remote.Console) error {
			return c.SendFile(ctx, local, target)
		}) {
			b.navigate(e.Location.Position(), nil)
		}
	})
}

// Paste moves the cut entries into the current directory. When names
// collide the user is asked once whether to replace them.
func Paste(env *Env, cb EventCallback) {
	e := env.Engine
	cut := e.Store.CutPaths()
	if len(cut) == 0 || e.Location.Location() != state.DriveContents {
		return
	}
	dir := e.Location.Path()
	b := &base{env: env, emit: cb}

	var existing []remote.File
	if !e.Store.Try(func(ctx context.Context, c remote.Console) error {
		var err error
		existing, err = c.GetDirectoryContents(ctx, dir)
		return err
	}) {
		return
	}
	byName := make(map[string]remote.File, len(existing))
	for _, f := range existing {
		byName[strings.ToLower(f.Name)] = f
	}

	var moves, conflicts []remote.Path
	for _, src := range cut {
		if src.Parent().Equal(dir) {
			continue
		}
		if !strings.EqualFold(src.Drive(), dir.Drive()) {
			e.Modals.Error(fmt.Sprintf("Cannot move \"%s\" to another drive", src.Base()))
			return
		}
		if dir.IsWithin(src) {
			e.Modals.Error(fmt.Sprintf("Cannot move \"%s\" into itself", src.Base()))
			return
		}
		if _, taken := byName[strings.ToLower(src.Base())]; taken {
			// Replacing a folder that holds the source would take the source with it.
			if src.IsWithin(dir.Join(src.Base())) {
				e.Modals.Error(fmt.Sprintf("Cannot replace \"%s\" with an item it contains", src.Base()))
				return
			}
			conflicts = append(conflicts, src)
		}
		moves = append(moves, src)
	}
	if len(moves) == 0 {
		e.Store.ClearCut()
		return
	}

	run := func() {
		ok := e.Store.Try(func(ctx context.Context, c remote.Console) error {
			for _, src := range moves {
				victim, taken := byName[strings.ToLower(src.Base())]
				if !taken {
					if err := c.RenameFile(ctx, src, dir.Join(src.Base())); err != nil {
						return err
					}
					continue
				}
				if err := replaceEntry(ctx, c, dir, victim, src, byName); err != nil {
					return err
				}
			}
			return nil
		})
		if ok {
			e.Store.ClearCut()
		}
		// Partial moves still change the listing.
		b.navigate(e.Location.Position(), nil)
	}

	if len(conflicts) == 0 {
		run()
		return
	}
	e.Modals.Confirm(pasteConflictMessage(conflicts), run)
}

// replaceEntry moves src over the existing entry victim in dir. The victim
// is set aside under a spare name and only deleted once the move has
// landed; a failed move puts it back.
func replaceEntry(ctx context.Context, c remote.Console, dir remote.Path, victim remote.File, src remote.Path, taken map[string]remote.File) error {
	target := dir.Join(victim.Name)
	spare := dir.Join(spareName(victim.Name, taken))
	if err := c.RenameFile(ctx, target, spare); err != nil {
		return err
	}
	if err := c.RenameFile(ctx, src, dir.Join(src.Base())); err != nil {
		if rerr := c.RenameFile(ctx, spare, target); rerr != nil {
			return fmt.Errorf("%w (restoring %s failed: %v)", err, victim.Name, rerr)
		}
		return err
	}
	return c.DeleteFile(ctx, spare, victim.IsDirectory)
}

// spareName returns a name for setting aside name that collides with
// nothing in taken.
func spareName(name string, taken map[string]remote.File) string {
	candidate := name + ".replaced"
	for i := 2; ; i++ {
		if _, ok := taken[strings.ToLower(candidate)]; !ok {
			return candidate
		}
		candidate = fmt.Sprintf("%s.replaced%d", name, i)
	}
}

func pasteConflictMessage(conflicts []remote.Path) string {
	if len(conflicts) == 1 {
		return fmt.Sprintf("\"%s\" already exists in this folder. Do you want to replace it?", conflicts[0].Base())
	}
	return fmt.Sprintf("%d items already exist in this folder. Do you want to replace them?", len(conflicts))
}
