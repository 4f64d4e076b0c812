package elements

import (
	"context"
	"fmt"
	"strings"

	"github.com/openneighborhood/neighborhood/internal/remote"
	"github.com/openneighborhood/neighborhood/internal/state"
)

// File is an entry of the directory being shown.
type File struct {
	base
	dir  remote.Path
	file remote.File
}

func NewFile(env *Env, dir remote.Path, f remote.File) *File {
	icon := IconFile
	switch {
	case f.IsDirectory:
		icon = IconFolder
	case f.IsXex:
		icon = IconExecutable
	}
	return &File{
		base: base{env: env, label: f.Name, icon: icon},
		dir:  dir,
		file: f,
	}
}

// Data returns the file snapshot the element was built from.
func (f *File) Data() remote.File { return f.file }

// Path returns the full console path of the entry.
func (f *File) Path() remote.Path { return f.dir.Join(f.file.Name) }

// OnClick opens a directory or launches an executable. Other files do nothing.
func (f *File) OnClick() {
	switch {
	case f.file.IsDirectory:
		f.open()
	case f.file.IsXex:
		f.launch()
	}
}

func (f *File) open() {
	target := state.Position{Location: state.DriveContents, Path: f.Path()}
	f.navigate(target, func(m *state.LocationMover) error {
		return m.GoToDirectory(f.file.Name)
	})
}

func (f *File) launch() {
	path := f.Path()
	if f.engine().Store.Try(func(ctx context.Context, c remote.Console) error {
		return c.LaunchXex(ctx, path)
	}) {
		f.engine().Logger.Info().Str("title", path.String()).Msg("Launched")
	}
}

func (f *File) ContextMenu() []Action {
	var actions []Action
	switch {
	case f.file.IsDirectory:
		actions = append(actions, Action{Label: "Open", Run: f.open})
	case f.file.IsXex:
		actions = append(actions, Action{Label: "Launch", Run: f.launch})
	}
	return append(actions,
		Action{Label: "Cut", Run: f.cut},
		Action{Label: "Download", Run: f.download},
		Action{Label: "Rename", Run: f.rename},
		Action{Label: "Copy path", Run: f.copyPath},
		Action{Label: "Delete", Run: f.confirmDelete, Destructive: true},
		Action{Label: "Properties", Run: f.showProperties},
	)
}

func (f *File) cut() {
	f.engine().Store.Cut(f.Path())
}

// DeleteConfirmMessage is the question asked before deleting an entry.
func DeleteConfirmMessage(file remote.File) string {
	msg := fmt.Sprintf("Are you sure you want to delete \"%s\"", file.Name)
	if file.IsDirectory {
		msg += " and all of its contents"
	}
	return msg + "?"
}

// confirmDelete only asks; nothing reaches the console unless the user confirms.
func (f *File) confirmDelete() {
	f.engine().Modals.Confirm(DeleteConfirmMessage(f.file), f.delete)
}

func (f *File) delete() {
	path, isDir := f.Path(), f.file.IsDirectory
	if f.engine().Store.Try(func(ctx context.Context, c remote.Console) error {
		return c.DeleteFile(ctx, path, isDir)
	}) {
		f.refresh()
	}
}

func (f *File) rename() {
	f.engine().Modals.Input(state.InputRequest{
		Header:   "Enter a name",
		Default:  f.file.Name,
		Validate: ValidateName,
		OnSubmit: f.renameTo,
	})
}

func (f *File) renameTo(name string) {
	name = strings.TrimSpace(name)
	if name == f.file.Name {
		return
	}
	if err := ValidateName(name); err != nil {
		f.engine().Modals.Error(err.Error())
		return
	}
	oldPath, newPath := f.Path(), f.dir.Join(name)
	if f.engine().Store.Try(func(ctx context.Context, c remote.Console) error {
		return c.RenameFile(ctx, oldPath, newPath)
	}) {
		f.refresh()
	}
}

// ValidateName rejects names the console cannot store.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return fmt.Errorf("the name cannot be empty")
	case name == "." || name == "..":
		return fmt.Errorf("%q is not a valid name", name)
	case strings.ContainsAny(name, `\/:*?"<>|`):
		return fmt.Errorf("a name cannot contain any of \\ / : * ? \" < > |")
	}
	return nil
}

func (f *File) download() {
	path, isDir := f.Path(), f.file.IsDirectory
	f.env.Dialogs.SaveFile(f.file.Name, func(local string, err error) {
		e := f.engine()
		if err != nil {
			e.Modals.Error(err.Error())
			return
		}
		if local == "" {
			return
		}
		ok := e.Store.Try(func(ctx context.Context, c remote.Console) error {
			if isDir {
				return c.ReceiveDirectory(ctx, path, local)
			}
			return c.ReceiveFile(ctx, path, local)
		})
		if ok {
			e.Modals.Success(fmt.Sprintf("Downloaded \"%s\"", f.file.Name))
		}
	})
}

func (f *File) copyPath() {
	if err := f.env.Dialogs.CopyToClipboard(f.Path().String()); err != nil {
		f.engine().Modals.Error(err.Error())
	}
}

func (f *File) showProperties() {
	f.env.Dialogs.ShowProperties(f.file.Name, FileProperties(f.dir, f.file))
}

// FileProperties lists what the properties view shows for an entry of dir.
func FileProperties(dir remote.Path, file remote.File) []Property {
	props := []Property{
		{Name: "Name", Value: file.Name},
		{Name: "Type", Value: file.TypeLabel()},
		{Name: "Location", Value: dir.String()},
	}
	if !file.IsDirectory {
		props = append(props, Property{Name: "Size", Value: remote.FormatSizeLong(file.Size)})
	}
	return append(props,
		Property{Name: "Created", Value: remote.FormatDate(file.CreationDate)},
		Property{Name: "Modified", Value: remote.FormatDate(file.ModificationDate)},
	)
}

// refresh re-lists the directory being shown.
func (f *File) refresh() {
	f.navigate(f.engine().Location.Position(), nil)
}
