package elements

import (
	"github.com/openneighborhood/neighborhood/internal/remote"
	"github.com/openneighborhood/neighborhood/internal/state"
)

// Drive is a volume of the connected console.
type Drive struct {
	base
	drive remote.Drive
}

func NewDrive(env *Env, d remote.Drive) *Drive {
	label := d.Name
	if d.FriendlyName != "" {
		label = d.FriendlyName + " (" + d.Name + ")"
	}
	return &Drive{
		base:  base{env: env, label: label, icon: IconDrive},
		drive: d,
	}
}

// Data returns the drive snapshot the element was built from.
func (d *Drive) Data() remote.Drive { return d.drive }

// OnClick opens the drive root.
func (d *Drive) OnClick() {
	target := state.Position{Location: state.DriveContents, Path: remote.NewPath(d.drive.Name)}
	d.navigate(target, func(m *state.LocationMover) error {
		return m.GoToDrive(d.drive.Name)
	})
}

func (d *Drive) ContextMenu() []Action {
	return []Action{
		{Label: "Open", Run: d.OnClick},
		{Label: "Properties", Run: d.showProperties},
	}
}

func (d *Drive) showProperties() {
	d.env.Dialogs.ShowProperties(d.drive.Name, DriveProperties(d.drive))
}

// DriveProperties lists what the properties view shows for a drive.
func DriveProperties(d remote.Drive) []Property {
	return []Property{
		{Name: "Name", Value: d.Name},
		{Name: "Type", Value: d.FriendlyName},
		{Name: "Capacity", Value: remote.FormatSizeLong(d.TotalBytes)},
		{Name: "Used space", Value: remote.FormatSizeLong(d.TotalUsedBytes)},
		{Name: "Free space", Value: remote.FormatSizeLong(d.TotalFreeBytes)},
	}
}
