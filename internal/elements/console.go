package elements

import (
	"fmt"

	"github.com/openneighborhood/neighborhood/internal/state"
)

// Console is a known console in the console list.
type Console struct {
	base
	name    string
	address string
}

func NewConsole(env *Env, name, address string) *Console {
	return &Console{
		base:    base{env: env, label: name, icon: IconConsole},
		name:    name,
		address: address,
	}
}

func (c *Console) Name() string    { return c.name }
func (c *Console) Address() string { return c.address }

// OnClick connects to the console and shows its drives.
func (c *Console) OnClick() {
	if !c.engine().Store.CreateConsole(c.address) {
		return
	}
	c.navigate(state.Position{Location: state.DriveList}, func(m *state.LocationMover) error {
		m.GoToDriveList()
		return nil
	})
}

func (c *Console) ContextMenu() []Action {
	return []Action{
		{Label: "Open", Run: c.OnClick},
		{Label: "Properties", Run: c.showProperties},
		{Label: "Remove from list", Run: c.confirmRemove, Destructive: true},
	}
}

func (c *Console) confirmRemove() {
	msg := fmt.Sprintf("Are you sure you want to remove \"%s\" (%s) from the console list?", c.name, c.address)
	c.engine().Modals.Confirm(msg, func() {
		e := c.engine()
		if err := e.Consoles.Remove(c.address); err != nil {
			e.Modals.Error(err.Error())
			return
		}
		if e.Store.HasConsole() && e.Store.GetConsole().Address() == c.address {
			e.Store.Disconnect()
		}
		c.emitContents(CreateRootElements(c.env), false)
	})
}

func (c *Console) showProperties() {
	c.env.Dialogs.ShowProperties(c.name, []Property{
		{Name: "Name", Value: c.name},
		{Name: "IP address", Value: c.address},
	})
}
