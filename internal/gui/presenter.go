package gui

import (
	"errors"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/openneighborhood/neighborhood/internal/state"
)

// modalPresenter shows the modals raised during a frame as fyne dialogs.
type modalPresenter struct {
	ui *UI
}

func newModalPresenter(ui *UI) *modalPresenter {
	return &modalPresenter{ui: ui}
}

func (p *modalPresenter) Confirm(req state.ConfirmRequest) {
	dialog.ShowConfirm("Confirm", req.Message, func(ok bool) {
		if ok && req.OnConfirm != nil {
			req.OnConfirm()
			p.ui.requestFrame()
		}
	}, p.ui.window)
}

func (p *modalPresenter) Input(req state.InputRequest) {
	entry := widget.NewEntry()
	entry.SetText(req.Default)
	if req.Validate != nil {
		entry.Validator = req.Validate
	}
	items := []*widget.FormItem{widget.NewFormItem("Name", entry)}
	d := dialog.NewForm(req.Header, "OK", "Cancel", items, func(ok bool) {
		if ok && req.OnSubmit != nil {
			req.OnSubmit(entry.Text)
			p.ui.requestFrame()
		}
	}, p.ui.window)
	d.Show()
	p.ui.window.Canvas().Focus(entry)
}

func (p *modalPresenter) AddConsole(req state.AddConsoleRequest) {
	showAddConsoleDialog(p.ui, req)
}

func (p *modalPresenter) Error(message string) {
	dialog.ShowError(errors.New(message), p.ui.window)
}

func (p *modalPresenter) Success(message string) {
	dialog.ShowInformation("Success", message, p.ui.window)
}
