package gui

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/atotto/clipboard"

	"github.com/openneighborhood/neighborhood/internal/elements"
)

// fyneDialogs implements elements.Dialogs with fyne's file dialogs.
// Callbacks run on the main goroutine; a frame follows each so modals they
// raise are shown.
type fyneDialogs struct {
	ui *UI
}

func newFyneDialogs(ui *UI) *fyneDialogs {
	return &fyneDialogs{ui: ui}
}

// SaveFile asks for a destination. The dialog creates the file it returns,
// so it is removed again: the download creates it, or a directory in its place.
func (d *fyneDialogs) SaveFile(defaultName string, cb func(string, error)) {
	fd := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		path := ""
		if err == nil && w != nil {
			path = w.URI().Path()
			w.Close()
			if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
				guiLogger.Debug().Err(rmErr).Str("path", path).Msg("Removing placeholder failed")
			}
		}
		cb(path, err)
		d.ui.requestFrame()
	}, d.ui.window)
	fd.SetFileName(defaultName)
	fd.Show()
}

func (d *fyneDialogs) OpenFile(cb func(string, error)) {
	fd := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		path := ""
		if err == nil && r != nil {
			path = r.URI().Path()
			r.Close()
		}
		cb(path, err)
		d.ui.requestFrame()
	}, d.ui.window)
	fd.Show()
}

func (d *fyneDialogs) ShowProperties(title string, props []elements.Property) {
	form := widget.NewForm()
	for _, p := range props {
		form.Append(p.Name, widget.NewLabel(p.Value))
	}
	dialog.ShowCustom(title, "Close", form, d.ui.window)
}

// CopyToClipboard uses the system clipboard, falling back to fyne's.
func (d *fyneDialogs) CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		guiLogger.Debug().Err(err).Msg("System clipboard unavailable, using window clipboard")
		d.ui.app.Clipboard().SetContent(text)
	}
	return nil
}
