package gui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/openneighborhood/neighborhood/internal/elements"
	"github.com/openneighborhood/neighborhood/internal/state"
)

// parseByteField reads one address field. Empty means 0; anything that is
// not a number is rejected.
func parseByteField(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return v, true
}

func byteHint(s elements.ByteState) string {
	switch s {
	case elements.ByteTooHigh:
		return "Each number must be 255 or less (clamped to 255)"
	case elements.ByteTooLow:
		return "Each number must be 0 or more (clamped to 0)"
	}
	return ""
}

// addressFields tracks the four address entries. A field holding text that
// is not a number keeps its last good byte in the model, so it is flagged
// separately until corrected.
type addressFields struct {
	model *elements.IPv4Entry
	bad   [4]bool
}

// set applies the text of field idx and returns the hint to show and
// whether the address may be added.
func (f *addressFields) set(idx int, text string) (string, bool) {
	v, ok := parseByteField(text)
	f.bad[idx] = !ok
	if ok {
		f.model.Set(idx, v)
	}
	if !f.parsed() {
		return "Enter a number between 0 and 255", false
	}
	return firstHint(f.model), f.model.Valid()
}

func (f *addressFields) parsed() bool {
	for _, b := range f.bad {
		if b {
			return false
		}
	}
	return true
}

func showAddConsoleDialog(ui *UI, req state.AddConsoleRequest) {
	model := elements.NewIPv4Entry(req.Default)
	hint := widget.NewLabel("")
	hint.Importance = widget.DangerImportance

	fields := &addressFields{model: model}
	var add *widget.Button
	row := make([]fyne.CanvasObject, 0, 7)
	for i := 0; i < 4; i++ {
		idx := i
		entry := widget.NewEntry()
		entry.SetText(strconv.Itoa(model.Byte(idx)))
		entry.OnChanged = func(text string) {
			msg, ok := fields.set(idx, text)
			hint.SetText(msg)
			if ok {
				add.Enable()
			} else {
				add.Disable()
			}
		}
		if i > 0 {
			row = append(row, widget.NewLabel("."))
		}
		row = append(row, container.NewGridWrap(fyne.NewSize(56, entry.MinSize().Height), entry))
	}

	var d dialog.Dialog
	add = NewPrimaryButton("Add", func() {
		bytes, ok := model.Submit()
		if !ok || !fields.parsed() {
			return
		}
		d.Hide()
		req.OnSubmit(bytes)
		ui.requestFrame()
	})
	cancel := widget.NewButton("Cancel", func() { d.Hide() })

	content := container.NewVBox(
		widget.NewLabel("Enter the IP address of the console"),
		container.NewHBox(row...),
		hint,
		container.NewHBox(layout.NewSpacer(), cancel, add),
	)
	d = dialog.NewCustomWithoutButtons("Add console", content, ui.window)
	d.Show()
}

// firstHint explains the first flagged byte, if any.
func firstHint(model *elements.IPv4Entry) string {
	for i := 0; i < 4; i++ {
		if h := byteHint(model.State(i)); h != "" {
			return h
		}
	}
	return ""
}
