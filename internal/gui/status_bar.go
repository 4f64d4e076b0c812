package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/openneighborhood/neighborhood/internal/events"
)

// StatusLevel selects the status bar icon.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusWarning
	StatusError
	// StatusProgress replaces the icon with a transfer progress bar.
	StatusProgress
)

// status is one line of the status bar.
type status struct {
	text  string
	level StatusLevel

	// fraction is the transfer progress, used with StatusProgress.
	fraction float64
}

// StatusBar shows the console session and transfer activity.
// It is only touched from the fyne goroutine.
type StatusBar struct {
	widget.BaseWidget

	icon  *widget.Icon
	label *widget.Label
	bar   *widget.ProgressBar
}

// NewStatusBar creates a status bar reading "Not connected".
func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		icon:  widget.NewIcon(theme.InfoIcon()),
		label: widget.NewLabel("Not connected"),
		bar:   widget.NewProgressBar(),
	}
	sb.label.TextStyle = fyne.TextStyle{Italic: true}
	sb.bar.Hide()
	sb.ExtendBaseWidget(sb)
	return sb
}

func (sb *StatusBar) show(s status) {
	sb.label.SetText(s.text)
	if s.level == StatusProgress {
		sb.icon.Hide()
		sb.bar.SetValue(s.fraction)
		sb.bar.Show()
		return
	}

	sb.bar.Hide()
	sb.icon.SetResource(levelIcon(s.level))
	sb.icon.Show()
}

func levelIcon(level StatusLevel) fyne.Resource {
	switch level {
	case StatusSuccess:
		return theme.ConfirmIcon()
	case StatusWarning:
		return theme.WarningIcon()
	case StatusError:
		return theme.ErrorIcon()
	default:
		return theme.InfoIcon()
	}
}

// Watch follows bus events until the bus is closed.
func (sb *StatusBar) Watch(bus *events.EventBus) {
	ch := bus.SubscribeAll()
	go func() {
		for ev := range ch {
			if s, ok := statusFor(ev); ok {
				fyne.Do(func() { sb.show(s) })
			}
		}
	}()
}

// statusFor maps a bus event to a status line.
func statusFor(ev events.Event) (status, bool) {
	switch e := ev.(type) {
	case *events.ConsoleEvent:
		if e.Type() == events.EventConsoleConnected {
			return status{text: fmt.Sprintf("Connected to %s (%s)", e.Name, e.Address), level: StatusSuccess}, true
		}
		return status{text: "Not connected"}, true
	case *events.TransferEvent:
		verb := "Downloading"
		if e.Direction == events.Upload {
			verb = "Uploading"
		}
		switch e.Type() {
		case events.EventTransferStarted:
			return status{text: fmt.Sprintf("%s %s", verb, e.Name), level: StatusProgress}, true
		case events.EventTransferProgress:
			return status{
				text:     fmt.Sprintf("%s %s (%.0f%%)", verb, e.Name, e.Progress()*100),
				level:    StatusProgress,
				fraction: e.Progress(),
			}, true
		case events.EventTransferCompleted:
			return status{text: fmt.Sprintf("Finished %s", e.Name), level: StatusSuccess}, true
		case events.EventTransferFailed:
			return status{text: fmt.Sprintf("Transfer of %s failed: %v", e.Name, e.Error), level: StatusError}, true
		}
	case *events.LogEvent:
		switch e.Level {
		case events.WarnLevel:
			return status{text: e.Message, level: StatusWarning}, true
		case events.ErrorLevel:
			return status{text: e.Message, level: StatusError}, true
		}
	}
	return status{}, false
}

func (sb *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, container.NewHBox(sb.icon, sb.label), nil, sb.bar))
}
