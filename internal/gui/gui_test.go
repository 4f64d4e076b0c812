package gui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"github.com/openneighborhood/neighborhood/internal/elements"
	"github.com/openneighborhood/neighborhood/internal/events"
)

func TestModifierTracker(t *testing.T) {
	var tr modifierTracker

	if e := tr.down(desktop.KeyControlLeft); e != nil {
		t.Fatalf("modifier key produced %v", e)
	}
	tr.down(desktop.KeyShiftRight)

	e := tr.down(fyne.KeyN)
	if e.Key != "N" || e.Modifiers != events.ModControl|events.ModShift || e.Repeat {
		t.Errorf("press = %+v", e)
	}
	if again := tr.down(fyne.KeyN); !again.Repeat {
		t.Error("held key should repeat")
	}

	tr.up(fyne.KeyN)
	tr.up(desktop.KeyShiftRight)
	e = tr.down(fyne.KeyV)
	if e.Modifiers != events.ModControl || e.Repeat {
		t.Errorf("after releasing shift: %+v", e)
	}

	tr.up(desktop.KeyControlLeft)
	if e := tr.down(fyne.KeyBackspace); e.Modifiers != 0 || e.Key != "BackSpace" {
		t.Errorf("BackSpace = %+v", e)
	}
}

func TestParseByteField(t *testing.T) {
	tests := []struct {
		text string
		want int
		ok   bool
	}{
		{"192", 192, true},
		{" 7 ", 7, true},
		{"", 0, true},
		{"300", 300, true},
		{"-1", -1, true},
		{"1a", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := parseByteField(tt.text)
			if got != tt.want || ok != tt.ok {
				t.Errorf("parseByteField(%q) = %d, %v; want %d, %v", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFirstHint(t *testing.T) {
	model := elements.NewIPv4Entry([4]int{10, 0, 0, 1})
	if h := firstHint(model); h != "" {
		t.Errorf("valid address hint = %q", h)
	}
	model.Set(1, 999)
	if h := firstHint(model); h != "Each number must be 255 or less (clamped to 255)" {
		t.Errorf("hint = %q", h)
	}
}

func TestAddressFields(t *testing.T) {
	f := &addressFields{model: elements.NewIPv4Entry([4]int{192, 168, 1, 1})}

	if msg, ok := f.set(0, "19x"); ok || msg != "Enter a number between 0 and 255" {
		t.Errorf("bad text: %q, %v", msg, ok)
	}
	// A valid edit elsewhere must not re-enable Add while field 0 is bad.
	if _, ok := f.set(1, "100"); ok {
		t.Error("add enabled with an unparsed field")
	}
	if msg, ok := f.set(0, "10"); !ok || msg != "" {
		t.Errorf("corrected: %q, %v", msg, ok)
	}
	if got, ok := f.model.Submit(); !ok || got != [4]int{10, 100, 1, 1} {
		t.Errorf("Submit() = %v, %v", got, ok)
	}
	if _, ok := f.set(3, "300"); ok {
		t.Error("add enabled with an out of range byte")
	}
}

func TestNeighborhoodTheme(t *testing.T) {
	th := &neighborhoodTheme{}

	if got := th.Color(theme.ColorNamePrimary, theme.VariantLight); got != consoleGreen {
		t.Errorf("light primary = %v", got)
	}
	if got := th.Color(theme.ColorNamePrimary, theme.VariantDark); got != consoleGreenLift {
		t.Errorf("dark primary = %v", got)
	}
	for name := range lightPalette {
		if _, ok := darkPalette[name]; !ok {
			t.Errorf("%s has no dark variant", name)
		}
	}
	if got, want := th.Color(theme.ColorNameShadow, theme.VariantDark), theme.DefaultTheme().Color(theme.ColorNameShadow, theme.VariantDark); got != want {
		t.Errorf("shadow = %v, want default %v", got, want)
	}
	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("padding = %v", got)
	}
	if got, want := th.Size(theme.SizeNameSeparatorThickness), theme.DefaultTheme().Size(theme.SizeNameSeparatorThickness); got != want {
		t.Errorf("separator = %v, want default %v", got, want)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name  string
		event events.Event
		want  status
		ok    bool
	}{
		{
			name:  "connected",
			event: &events.ConsoleEvent{BaseEvent: events.BaseEvent{EventType: events.EventConsoleConnected}, Name: "jtag", Address: "192.168.1.100"},
			want:  status{text: "Connected to jtag (192.168.1.100)", level: StatusSuccess},
			ok:    true,
		},
		{
			name:  "progress",
			event: &events.TransferEvent{BaseEvent: events.BaseEvent{EventType: events.EventTransferProgress}, Direction: events.Upload, Name: "patch.bin", Size: 4, Bytes: 1},
			want:  status{text: "Uploading patch.bin (25%)", level: StatusProgress, fraction: 0.25},
			ok:    true,
		},
		{
			name:  "failed",
			event: &events.TransferEvent{BaseEvent: events.BaseEvent{EventType: events.EventTransferFailed}, Name: "a.bin", Error: errors.New("disk full")},
			want:  status{text: "Transfer of a.bin failed: disk full", level: StatusError},
			ok:    true,
		},
		{
			name:  "info log ignored",
			event: &events.LogEvent{BaseEvent: events.BaseEvent{EventType: events.EventLog}, Level: events.InfoLevel, Message: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := statusFor(tt.event)
			if got != tt.want || ok != tt.ok {
				t.Errorf("statusFor() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIconResource(t *testing.T) {
	icons := []elements.Icon{
		elements.IconConsole, elements.IconDrive, elements.IconFolder, elements.IconFile,
		elements.IconExecutable, elements.IconAdd, elements.IconParent, elements.IconPathNode,
	}
	for _, icon := range icons {
		if iconResource(icon) == nil {
			t.Errorf("no resource for %s", icon)
		}
	}
}
