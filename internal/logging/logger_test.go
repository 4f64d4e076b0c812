package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/openneighborhood/neighborhood/internal/events"
)

func TestSetOutput(t *testing.T) {
	l := NewLogger(ModeCLI, nil)
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Infof("connected to %s", "192.168.1.100")

	if !strings.Contains(buf.String(), "connected to 192.168.1.100") {
		t.Errorf("output %q missing message", buf.String())
	}
	if l.Output() != &buf {
		t.Error("Output() should return the writer set by SetOutput")
	}
}

func TestGUILoggerPublishesWarnings(t *testing.T) {
	bus := events.NewEventBus(10)
	defer bus.Close()
	ch := bus.Subscribe(events.EventLog)

	l := NewLogger(ModeGUI, bus)
	l.SetOutput(&bytes.Buffer{})

	l.Infof("not published")
	l.Warnf("drive %s is almost full", "HDD:")

	select {
	case ev := <-ch:
		le := ev.(*events.LogEvent)
		if le.Level != events.WarnLevel {
			t.Errorf("Level = %v, want WARN", le.Level)
		}
		if le.Message != "drive HDD: is almost full" {
			t.Errorf("Message = %q", le.Message)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for log event")
	}
	if len(ch) != 0 {
		t.Errorf("%d unexpected extra events", len(ch))
	}
}

func TestAddFileOutput(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger(ModeCLI, nil)
	l.SetOutput(&bytes.Buffer{})

	path, err := l.AddFileOutput(dir)
	if err != nil {
		t.Fatalf("AddFileOutput() error = %v", err)
	}
	l.Infof("written to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file %q missing message", data)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{" WARN ", zerolog.WarnLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
