package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/openneighborhood/neighborhood/internal/events"
)

func transfer(typ events.EventType, id string, n int64, err error) *events.TransferEvent {
	return &events.TransferEvent{
		BaseEvent: events.BaseEvent{EventType: typ, Time: time.Now()},
		ID:        id,
		Direction: events.Download,
		Name:      "default.xex",
		LocalPath: "/tmp/out/default.xex",
		Size:      2048,
		Bytes:     n,
		Error:     err,
	}
}

func TestTransferUIPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	u := newTransferUI(&buf, false)

	u.Handle(transfer(events.EventTransferStarted, "1", 0, nil))
	u.Handle(transfer(events.EventTransferProgress, "1", 1024, nil))
	u.Handle(transfer(events.EventTransferCompleted, "1", 2048, nil))
	u.Handle(transfer(events.EventTransferStarted, "2", 0, nil))
	u.Handle(transfer(events.EventTransferFailed, "2", 0, errors.New("disk full")))
	u.Stop()

	out := buf.String()
	for _, want := range []string{
		"Downloading default.xex",
		"✓ default.xex → …/out/default.xex",
		"✗ default.xex: disk full",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if c, f := u.Summary(); c != 1 || f != 1 {
		t.Errorf("Summary() = %d, %d; want 1, 1", c, f)
	}
}

func TestTransferUIFollowsBus(t *testing.T) {
	bus := events.NewEventBus(16)
	defer bus.Close()

	var buf bytes.Buffer
	u := newTransferUI(&buf, false)
	u.Follow(bus)

	bus.Publish(transfer(events.EventTransferStarted, "a", 0, nil))
	bus.Publish(transfer(events.EventTransferCompleted, "a", 2048, nil))
	bus.PublishLog(events.InfoLevel, "ignored", nil)
	u.Stop()

	if c, _ := u.Summary(); c != 1 {
		t.Errorf("completed = %d, want 1\n%s", c, buf.String())
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path string
		n    int
		want string
	}{
		{"/a/b/c/d.bin", 2, "…/c/d.bin"},
		{"d.bin", 2, "d.bin"},
		{"c/d.bin", 2, "d.bin"},
	}
	for _, tt := range tests {
		if got := truncatePath(tt.path, tt.n); got != tt.want {
			t.Errorf("truncatePath(%q, %d) = %q, want %q", tt.path, tt.n, got, tt.want)
		}
	}
}

func TestSpinnerWithoutTerminal(t *testing.T) {
	s := StartSpinner("Connecting")
	s.Stop()
	var nilSpinner *Spinner
	nilSpinner.Stop()
}
