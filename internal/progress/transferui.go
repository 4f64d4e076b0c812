package progress

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"

	"github.com/openneighborhood/neighborhood/internal/events"
)

// TransferUI draws one mpb bar per transfer published on the bus. Without a
// terminal it prints one line when a transfer starts and one when it ends.
type TransferUI struct {
	progress   *mpb.Progress
	out        io.Writer
	isTerminal bool

	mu        sync.Mutex
	bars      map[string]*transferBar
	completed int
	failed    int

	bus  *events.EventBus
	ch   <-chan events.Event
	done chan struct{}
}

type transferBar struct {
	bar        *mpb.Bar
	name       string
	localPath  string
	size       int64
	startTime  time.Time
	lastUpdate time.Time
}

// NewTransferUI writes to stderr, drawing bars when it is a terminal.
func NewTransferUI() *TransferUI {
	isTerminal := term.IsTerminal(int(os.Stderr.Fd()))
	if isTerminal {
		enableANSI(os.Stderr)
	}
	return newTransferUI(os.Stderr, isTerminal)
}

func newTransferUI(out io.Writer, isTerminal bool) *TransferUI {
	u := &TransferUI{
		out:        out,
		isTerminal: isTerminal,
		bars:       make(map[string]*transferBar),
	}
	if isTerminal {
		u.progress = mpb.New(
			mpb.WithOutput(out),
			mpb.WithRefreshRate(300*time.Millisecond),
			mpb.WithWidth(100),
		)
	} else {
		u.progress = mpb.New(mpb.WithOutput(io.Discard))
	}
	return u
}

// Follow handles transfer events from bus until Stop.
func (u *TransferUI) Follow(bus *events.EventBus) {
	u.bus = bus
	u.ch = bus.Subscribe(
		events.EventTransferStarted,
		events.EventTransferProgress,
		events.EventTransferCompleted,
		events.EventTransferFailed,
	)
	u.done = make(chan struct{})
	go func() {
		defer close(u.done)
		for ev := range u.ch {
			if te, ok := ev.(*events.TransferEvent); ok {
				u.Handle(te)
			}
		}
	}()
}

// Handle applies one transfer event.
func (u *TransferUI) Handle(ev *events.TransferEvent) {
	u.mu.Lock()
	defer u.mu.Unlock()

	switch ev.Type() {
	case events.EventTransferStarted:
		u.start(ev)
	case events.EventTransferProgress:
		if tb := u.bars[ev.ID]; tb != nil && tb.bar != nil {
			now := time.Now()
			tb.bar.EwmaSetCurrent(ev.Bytes, now.Sub(tb.lastUpdate))
			tb.lastUpdate = now
		}
	case events.EventTransferCompleted:
		u.finish(ev, nil)
	case events.EventTransferFailed:
		err := ev.Error
		if err == nil {
			err = fmt.Errorf("transfer failed")
		}
		u.finish(ev, err)
	}
}

func (u *TransferUI) start(ev *events.TransferEvent) {
	now := time.Now()
	tb := &transferBar{
		name:       ev.Name,
		localPath:  ev.LocalPath,
		size:       ev.Size,
		startTime:  now,
		lastUpdate: now,
	}
	u.bars[ev.ID] = tb

	label := fmt.Sprintf("%s %s (%.1f MiB)", verb(ev.Direction), ev.Name, mib(ev.Size))
	if !u.isTerminal || ev.Size <= 0 {
		fmt.Fprintln(u.Writer(), label)
		return
	}
	tb.bar = u.progress.New(ev.Size,
		mpb.BarStyle().Lbound("[").Filler("█").Tip("█").Padding("░").Rbound("]"),
		mpb.PrependDecorators(decor.Name(label, decor.WCSyncSpaceR)),
		mpb.AppendDecorators(
			decor.CountersKibiByte("% .1f / % .1f", decor.WCSyncSpace),
			decor.Name("  "),
			decor.Percentage(decor.WCSyncSpace),
			decor.Name("  "),
			decor.EwmaSpeed(decor.SizeB1024(0), "% .1f", 30, decor.WCSyncSpace),
			decor.Name("  ETA "),
			decor.EwmaETA(decor.ET_STYLE_GO, 30),
		),
		mpb.BarRemoveOnComplete(),
	)
}

func (u *TransferUI) finish(ev *events.TransferEvent, err error) {
	tb := u.bars[ev.ID]
	if tb == nil {
		return
	}
	delete(u.bars, ev.ID)
	elapsed := time.Since(tb.startTime)

	var msg string
	if err == nil {
		u.completed++
		if tb.bar != nil {
			tb.bar.SetCurrent(tb.size)
			tb.bar.SetTotal(tb.size, true)
		}
		msg = fmt.Sprintf("✓ %s → %s (%.1f MiB, %s)\n",
			tb.name, truncatePath(tb.localPath, 2), mib(tb.size), elapsed.Round(time.Millisecond))
	} else {
		u.failed++
		if tb.bar != nil {
			tb.bar.Abort(false)
		}
		msg = fmt.Sprintf("✗ %s: %v\n", tb.name, err)
	}
	io.WriteString(u.Writer(), msg)
}

// Stop stops following the bus, aborts unfinished bars and waits for the
// display to settle.
func (u *TransferUI) Stop() {
	if u.ch != nil {
		u.bus.Unsubscribe(u.ch)
		<-u.done
		u.ch = nil
	}
	u.mu.Lock()
	for id, tb := range u.bars {
		if tb.bar != nil {
			tb.bar.Abort(true)
		}
		delete(u.bars, id)
	}
	u.mu.Unlock()
	u.progress.Wait()
}

// Summary returns how many transfers completed and failed.
func (u *TransferUI) Summary() (completed, failed int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.completed, u.failed
}

// Writer prints above the bars when they are drawn.
func (u *TransferUI) Writer() io.Writer {
	if u.isTerminal {
		return u.progress
	}
	return u.out
}

func verb(d events.TransferDirection) string {
	if d == events.Upload {
		return "Uploading"
	}
	return "Downloading"
}

func mib(n int64) float64 { return float64(n) / (1024 * 1024) }

// truncatePath keeps the last n components: "/a/b/c/d.bin" → "…/c/d.bin".
func truncatePath(path string, n int) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) <= n {
		return filepath.Base(path)
	}
	return "…/" + strings.Join(parts[len(parts)-n:], "/")
}
