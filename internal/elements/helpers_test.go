package elements

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/openneighborhood/neighborhood/internal/config"
	"github.com/openneighborhood/neighborhood/internal/core"
	"github.com/openneighborhood/neighborhood/internal/events"
	"github.com/openneighborhood/neighborhood/internal/remote/remotetest"
)

const jtagAddress = "192.168.1.100"

// fakeDialogs answers every dialog with a preset result.
type fakeDialogs struct {
	path       string
	err        error
	saveNames  []string
	opened     int
	properties map[string][]Property
	clipboard  string
}

func (d *fakeDialogs) SaveFile(name string, cb func(string, error)) {
	d.saveNames = append(d.saveNames, name)
	cb(d.path, d.err)
}

func (d *fakeDialogs) OpenFile(cb func(string, error)) {
	d.opened++
	cb(d.path, d.err)
}

func (d *fakeDialogs) ShowProperties(title string, props []Property) {
	if d.properties == nil {
		d.properties = make(map[string][]Property)
	}
	d.properties[title] = props
}

func (d *fakeDialogs) CopyToClipboard(text string) error {
	if d.err != nil {
		return d.err
	}
	d.clipboard = text
	return nil
}

// recorder collects ContentsChangeEvents emitted by elements.
type recorder struct {
	changes []*ContentsChangeEvent
}

func (r *recorder) callback(e events.AppEvent) {
	if cc, ok := e.(*ContentsChangeEvent); ok {
		r.changes = append(r.changes, cc)
	}
}

func (r *recorder) last(t *testing.T) *ContentsChangeEvent {
	t.Helper()
	if len(r.changes) == 0 {
		t.Fatal("no contents change emitted")
	}
	return r.changes[len(r.changes)-1]
}

func labels(elems []Element) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.Label()
	}
	return out
}

func newJtag() *remotetest.Console {
	return remotetest.NewConsole("jtag", jtagAddress).
		AddDrive("HDD").
		AddDrive("DEVKIT").
		AddFile(`HDD:\Games\Halo\default.xex`, 4096).
		AddFile(`HDD:\Games\readme.txt`, 12).
		AddDir(`HDD:\Content`).
		AddFile(`DEVKIT:\tool.xex`, 100)
}

func newTestEnv(t *testing.T, consoles ...*remotetest.Console) (*Env, *fakeDialogs) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.MirrorRoot = t.TempDir()
	engine, err := core.NewEngine(core.Options{
		Config:   cfg,
		Consoles: config.NewKnownConsoles(filepath.Join(t.TempDir(), "consoles.csv")),
		Dialer:   remotetest.NewDialer(consoles...),
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(engine.Shutdown)
	dialogs := &fakeDialogs{}
	return &Env{Engine: engine, Dialogs: dialogs}, dialogs
}

// openPath clicks through console, drive and directories from the root.
func openPath(t *testing.T, env *Env, rec *recorder, drive string, dirs ...string) {
	t.Helper()
	c := NewConsole(env, "jtag", jtagAddress)
	c.SetEventCallback(rec.callback)
	c.OnClick()
	click(t, rec, drive)
	for _, d := range dirs {
		click(t, rec, d)
	}
}

// click finds the element labelled label in the latest contents and clicks it.
func click(t *testing.T, rec *recorder, label string) {
	t.Helper()
	find(t, rec, label).OnClick()
}

func find(t *testing.T, rec *recorder, label string) Element {
	t.Helper()
	for _, e := range rec.last(t).Elements {
		if e.Label() == label {
			return e
		}
		if d, ok := e.(*Drive); ok && d.Data().Name == label {
			return e
		}
	}
	t.Fatalf("no element %q in %v", label, labels(rec.last(t).Elements))
	return nil
}

func action(t *testing.T, e Element, label string) Action {
	t.Helper()
	for _, a := range e.ContextMenu() {
		if a.Label == label {
			return a
		}
	}
	t.Fatalf("%s has no %q action", e.Label(), label)
	return Action{}
}

var errDenied = errors.New("access denied")
