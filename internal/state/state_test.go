package state

import (
	"errors"
	"testing"
)

func TestLocationMoverScenario(t *testing.T) {
	m := NewLocationMover()
	if m.Location() != Home {
		t.Fatalf("initial location = %v, want Home", m.Location())
	}

	m.GoToConsoleList()
	m.GoToDriveList()
	if err := m.GoToDrive("HDD"); err != nil {
		t.Fatalf("GoToDrive() error = %v", err)
	}
	if err := m.GoToDirectory("Games"); err != nil {
		t.Fatalf("GoToDirectory() error = %v", err)
	}
	if got := m.Path().String(); got != `HDD:\Games` {
		t.Errorf("Path() = %q, want %q", got, `HDD:\Games`)
	}

	m.GoToParent()
	if m.Location() != DriveContents || !m.Path().IsDriveRoot() {
		t.Errorf("after parent: %v %q, want DriveContents at drive root", m.Location(), m.Path())
	}

	m.GoToParent()
	if m.Location() != DriveList {
		t.Errorf("parent of drive root = %v, want DriveList", m.Location())
	}

	m.GoToParent()
	if m.Location() != ConsoleList {
		t.Errorf("parent of DriveList = %v, want ConsoleList", m.Location())
	}

	m.GoToParent()
	if m.Location() != ConsoleList {
		t.Errorf("parent of ConsoleList = %v, want ConsoleList", m.Location())
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(m *LocationMover) error
	}{
		{"directory from home", func(m *LocationMover) error { return m.GoToDirectory("Games") }},
		{"directory from drive list", func(m *LocationMover) error {
			m.GoToDriveList()
			return m.GoToDirectory("Games")
		}},
		{"drive from console list", func(m *LocationMover) error {
			m.GoToConsoleList()
			return m.GoToDrive("HDD")
		}},
		{"empty drive", func(m *LocationMover) error {
			m.GoToDriveList()
			return m.GoToDrive("")
		}},
		{"depth outside drive", func(m *LocationMover) error { return m.GoToDepth(1) }},
		{"depth too deep", func(m *LocationMover) error {
			m.GoToDriveList()
			_ = m.GoToDrive("HDD")
			return m.GoToDepth(3)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLocationMover()
			err := tt.run(m)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("error = %v, want ErrInvalidTransition", err)
			}
			if !m.Position().Consistent() {
				t.Errorf("position %+v inconsistent after rejected move", m.Position())
			}
		})
	}
}

func TestGoToDepth(t *testing.T) {
	m := NewLocationMover()
	m.GoToDriveList()
	_ = m.GoToDrive("DEVKIT")
	for _, dir := range []string{"Samples", "Audio", "Bin"} {
		if err := m.GoToDirectory(dir); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.GoToDepth(2); err != nil {
		t.Fatalf("GoToDepth(2) error = %v", err)
	}
	if got := m.Path().String(); got != `DEVKIT:\Samples` {
		t.Errorf("Path() = %q, want %q", got, `DEVKIT:\Samples`)
	}
	if err := m.GoToDepth(1); err != nil {
		t.Fatal(err)
	}
	if !m.Path().IsDriveRoot() {
		t.Errorf("Path() = %q, want drive root", m.Path())
	}
}

// Every reachable sequence of moves keeps location and depth in agreement.
func TestLocationDepthAgreement(t *testing.T) {
	moves := []func(m *LocationMover){
		func(m *LocationMover) { m.GoToConsoleList() },
		func(m *LocationMover) { m.GoToDriveList() },
		func(m *LocationMover) { _ = m.GoToDrive("HDD") },
		func(m *LocationMover) { _ = m.GoToDirectory("a") },
		func(m *LocationMover) { m.GoToParent() },
		func(m *LocationMover) { _ = m.GoToDepth(2) },
	}

	// Exhaustive over all sequences of length 5.
	var walk func(m LocationMover, depth int)
	walk = func(m LocationMover, depth int) {
		if !m.Position().Consistent() {
			t.Fatalf("inconsistent position %v %q", m.Location(), m.Path())
		}
		if depth == 0 {
			return
		}
		for _, move := range moves {
			next := m
			move(&next)
			walk(next, depth-1)
		}
	}
	walk(*NewLocationMover(), 5)
}

func TestModals(t *testing.T) {
	m := NewModals()
	if m.Pending() {
		t.Fatal("new Modals should have nothing pending")
	}

	confirmed := false
	m.Confirm("first", func() {})
	m.Confirm("second", func() { confirmed = true })

	req, ok := m.TakeConfirm()
	if !ok || req.Message != "second" {
		t.Fatalf("TakeConfirm() = %q, %v; want latest request", req.Message, ok)
	}
	req.OnConfirm()
	if !confirmed {
		t.Error("OnConfirm not the latest callback")
	}
	if _, ok := m.TakeConfirm(); ok {
		t.Error("confirm should be consumed once")
	}

	m.Error("Couldn't find console")
	if !m.HasError() {
		t.Error("HasError() = false after Error")
	}
	msg, ok := m.TakeError()
	if !ok || msg != "Couldn't find console" {
		t.Errorf("TakeError() = %q, %v", msg, ok)
	}
	if m.HasError() {
		t.Error("error flag should clear once taken")
	}
	if m.ErrorMessage() != "Couldn't find console" {
		t.Error("ErrorMessage() should keep the last message")
	}

	m.Input(InputRequest{Header: "Enter a name", Default: "default.xex"})
	m.Success("Done")
	if !m.Pending() {
		t.Error("Pending() = false with queued input")
	}
	if in, ok := m.TakeInput(); !ok || in.Default != "default.xex" {
		t.Errorf("TakeInput() = %+v, %v", in, ok)
	}
	if s, ok := m.TakeSuccess(); !ok || s != "Done" {
		t.Errorf("TakeSuccess() = %q, %v", s, ok)
	}
	if m.Pending() {
		t.Error("everything taken, Pending() should be false")
	}
}
