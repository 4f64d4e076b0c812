// Package state holds the navigation and modal state of the file manager.
// Everything here is owned by the UI goroutine and is not synchronized.
package state

import (
	"errors"
	"fmt"

	"github.com/openneighborhood/neighborhood/internal/remote"
)

// AppLocation is the level of the hierarchy being shown.
type AppLocation int

const (
	Home AppLocation = iota
	ConsoleList
	DriveList
	DriveContents
)

func (l AppLocation) String() string {
	switch l {
	case Home:
		return "Home"
	case ConsoleList:
		return "ConsoleList"
	case DriveList:
		return "DriveList"
	case DriveContents:
		return "DriveContents"
	default:
		return fmt.Sprintf("AppLocation(%d)", int(l))
	}
}

// ErrInvalidTransition is returned for a navigation that is not allowed from
// the current location.
var ErrInvalidTransition = errors.New("invalid navigation")

// Position is a location/path pair. Location is DriveContents exactly when
// the path has a drive.
type Position struct {
	Location AppLocation
	Path     remote.Path
}

// LocationMover tracks where the user is and validates every move.
// Moves never touch the console; callers list the target first and move
// only once the listing succeeded.
type LocationMover struct {
	pos Position
}

// NewLocationMover starts at Home.
func NewLocationMover() *LocationMover {
	return &LocationMover{}
}

func (m *LocationMover) Location() AppLocation { return m.pos.Location }
func (m *LocationMover) Path() remote.Path     { return m.pos.Path }
func (m *LocationMover) Position() Position    { return m.pos }

// GoToConsoleList shows the known consoles. Allowed from anywhere.
func (m *LocationMover) GoToConsoleList() {
	m.pos = Position{Location: ConsoleList}
}

// GoToDriveList shows the drives of the connected console. Allowed from
// anywhere: a console element opens it from Home or ConsoleList, the console
// path node from inside a drive.
func (m *LocationMover) GoToDriveList() {
	m.pos = Position{Location: DriveList}
}

// GoToDrive opens the root of drive. Allowed from DriveList or from inside
// another drive.
func (m *LocationMover) GoToDrive(drive string) error {
	if drive == "" {
		return fmt.Errorf("%w: empty drive name", ErrInvalidTransition)
	}
	if m.pos.Location != DriveList && m.pos.Location != DriveContents {
		return fmt.Errorf("%w: open drive from %s", ErrInvalidTransition, m.pos.Location)
	}
	m.pos = Position{Location: DriveContents, Path: remote.NewPath(drive)}
	return nil
}

// GoToDirectory descends into name below the current directory.
func (m *LocationMover) GoToDirectory(name string) error {
	if m.pos.Location != DriveContents {
		return fmt.Errorf("%w: open directory %q from %s", ErrInvalidTransition, name, m.pos.Location)
	}
	if name == "" {
		return fmt.Errorf("%w: empty directory name", ErrInvalidTransition)
	}
	m.pos.Path = m.pos.Path.Join(name)
	return nil
}

// Parent returns where GoToParent would move, without moving.
func (m *LocationMover) Parent() Position {
	switch m.pos.Location {
	case DriveContents:
		if m.pos.Path.Depth() > 1 {
			return Position{Location: DriveContents, Path: m.pos.Path.Parent()}
		}
		return Position{Location: DriveList}
	default:
		return Position{Location: ConsoleList}
	}
}

// GoToParent moves one level up: a subdirectory to its parent, a drive root
// to the drive list, the drive list to the console list. At the console list
// it stays put.
func (m *LocationMover) GoToParent() {
	m.pos = m.Parent()
}

// AtDepth returns the position for a path node at depth n (drive counted as 1).
func (m *LocationMover) AtDepth(depth int) (Position, error) {
	if m.pos.Location != DriveContents || depth < 1 || depth > m.pos.Path.Depth() {
		return Position{}, fmt.Errorf("%w: depth %d from %s", ErrInvalidTransition, depth, m.pos.Path)
	}
	return Position{Location: DriveContents, Path: m.pos.Path.Truncate(depth)}, nil
}

// GoToDepth jumps to an ancestor directory of the current path.
func (m *LocationMover) GoToDepth(depth int) error {
	pos, err := m.AtDepth(depth)
	if err != nil {
		return err
	}
	m.pos = pos
	return nil
}

// Consistent reports whether location and path depth agree.
func (p Position) Consistent() bool {
	if p.Location == DriveContents {
		return p.Path.Depth() >= 1
	}
	return p.Path.Depth() == 0
}
