// Package remote defines the contract between the file manager and a remote
// debuggable console: the Console session handle, the Dialer that creates it,
// and the Drive, File and Path values exchanged over it.
//
// The debug-monitor wire protocol lives behind Dialer. The mirror subpackage
// provides a directory-backed implementation.
package remote

import (
	"context"
	"errors"
)

// Sentinel errors returned by Console implementations.
// Callers match them with errors.Is.
var (
	ErrNotFound       = errors.New("no such file or directory")
	ErrAlreadyExists  = errors.New("already exists")
	ErrNotXex         = errors.New("not an executable (.xex)")
	ErrInvalidAddress = errors.New("invalid IPv4 address")
	ErrClosed         = errors.New("console connection closed")
)

// Console is a live session with one remote console.
// A Console is not safe for concurrent use; the UI drives it from one goroutine.
type Console interface {
	// Name is the debug name the console reports about itself.
	Name() string

	// Address is the IPv4 address the session was dialed with.
	Address() string

	GetDrives(ctx context.Context) ([]Drive, error)
	GetDirectoryContents(ctx context.Context, dir Path) ([]File, error)

	// LaunchXex starts the executable at path, using its parent directory as
	// the working directory.
	LaunchXex(ctx context.Context, path Path) error

	// DeleteFile removes a file, or a directory and all of its contents.
	DeleteFile(ctx context.Context, path Path, isDirectory bool) error

	// RenameFile moves oldPath to newPath. Both must be on the same drive.
	RenameFile(ctx context.Context, oldPath, newPath Path) error

	// ReceiveFile downloads a remote file to localPath.
	ReceiveFile(ctx context.Context, remotePath Path, localPath string) error

	// ReceiveDirectory downloads a remote directory tree into localPath.
	ReceiveDirectory(ctx context.Context, remotePath Path, localPath string) error

	// SendFile uploads localPath to remotePath.
	SendFile(ctx context.Context, localPath string, remotePath Path) error

	CreateDirectory(ctx context.Context, path Path) error

	// Close ends the session. Further calls fail with ErrClosed.
	Close() error
}

// Dialer opens Console sessions.
type Dialer interface {
	Dial(ctx context.Context, address string) (Console, error)
}

// DialerFunc adapts a function to the Dialer interface.
type DialerFunc func(ctx context.Context, address string) (Console, error)

// Dial calls f(ctx, address).
func (f DialerFunc) Dial(ctx context.Context, address string) (Console, error) {
	return f(ctx, address)
}
