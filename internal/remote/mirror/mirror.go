// Package mirror serves a local directory tree as a set of consoles.
//
// Layout under the root directory:
//
//	<root>/<ip address>/          one directory per console
//	<root>/<ip address>/.dbgname  optional, first line is the console name
//	<root>/<ip address>/HDD/      each visible subdirectory is a drive ("HDD:")
//
// Launching an executable records its path in <root>/<ip address>/.launched.
package mirror

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/openneighborhood/neighborhood/internal/diskspace"
	"github.com/openneighborhood/neighborhood/internal/events"
	"github.com/openneighborhood/neighborhood/internal/localfs"
	"github.com/openneighborhood/neighborhood/internal/logging"
	"github.com/openneighborhood/neighborhood/internal/remote"
)

const (
	nameFile     = ".dbgname"
	launchedFile = ".launched"
)

// ErrNoSuchConsole is returned when the root has no directory for an address.
var ErrNoSuchConsole = errors.New("no console at address")

// Dialer opens directory-backed consoles below Root.
type Dialer struct {
	Root string

	// ShowHidden lists dot-files in directory contents.
	ShowHidden bool

	// Bus receives transfer events. May be nil.
	Bus    *events.EventBus
	Logger *logging.Logger
}

// Dial opens the console directory for address.
func (d *Dialer) Dial(ctx context.Context, address string) (remote.Console, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !remote.IsValidIPv4(address) {
		return nil, fmt.Errorf("%w: %q", remote.ErrInvalidAddress, address)
	}

	dir := filepath.Join(d.Root, address)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("dial %s: %w", address, ErrNoSuchConsole)
	}

	logger := d.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	c := &Console{
		dir:        dir,
		address:    address,
		name:       readName(dir, address),
		showHidden: d.ShowHidden,
		bus:        d.Bus,
		logger:     logger,
	}
	logger.Debug().Str("address", address).Str("dir", dir).Msg("Mirror console opened")
	return c, nil
}

func readName(dir, fallback string) string {
	f, err := os.Open(filepath.Join(dir, nameFile))
	if err != nil {
		return fallback
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	if sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			return name
		}
	}
	return fallback
}

// Console is one mirrored console.
type Console struct {
	dir        string
	address    string
	name       string
	showHidden bool
	bus        *events.EventBus
	logger     *logging.Logger
	closed     atomic.Bool
}

var transferSeq atomic.Int64

func (c *Console) Name() string    { return c.name }
func (c *Console) Address() string { return c.address }

func (c *Console) GetDrives(ctx context.Context) ([]remote.Drive, error) {
	if err := c.check(ctx); err != nil {
		return nil, err
	}
	entries, err := localfs.ListDirectory(c.dir, localfs.ListOptions{DirsOnly: true})
	if err != nil {
		return nil, fmt.Errorf("drivelist: %w", err)
	}

	usage, err := diskspace.GetUsage(c.dir)
	if err != nil {
		c.logger.Debug().Err(err).Msg("Drive capacity unavailable")
	}

	drives := make([]remote.Drive, 0, len(entries))
	for _, e := range entries {
		drives = append(drives, remote.NewDrive(e.Name, usage.FreeBytesAvailable, usage.TotalBytes, usage.TotalFreeBytes))
	}
	return drives, nil
}

func (c *Console) GetDirectoryContents(ctx context.Context, dir remote.Path) ([]remote.File, error) {
	local, err := c.resolve(ctx, dir)
	if err != nil {
		return nil, err
	}
	entries, err := localfs.ListDirectory(local, localfs.ListOptions{IncludeHidden: c.showHidden})
	if err != nil {
		return nil, notFound(dir, err)
	}

	files := make([]remote.File, 0, len(entries))
	for _, e := range entries {
		files = append(files, remote.NewFile(e.Name, uint64(e.Size), e.IsDir, e.ModTime, e.ModTime))
	}
	remote.SortFiles(files)
	return files, nil
}

func (c *Console) LaunchXex(ctx context.Context, path remote.Path) error {
	if !remote.IsXexName(path.Base()) {
		return fmt.Errorf("%s: %w", path, remote.ErrNotXex)
	}
	local, err := c.resolve(ctx, path)
	if err != nil {
		return err
	}
	info, err := os.Stat(local)
	if err != nil {
		return notFound(path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, remote.ErrNotXex)
	}

	record := fmt.Sprintf("%s\t%s\n", path, path.Parent())
	if err := os.WriteFile(filepath.Join(c.dir, launchedFile), []byte(record), 0o644); err != nil {
		return fmt.Errorf("magicboot %s: %w", path, err)
	}
	c.logger.Info().Str("title", path.String()).Msg("Launched title")
	return nil
}

func (c *Console) DeleteFile(ctx context.Context, path remote.Path, isDirectory bool) error {
	if path.IsDriveRoot() {
		return fmt.Errorf("cannot delete drive %s", path.Drive())
	}
	local, err := c.resolve(ctx, path)
	if err != nil {
		return err
	}
	info, err := os.Stat(local)
	if err != nil {
		return notFound(path, err)
	}
	if info.IsDir() != isDirectory {
		return fmt.Errorf("delete %s: directory flag mismatch", path)
	}
	if isDirectory {
		return os.RemoveAll(local)
	}
	return os.Remove(local)
}

func (c *Console) RenameFile(ctx context.Context, oldPath, newPath remote.Path) error {
	if !strings.EqualFold(oldPath.Drive(), newPath.Drive()) {
		return fmt.Errorf("rename %s to %s: paths are on different drives", oldPath, newPath)
	}
	from, err := c.resolve(ctx, oldPath)
	if err != nil {
		return err
	}
	to, err := c.resolve(ctx, newPath)
	if err != nil {
		return err
	}
	if _, err := os.Stat(from); err != nil {
		return notFound(oldPath, err)
	}
	// Case-only renames point at the same entry on case-insensitive filesystems.
	if !oldPath.Equal(newPath) {
		if _, err := os.Lstat(to); err == nil {
			return fmt.Errorf("%s: %w", newPath, remote.ErrAlreadyExists)
		}
	}
	if err := os.Rename(from, to); err != nil {
		return notFound(newPath.Parent(), err)
	}
	return nil
}

func (c *Console) CreateDirectory(ctx context.Context, path remote.Path) error {
	local, err := c.resolve(ctx, path)
	if err != nil {
		return err
	}
	if _, err := os.Lstat(local); err == nil {
		return fmt.Errorf("%s: %w", path, remote.ErrAlreadyExists)
	}
	if err := os.Mkdir(local, 0o755); err != nil {
		return notFound(path.Parent(), err)
	}
	return nil
}

func (c *Console) Close() error {
	c.closed.Store(true)
	return nil
}

func (c *Console) check(ctx context.Context) error {
	if c.closed.Load() {
		return remote.ErrClosed
	}
	return ctx.Err()
}

// resolve maps a console path to the local filesystem, refusing segments
// that would escape the drive directory.
func (c *Console) resolve(ctx context.Context, p remote.Path) (string, error) {
	if err := c.check(ctx); err != nil {
		return "", err
	}
	if p.IsEmpty() {
		return "", fmt.Errorf("empty path: %w", remote.ErrNotFound)
	}
	driveDir, err := c.driveDir(p.Drive())
	if err != nil {
		return "", err
	}
	parts := []string{driveDir}
	for _, seg := range p.Segments() {
		if seg == "." || seg == ".." || strings.ContainsAny(seg, `/\`) {
			return "", fmt.Errorf("invalid path segment %q in %s", seg, p)
		}
		parts = append(parts, seg)
	}
	return filepath.Join(parts...), nil
}

// driveDir finds the directory for a drive name, ignoring case.
func (c *Console) driveDir(drive string) (string, error) {
	letter := strings.TrimSuffix(drive, ":")
	entries, err := localfs.ListDirectory(c.dir, localfs.ListOptions{DirsOnly: true})
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name, letter) {
			return e.Path, nil
		}
	}
	return "", fmt.Errorf("drive %s: %w", drive, remote.ErrNotFound)
}

func notFound(p remote.Path, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", p, remote.ErrNotFound)
	}
	return err
}
