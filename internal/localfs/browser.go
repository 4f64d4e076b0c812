package localfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileEntry is a local file or directory.
type FileEntry struct {
	Path    string
	Name    string
	Size    int64 // 0 for directories
	IsDir   bool
	ModTime time.Time
	Mode    fs.FileMode
}

// ListOptions configures ListDirectory.
type ListOptions struct {
	// IncludeHidden includes dot-files.
	IncludeHidden bool

	// DirsOnly drops regular files from the result.
	DirsOnly bool
}

// ListDirectory returns the entries of path in the order os.ReadDir returns
// them (sorted by name).
func ListDirectory(path string, opts ListOptions) ([]FileEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	result := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !opts.IncludeHidden && IsHiddenName(name) {
			continue
		}
		if opts.DirsOnly && !entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Vanished or unreadable since ReadDir.
			continue
		}
		result = append(result, newEntry(filepath.Join(path, name), info))
	}
	return result, nil
}

// WalkFunc is called for each entry visited by Walk.
// Returning filepath.SkipDir skips a directory; any other error stops the walk.
type WalkFunc func(entry FileEntry) error

// Walk visits root and everything below it depth-first, directories before
// their contents. Hidden entries are skipped unless includeHidden is set.
// Read errors abort the walk.
func Walk(root string, includeHidden bool, fn WalkFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && !includeHidden && IsHiddenName(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return fn(newEntry(path, info))
	})
}

// TreeSize returns the total size of regular files under root.
func TreeSize(root string, includeHidden bool) (int64, error) {
	var total int64
	err := Walk(root, includeHidden, func(e FileEntry) error {
		if !e.IsDir {
			total += e.Size
		}
		return nil
	})
	return total, err
}

func newEntry(path string, info fs.FileInfo) FileEntry {
	e := FileEntry{
		Path:    path,
		Name:    info.Name(),
		IsDir:   info.IsDir(),
		ModTime: info.ModTime(),
		Mode:    info.Mode(),
	}
	if !e.IsDir {
		e.Size = info.Size()
	}
	return e
}
