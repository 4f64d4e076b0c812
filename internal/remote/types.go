package remote

import (
	"path"
	"sort"
	"strings"
	"time"
)

// Drive describes one storage volume of a console.
type Drive struct {
	Name         string // "HDD:", "DEVKIT:", "Z:"
	FriendlyName string

	FreeBytesAvailable uint64 // free bytes available to the caller
	TotalBytes         uint64
	TotalFreeBytes     uint64
	TotalUsedBytes     uint64
}

// Letter returns the drive name without its trailing colon.
func (d Drive) Letter() string {
	return strings.TrimSuffix(d.Name, ":")
}

// NewDrive builds a Drive from its name and capacity figures and fills in the
// friendly name and used bytes.
func NewDrive(name string, freeAvailable, total, totalFree uint64) Drive {
	if !strings.HasSuffix(name, ":") {
		name += ":"
	}
	d := Drive{
		Name:               name,
		FreeBytesAvailable: freeAvailable,
		TotalBytes:         total,
		TotalFreeBytes:     totalFree,
	}
	d.FriendlyName = FriendlyDriveName(d.Letter())
	if total >= totalFree {
		d.TotalUsedBytes = total - totalFree
	}
	return d
}

// FriendlyDriveName maps a drive letter to the label the console dashboard uses.
func FriendlyDriveName(letter string) string {
	switch strings.ToUpper(strings.TrimSuffix(letter, ":")) {
	case "DEVKIT", "E":
		return "Game Development Volume"
	case "HDD":
		return "Retail Hard Drive Emulation"
	case "Y":
		return "Xbox360 Dashboard Volume"
	case "Z":
		return "Devkit Drive"
	case "D", "GAME":
		return "Active Title Media"
	default:
		return "Volume"
	}
}

// File is a directory entry on a console drive.
type File struct {
	Name             string
	Size             uint64
	IsDirectory      bool
	IsXex            bool
	CreationDate     time.Time
	ModificationDate time.Time
}

// NewFile builds a File and derives IsXex from the name.
func NewFile(name string, size uint64, isDir bool, created, modified time.Time) File {
	return File{
		Name:             name,
		Size:             size,
		IsDirectory:      isDir,
		IsXex:            !isDir && IsXexName(name),
		CreationDate:     created,
		ModificationDate: modified,
	}
}

// IsXexName reports whether name has the console executable extension.
func IsXexName(name string) bool {
	return strings.EqualFold(path.Ext(name), ".xex")
}

// Extension returns the upper-cased extension without the dot, or "".
func (f File) Extension() string {
	return strings.ToUpper(strings.TrimPrefix(path.Ext(f.Name), "."))
}

// TypeLabel is the "Type" shown in the properties view.
func (f File) TypeLabel() string {
	if f.IsDirectory {
		return "Folder"
	}
	if ext := f.Extension(); ext != "" {
		return ext + " file"
	}
	return "File"
}

// SortFiles orders entries the way consoles list them in the dashboard:
// directories first, then files, each group by case-insensitive name.
func SortFiles(files []File) {
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].IsDirectory != files[j].IsDirectory {
			return files[i].IsDirectory
		}
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})
}

// filetimeEpochDelta is the number of 100ns intervals between 1601-01-01 and 1970-01-01.
const filetimeEpochDelta = 116444736000000000

// FiletimeToTime converts a FILETIME split into high and low words.
func FiletimeToTime(high, low uint32) time.Time {
	ft := int64(high)<<32 | int64(low)
	if ft == 0 {
		return time.Time{}
	}
	return time.Unix(0, (ft-filetimeEpochDelta)*100).UTC()
}
