package remote

import (
	"fmt"
	"strings"
)

// Separator is the console path separator.
const Separator = `\`

// Path is a location on a console: a drive plus directory segments.
// The zero value is the empty path (no drive selected).
type Path struct {
	drive    string
	segments []string
}

// NewPath returns the path made of drive (with or without colon) and segments.
func NewPath(drive string, segments ...string) Path {
	if drive != "" && !strings.HasSuffix(drive, ":") {
		drive += ":"
	}
	p := Path{drive: drive}
	for _, s := range segments {
		if s != "" {
			p.segments = append(p.segments, s)
		}
	}
	return p
}

// ParsePath parses "HDD:\Games\Halo". Forward slashes are accepted too.
// Drive names may be longer than one letter.
func ParsePath(s string) (Path, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "/", Separator)
	if s == "" {
		return Path{}, nil
	}
	idx := strings.Index(s, ":")
	if idx <= 0 {
		return Path{}, fmt.Errorf("path %q has no drive", s)
	}
	drive := s[:idx]
	if strings.Contains(drive, Separator) {
		return Path{}, fmt.Errorf("path %q has no drive", s)
	}
	return NewPath(drive, strings.Split(s[idx+1:], Separator)...), nil
}

// MustParsePath is ParsePath for literals known to be valid.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Drive returns the drive name including the colon, or "" for the empty path.
func (p Path) Drive() string { return p.drive }

// Segments returns a copy of the directory segments below the drive.
func (p Path) Segments() []string {
	return append([]string(nil), p.segments...)
}

// Depth counts the drive as the first segment: "HDD:" is 1, "HDD:\Games" is 2.
func (p Path) Depth() int {
	if p.drive == "" {
		return 0
	}
	return 1 + len(p.segments)
}

// IsEmpty reports whether no drive is selected.
func (p Path) IsEmpty() bool { return p.drive == "" }

// IsDriveRoot reports whether p is exactly a drive.
func (p Path) IsDriveRoot() bool { return p.drive != "" && len(p.segments) == 0 }

// Join returns p with name appended.
func (p Path) Join(name ...string) Path {
	return NewPath(p.drive, append(p.Segments(), name...)...)
}

// Parent returns the containing directory. The parent of a drive root is the
// empty path.
func (p Path) Parent() Path {
	if len(p.segments) == 0 {
		return Path{}
	}
	return NewPath(p.drive, p.segments[:len(p.segments)-1]...)
}

// Truncate keeps the first depth levels (drive included).
func (p Path) Truncate(depth int) Path {
	switch {
	case depth <= 0:
		return Path{}
	case depth >= p.Depth():
		return p
	default:
		return NewPath(p.drive, p.segments[:depth-1]...)
	}
}

// Base returns the last segment, or the drive for a drive root.
func (p Path) Base() string {
	if len(p.segments) == 0 {
		return p.drive
	}
	return p.segments[len(p.segments)-1]
}

// String renders the path the way the console expects it. A drive root keeps
// its trailing separator ("HDD:\").
func (p Path) String() string {
	if p.drive == "" {
		return ""
	}
	if len(p.segments) == 0 {
		return p.drive + Separator
	}
	return p.drive + Separator + strings.Join(p.segments, Separator)
}

// Equal reports whether two paths name the same location.
func (p Path) Equal(o Path) bool {
	if !strings.EqualFold(p.drive, o.drive) || len(p.segments) != len(o.segments) {
		return false
	}
	for i := range p.segments {
		if !strings.EqualFold(p.segments[i], o.segments[i]) {
			return false
		}
	}
	return true
}

// IsWithin reports whether p is o or lies below it.
func (p Path) IsWithin(o Path) bool {
	if o.IsEmpty() || !strings.EqualFold(p.drive, o.drive) || len(p.segments) < len(o.segments) {
		return false
	}
	for i := range o.segments {
		if !strings.EqualFold(p.segments[i], o.segments[i]) {
			return false
		}
	}
	return true
}
