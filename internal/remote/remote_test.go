package remote

import (
	"testing"
	"time"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in        string
		wantStr   string
		wantDepth int
		wantErr   bool
	}{
		{`HDD:\`, `HDD:\`, 1, false},
		{`HDD:`, `HDD:\`, 1, false},
		{`HDD:\Games\Halo`, `HDD:\Games\Halo`, 3, false},
		{`DEVKIT:/Samples/`, `DEVKIT:\Samples`, 2, false},
		{``, ``, 0, false},
		{`Games\Halo`, ``, 0, true},
		{`:\Games`, ``, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePath(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePath(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if p.String() != tt.wantStr {
				t.Errorf("String() = %q, want %q", p.String(), tt.wantStr)
			}
			if p.Depth() != tt.wantDepth {
				t.Errorf("Depth() = %d, want %d", p.Depth(), tt.wantDepth)
			}
		})
	}
}

func TestPathNavigation(t *testing.T) {
	p := NewPath("HDD", "Games", "Halo")

	if got := p.Parent().String(); got != `HDD:\Games` {
		t.Errorf("Parent() = %q, want %q", got, `HDD:\Games`)
	}
	if got := p.Parent().Parent(); !got.IsDriveRoot() {
		t.Errorf("Parent().Parent() = %q, want drive root", got)
	}
	if got := NewPath("HDD").Parent(); !got.IsEmpty() {
		t.Errorf("drive root parent = %q, want empty", got)
	}
	if got := p.Truncate(2).String(); got != `HDD:\Games` {
		t.Errorf("Truncate(2) = %q", got)
	}
	if got := p.Truncate(1); !got.IsDriveRoot() {
		t.Errorf("Truncate(1) = %q, want drive root", got)
	}
	if got := p.Truncate(10); !got.Equal(p) {
		t.Errorf("Truncate(10) = %q, want %q", got, p)
	}
	if got := p.Base(); got != "Halo" {
		t.Errorf("Base() = %q", got)
	}
	if !p.Equal(MustParsePath(`hdd:\games\HALO`)) {
		t.Error("Equal should ignore case")
	}

	// Join must not alias the receiver's segments.
	a := NewPath("HDD", "Games")
	b := a.Join("One")
	c := a.Join("Two")
	if b.String() != `HDD:\Games\One` || c.String() != `HDD:\Games\Two` {
		t.Errorf("Join aliasing: %q, %q", b, c)
	}
}

func TestPathIsWithin(t *testing.T) {
	tests := []struct {
		p, o string
		want bool
	}{
		{`HDD:\A\A`, `HDD:\A`, true},
		{`HDD:\A\A`, `hdd:\a\a`, true},
		{`HDD:\A\A`, `HDD:`, true},
		{`HDD:\A`, `HDD:\A\A`, false},
		{`HDD:\Games`, `HDD:\Game`, false},
		{`HDD:\A`, `DEVKIT:\A`, false},
	}
	for _, tt := range tests {
		t.Run(tt.p+" in "+tt.o, func(t *testing.T) {
			if got := MustParsePath(tt.p).IsWithin(MustParsePath(tt.o)); got != tt.want {
				t.Errorf("IsWithin = %v, want %v", got, tt.want)
			}
		})
	}
	if (Path{}).IsWithin(Path{}) {
		t.Error("empty path should not be within empty path")
	}
}

func TestIsValidIPv4(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"192.168.1.100", true},
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"256.1.1.1", false},
		{"192.168.1", false},
		{"192.168.01.1", false},
		{"192.168.1.-1", false},
		{"a.b.c.d", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidIPv4(tt.in); got != tt.want {
				t.Errorf("IsValidIPv4(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFriendlyDriveName(t *testing.T) {
	tests := map[string]string{
		"DEVKIT": "Game Development Volume",
		"E:":     "Game Development Volume",
		"HDD":    "Retail Hard Drive Emulation",
		"Y":      "Xbox360 Dashboard Volume",
		"Z":      "Devkit Drive",
		"GAME":   "Active Title Media",
		"D":      "Active Title Media",
		"USB0":   "Volume",
	}
	for letter, want := range tests {
		if got := FriendlyDriveName(letter); got != want {
			t.Errorf("FriendlyDriveName(%q) = %q, want %q", letter, got, want)
		}
	}
}

func TestNewDrive(t *testing.T) {
	d := NewDrive("HDD", 100, 500, 120)
	if d.Name != "HDD:" {
		t.Errorf("Name = %q, want HDD:", d.Name)
	}
	if d.TotalUsedBytes != 380 {
		t.Errorf("TotalUsedBytes = %d, want 380", d.TotalUsedBytes)
	}
	if d.FriendlyName != "Retail Hard Drive Emulation" {
		t.Errorf("FriendlyName = %q", d.FriendlyName)
	}
}

func TestSortFiles(t *testing.T) {
	files := []File{
		NewFile("zeta.bin", 1, false, time.Time{}, time.Time{}),
		NewFile("Media", 0, true, time.Time{}, time.Time{}),
		NewFile("alpha.xex", 1, false, time.Time{}, time.Time{}),
		NewFile("content", 0, true, time.Time{}, time.Time{}),
	}
	SortFiles(files)

	want := []string{"content", "Media", "alpha.xex", "zeta.bin"}
	for i, name := range want {
		if files[i].Name != name {
			t.Errorf("files[%d] = %q, want %q", i, files[i].Name, name)
		}
	}
	if !files[2].IsXex {
		t.Error("alpha.xex should be flagged as xex")
	}
}

func TestFileTypeLabel(t *testing.T) {
	tests := []struct {
		file File
		want string
	}{
		{File{Name: "default.xex"}, "XEX file"},
		{File{Name: "README"}, "File"},
		{File{Name: "Games", IsDirectory: true}, "Folder"},
	}
	for _, tt := range tests {
		if got := tt.file.TypeLabel(); got != tt.want {
			t.Errorf("TypeLabel(%q) = %q, want %q", tt.file.Name, got, tt.want)
		}
	}
}

func TestFiletimeToTime(t *testing.T) {
	// 2000-01-01T00:00:00Z as FILETIME is 125911584000000000.
	const ft = 125911584000000000
	got := FiletimeToTime(uint32(ft>>32), uint32(ft&0xFFFFFFFF))
	want := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("FiletimeToTime = %v, want %v", got, want)
	}
	if !FiletimeToTime(0, 0).IsZero() {
		t.Error("zero FILETIME should map to zero time")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
		long string
	}{
		{0, "0 B", "0 bytes"},
		{1023, "1023 B", "1,023 bytes"},
		{1536, "1.5 KB", "1.5 KB (1,536 bytes)"},
		{5 << 30, "5.0 GB", "5.0 GB (5,368,709,120 bytes)"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.in); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
		if got := FormatSizeLong(tt.in); got != tt.long {
			t.Errorf("FormatSizeLong(%d) = %q, want %q", tt.in, got, tt.long)
		}
	}
	if FormatDate(time.Time{}) != "Unknown" {
		t.Error("zero time should format as Unknown")
	}
}
