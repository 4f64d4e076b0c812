package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveAbsolutePath(t *testing.T) {
	base, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	existing := filepath.Join(base, "mirror")
	if err := os.Mkdir(existing, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"existing directory", existing, existing},
		{"missing leaf", filepath.Join(existing, "new", "dir"), filepath.Join(existing, "new", "dir")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveAbsolutePath(tt.in)
			if err != nil {
				t.Fatalf("ResolveAbsolutePath(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ResolveAbsolutePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/consoles")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "consoles"); got != want {
		t.Errorf("ExpandHome = %q, want %q", got, want)
	}

	if got, _ := ExpandHome("~user/x"); got != "~user/x" {
		t.Errorf("ExpandHome should leave ~user untouched, got %q", got)
	}
}

func TestDownloadTarget(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	got, err := DownloadTarget(dir, "default.xex")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "default.xex"); got != want {
		t.Errorf("DownloadTarget(dir) = %q, want %q", got, want)
	}

	file := filepath.Join(dir, "renamed.xex")
	got, err = DownloadTarget(file, "default.xex")
	if err != nil {
		t.Fatal(err)
	}
	if got != file {
		t.Errorf("DownloadTarget(file) = %q, want %q", got, file)
	}
}
