package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openneighborhood/neighborhood/internal/remote"
)

const testAddress = "192.168.1.100"

type testEnv struct {
	root     string // mirror root
	console  string // <root>/<ip>
	consoles string // saved console list
	config   string
}

func setupMirror(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		root:     filepath.Join(dir, "mirror"),
		consoles: filepath.Join(dir, "consoles.csv"),
		config:   filepath.Join(dir, "config.csv"),
	}
	env.console = filepath.Join(env.root, testAddress)
	mustWrite(t, filepath.Join(env.console, ".dbgname"), "jtag\n")
	mustWrite(t, filepath.Join(env.console, "HDD", "Games", "Halo", "default.xex"), "XEX2")
	mustWrite(t, filepath.Join(env.console, "HDD", "Games", "readme.txt"), "hello")
	if err := os.MkdirAll(filepath.Join(env.console, "DEVKIT"), 0o755); err != nil {
		t.Fatal(err)
	}
	return env
}

func mustWrite(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

// run executes the CLI with args and returns what it printed to stdout.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{
		"--config", e.config,
		"--consoles", e.consoles,
		"--mirror-root", e.root,
	}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommandStructure(t *testing.T) {
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)

	for _, name := range []string{"gui", "consoles", "drives", "ls", "get", "put", "rm", "mv", "mkdir", "launch", "completion"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			if err != nil || cmd == rootCmd {
				t.Fatalf("command %q not registered", name)
			}
			if cmd.Short == "" {
				t.Error("Short description is empty")
			}
		})
	}

	for _, flag := range []string{"config", "consoles", "mirror-root", "timeout", "debug"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s missing", flag)
		}
	}
}

func TestDrivesAndLs(t *testing.T) {
	env := setupMirror(t)

	out, err := env.run(t, "", "drives", testAddress)
	if err != nil {
		t.Fatalf("drives error = %v", err)
	}
	for _, want := range []string{"HDD:", "DEVKIT:", "Retail Hard Drive Emulation"} {
		if !strings.Contains(out, want) {
			t.Errorf("drives output missing %q:\n%s", want, out)
		}
	}

	out, err = env.run(t, "", "ls", testAddress, `HDD:\Games`)
	if err != nil {
		t.Fatalf("ls error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("ls printed %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "<DIR>") || !strings.HasSuffix(lines[0], `Halo\`) {
		t.Errorf("first entry = %q, want the Halo directory", lines[0])
	}
	if !strings.HasSuffix(lines[1], "readme.txt") {
		t.Errorf("second entry = %q, want readme.txt", lines[1])
	}
}

func TestUnknownConsole(t *testing.T) {
	env := setupMirror(t)

	tests := []struct {
		name    string
		address string
		want    error
	}{
		{"not in mirror", "10.0.0.1", nil},
		{"invalid address", "10.0.0", remote.ErrInvalidAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.run(t, "", "drives", tt.address)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConsolesAddListRemove(t *testing.T) {
	env := setupMirror(t)

	out, err := env.run(t, "", "consoles", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No consoles saved") {
		t.Errorf("empty list output = %q", out)
	}

	if _, err := env.run(t, "", "consoles", "add", testAddress); err != nil {
		t.Fatalf("add error = %v", err)
	}
	if _, err := env.run(t, "", "consoles", "add", testAddress); err == nil {
		t.Error("adding the same address twice should fail")
	}
	if _, err := env.run(t, "", "consoles", "add", "10.1.1.1"); err == nil {
		t.Error("adding an unreachable console should fail")
	}

	out, err = env.run(t, "", "consoles", "list")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "jtag") || !strings.Contains(out, testAddress) {
		t.Errorf("list output = %q, want jtag at %s", out, testAddress)
	}

	if _, err := env.run(t, "", "consoles", "remove", testAddress); err != nil {
		t.Fatalf("remove error = %v", err)
	}
	out, _ = env.run(t, "", "consoles", "list")
	if strings.Contains(out, "jtag") {
		t.Errorf("console still listed after remove: %q", out)
	}
}

func TestGet(t *testing.T) {
	env := setupMirror(t)
	dest := t.TempDir()

	if _, err := env.run(t, "", "get", testAddress, `HDD:\Games\readme.txt`, dest); err != nil {
		t.Fatalf("get file error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dest, "readme.txt"))
	if err != nil || string(data) != "hello" {
		t.Errorf("downloaded file = %q, %v", data, err)
	}

	if _, err := env.run(t, "", "get", testAddress, "HDD:/Games", filepath.Join(dest, "games")); err != nil {
		t.Fatalf("get directory error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "games", "Halo", "default.xex")); err != nil {
		t.Errorf("directory download missing nested file: %v", err)
	}

	if _, err := env.run(t, "", "get", testAddress, `HDD:\missing.bin`, dest); !errors.Is(err, remote.ErrNotFound) {
		t.Errorf("get missing error = %v, want ErrNotFound", err)
	}
}

func TestPut(t *testing.T) {
	env := setupMirror(t)
	src := t.TempDir()
	mustWrite(t, filepath.Join(src, "patch.bin"), "patch")
	mustWrite(t, filepath.Join(src, "mod", "data", "level.dat"), "level")

	if _, err := env.run(t, "", "put", testAddress, filepath.Join(src, "patch.bin"), `DEVKIT:\`); err != nil {
		t.Fatalf("put file error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.console, "DEVKIT", "patch.bin")); err != nil {
		t.Errorf("uploaded file missing: %v", err)
	}

	out, err := env.run(t, "", "put", testAddress, filepath.Join(src, "mod"), `HDD:\Games`)
	if err != nil {
		t.Fatalf("put directory error = %v", err)
	}
	if !strings.Contains(out, "1 file(s)") {
		t.Errorf("put output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(env.console, "HDD", "Games", "mod", "data", "level.dat")); err != nil {
		t.Errorf("uploaded tree missing: %v", err)
	}
}

func TestRm(t *testing.T) {
	prev := stdinIsTerminal
	defer func() { stdinIsTerminal = prev }()

	env := setupMirror(t)
	target := filepath.Join(env.console, "HDD", "Games", "readme.txt")

	stdinIsTerminal = func() bool { return false }
	if _, err := env.run(t, "", "rm", testAddress, `HDD:\Games\readme.txt`); !errors.Is(err, errNotInteractive) {
		t.Errorf("rm without a terminal error = %v, want errNotInteractive", err)
	}

	stdinIsTerminal = func() bool { return true }
	out, err := env.run(t, "n\n", "rm", testAddress, `HDD:\Games\readme.txt`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Cancelled") {
		t.Errorf("declined rm output = %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Error("declining must keep the file")
	}

	if _, err := env.run(t, "yes\n", "rm", testAddress, `HDD:\Games\readme.txt`); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("file should be deleted after confirming")
	}

	if _, err := env.run(t, "", "rm", "--yes", testAddress, `HDD:\Games\Halo`); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(env.console, "HDD", "Games", "Halo")); !os.IsNotExist(err) {
		t.Error("directory should be deleted with --yes")
	}

	if _, err := env.run(t, "", "rm", "--yes", testAddress, `HDD:\`); err == nil {
		t.Error("deleting a drive root should be refused")
	}
}

func TestMvMkdirLaunch(t *testing.T) {
	env := setupMirror(t)

	if _, err := env.run(t, "", "mv", testAddress, `HDD:\Games\readme.txt`, "notes.txt"); err != nil {
		t.Fatalf("mv error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.console, "HDD", "Games", "notes.txt")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}

	if _, err := env.run(t, "", "mkdir", testAddress, `HDD:\Saves`); err != nil {
		t.Fatalf("mkdir error = %v", err)
	}
	if _, err := env.run(t, "", "mkdir", testAddress, `HDD:\Saves`); !errors.Is(err, remote.ErrAlreadyExists) {
		t.Errorf("second mkdir error = %v, want ErrAlreadyExists", err)
	}

	if _, err := env.run(t, "", "launch", testAddress, `HDD:\Games\notes.txt`); !errors.Is(err, remote.ErrNotXex) {
		t.Errorf("launch non-xex error = %v, want ErrNotXex", err)
	}
	out, err := env.run(t, "", "launch", testAddress, `HDD:\Games\Halo\default.xex`)
	if err != nil {
		t.Fatalf("launch error = %v", err)
	}
	if !strings.Contains(out, "on jtag") {
		t.Errorf("launch output = %q", out)
	}
	launched, err := os.ReadFile(filepath.Join(env.console, ".launched"))
	if err != nil || !strings.Contains(string(launched), "default.xex") {
		t.Errorf(".launched = %q, %v", launched, err)
	}
}

func TestRenameTarget(t *testing.T) {
	src := remote.MustParsePath(`HDD:\Games\readme.txt`)

	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{"notes.txt", `HDD:\Games\notes.txt`, false},
		{`HDD:\readme.txt`, `HDD:\readme.txt`, false},
		{`DEVKIT:\readme.txt`, "", true},
		{`a\b`, "", true},
		{"  ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := renameTarget(src, tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("renameTarget(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("renameTarget(%q) = %s, want %s", tt.arg, got, tt.want)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got, err := confirm(strings.NewReader(tt.input), &out, "Delete?")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Delete? [y/N]") {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}
