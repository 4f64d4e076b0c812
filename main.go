// Neighborhood - file manager for debuggable consoles.
//
// - No args + display available → GUI mode
// - No args + no display → CLI help
// - --gui → GUI mode
// - --cli → CLI mode (force)
// - CLI subcommands/flags → CLI mode
package main

import (
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/openneighborhood/neighborhood/internal/cli"
	"github.com/openneighborhood/neighborhood/internal/gui"
)

func main() {
	if isCLIMode() {
		os.Args = slices.DeleteFunc(os.Args, func(arg string) bool { return arg == "--cli" })
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	if err := gui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isCLIMode determines whether to run in CLI mode based on arguments and environment.
//
// CLI mode when:
// - --cli flag is present (force CLI mode)
// - any other argument is present (subcommands, --help, --version, ...)
// - No display available (DISPLAY/WAYLAND_DISPLAY not set on Linux)
//
// GUI mode when:
// - --gui flag is present (force GUI mode)
// - No arguments and display is available
func isCLIMode() bool {
	if slices.Contains(os.Args, "--cli") {
		return true
	}
	if slices.Contains(os.Args, "--gui") {
		return false
	}

	if len(os.Args) == 1 {
		if runtime.GOOS == "linux" {
			if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
				return true
			}
		}
		return false
	}

	// Unknown arguments go to the CLI so typos show help rather than a window.
	return true
}
