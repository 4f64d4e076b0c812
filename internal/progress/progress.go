// Package progress shows console transfers and waits in the terminal.
package progress

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Spinner shows an indeterminate wait, such as connecting to a console.
// It draws nothing when stderr is not a terminal.
type Spinner struct {
	bar *progressbar.ProgressBar
}

// StartSpinner starts a spinner labelled description on stderr.
func StartSpinner(description string) *Spinner {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return &Spinner{}
	}
	enableANSI(os.Stderr)
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	go func() {
		for !bar.IsFinished() {
			_ = bar.Add(1)
			time.Sleep(100 * time.Millisecond)
		}
	}()
	return &Spinner{bar: bar}
}

// Stop clears the spinner.
func (s *Spinner) Stop() {
	if s == nil || s.bar == nil {
		return
	}
	_ = s.bar.Finish()
}
