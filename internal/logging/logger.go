// Package logging provides structured logging for both CLI and GUI modes.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/openneighborhood/neighborhood/internal/events"
)

// Logger modes.
const (
	ModeCLI = "cli"
	ModeGUI = "gui"
)

// Logger wraps zerolog with mode-specific behavior.
// In GUI mode warnings and errors are also published on the event bus so the
// status bar can show them.
type Logger struct {
	zlog     zerolog.Logger
	mode     string
	eventBus *events.EventBus
	output   io.Writer
	logFile  *os.File
}

// NewLogger creates a logger for mode. CLI logs go to stdout (stderr carries
// progress bars); GUI logs go to stderr.
func NewLogger(mode string, eventBus *events.EventBus) *Logger {
	out := os.Stdout
	if mode != ModeCLI {
		out = os.Stderr
	}
	l := &Logger{mode: mode, eventBus: eventBus}
	l.SetOutput(consoleWriter(out))
	return l
}

// NewDefaultCLILogger creates a CLI logger without an event bus.
func NewDefaultCLILogger() *Logger {
	return NewLogger(ModeCLI, nil)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{zlog: zerolog.Nop(), output: io.Discard}
}

func consoleWriter(f *os.File) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()),
	}
}

func (l *Logger) Info() *zerolog.Event  { return l.zlog.Info() }
func (l *Logger) Error() *zerolog.Event { return l.zlog.Error() }
func (l *Logger) Debug() *zerolog.Event { return l.zlog.Debug() }
func (l *Logger) Warn() *zerolog.Event  { return l.zlog.Warn() }

// With creates a child logger context.
func (l *Logger) With() zerolog.Context {
	return l.zlog.With()
}

// SetOutput changes the writer, e.g. to route CLI logs above progress bars.
func (l *Logger) SetOutput(w io.Writer) {
	l.output = w
	if l.logFile != nil {
		w = zerolog.MultiLevelWriter(w, l.logFile)
	}
	zl := zerolog.New(w).With().Timestamp().Logger()
	if l.eventBus != nil && l.mode == ModeGUI {
		zl = zl.Hook(busHook{bus: l.eventBus})
	}
	l.zlog = zl
}

// Output returns the current output writer.
func (l *Logger) Output() io.Writer {
	return l.output
}

// AddFileOutput tees JSON log lines into a file under dir, named for the mode.
func (l *Logger) AddFileOutput(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	path := filepath.Join(dir, "neighborhood-"+l.mode+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}
	if l.logFile != nil {
		l.logFile.Close()
	}
	l.logFile = f
	l.SetOutput(l.output)
	return path, nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.logFile == nil {
		return nil
	}
	err := l.logFile.Close()
	l.logFile = nil
	l.SetOutput(l.output)
	return err
}

// Debugf logs a debug message with printf-style formatting.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.zlog.Debug().Msgf(format, args...)
}

// Infof logs an info message with printf-style formatting.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.zlog.Info().Msgf(format, args...)
}

// Warnf logs a warning message with printf-style formatting.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.zlog.Warn().Msgf(format, args...)
}

// Errorf logs an error message with printf-style formatting.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.zlog.Error().Msgf(format, args...)
}

// busHook mirrors warnings and errors onto the event bus.
type busHook struct {
	bus *events.EventBus
}

func (h busHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	switch level {
	case zerolog.WarnLevel:
		h.bus.PublishLog(events.WarnLevel, msg, nil)
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		h.bus.PublishLog(events.ErrorLevel, msg, nil)
	}
}

// SetGlobalLevel sets the global log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// ParseLevel accepts zerolog level names; an empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
}

// DebugFromEnv reports whether NEIGHBORHOOD_DEBUG asks for debug logging.
func DebugFromEnv() bool {
	v := strings.ToLower(os.Getenv("NEIGHBORHOOD_DEBUG"))
	return v == "1" || v == "true" || v == "yes"
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(consoleWriter(os.Stderr))
}
