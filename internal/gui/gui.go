// Package gui renders the panel stack with fyne.
package gui

import (
	"fmt"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"

	"github.com/openneighborhood/neighborhood/internal/config"
	"github.com/openneighborhood/neighborhood/internal/constants"
	"github.com/openneighborhood/neighborhood/internal/core"
	"github.com/openneighborhood/neighborhood/internal/elements"
	"github.com/openneighborhood/neighborhood/internal/events"
	"github.com/openneighborhood/neighborhood/internal/logging"
	"github.com/openneighborhood/neighborhood/internal/panels"
	"github.com/openneighborhood/neighborhood/internal/remote/mirror"
)

// guiLogger is the package-level logger for GUI mode.
var guiLogger *logging.Logger

// LaunchGUI opens the main window and blocks until it is closed.
func LaunchGUI(cfg *config.Config) error {
	if err := checkDisplay(); err != nil {
		return err
	}

	bus := events.NewEventBus(constants.EventBusDefaultBuffer)
	guiLogger = logging.NewLogger(logging.ModeGUI, bus)

	// GUI mode stays at warn unless debugging was asked for.
	if logging.DebugFromEnv() || cfg.DetailedLogging {
		logging.SetGlobalLevel(zerolog.DebugLevel)
		guiLogger.Info().Msg("Debug logging enabled")
	} else {
		logging.SetGlobalLevel(zerolog.WarnLevel)
	}
	if cfg.DetailedLogging {
		if path, err := guiLogger.AddFileOutput(config.LogDirectory()); err != nil {
			guiLogger.Warn().Err(err).Msg("File logging disabled")
		} else {
			guiLogger.Info().Str("path", path).Msg("Logging to file")
		}
	}
	defer guiLogger.Close()

	engine, err := core.NewEngine(core.Options{
		Config: cfg,
		Dialer: &mirror.Dialer{
			Root:       cfg.MirrorRoot,
			ShowHidden: cfg.ShowHidden,
			Bus:        bus,
			Logger:     guiLogger,
		},
		Bus:    bus,
		Logger: guiLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	myApp := app.NewWithID(constants.AppID)
	myApp.Settings().SetTheme(&neighborhoodTheme{})

	mainWindow := myApp.NewWindow(constants.AppTitle)
	mainWindow.SetMaster()

	ui := NewUI(engine, mainWindow, myApp)
	ui.Start()

	mainWindow.SetContent(ui.Build())
	mainWindow.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	mainWindow.CenterOnScreen()
	mainWindow.ShowAndRun()

	ui.Stop()
	return nil
}

func checkDisplay() error {
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("GUI mode requires a display. No display detected.\n" +
			"DISPLAY and WAYLAND_DISPLAY are not set.\n" +
			"Use 'neighborhood --help' for the command-line interface")
	}
	return nil
}

// UI drives the panel layer from fyne callbacks. Every callback runs on
// fyne's main goroutine, so the engine is only ever touched from there.
type UI struct {
	engine *core.Engine
	window fyne.Window
	app    fyne.App

	layer     *panels.Layer
	contents  *contentsView
	path      *pathView
	statusBar *StatusBar
	keys      modifierTracker

	contentsRevision uint64
	pathRevision     uint64
}

// NewUI builds the panel layer for window.
func NewUI(engine *core.Engine, window fyne.Window, a fyne.App) *UI {
	ui := &UI{engine: engine, window: window, app: a}

	env := &elements.Env{Engine: engine, Dialogs: newFyneDialogs(ui)}
	cfg := engine.Config
	ui.layer = panels.NewLayer(env, newModalPresenter(ui), cfg.WindowWidth, cfg.WindowHeight)
	ui.layer.Main.SetOnClose(ui.close)

	ui.contents = newContentsView(ui)
	ui.path = newPathView(ui)
	ui.statusBar = NewStatusBar()
	return ui
}

// Build creates the window layout: path bar on top, status bar at the
// bottom, elements in between.
func (ui *UI) Build() fyne.CanvasObject {
	ui.sync()
	body := container.NewBorder(ui.path.Object(), ui.statusBar, nil, nil, ui.contents.Object())
	return container.New(&sizeWatcher{onResize: ui.onResize}, body)
}

// Start hooks window and keyboard callbacks and the status bar.
func (ui *UI) Start() {
	ui.window.SetCloseIntercept(func() {
		ui.Dispatch(&events.WindowCloseEvent{})
	})
	if dc, ok := ui.window.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			if e := ui.keys.down(ev.Name); e != nil {
				ui.Dispatch(e)
			}
		})
		dc.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			ui.Dispatch(ui.keys.up(ev.Name))
		})
	}
	ui.window.Canvas().SetOnTypedRune(func(r rune) {
		ui.Dispatch(&events.KeyTypedEvent{Char: r})
	})
	ui.statusBar.Watch(ui.engine.Bus)
}

// Stop releases the console session and the bus.
func (ui *UI) Stop() {
	ui.engine.Shutdown()
}

// Dispatch routes e through the panel stack and runs a frame.
func (ui *UI) Dispatch(e events.AppEvent) {
	ui.layer.OnEvent(e)
	ui.requestFrame()
}

// requestFrame schedules a frame after the current callback returns.
func (ui *UI) requestFrame() {
	fyne.Do(ui.frame)
}

func (ui *UI) frame() {
	ui.layer.OnUpdate()
	ui.sync()
}

// sync rebuilds the views whose panels changed since the last frame.
func (ui *UI) sync() {
	if rev := ui.layer.Contents.Revision(); rev != ui.contentsRevision {
		ui.contentsRevision = rev
		ui.contents.Update(ui.layer.Contents.ParentButton(), ui.layer.Contents.Elements())
	}
	if rev := ui.layer.Path.Revision(); rev != ui.pathRevision {
		ui.pathRevision = rev
		ui.path.Update(ui.layer.Path.Nodes())
	}
}

func (ui *UI) onResize(size fyne.Size) {
	ui.layer.OnEvent(&events.WindowResizeEvent{Width: int(size.Width), Height: int(size.Height)})
}

func (ui *UI) close() {
	guiLogger.Debug().Msg("Window closing")
	ui.window.Close()
}
