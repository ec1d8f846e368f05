package app

import (
	"topscreen-counter/internal/config"
	"topscreen-counter/internal/counter"
	"topscreen-counter/internal/gui"
	"topscreen-counter/internal/logger"
	"topscreen-counter/internal/settings"
	"topscreen-counter/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	AppName    = "Top Screen Counter"
	AppID      = "com.topscreen.counter"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	guiManager *gui.Manager
	loop       *counter.Loop
	settings   *settings.Settings
	store      *settings.Store
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

// NewApplication wires the real filesystem, clock and Fyne driver. guard is
// released during shutdown.
func NewApplication(cfg *config.Config, log logger.Logger, guard shutdown.Shutdownable) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	return newApplication(fyneApp, afero.NewOsFs(), clockwork.NewRealClock(), cfg, log, guard)
}

func newApplication(fyneApp fyne.App, fs afero.Fs, clock clockwork.Clock, cfg *config.Config, log logger.Logger, guard shutdown.Shutdownable) (*Application, error) {
	log.Info("Application", "starting application", map[string]interface{}{
		"version":  AppVersion,
		"settings": cfg.SettingsPath,
	})

	store := settings.NewStore(fs, cfg.SettingsPath)
	rec, err := store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load settings")
	}
	state := settings.New(rec)

	guiManager := gui.NewManager(fyneApp, state, store, gui.Options{
		BarHeight:     cfg.BarHeight,
		FallbackWidth: cfg.FallbackWidth,
	}, log)

	a := &Application{
		fyneApp:    fyneApp,
		guiManager: guiManager,
		loop:       counter.NewLoop(clock, state, guiManager.SetCounter, log),
		settings:   state,
		store:      store,
		shutdown:   shutdown.NewManager(log),
		logger:     log,
	}
	a.setupLifecycle(guard)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"label":  rec.Label,
		"anchor": settings.FormatEntry(rec.Anchor),
	})
	return a, nil
}

// Run shows the strip, starts the background tasks and blocks in the event
// loop until Quit.
func (a *Application) Run() error {
	a.start()
	a.fyneApp.Run()
	a.shutdown.Shutdown()

	a.logger.Info("Application", "terminated", nil)
	return nil
}

func (a *Application) start() {
	a.guiManager.Show()
	go a.loop.Run(a.shutdown.Context())
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})
	a.logger.Info("Application", "GUI displayed", nil)
}
