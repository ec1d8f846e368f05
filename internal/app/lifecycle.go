package app

import "topscreen-counter/internal/shutdown"

// setupLifecycle registers teardown in dependency order; the shutdown
// manager runs it in reverse.
func (a *Application) setupLifecycle(guard shutdown.Shutdownable) {
	if guard != nil {
		a.shutdown.Register("instance guard", guard)
	}
	a.shutdown.Register("gui", a.guiManager)

	a.guiManager.SetQuitHandler(a.quit)
}

// quit runs on the UI goroutine from the tray menu.
func (a *Application) quit() {
	a.logger.Info("Application", "shutdown requested", nil)
	a.shutdown.Shutdown()
	a.fyneApp.Quit()
}
