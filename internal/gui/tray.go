package gui

import (
	"topscreen-counter/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Tray owns the notification-area icon and its menu.
type Tray struct {
	app        fyne.App
	menu       *fyne.Menu
	onSettings func()
	onQuit     func()
	logger     logger.Logger
}

func NewTray(a fyne.App, onSettings, onQuit func(), log logger.Logger) *Tray {
	t := &Tray{
		app:        a,
		onSettings: onSettings,
		onQuit:     onQuit,
		logger:     log,
	}

	settingsItem := fyne.NewMenuItem("Settings", t.requestSettings)
	quitItem := fyne.NewMenuItem("Quit", t.quit)
	quitItem.IsQuit = true
	t.menu = fyne.NewMenu("Top Screen Counter", settingsItem, quitItem)

	return t
}

// Install publishes the icon and menu. It reports false when the driver has
// no system tray.
func (t *Tray) Install() bool {
	desk, ok := t.app.(desktop.App)
	if !ok {
		t.logger.Warning("Tray", "system tray unsupported by driver", nil)
		return false
	}

	desk.SetSystemTrayIcon(TrayIcon())
	desk.SetSystemTrayMenu(t.menu)
	t.logger.Info("Tray", "installed", nil)
	return true
}

func (t *Tray) Menu() *fyne.Menu {
	return t.menu
}

// requestSettings hands the dialog request to the UI goroutine; the tray
// callback must not build windows itself.
func (t *Tray) requestSettings() {
	t.logger.Debug("Tray", "settings requested", nil)
	fyne.Do(t.onSettings)
}

func (t *Tray) quit() {
	t.logger.Info("Tray", "quit requested", nil)
	t.onQuit()
}
