package gui

import (
	"topscreen-counter/internal/logger"
	"topscreen-counter/internal/settings"

	"fyne.io/fyne/v2"
)

type Options struct {
	BarHeight     int
	FallbackWidth int
}

// Manager owns every window and the tray. Except for SetCounter, its
// methods must be called on the UI goroutine.
type Manager struct {
	app      fyne.App
	logger   logger.Logger
	settings *settings.Settings

	window *DockedWindow
	dialog *SettingsDialog
	tray   *Tray

	quitHandler func()
	isShutdown  bool
}

func NewManager(a fyne.App, s *settings.Settings, store *settings.Store, opts Options, log logger.Logger) *Manager {
	m := &Manager{
		app:      a,
		logger:   log,
		settings: s,
	}

	m.window = NewDockedWindow(a, s.Label(), opts.BarHeight, opts.FallbackWidth, log)
	m.dialog = NewSettingsDialog(a, s, store, m.window.SetLabel, log)
	m.tray = NewTray(a, m.dialog.Open, m.quit, log)

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"label": s.Label(),
	})
	return m
}

// SetQuitHandler replaces the default of quitting the app directly.
func (m *Manager) SetQuitHandler(handler func()) {
	m.quitHandler = handler
}

// Show displays and docks the strip and installs the tray.
func (m *Manager) Show() {
	m.window.Show()
	m.window.Dock()
	m.tray.Install()
}

// SetCounter is the counter loop sink; safe from any goroutine.
func (m *Manager) SetCounter(text string) {
	fyne.Do(func() {
		m.window.SetCounter(text)
	})
}

func (m *Manager) OpenSettings() {
	m.dialog.Open()
}

func (m *Manager) Window() *DockedWindow {
	return m.window
}

func (m *Manager) Dialog() *SettingsDialog {
	return m.dialog
}

func (m *Manager) Tray() *Tray {
	return m.tray
}

func (m *Manager) quit() {
	if m.quitHandler != nil {
		m.quitHandler()
		return
	}
	m.app.Quit()
}

// Shutdown releases the docked strip. Idempotent.
func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}
	m.isShutdown = true
	m.window.Undock()
	m.logger.Debug("GUIManager", "shutdown completed", nil)
}
