package gui

import (
	"topscreen-counter/internal/logger"
	"topscreen-counter/internal/settings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
)

const (
	SettingsWidth  = 350
	SettingsHeight = 160
)

// SettingsDialog edits the label and anchor. At most one is open at a time.
type SettingsDialog struct {
	app      fyne.App
	settings *settings.Settings
	store    *settings.Store
	onLabel  func(string)
	logger   logger.Logger

	window     fyne.Window
	labelEntry *widget.Entry
	timeEntry  *widget.Entry
}

func NewSettingsDialog(a fyne.App, s *settings.Settings, store *settings.Store, onLabel func(string), log logger.Logger) *SettingsDialog {
	return &SettingsDialog{
		app:      a,
		settings: s,
		store:    store,
		onLabel:  onLabel,
		logger:   log,
	}
}

// Open shows the dialog, or focuses it if already open. UI goroutine only.
func (d *SettingsDialog) Open() {
	if d.window != nil {
		d.window.RequestFocus()
		return
	}

	d.labelEntry = widget.NewEntry()
	d.labelEntry.SetText(d.settings.Label())
	d.timeEntry = widget.NewEntry()
	d.timeEntry.SetText(settings.FormatEntry(d.settings.Anchor()))
	d.timeEntry.OnSubmitted = func(string) { d.Submit() }

	w := d.app.NewWindow("Settings")
	w.SetContent(container.NewVBox(
		widget.NewLabel("Enter the title text:"),
		d.labelEntry,
		widget.NewLabel("Enter the start time (YYYY-MM-DD HH:MM:SS):"),
		d.timeEntry,
		container.NewCenter(widget.NewButton("OK", d.Submit)),
	))
	w.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
	w.SetFixedSize(true)
	w.CenterOnScreen()
	w.SetOnClosed(func() {
		if d.window == w {
			d.window = nil
		}
	})

	d.window = w
	w.Show()
	w.Canvas().Focus(d.labelEntry)
	d.logger.Debug("SettingsDialog", "opened", nil)
}

func (d *SettingsDialog) IsOpen() bool {
	return d.window != nil
}

// Submit commits the entries. On an invalid timestamp or a failed save the
// dialog stays open with its input intact.
func (d *SettingsDialog) Submit() {
	if d.window == nil {
		return
	}

	res, err := settings.Commit(d.settings, d.store, d.labelEntry.Text, d.timeEntry.Text)
	if res.LabelChanged {
		d.onLabel(d.settings.Label())
	}

	switch {
	case errors.Is(err, settings.ErrInvalidTime):
		d.logger.Debug("SettingsDialog", "rejected start time", map[string]interface{}{
			"input": d.timeEntry.Text,
		})
		dialog.NewInformation("Invalid format", settings.InvalidTimeMessage, d.window).Show()
		return
	case err != nil:
		d.logger.Error("SettingsDialog", err, map[string]interface{}{
			"path": d.store.Path(),
		})
		dialog.NewError(err, d.window).Show()
		return
	}

	d.logger.Info("SettingsDialog", "settings saved", map[string]interface{}{
		"label":  d.settings.Label(),
		"anchor": settings.FormatEntry(d.settings.Anchor()),
	})

	w := d.window
	d.window = nil
	w.Close()
}
