package gui

import (
	"topscreen-counter/internal/gui/components"
	"topscreen-counter/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"fyne.io/fyne/v2/driver/desktop"
)

// DockedWindow is the borderless full-width strip pinned to the top edge.
type DockedWindow struct {
	window fyne.Window
	bar    *components.CounterBar
	appBar *appBar
	width  int
	height int
	logger logger.Logger
}

// NewDockedWindow builds the strip. The width comes from the primary screen
// where it can be queried, otherwise fallbackWidth is used.
func NewDockedWindow(a fyne.App, label string, height, fallbackWidth int, log logger.Logger) *DockedWindow {
	var w fyne.Window
	if drv, ok := a.Driver().(desktop.Driver); ok {
		w = drv.CreateSplashWindow()
	} else {
		w = a.NewWindow(label)
	}

	width := screenWidth()
	if width <= 0 {
		width = fallbackWidth
	}

	bar := components.NewCounterBar(label)
	w.SetTitle(label)
	w.SetPadded(false)
	w.SetFixedSize(true)
	w.SetContent(bar.GetContainer())
	w.Resize(fyne.NewSize(float32(width), float32(height)))
	w.SetMaster()

	log.Debug("DockedWindow", "created", map[string]interface{}{
		"width":  width,
		"height": height,
	})

	return &DockedWindow{
		window: w,
		bar:    bar,
		appBar: newAppBar(log),
		width:  width,
		height: height,
		logger: log,
	}
}

func (d *DockedWindow) Window() fyne.Window {
	return d.window
}

func (d *DockedWindow) Show() {
	d.window.Show()
}

// Dock registers the window as a top-edge desktop toolbar. It runs once the
// native window exists; failures are logged and otherwise ignored.
func (d *DockedWindow) Dock() {
	nw, ok := d.window.(driver.NativeWindow)
	if !ok {
		d.logger.Warning("DockedWindow", "native window unavailable, not docking", nil)
		return
	}

	nw.RunNative(func(ctx any) {
		if err := d.appBar.register(ctx, d.width, d.height); err != nil {
			d.logger.Warning("DockedWindow", "dock failed", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		d.logger.Info("DockedWindow", "docked to top edge", map[string]interface{}{
			"width":  d.width,
			"height": d.height,
			"native": d.appBar.registered.Load(),
		})
	})
}

// Undock gives the reserved strip back to the desktop work area.
func (d *DockedWindow) Undock() {
	if err := d.appBar.remove(); err != nil {
		d.logger.Warning("DockedWindow", "undock failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (d *DockedWindow) SetCounter(text string) {
	d.bar.SetCounter(text)
}

func (d *DockedWindow) SetLabel(text string) {
	d.bar.SetLabel(text)
	d.window.SetTitle(text)
}

func (d *DockedWindow) Counter() string {
	return d.bar.Counter()
}

func (d *DockedWindow) Label() string {
	return d.bar.Label()
}
