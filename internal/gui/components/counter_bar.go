package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

const (
	BarTextSize = 11
	BarPadding  = 5
)

var (
	BarBackground = color.Black
	CounterColor  = color.NRGBA{R: 0xff, A: 0xff}
	LabelColor    = color.White
)

// CounterBar is the strip content: the counter followed by the label.
type CounterBar struct {
	container *fyne.Container
	counter   *canvas.Text
	label     *canvas.Text
}

func NewCounterBar(label string) *CounterBar {
	counter := canvas.NewText("", CounterColor)
	counter.TextSize = BarTextSize

	title := canvas.NewText(label, LabelColor)
	title.TextSize = BarTextSize

	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(BarPadding, 0))

	row := container.New(layout.NewCustomPaddedHBoxLayout(BarPadding), gap, counter, title)
	background := canvas.NewRectangle(BarBackground)

	return &CounterBar{
		container: container.NewStack(background, row),
		counter:   counter,
		label:     title,
	}
}

func (cb *CounterBar) GetContainer() *fyne.Container {
	return cb.container
}

func (cb *CounterBar) SetCounter(text string) {
	if cb.counter.Text == text {
		return
	}
	cb.counter.Text = text
	cb.counter.Refresh()
}

func (cb *CounterBar) SetLabel(text string) {
	cb.label.Text = text
	cb.label.Refresh()
}

func (cb *CounterBar) Counter() string {
	return cb.counter.Text
}

func (cb *CounterBar) Label() string {
	return cb.label.Text
}
