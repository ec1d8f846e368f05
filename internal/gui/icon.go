package gui

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	trayIconSize  = 64
	trayIconInset = 16
)

var (
	trayIconOnce sync.Once
	trayIconRes  fyne.Resource
)

// TrayIcon is a white square with a black centre square.
func TrayIcon() fyne.Resource {
	trayIconOnce.Do(func() {
		img := image.NewRGBA(image.Rect(0, 0, trayIconSize, trayIconSize))
		draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		inner := image.Rect(trayIconInset, trayIconInset, trayIconSize-trayIconInset, trayIconSize-trayIconInset)
		draw.Draw(img, inner, image.NewUniform(color.Black), image.Point{}, draw.Src)

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			panic(err)
		}
		trayIconRes = fyne.NewStaticResource("tray.png", buf.Bytes())
	})
	return trayIconRes
}
