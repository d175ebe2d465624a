package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"perspective-tool/internal/export"
	"perspective-tool/internal/viz"
)

// ShowGridWindow opens a window displaying a grid visualization at
// DisplayScale magnification. Overflowing grids get a scrollable viewport
// capped at ViewportFraction of the screen; everything else opens at exact
// content size.
func ShowGridWindow(app fyne.App, v *viz.Visualization, display viz.Display) {
	showImageWindow(app, v, display, DisplayScale, v.Plan.Overflow)
}

// ShowOrbitWindow opens the Earth-orbit diagram at native scale. The diagram
// has a fixed extent, so it scrolls whenever that extent exceeds the visible
// screen budget.
func ShowOrbitWindow(app fyne.App, v *viz.Visualization, display viz.Display) {
	overflow := float64(v.Plan.Height) > ViewportFraction*float64(display.ScreenHeight) ||
		float64(v.Plan.Width) > ViewportFraction*float64(display.ScreenWidth)
	showImageWindow(app, v, display, 1, overflow)
}

func showImageWindow(app fyne.App, v *viz.Visualization, display viz.Display, scale int, overflow bool) {
	win := app.NewWindow(v.Title)

	img := canvas.NewImageFromImage(v.Image)
	img.ScaleMode = canvas.ImageScalePixels
	img.FillMode = canvas.ImageFillContain

	width := float32(v.Plan.Width * scale)
	height := float32(v.Plan.Height * scale)
	img.SetMinSize(fyne.NewSize(width, height))

	if overflow {
		viewW := float32(ViewportFraction * float64(display.ScreenWidth))
		if width < viewW {
			viewW = width
		}
		viewH := float32(ViewportFraction * float64(display.ScreenHeight))
		if height < viewH {
			viewH = height
		}
		win.SetContent(container.NewScroll(img))
		win.Resize(fyne.NewSize(viewW, viewH))
	} else {
		win.SetContent(img)
		win.Resize(fyne.NewSize(width, height))
		win.SetFixedSize(true)
	}

	registerSaveShortcut(win, v)
	win.Show()
}

// registerSaveShortcut binds Ctrl+S to a PNG save dialog. The visualization
// is threaded through the closure; nothing is looked up from the widget tree.
func registerSaveShortcut(win fyne.Window, v *viz.Visualization) {
	shortcut := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl}
	win.Canvas().AddShortcut(shortcut, func(fyne.Shortcut) {
		promptSavePNG(win, v)
	})
}

func promptSavePNG(win fyne.Window, v *viz.Visualization) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if saveErr := export.WritePNG(path, v.Image); saveErr != nil {
			dialog.ShowError(saveErr, win)
		}
	}, win)
	d.SetFileName(export.DefaultName(v.Title, time.Now()))
	d.Show()
}
