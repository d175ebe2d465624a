package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App) fyne.Window {
	win := app.NewWindow("Perspective")
	win.Resize(NewWindowSize())
	win.SetFixedSize(true)

	spatialPanel := NewSpatialPanel(app, win)
	populationPanel := NewPopulationPanel(app, win)

	prefs := app.Preferences()
	spatialPanel.LoadPreferences(prefs)

	spaceTab := container.NewTabItem(" Space ", spatialPanel.Container())
	populationTab := container.NewTabItem(" Population ", populationPanel.Container())
	tabs := container.NewAppTabs(spaceTab, populationTab)

	win.SetContent(tabs)

	win.SetCloseIntercept(func() {
		spatialPanel.SavePreferences(prefs)
		win.Close()
	})

	return win
}
