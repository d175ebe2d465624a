package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"perspective-tool/internal/viz"
)

// PopulationPanel holds the Population tab: the births/deaths checkboxes and
// their Visualize button.
type PopulationPanel struct {
	app fyne.App
	win fyne.Window

	birthsCheck  *widget.Check
	deathsCheck  *widget.Check
	visualizeBtn *AccentButton
	container    *fyne.Container
}

// NewPopulationPanel creates the population tab contents.
func NewPopulationPanel(app fyne.App, win fyne.Window) *PopulationPanel {
	p := &PopulationPanel{app: app, win: win}

	p.birthsCheck = widget.NewCheck("No. of people born each day", nil)
	p.deathsCheck = widget.NewCheck("No. of people who die each day", nil)
	p.visualizeBtn = NewAccentButton("Visualize", p.onVisualize)

	p.container = container.NewVBox(p.birthsCheck, p.deathsCheck, p.visualizeBtn)
	return p
}

// Container returns the panel's Fyne container.
func (p *PopulationPanel) Container() *fyne.Container {
	return p.container
}

func (p *PopulationPanel) onVisualize() {
	if !p.birthsCheck.Checked && !p.deathsCheck.Checked {
		dialog.ShowInformation("Invalid Selection",
			"Please select at least one visualization checkbox", p.win)
		return
	}

	display := viz.DefaultDisplay

	if p.birthsCheck.Checked {
		births, err := viz.BirthsPerDay(display)
		if err != nil {
			dialog.ShowError(err, p.win)
			return
		}
		ShowGridWindow(p.app, births, display)
	}
	if p.deathsCheck.Checked {
		deaths, err := viz.DeathsPerDay(display)
		if err != nil {
			dialog.ShowError(err, p.win)
			return
		}
		ShowGridWindow(p.app, deaths, display)
	}
}
