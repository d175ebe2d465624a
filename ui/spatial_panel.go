package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"perspective-tool/internal/scale"
	"perspective-tool/internal/viz"
)

// SpatialPanel holds the Space tab: the area form and its Visualize button.
type SpatialPanel struct {
	app fyne.App
	win fyne.Window

	houseEntry   *widget.Entry
	houseUnit    *widget.Select
	cityEntry    *widget.Entry
	cityUnit     *widget.Select
	countryEntry *countryEntry

	visualizeBtn *AccentButton
	container    *fyne.Container
}

// NewSpatialPanel creates the spatial form with default values.
func NewSpatialPanel(app fyne.App, win fyne.Window) *SpatialPanel {
	p := &SpatialPanel{app: app, win: win}

	p.houseEntry = widget.NewEntry()
	p.houseEntry.SetPlaceHolder("1500")

	p.houseUnit = widget.NewSelect(scale.HouseUnitLabels(), nil)
	p.houseUnit.SetSelected(scale.SquareYards.String())

	p.cityEntry = widget.NewEntry()
	p.cityEntry.SetPlaceHolder("50")

	p.cityUnit = widget.NewSelect(scale.CityUnitLabels(), nil)
	p.cityUnit.SetSelected(scale.SquareKilometers.String())

	p.countryEntry = newCountryEntry()

	p.visualizeBtn = NewAccentButton("Visualize", p.onVisualize)
	p.houseEntry.OnSubmitted = func(string) { p.onVisualize() }
	p.cityEntry.OnSubmitted = func(string) { p.onVisualize() }

	form := widget.NewForm(
		widget.NewFormItem("House Area", container.NewBorder(nil, nil, nil, p.houseUnit, p.houseEntry)),
		widget.NewFormItem("City Area", container.NewBorder(nil, nil, nil, p.cityUnit, p.cityEntry)),
		widget.NewFormItem("Country", p.countryEntry),
	)

	p.container = container.NewVBox(form, p.visualizeBtn)
	return p
}

// Container returns the panel's Fyne container.
func (p *SpatialPanel) Container() *fyne.Container {
	return p.container
}

// Input parses and validates the form into a SpatialInput.
func (p *SpatialPanel) Input() (viz.SpatialInput, error) {
	var in viz.SpatialInput

	houseArea, err := parsePositiveArea(p.houseEntry.Text, "house area")
	if err != nil {
		return in, err
	}
	cityArea, err := parsePositiveArea(p.cityEntry.Text, "city area")
	if err != nil {
		return in, err
	}
	houseUnit, err := scale.ParseAreaUnit(p.houseUnit.Selected)
	if err != nil {
		return in, err
	}
	cityUnit, err := scale.ParseAreaUnit(p.cityUnit.Selected)
	if err != nil {
		return in, err
	}

	in = viz.SpatialInput{
		HouseArea: houseArea,
		HouseUnit: houseUnit,
		CityArea:  cityArea,
		CityUnit:  cityUnit,
		Country:   p.countryEntry.Text,
	}
	if err := in.Validate(); err != nil {
		// Areas were checked above, so a failure here is the country field.
		return in, fmt.Errorf("please select a country-name from the dropdown list: %w", viz.ErrInvalidInput)
	}
	return in, nil
}

// onVisualize validates the form, then opens the three spatial windows:
// house-in-city, city-in-world (country inset), and the orbit diagram.
func (p *SpatialPanel) onVisualize() {
	in, err := p.Input()
	if err != nil {
		dialog.ShowInformation("Invalid Input", err.Error(), p.win)
		return
	}

	display := viz.DefaultDisplay

	houseInCity, err := viz.HouseInCity(in, display)
	if err != nil {
		dialog.ShowError(err, p.win)
		return
	}
	cityInWorld, err := viz.CityInWorld(in, display)
	if err != nil {
		dialog.ShowError(err, p.win)
		return
	}

	ShowGridWindow(p.app, houseInCity, display)
	ShowGridWindow(p.app, cityInWorld, display)
	ShowOrbitWindow(p.app, viz.EarthOrbit(), display)
}

// LoadPreferences restores form values from persistent preferences.
func (p *SpatialPanel) LoadPreferences(prefs fyne.Preferences) {
	if v := prefs.String("spatial.house_area"); v != "" {
		p.houseEntry.SetText(v)
	}
	if v := prefs.String("spatial.house_unit"); v != "" {
		p.houseUnit.SetSelected(v)
	}
	if v := prefs.String("spatial.city_area"); v != "" {
		p.cityEntry.SetText(v)
	}
	if v := prefs.String("spatial.city_unit"); v != "" {
		p.cityUnit.SetSelected(v)
	}
	if v := prefs.String("spatial.country"); v != "" {
		p.countryEntry.SetText(v)
	}
}

// SavePreferences persists form values to preferences.
func (p *SpatialPanel) SavePreferences(prefs fyne.Preferences) {
	prefs.SetString("spatial.house_area", p.houseEntry.Text)
	prefs.SetString("spatial.house_unit", p.houseUnit.Selected)
	prefs.SetString("spatial.city_area", p.cityEntry.Text)
	prefs.SetString("spatial.city_unit", p.cityUnit.Selected)
	prefs.SetString("spatial.country", p.countryEntry.Text)
}
