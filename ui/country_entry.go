package ui

import (
	"fyne.io/fyne/v2/widget"

	"perspective-tool/internal/geodata"
)

// countryEntry is a SelectEntry whose dropdown narrows to the countries
// matching the typed prefix. The full sorted list comes back when the entry
// is cleared.
type countryEntry struct {
	widget.SelectEntry
}

func newCountryEntry() *countryEntry {
	e := &countryEntry{}
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder("Singapore")
	e.SetOptions(geodata.Names())
	e.OnChanged = func(text string) {
		e.SetOptions(geodata.FilterPrefix(text))
	}
	return e
}
