package viz

import (
	"errors"
	"fmt"

	"perspective-tool/internal/geodata"
	"perspective-tool/internal/scale"
)

// ErrInvalidInput reports user input rejected before any ratio is computed.
var ErrInvalidInput = errors.New("invalid input")

// SpatialInput holds the validated user entries driving the spatial
// visualizations.
type SpatialInput struct {
	HouseArea float64
	HouseUnit scale.AreaUnit
	CityArea  float64
	CityUnit  scale.AreaUnit
	Country   string
}

// Validate checks the input the way the form promises the calculators it
// will: both areas strictly positive and the country present in the table.
func (in SpatialInput) Validate() error {
	if in.HouseArea <= 0 {
		return fmt.Errorf("house area must be positive, got %g: %w", in.HouseArea, ErrInvalidInput)
	}
	if in.CityArea <= 0 {
		return fmt.Errorf("city area must be positive, got %g: %w", in.CityArea, ErrInvalidInput)
	}
	if _, ok := geodata.Area(in.Country); !ok {
		return fmt.Errorf("unknown country %q: %w", in.Country, ErrInvalidInput)
	}
	return nil
}

// Display describes the screen the visualization targets.
type Display struct {
	ScreenWidth  int
	ScreenHeight int
}

// AspectRatio returns width over height.
func (d Display) AspectRatio() float64 {
	return float64(d.ScreenWidth) / float64(d.ScreenHeight)
}

// DefaultDisplay is used when the real screen geometry is unknown
// (headless rendering, toolkits that do not expose it).
var DefaultDisplay = Display{ScreenWidth: 1920, ScreenHeight: 1080}
