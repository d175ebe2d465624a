// Package viz assembles the named visualizations: it turns validated input
// and the fixed demographic constants into planned, rendered images ready for
// a window or a PNG. Each builder computes everything fresh per request and
// holds no state.
package viz

import (
	"fmt"
	"image"
	"strconv"

	"perspective-tool/internal/geodata"
	"perspective-tool/internal/grid"
	"perspective-tool/internal/render"
	"perspective-tool/internal/scale"
)

// OrbitTitle is the caption of the Earth-orbit window.
const OrbitTitle = "The Earth is an invisible speck in space, with a diameter < 1% of the Sun's"

// Visualization is one rendered result. Ratio and SubRatio are kept for the
// title and for callers that want the numbers without re-deriving them from
// the plan.
type Visualization struct {
	Title    string
	Ratio    int
	SubRatio int
	Plan     grid.Plan
	Image    image.Image
}

// HouseInCity shows the user's city as a grid of house-sized cells.
func HouseInCity(in SpatialInput, d Display) (*Visualization, error) {
	houseM2 := scale.ToSquareMeters(in.HouseArea, in.HouseUnit)
	cityM2 := scale.ToSquareMeters(in.CityArea, in.CityUnit)

	ratio, err := scale.AreaRatio(cityM2, houseM2)
	if err != nil {
		return nil, fmt.Errorf("house-to-city ratio: %w", err)
	}
	return buildGrid("Your House in Your City", ratio, 0, d)
}

// CityInWorld shows the world as a grid of city-sized cells, with the user's
// country as a same-scale inset.
func CityInWorld(in SpatialInput, d Display) (*Visualization, error) {
	cityM2 := scale.ToSquareMeters(in.CityArea, in.CityUnit)
	countryKm2, ok := geodata.Area(in.Country)
	if !ok {
		return nil, fmt.Errorf("unknown country %q: %w", in.Country, ErrInvalidInput)
	}
	countryM2 := scale.ToSquareMeters(countryKm2, scale.SquareKilometers)

	ratio, err := scale.AreaRatio(scale.WorldAreaM2, cityM2)
	if err != nil {
		return nil, fmt.Errorf("city-to-world ratio: %w", err)
	}
	subRatio, err := scale.AreaRatio(countryM2, cityM2)
	if err != nil {
		return nil, fmt.Errorf("city-to-country ratio: %w", err)
	}
	return buildGrid("Your City in Your Country and the World", ratio, subRatio, d)
}

// BirthsPerDay shows one cell per person born each day, with the hourly
// count as an inset.
func BirthsPerDay(d Display) (*Visualization, error) {
	return buildPopulationGrid("Births per day (and hr)", scale.DailyBirths, scale.HourlyBirths, d)
}

// DeathsPerDay shows one cell per person who dies each day, with the hourly
// count as an inset.
func DeathsPerDay(d Display) (*Visualization, error) {
	return buildPopulationGrid("Deaths per day (and hr)", scale.DailyDeaths, scale.HourlyDeaths, d)
}

// EarthOrbit draws the orbit diagram. It takes no input; the geometry is all
// compile-time constants and can never be degenerate.
func EarthOrbit() *Visualization {
	diameter, _ := scale.OrbitGeometry()
	size := render.OrbitSize()
	return &Visualization{
		Title: OrbitTitle,
		Ratio: diameter,
		Plan:  grid.Plan{Width: size, Height: size},
		Image: render.OrbitImage(),
	}
}

func buildGrid(name string, ratio, subRatio int, d Display) (*Visualization, error) {
	plan, err := grid.PlanGrid(ratio, d.AspectRatio(), d.ScreenHeight, subRatio, grid.DefaultOverflowFraction)
	if err != nil {
		return nil, fmt.Errorf("plan %q grid: %w", name, err)
	}
	return &Visualization{
		Title:    fmt.Sprintf("%s - 1 in %s", name, groupThousands(plan.Width*plan.Height)),
		Ratio:    ratio,
		SubRatio: subRatio,
		Plan:     plan,
		Image:    render.GridImage(plan, 1),
	}, nil
}

func buildPopulationGrid(name string, daily, hourly int, d Display) (*Visualization, error) {
	plan, err := grid.PlanGrid(daily, d.AspectRatio(), d.ScreenHeight, hourly, grid.DefaultOverflowFraction)
	if err != nil {
		return nil, fmt.Errorf("plan %q grid: %w", name, err)
	}
	return &Visualization{
		Title:    fmt.Sprintf("%s ~ %d", name, daily),
		Ratio:    daily,
		SubRatio: hourly,
		Plan:     plan,
		Image:    render.GridImage(plan, 1),
	}, nil
}

// groupThousands formats n with comma separators, e.g. 406725 -> "406,725".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return s
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
