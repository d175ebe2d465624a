// Package scale converts user-entered areas and fixed demographic constants
// into the integer ratios the grid planner lays out. All functions are pure;
// a ratio of N means "one small unit maps to N units".
package scale

import (
	"errors"
	"fmt"
	"math"
)

// World land-and-sea surface area, in square kilometers.
const WorldAreaKm2 = 510_072_000

// WorldAreaM2 is the world surface area in square meters.
const WorldAreaM2 = WorldAreaKm2 * 1_000_000

// Worldwide demographic rates. Fixed reference values, not computed.
const (
	DailyBirths = 385_000
	DailyDeaths = 165_000

	// Hourly rates truncate the remainder, matching the day/hour split
	// shown in the visualization titles.
	HourlyBirths = DailyBirths / 24
	HourlyDeaths = DailyDeaths / 24
)

// Orbit diagram constants. The Sun and Earth discs share a fixed base
// diameter; the orbit is the Sun's diameter scaled by the diameter ratio.
const (
	// SunToOrbitDiameterRatio is the ratio of Earth's orbital diameter
	// to the Sun's diameter.
	SunToOrbitDiameterRatio = 211.60

	SunDiscUnits   = 8
	EarthDiscUnits = 8
)

// ErrNonPositive reports an area ratio requested over a non-positive operand.
// Inputs are validated upstream, so hitting this means the request is
// degenerate and must be aborted.
var ErrNonPositive = errors.New("area must be positive")

// AreaRatio returns round(numerator / denominator) for two areas in square
// meters. Both operands must be strictly positive.
func AreaRatio(numeratorM2, denominatorM2 float64) (int, error) {
	if numeratorM2 <= 0 {
		return 0, fmt.Errorf("numerator %g: %w", numeratorM2, ErrNonPositive)
	}
	if denominatorM2 <= 0 {
		return 0, fmt.Errorf("denominator %g: %w", denominatorM2, ErrNonPositive)
	}
	return int(math.Round(numeratorM2 / denominatorM2)), nil
}

// OrbitGeometry returns the orbital diameter and radius, in drawing units,
// for the Earth-orbit diagram. The diameter is the Sun disc scaled by the
// diameter ratio; the radius halves it with integer truncation.
func OrbitGeometry() (diameter, radius int) {
	diameter = int(math.Round(SunDiscUnits * SunToOrbitDiameterRatio))
	radius = diameter / 2
	return diameter, radius
}
