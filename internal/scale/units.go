package scale

import "fmt"

// AreaUnit identifies one of the fixed area units the tool accepts.
type AreaUnit int

const (
	SquareFeet AreaUnit = iota
	SquareYards
	SquareMeters
	SquareKilometers
	SquareMiles
)

// Conversion multipliers to square meters. Exact, no additional rounding.
const (
	squareFeetToM2       = 0.092903
	squareYardsToM2      = 0.836127
	squareKilometersToM2 = 1_000_000
	squareMilesToM2      = 2.58999 * 1_000_000
)

var unitLabels = map[AreaUnit]string{
	SquareFeet:       "sq. feet",
	SquareYards:      "sq. yards",
	SquareMeters:     "sq. meters",
	SquareKilometers: "sq. kms",
	SquareMiles:      "sq. miles",
}

func (u AreaUnit) String() string {
	if s, ok := unitLabels[u]; ok {
		return s
	}
	return fmt.Sprintf("AreaUnit(%d)", int(u))
}

// ParseAreaUnit resolves a unit label as shown in the UI and accepted on the
// command line. Matching is exact.
func ParseAreaUnit(s string) (AreaUnit, error) {
	for u, label := range unitLabels {
		if s == label {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unknown area unit %q", s)
}

// ToSquareMeters converts a magnitude in the given unit to square meters.
func ToSquareMeters(value float64, unit AreaUnit) float64 {
	switch unit {
	case SquareFeet:
		return value * squareFeetToM2
	case SquareYards:
		return value * squareYardsToM2
	case SquareKilometers:
		return value * squareKilometersToM2
	case SquareMiles:
		return value * squareMilesToM2
	default:
		return value
	}
}

// HouseUnitLabels returns the unit choices offered for house area,
// in display order. The first entry is the default.
func HouseUnitLabels() []string {
	return []string{SquareYards.String(), SquareFeet.String(), SquareMeters.String()}
}

// CityUnitLabels returns the unit choices offered for city area,
// in display order. The first entry is the default.
func CityUnitLabels() []string {
	return []string{SquareKilometers.String(), SquareMiles.String()}
}
