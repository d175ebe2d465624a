// Package grid lays out a ratio as a width-by-height pixel grid matching the
// display's aspect ratio.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// DefaultOverflowFraction is the canonical fraction of screen height above
// which a grid needs a scrollable viewport.
const DefaultOverflowFraction = 0.45

// ErrInvalidRatio reports a plan requested for a ratio the planner cannot
// lay out.
var ErrInvalidRatio = errors.New("invalid grid ratio")

// Plan describes how to render a ratio as a grid.
type Plan struct {
	Width  int
	Height int

	// Overflow is set when the grid is taller than the visible screen
	// budget; renderers must then provide a scrollable viewport capped at
	// a fraction of the screen, with the scroll region covering the full
	// grid extent.
	Overflow bool

	// InsetSide is the side length of the square sub-grid showing the
	// secondary ratio at the same per-cell scale, or 0 when none was
	// requested.
	InsetSide int
}

// PlanGrid computes grid dimensions whose product approximates ratio while
// matching the display aspect ratio (width/height). The product is allowed to
// drift from ratio by the rounding error of the two independent roundings;
// it is an approximation and is not corrected.
//
// subRatio, when positive, requests an inset of side round(sqrt(subRatio))
// and must not exceed ratio; overflowFraction is the screen-height fraction
// above which the plan is marked as overflowing.
func PlanGrid(ratio int, aspect float64, screenHeight int, subRatio int, overflowFraction float64) (Plan, error) {
	if ratio < 1 {
		return Plan{}, fmt.Errorf("ratio %d: %w", ratio, ErrInvalidRatio)
	}
	if aspect <= 0 {
		return Plan{}, fmt.Errorf("aspect ratio %g: %w", aspect, ErrInvalidRatio)
	}
	if subRatio < 0 || subRatio > ratio {
		return Plan{}, fmt.Errorf("sub-ratio %d outside [0, %d]: %w", subRatio, ratio, ErrInvalidRatio)
	}

	height := int(math.Round(math.Sqrt(float64(ratio) / aspect)))
	if height < 1 {
		height = 1
	}
	width := int(math.Round(aspect * float64(height)))
	if width < 1 {
		width = 1
	}

	plan := Plan{
		Width:    width,
		Height:   height,
		Overflow: float64(height) > overflowFraction*float64(screenHeight),
	}

	if subRatio > 0 {
		plan.InsetSide = int(math.Round(math.Sqrt(float64(subRatio))))
		limit := plan.Width
		if plan.Height < limit {
			limit = plan.Height
		}
		if plan.InsetSide > limit {
			return Plan{}, fmt.Errorf("inset side %d exceeds grid %dx%d: %w", plan.InsetSide, plan.Width, plan.Height, ErrInvalidRatio)
		}
	}

	return plan, nil
}
