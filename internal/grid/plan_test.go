package grid

import (
	"errors"
	"math"
	"testing"
)

const fullHD = 1920.0 / 1080.0

func TestPlanGrid_Dimensions(t *testing.T) {
	tests := []struct {
		name       string
		ratio      int
		aspect     float64
		wantWidth  int
		wantHeight int
	}{
		{"daily births on 16:9", 385_000, fullHD, 827, 465},
		{"square screen", 10_000, 1.0, 100, 100},
		{"ratio of one still widens to aspect", 1, fullHD, 2, 1},
		{"tiny ratio", 2, fullHD, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanGrid(tt.ratio, tt.aspect, 1080, 0, DefaultOverflowFraction)
			if err != nil {
				t.Fatalf("PlanGrid() error: %v", err)
			}
			if plan.Width != tt.wantWidth || plan.Height != tt.wantHeight {
				t.Errorf("PlanGrid(%d, %g) = %dx%d, want %dx%d",
					tt.ratio, tt.aspect, plan.Width, plan.Height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

// The grid's cell count approximates the ratio within the error of two
// independent roundings. A few percent is plenty for large ratios.
func TestPlanGrid_Approximation(t *testing.T) {
	for _, ratio := range []int{10_000, 39_867, 165_000, 385_000, 1_000_000, 7_183_408} {
		for _, aspect := range []float64{0.75, 1.0, 4.0 / 3.0, fullHD, 21.0 / 9.0} {
			plan, err := PlanGrid(ratio, aspect, 1080, 0, DefaultOverflowFraction)
			if err != nil {
				t.Fatal(err)
			}
			cells := plan.Width * plan.Height
			drift := math.Abs(float64(cells-ratio)) / float64(ratio)
			if drift > 0.03 {
				t.Errorf("PlanGrid(%d, %g): %d cells, drift %.4f > 3%%", ratio, aspect, cells, drift)
			}
		}
	}
}

func TestPlanGrid_MinimumOneCell(t *testing.T) {
	for ratio := 1; ratio <= 50; ratio++ {
		plan, err := PlanGrid(ratio, fullHD, 1080, 0, DefaultOverflowFraction)
		if err != nil {
			t.Fatal(err)
		}
		if plan.Width < 1 || plan.Height < 1 {
			t.Fatalf("PlanGrid(%d) = %dx%d, want both >= 1", ratio, plan.Width, plan.Height)
		}
	}
}

func TestPlanGrid_Overflow(t *testing.T) {
	tests := []struct {
		name         string
		ratio        int
		screenHeight int
		want         bool
	}{
		{"fits", 10_000, 1080, false},
		{"daily births fits 1080p", 385_000, 1080, false},
		{"overflows small screen", 385_000, 768, true},
		{"huge ratio", 7_183_408, 1080, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanGrid(tt.ratio, fullHD, tt.screenHeight, 0, DefaultOverflowFraction)
			if err != nil {
				t.Fatal(err)
			}
			if plan.Overflow != tt.want {
				t.Errorf("Overflow = %v (height %d, screen %d), want %v",
					plan.Overflow, plan.Height, tt.screenHeight, tt.want)
			}
		})
	}
}

func TestPlanGrid_Inset(t *testing.T) {
	// Hourly births inside daily births.
	plan, err := PlanGrid(385_000, fullHD, 1080, 16_041, DefaultOverflowFraction)
	if err != nil {
		t.Fatalf("PlanGrid() error: %v", err)
	}
	want := int(math.Round(math.Sqrt(16_041)))
	if plan.InsetSide != want {
		t.Errorf("InsetSide = %d, want %d", plan.InsetSide, want)
	}
	limit := plan.Width
	if plan.Height < limit {
		limit = plan.Height
	}
	if plan.InsetSide > limit {
		t.Errorf("InsetSide %d exceeds min(width, height) %d", plan.InsetSide, limit)
	}

	// City-in-country inside city-in-world.
	plan, err = PlanGrid(10_201, fullHD, 1080, 14, DefaultOverflowFraction)
	if err != nil {
		t.Fatalf("PlanGrid() error: %v", err)
	}
	if plan.InsetSide != 4 {
		t.Errorf("InsetSide = %d, want 4", plan.InsetSide)
	}
}

func TestPlanGrid_Errors(t *testing.T) {
	tests := []struct {
		name     string
		ratio    int
		aspect   float64
		subRatio int
	}{
		{"zero ratio", 0, fullHD, 0},
		{"negative ratio", -5, fullHD, 0},
		{"zero aspect", 100, 0, 0},
		{"negative sub-ratio", 100, fullHD, -1},
		{"sub-ratio above ratio", 100, fullHD, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanGrid(tt.ratio, tt.aspect, 1080, tt.subRatio, DefaultOverflowFraction)
			if !errors.Is(err, ErrInvalidRatio) {
				t.Errorf("PlanGrid() error = %v, want ErrInvalidRatio", err)
			}
		})
	}
}
