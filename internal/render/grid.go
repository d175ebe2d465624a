// Package render turns grid plans into raster images. Functions here are
// pure and know nothing about the UI; both the windows and the PNG export
// consume the same image.
package render

import (
	"image"
	"image/color"

	"perspective-tool/internal/grid"
)

var (
	cellLight = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	cellDark  = color.RGBA{A: 0xff}
	cellInset = color.RGBA{G: 0x80, A: 0xff}
	cellMark  = color.RGBA{R: 0xff, A: 0xff}
)

// GridImage renders a plan as a black/white checkerboard with one pixel per
// cell per scale unit. The inset square, when present, replaces dark cells
// with green to show the secondary ratio at the same per-cell scale. A single
// red marker cell at the origin stands for the "1" in "1 in N".
//
// scale must be >= 1; the display windows use 2, exports use 1.
func GridImage(plan grid.Plan, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, plan.Width*scale, plan.Height*scale))

	for y := 0; y < plan.Height; y++ {
		for x := 0; x < plan.Width; x++ {
			c := cellLight
			if (x+y)%2 == 1 {
				c = cellDark
				if x < plan.InsetSide && y < plan.InsetSide {
					c = cellInset
				}
			}
			if x == 0 && y == 0 {
				c = cellMark
			}
			fillCell(img, x, y, scale, c)
		}
	}

	return img
}

func fillCell(img *image.RGBA, x, y, scale int, c color.RGBA) {
	for dy := 0; dy < scale; dy++ {
		for dx := 0; dx < scale; dx++ {
			img.SetRGBA(x*scale+dx, y*scale+dy, c)
		}
	}
}
