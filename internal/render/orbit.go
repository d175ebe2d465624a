package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"perspective-tool/internal/scale"
)

// OrbitMargin is the gap, in drawing units, between the orbit circle and the
// image edge on each side.
const OrbitMargin = 4

var (
	earthFill    = color.RGBA{R: 0xff, A: 0xff}
	earthOutline = color.RGBA{R: 0xff, G: 0xa5, A: 0xff}
)

// OrbitSize returns the side length of the square orbit diagram.
func OrbitSize() int {
	diameter, _ := scale.OrbitGeometry()
	return diameter + 2*OrbitMargin
}

// OrbitImage draws Earth's orbit to scale against the Sun's diameter: a
// black-stroked orbit circle on white, with an 8-unit disc whose bounding box
// starts at the orbital-radius offset. At this scale the disc is under 1% of
// the orbit's diameter.
func OrbitImage() image.Image {
	diameter, radius := scale.OrbitGeometry()
	size := diameter + 2*OrbitMargin

	dc := gg.NewContext(size, size)
	dc.SetColor(color.White)
	dc.Clear()

	center := float64(OrbitMargin) + float64(diameter)/2
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawCircle(center, center, float64(diameter)/2)
	dc.Stroke()

	// Disc bounding box starts at (radius, radius).
	earthCenter := float64(radius) + float64(scale.EarthDiscUnits)/2
	dc.DrawCircle(earthCenter, earthCenter, float64(scale.EarthDiscUnits)/2)
	dc.SetColor(earthFill)
	dc.FillPreserve()
	dc.SetColor(earthOutline)
	dc.Stroke()

	return dc.Image()
}
