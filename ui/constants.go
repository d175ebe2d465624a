package ui

import "fyne.io/fyne/v2"

// Main window dimensions (fixed size, matching the form layout).
const (
	WindowWidth  = 480
	WindowHeight = 640
)

// DisplayScale is the on-screen magnification of grid cells. Grids are drawn
// at one pixel per cell and shown doubled so individual cells stay visible.
const DisplayScale = 2

// ViewportFraction caps a scrolling visualization window at this fraction of
// the screen; the scroll region still covers the full grid extent.
const ViewportFraction = 0.86

// NewWindowSize returns the default main-window size.
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
