package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	accentBg  = color.NRGBA{R: 0x2d, G: 0x6a, B: 0x4f, A: 0xff}
	accentTxt = color.NRGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff}
)

// AccentButton is the highlighted "Visualize" button used on both tabs.
type AccentButton struct {
	widget.Button
}

// NewAccentButton creates an accent-colored button.
func NewAccentButton(label string, tapped func()) *AccentButton {
	btn := &AccentButton{}
	btn.Text = label
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// CreateRenderer returns a renderer drawing the accent background.
func (b *AccentButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(accentBg)
	bg.CornerRadius = theme.InputRadiusSize()

	label := canvas.NewText(b.Text, accentTxt)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	return &accentBtnRenderer{
		btn:     b,
		bg:      bg,
		label:   label,
		objects: []fyne.CanvasObject{bg, label},
	}
}

type accentBtnRenderer struct {
	btn     *AccentButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *accentBtnRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	labelMin := r.label.MinSize()
	r.label.Move(fyne.NewPos(
		(size.Width-labelMin.Width)/2,
		(size.Height-labelMin.Height)/2,
	))
	r.label.Resize(labelMin)
}

func (r *accentBtnRenderer) MinSize() fyne.Size {
	labelMin := r.label.MinSize()
	pad := theme.InnerPadding()
	return fyne.NewSize(labelMin.Width+pad*4, labelMin.Height+pad*2)
}

func (r *accentBtnRenderer) Refresh() {
	r.label.Text = r.btn.Text

	if r.btn.Disabled() {
		r.bg.FillColor = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
		r.label.Color = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	} else {
		r.bg.FillColor = accentBg
		r.label.Color = accentTxt
	}

	r.bg.Refresh()
	r.label.Refresh()
}

func (r *accentBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *accentBtnRenderer) Destroy()                     {}
