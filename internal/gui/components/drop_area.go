package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

const (
	DropAreaWidth  = 631
	DropAreaHeight = 390
	DropHint       = "Drop image file here!"
)

// DropArea shows the preview inside a bordered region that doubles as the
// drop target hint.
type DropArea struct {
	container *fyne.Container
	image     *canvas.Image
	hint      *canvas.Text
}

func NewDropArea() *DropArea {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	border.StrokeWidth = 4
	border.CornerRadius = theme.InputRadiusSize()
	border.SetMinSize(fyne.NewSize(DropAreaWidth, DropAreaHeight))

	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(DropAreaWidth, DropAreaHeight))

	hint := canvas.NewText(DropHint, theme.Color(theme.ColorNameForeground))
	hint.Alignment = fyne.TextAlignCenter
	hint.TextSize = theme.TextSubHeadingSize()

	return &DropArea{
		container: container.NewStack(border, container.NewPadded(img), container.NewCenter(hint)),
		image:     img,
		hint:      hint,
	}
}

func (d *DropArea) GetContainer() *fyne.Container {
	return d.container
}

// SetImage shows img; nil restores the drop hint.
func (d *DropArea) SetImage(img image.Image) {
	d.image.Image = img
	if img == nil {
		d.hint.Show()
	} else {
		d.hint.Hide()
	}
	d.image.Refresh()
	d.hint.Refresh()
}

func (d *DropArea) HasImage() bool {
	return d.image.Image != nil
}
