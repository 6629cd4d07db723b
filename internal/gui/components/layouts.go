package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// LabelButtonsRow puts content on the left and buttons right-aligned
func LabelButtonsRow(labels fyne.CanvasObject, buttons ...fyne.CanvasObject) *fyne.Container {
	buttonContainer := container.NewHBox(buttons...)

	return container.NewBorder(
		nil, nil,
		labels,
		buttonContainer,
		layout.NewSpacer(),
	)
}

// TwoColumnLayout places a list beside its detail view
func TwoColumnLayout(leftContent, rightContent fyne.CanvasObject, offset float64) *container.Split {
	split := container.NewHSplit(leftContent, rightContent)
	split.Offset = offset
	return split
}

// Swatch is a fixed-size filled rectangle showing a colour
type Swatch struct {
	*canvas.Rectangle
}

// NewSwatch creates a swatch of the given colour
func NewSwatch(c color.Color) *Swatch {
	rect := canvas.NewRectangle(c)
	rect.CornerRadius = 4
	rect.SetMinSize(fyne.NewSize(48, 24))
	return &Swatch{Rectangle: rect}
}

// SetColour changes the shown colour
func (s *Swatch) SetColour(c color.Color) {
	s.FillColor = c
	s.Refresh()
}
