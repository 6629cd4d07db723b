package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PrimaryButton creates a high-importance button for the main action of a view
func PrimaryButton(text string, tapped func()) *widget.Button {
	btn := widget.NewButton(text, tapped)
	btn.Importance = widget.HighImportance
	return btn
}

// SecondaryButton creates a standard button
func SecondaryButton(text string, tapped func()) *widget.Button {
	return widget.NewButton(text, tapped)
}

// ButtonGroup lays out related buttons in a row
func ButtonGroup(buttons ...*widget.Button) fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, len(buttons))
	for i, btn := range buttons {
		objects[i] = btn
	}
	return container.NewHBox(objects...)
}
