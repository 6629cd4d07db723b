package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Subheading creates a bold section header
func Subheading(text string) *widget.RichText {
	return widget.NewRichText(
		&widget.TextSegment{
			Text: text,
			Style: widget.RichTextStyle{
				SizeName: theme.SizeNameSubHeadingText,
				TextStyle: fyne.TextStyle{
					Bold: true,
				},
			},
		},
	)
}

// Body creates wrapping body text
func Body(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	return label
}

// Caption creates small text for hints and secondary information
func Caption(text string) *widget.RichText {
	return widget.NewRichText(
		&widget.TextSegment{
			Text: text,
			Style: widget.RichTextStyle{
				SizeName:  theme.SizeNameCaptionText,
				ColorName: theme.ColorNameForeground,
			},
		},
	)
}
