package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	// DefaultWindowSize is the default window dimensions
	DefaultWindowSize = fyne.NewSize(1100, 760)

	// Colors
	ColorPrimary    = color.NRGBA{R: 121, G: 85, B: 72, A: 255}
	ColorSuccess    = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
	ColorWarning    = color.NRGBA{R: 255, G: 152, B: 0, A: 255}
	ColorError      = color.NRGBA{R: 244, G: 67, B: 54, A: 255}
	ColorBackground = color.NRGBA{R: 24, G: 24, B: 22, A: 255}
	ColorDisabled   = color.NRGBA{R: 110, G: 110, B: 104, A: 255}
)

// CampaignTheme is the dark theme used by the options editor
type CampaignTheme struct{}

func (t *CampaignTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return ColorPrimary
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameWarning:
		return ColorWarning
	case theme.ColorNameError:
		return ColorError
	case theme.ColorNameDisabled:
		return ColorDisabled
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *CampaignTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *CampaignTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CampaignTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNamePadding:
		return 6
	default:
		return theme.DefaultTheme().Size(name)
	}
}
