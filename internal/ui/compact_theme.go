package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Status band colors, shared by the theme and the card status dots
var (
	ColorSafe    = color.RGBA{R: 16, G: 185, B: 129, A: 255}  // emerald
	ColorWarning = color.RGBA{R: 245, G: 158, B: 11, A: 255}  // amber
	ColorExpired = color.RGBA{R: 244, G: 63, B: 94, A: 255}   // rose
	ColorAccent  = color.RGBA{R: 14, G: 165, B: 233, A: 255}  // sky
)

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return ColorSafe
	case theme.ColorNameWarning:
		return ColorWarning
	case theme.ColorNameError:
		return ColorExpired
	case theme.ColorNamePrimary:
		return ColorAccent
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 24, A: 255}
		}
		return color.RGBA{R: 251, G: 251, B: 255, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 241, G: 245, B: 249, A: 255}
		}
		return color.RGBA{R: 15, G: 23, B: 42, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 17
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
