package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Dashboard greens, darker under the dark variant so text stays readable.
var (
	consoleGreen     = color.NRGBA{R: 0x10, G: 0x7C, B: 0x10, A: 0xFF}
	consoleGreenLift = color.NRGBA{R: 0x5D, G: 0xC2, B: 0x1E, A: 0xFF}
	consoleOnGreen   = color.NRGBA{R: 0xF2, G: 0xFF, B: 0xF0, A: 0xFF}
)

type palette map[fyne.ThemeColorName]color.Color

var (
	lightPalette = palette{
		theme.ColorNamePrimary:             consoleGreen,
		theme.ColorNameButton:              color.NRGBA{R: 0xE4, G: 0xEB, B: 0xE2, A: 0xFF},
		theme.ColorNameForegroundOnPrimary: consoleOnGreen,
		theme.ColorNameBackground:          color.NRGBA{R: 0xF4, G: 0xF6, B: 0xF3, A: 0xFF},
		theme.ColorNameHeaderBackground:    color.NRGBA{R: 0xDC, G: 0xE6, B: 0xD9, A: 0xFF},
		theme.ColorNameHover:               color.NRGBA{R: 0x10, G: 0x7C, B: 0x10, A: 0x1F},
		theme.ColorNameFocus:               color.NRGBA{R: 0x10, G: 0x7C, B: 0x10, A: 0x66},
		theme.ColorNameSelection:           color.NRGBA{R: 0x10, G: 0x7C, B: 0x10, A: 0x40},
		theme.ColorNameSuccess:             color.NRGBA{R: 0x2E, G: 0x8B, B: 0x3A, A: 0xFF},
		theme.ColorNameError:               color.NRGBA{R: 0xC6, G: 0x28, B: 0x28, A: 0xFF},
		theme.ColorNameWarning:             color.NRGBA{R: 0xD9, G: 0x8C, B: 0x00, A: 0xFF},
	}
	darkPalette = palette{
		theme.ColorNamePrimary:             consoleGreenLift,
		theme.ColorNameButton:              color.NRGBA{R: 0x2A, G: 0x31, B: 0x2A, A: 0xFF},
		theme.ColorNameForegroundOnPrimary: color.NRGBA{R: 0x0B, G: 0x1A, B: 0x0B, A: 0xFF},
		theme.ColorNameBackground:          color.NRGBA{R: 0x16, G: 0x1A, B: 0x16, A: 0xFF},
		theme.ColorNameHeaderBackground:    color.NRGBA{R: 0x1F, G: 0x26, B: 0x1F, A: 0xFF},
		theme.ColorNameHover:               color.NRGBA{R: 0x5D, G: 0xC2, B: 0x1E, A: 0x24},
		theme.ColorNameFocus:               color.NRGBA{R: 0x5D, G: 0xC2, B: 0x1E, A: 0x70},
		theme.ColorNameSelection:           color.NRGBA{R: 0x5D, G: 0xC2, B: 0x1E, A: 0x3A},
		theme.ColorNameSuccess:             color.NRGBA{R: 0x66, G: 0xBB, B: 0x6A, A: 0xFF},
		theme.ColorNameError:               color.NRGBA{R: 0xEF, G: 0x53, B: 0x50, A: 0xFF},
		theme.ColorNameWarning:             color.NRGBA{R: 0xFF, G: 0xB3, B: 0x00, A: 0xFF},
	}
)

// neighborhoodTheme follows the console dashboard: green accents on muted
// grey-green surfaces, with tighter spacing so more tiles fit a row.
type neighborhoodTheme struct{}

func (t *neighborhoodTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	p := lightPalette
	if variant == theme.VariantDark {
		p = darkPalette
	}
	if c, ok := p[name]; ok {
		return c
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (t *neighborhoodTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *neighborhoodTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *neighborhoodTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 18
	case theme.SizeNameScrollBar:
		return 8
	case theme.SizeNameSelectionRadius:
		return 2
	default:
		return theme.DefaultTheme().Size(name)
	}
}
