package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/quickbar/internal/model"
)

// Font size bounds applied to the sidebar text size
const (
	MinFontSize     = 10
	MaxFontSize     = 24
	DefaultFontSize = 13

	// MinOpacityPercent keeps the sidebar visible at transparency 0
	MinOpacityPercent = 20
)

// SidebarTheme is a compact theme with reduced padding whose light/dark
// variant follows the sidebar state instead of the OS setting
type SidebarTheme struct {
	variant  fyne.ThemeVariant
	textSize float32
	opacity  uint8
}

// NewSidebarTheme creates a theme for the given sidebar theme, font size and
// transparency percentage
func NewSidebarTheme(mode model.Theme, fontSize, transparency int) fyne.Theme {
	variant := theme.VariantDark
	if mode == model.ThemeLight {
		variant = theme.VariantLight
	}

	size := fontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	size = clampInt(size, MinFontSize, MaxFontSize)

	percent := clampInt(transparency, MinOpacityPercent, 100)

	return &SidebarTheme{
		variant:  variant,
		textSize: float32(size),
		opacity:  uint8(percent * 255 / 100),
	}
}

// ThemeFor builds the theme matching a state snapshot
func ThemeFor(state *model.State) fyne.Theme {
	return NewSidebarTheme(state.Theme, state.Font.Size, state.Transparency)
}

// Color returns theme colors for the forced variant
func (t *SidebarTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := t.variant
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: t.opacity}
		}
		return color.NRGBA{R: 250, G: 250, B: 250, A: t.opacity}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *SidebarTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SidebarTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns compact sizes scaled around the configured text size
func (t *SidebarTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameScrollBarSmall:
		return 3
	case theme.SizeNameSeparatorThickness:
		return 1
	case theme.SizeNameText:
		return t.textSize
	case theme.SizeNameHeadingText:
		return t.textSize + 3
	case theme.SizeNameSubHeadingText:
		return t.textSize
	case theme.SizeNameCaptionText:
		return t.textSize - 3
	case theme.SizeNameInputBorder:
		return 1
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
