package ui

import (
	"image/color"
	"strings"
)

// Colors of the active theme. ApplyTheme swaps them all at once.
var (
	ColorBackground    color.RGBA
	ColorSurface       color.RGBA
	ColorSurfaceHover  color.RGBA
	ColorPrimary       color.RGBA
	ColorText          color.RGBA
	ColorTextSecondary color.RGBA
	ColorTextMuted     color.RGBA
	ColorFocusBorder   color.RGBA
	ColorOverlay       color.RGBA
	ColorError         color.RGBA
	ColorSuccess       color.RGBA
)

// Palette is one colour theme.
type Palette struct {
	Background    color.RGBA
	Surface       color.RGBA
	SurfaceHover  color.RGBA
	Primary       color.RGBA
	Text          color.RGBA
	TextSecondary color.RGBA
	TextMuted     color.RGBA
	Overlay       color.RGBA
	Error         color.RGBA
	Success       color.RGBA
}

var themeOrder = []string{"dark", "light", "sepia"}

var palettes = map[string]Palette{
	"dark": {
		Background:    color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF},
		Surface:       color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF},
		SurfaceHover:  color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF},
		Primary:       color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF},
		Text:          color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF},
		TextSecondary: color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF},
		TextMuted:     color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF},
		Overlay:       color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0},
		Error:         color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF},
		Success:       color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF},
	},
	"light": {
		Background:    color.RGBA{R: 0xF4, G: 0xF4, B: 0xF2, A: 0xFF},
		Surface:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		SurfaceHover:  color.RGBA{R: 0xE6, G: 0xE6, B: 0xE2, A: 0xFF},
		Primary:       color.RGBA{R: 0x1A, G: 0x5F, B: 0xB4, A: 0xFF},
		Text:          color.RGBA{R: 0x1E, G: 0x1E, B: 0x22, A: 0xFF},
		TextSecondary: color.RGBA{R: 0x55, G: 0x55, B: 0x5C, A: 0xFF},
		TextMuted:     color.RGBA{R: 0x8C, G: 0x8C, B: 0x92, A: 0xFF},
		Overlay:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xD0},
		Error:         color.RGBA{R: 0xB0, G: 0x20, B: 0x20, A: 0xFF},
		Success:       color.RGBA{R: 0x20, G: 0x80, B: 0x40, A: 0xFF},
	},
	"sepia": {
		Background:    color.RGBA{R: 0xF1, G: 0xE7, B: 0xD0, A: 0xFF},
		Surface:       color.RGBA{R: 0xE6, G: 0xD8, B: 0xB8, A: 0xFF},
		SurfaceHover:  color.RGBA{R: 0xDA, G: 0xC8, B: 0xA2, A: 0xFF},
		Primary:       color.RGBA{R: 0x8A, G: 0x4B, B: 0x1E, A: 0xFF},
		Text:          color.RGBA{R: 0x3B, G: 0x2A, B: 0x1A, A: 0xFF},
		TextSecondary: color.RGBA{R: 0x6B, G: 0x55, B: 0x3E, A: 0xFF},
		TextMuted:     color.RGBA{R: 0x9A, G: 0x85, B: 0x6C, A: 0xFF},
		Overlay:       color.RGBA{R: 0x3B, G: 0x2A, B: 0x1A, A: 0xB0},
		Error:         color.RGBA{R: 0xA0, G: 0x28, B: 0x18, A: 0xFF},
		Success:       color.RGBA{R: 0x4A, G: 0x70, B: 0x2A, A: 0xFF},
	},
}

var currentTheme string

func init() {
	ApplyTheme("dark")
}

// ApplyTheme switches every colour variable to the named palette. Unknown
// names leave the current theme in place and return false.
func ApplyTheme(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	p, ok := palettes[name]
	if !ok {
		return false
	}
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSurfaceHover = p.SurfaceHover
	ColorPrimary = p.Primary
	ColorText = p.Text
	ColorTextSecondary = p.TextSecondary
	ColorTextMuted = p.TextMuted
	ColorFocusBorder = p.Primary
	ColorOverlay = p.Overlay
	ColorError = p.Error
	ColorSuccess = p.Success
	currentTheme = name
	return true
}

// CurrentTheme is the name of the applied palette.
func CurrentTheme() string { return currentTheme }

// NextTheme returns the theme after name in toggle order.
func NextTheme(name string) string {
	for i, n := range themeOrder {
		if n == name {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// Font sizes
const (
	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 12
)
