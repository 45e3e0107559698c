package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/folio/internal/layout"
)

type iconFunc func(dst *ebiten.Image, cx, cy, r float32, clr color.Color)

// drawListIcon draws three rows of thumbnail and caption at (cx, cy).
func drawListIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	gap := r * 0.65
	for i := -1; i <= 1; i++ {
		ly := cy + float32(i)*gap
		vector.DrawFilledRect(dst, cx-r, ly-r*0.22, r*0.5, r*0.44, clr, false)
		vector.StrokeLine(dst, cx-r*0.3, ly, cx+r, ly, 1.6, clr, false)
	}
}

// drawGridIcon draws a 2x2 tile grid.
func drawGridIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	s := r * 0.8
	for _, dx := range []float32{-1, 0.15} {
		for _, dy := range []float32{-1, 0.15} {
			vector.DrawFilledRect(dst, cx+dx*r, cy+dy*r, s, s, clr, false)
		}
	}
}

// drawStripIcon draws a row of frames running off the right edge.
func drawStripIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	h := r * 1.1
	vector.DrawFilledRect(dst, cx-r, cy-h/2, r*0.7, h, clr, false)
	vector.DrawFilledRect(dst, cx-r*0.15, cy-h/2, r*0.7, h, clr, false)
	vector.StrokeRect(dst, cx+r*0.7, cy-h/2, r*0.5, h, 1.2, clr, false)
}

// drawThemeIcon draws a small sun: a disc with eight rays.
func drawThemeIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r*0.45, clr, false)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		dx, dy := float32(math.Cos(a)), float32(math.Sin(a))
		vector.StrokeLine(dst, cx+dx*r*0.65, cy+dy*r*0.65, cx+dx*r, cy+dy*r, 1.4, clr, false)
	}
}

func modeIcon(m layout.Mode) iconFunc {
	switch m {
	case layout.ModeList:
		return drawListIcon
	case layout.ModePanoramic:
		return drawStripIcon
	default:
		return drawGridIcon
	}
}

// drawHeaderButton draws a header button with an icon left of its label.
func drawHeaderButton(dst *ebiten.Image, label string, x, y, w, h float32, active, hovered bool, icon iconFunc) {
	fill, fg := ColorSurfaceHover, ColorTextSecondary
	if active {
		fill, fg = ColorPrimary, ColorBackground
	}
	vector.DrawFilledRect(dst, x, y, w, h, fill, false)
	if hovered {
		vector.StrokeRect(dst, x, y, w, h, 2, ColorFocusBorder, false)
	}
	DrawTextCentered(dst, label, float64(x+w/2+8), float64(y+h/2), FontSizeSmall, fg)
	if icon != nil {
		icon(dst, x+16, y+h/2, 7, fg)
	}
}
