package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/folio/internal/scroll"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws the state of every drag scroller the current
// screen owns, if the overlay is visible.
func DrawDebugOverlay(dst *ebiten.Image, s Screen) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	var scrollers []*scroll.DragScroller
	if sp, ok := s.(ScrollerProvider); ok {
		scrollers = sp.Scrollers()
	}

	lines := 2 + max(len(scrollers)*3, 1)
	panelH := float64(lines)*lineH + padY*2
	panelW := 520.0
	px := float64(dst.Bounds().Dx()) - panelW - marginR
	py := marginT

	DrawFilledRect(dst, px, py, panelW, panelH, ColorOverlay)

	x := px + padX
	y := py + padY

	name := "(none)"
	if s != nil {
		name = s.Name()
	}
	DrawText(dst, fmt.Sprintf("Debug: %s  %.0f TPS (F12 to close)", name, ebiten.ActualTPS()), x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	DrawText(dst, "--- drag scrollers ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(scrollers) == 0 {
		DrawText(dst, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
		return
	}
	for i, ds := range scrollers {
		sf := ds.Surface()
		v := ds.Velocity()
		DrawText(dst, fmt.Sprintf("#%d %T", i, sf), x, y, FontSizeSmall, ColorText)
		y += lineH
		DrawText(dst, fmt.Sprintf("   scroll=(%.1f, %.1f)  max=(%.0f, %.0f)",
			sf.ScrollLeft(), sf.ScrollTop(), sf.MaxScrollX(), sf.MaxScrollY()), x, y, FontSizeSmall, ColorTextSecondary)
		y += lineH
		DrawText(dst, fmt.Sprintf("   v=(%.2f, %.2f)  dragging=%t  moved=%t  animating=%t",
			v.X, v.Y, ds.IsDragging(), ds.HasMoved(), ds.Animating()), x, y, FontSizeSmall, ColorTextSecondary)
		y += lineH
	}
}
