package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/folio/internal/layout"
	"github.com/depeter/folio/internal/scroll"
)

// drawTile draws one gallery tile at window offset (ox, oy).
func drawTile(dst *ebiten.Image, t layout.Tile, img *ebiten.Image, title string, ox, oy float64, hovered bool) {
	r := t.Rect
	x, y := r.X+ox, r.Y+oy

	if hovered {
		DrawFilledRect(dst, x-4, y-4, r.W+8, r.H+8, ColorFocusBorder)
	}
	if img != nil {
		DrawImageCover(dst, img, x, y, r.W, r.H)
	} else {
		DrawFilledRect(dst, x, y, r.W, r.H, ColorSurface)
		DrawTextCentered(dst, "…", x+r.W/2, y+r.H/2, FontSizeHeading, ColorTextMuted)
	}

	titleColor := ColorTextSecondary
	if hovered {
		titleColor = ColorText
	}
	tx, ty := t.Title.X+ox, t.Title.Y+oy+4
	for _, line := range WrapLines(title, t.Title.W, FontSizeCaption) {
		if ty+layout.TitleLineH > t.Title.Y+oy+t.Title.H+1 {
			break
		}
		DrawText(dst, truncateText(line, t.Title.W, FontSizeCaption), tx, ty, FontSizeCaption, titleColor)
		ty += layout.TitleLineH
	}
}

// drawTileScaled draws just the picture of a tile into the window rect r,
// for zoomed-out views where titles would be unreadable.
func drawTileScaled(dst *ebiten.Image, r scroll.Rect, img *ebiten.Image) {
	if img != nil {
		DrawImageCover(dst, img, r.X, r.Y, r.W, r.H)
		return
	}
	DrawFilledRect(dst, r.X, r.Y, r.W, r.H, ColorSurface)
}

// scaleRect maps a content rect to the window under window = content*s + o.
func scaleRect(r scroll.Rect, ox, oy, s float64) scroll.Rect {
	return scroll.Rect{X: r.X*s + ox, Y: r.Y*s + oy, W: r.W * s, H: r.H * s}
}

// backdropColumns returns the x of the dividers that split a window of
// width w into one background column per group.
func backdropColumns(groups int, w float64) []float64 {
	if groups < 2 || w <= 0 {
		return nil
	}
	xs := make([]float64, groups-1)
	for i := range xs {
		xs[i] = w * float64(i+1) / float64(groups)
	}
	return xs
}

// visible reports whether r, shifted by (ox, oy), intersects the area
// [0, w) x [top, h).
func visible(r scroll.Rect, ox, oy, top, w, h float64) bool {
	x, y := r.X+ox, r.Y+oy
	return x+r.W >= 0 && x <= w && y+r.H >= top && y <= h
}

// DrawImageCover scales img to fill the box, cropping the overflow.
func DrawImageCover(dst *ebiten.Image, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 || w <= 0 || h <= 0 {
		return
	}
	scale := max(w/iw, h/ih)
	cw, ch := w/scale, h/scale
	sx := b.Min.X + int((iw-cw)/2)
	sy := b.Min.Y + int((ih-ch)/2)
	sub := img.SubImage(image.Rect(sx, sy, sx+int(cw), sy+int(ch))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sub, op)
}

// DrawImageFit scales img to fit inside the box, centred, keeping its aspect.
func DrawImageFit(dst *ebiten.Image, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 || w <= 0 || h <= 0 {
		return
	}
	scale := min(w/iw, h/ih)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+(w-iw*scale)/2, y+(h-ih*scale)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// DrawFilledRect draws a filled rectangle in float64 window coordinates.
func DrawFilledRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// DrawStrokeRect outlines a rectangle.
func DrawStrokeRect(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}
