package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

var (
	frameCol = color.RGBA{R: 0xC8, G: 0x9B, B: 0x5A, A: 0xFF}
	matCol   = color.RGBA{R: 0xF2, G: 0xEC, B: 0xE0, A: 0xFF}
	skyCol   = color.RGBA{R: 0x5B, G: 0xA4, B: 0xE6, A: 0xFF}
	sunCol   = color.RGBA{R: 0xFF, G: 0xD2, B: 0x4A, A: 0xFF}
	farHill  = color.RGBA{R: 0x3E, G: 0x8E, B: 0x5C, A: 0xFF}
	nearHill = color.RGBA{R: 0x2B, G: 0x6B, B: 0x45, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a framed landscape: frame, mat, sky, sun and two hills.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float32(size)

	fillPath(img, frameCol, rect(s*0.06, s*0.10, s*0.88, s*0.80))
	fillPath(img, matCol, rect(s*0.13, s*0.17, s*0.74, s*0.66))

	px, py, pw, ph := s*0.19, s*0.23, s*0.62, s*0.54
	fillPath(img, skyCol, rect(px, py, pw, ph))
	fillPath(img, sunCol, circle(px+pw*0.75, py+ph*0.28, ph*0.13))
	fillPath(img, farHill, [][2]float32{
		{px, py + ph},
		{px + pw*0.38, py + ph*0.35},
		{px + pw*0.78, py + ph},
	})
	fillPath(img, nearHill, [][2]float32{
		{px + pw*0.30, py + ph},
		{px + pw*0.68, py + ph*0.52},
		{px + pw, py + ph*0.80},
		{px + pw, py + ph},
	})
	return img
}

// fillPath rasterizes a closed polygon in clr.
func fillPath(img *image.RGBA, clr color.Color, pts [][2]float32) {
	if len(pts) < 3 {
		return
	}
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		r.LineTo(p[0], p[1])
	}
	r.ClosePath()
	r.Draw(img, b, image.NewUniform(clr), image.Point{})
}

func rect(x, y, w, h float32) [][2]float32 {
	return [][2]float32{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

func circle(cx, cy, radius float32) [][2]float32 {
	const segments = 24
	pts := make([][2]float32, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = [2]float32{cx + radius*float32(math.Cos(a)), cy + radius*float32(math.Sin(a))}
	}
	return pts
}
