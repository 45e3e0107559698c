package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

// InitFonts loads the UI font. A nil ttfData uses the bundled Go Regular face.
func InitFonts(ttfData []byte) error {
	if ttfData == nil {
		ttfData = goregular.TTF
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	face := GetFace(size)
	w, h := text.Measure(txt, face, 0)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

func MeasureText(txt string, size float64) (float64, float64) {
	face := GetFace(size)
	return text.Measure(txt, face, 0)
}

// WrapLines breaks txt into lines no wider than maxWidth. A single word
// wider than maxWidth gets a line of its own.
func WrapLines(txt string, maxWidth, size float64) []string {
	words := strings.Fields(txt)
	if len(words) == 0 {
		return nil
	}
	face := GetFace(size)

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		test := line + " " + word
		if w, _ := text.Measure(test, face, 0); w > maxWidth {
			lines = append(lines, line)
			line = word
		} else {
			line = test
		}
	}
	return append(lines, line)
}

// DrawTextWrapped draws txt wrapped to maxWidth and returns the height used.
func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, clr color.Color) float64 {
	lineHeight := size * 1.4
	cy := y
	for _, line := range WrapLines(txt, maxWidth, size) {
		DrawText(dst, line, x, cy, size, clr)
		cy += lineHeight
	}
	return cy - y
}

func truncateText(s string, maxWidth float64, fontSize float64) string {
	w, _ := MeasureText(s, fontSize)
	if w <= maxWidth {
		return s
	}
	r := []rune(s)
	for i := len(r) - 1; i > 0; i-- {
		candidate := string(r[:i]) + "…"
		w, _ = MeasureText(candidate, fontSize)
		if w <= maxWidth {
			return candidate
		}
	}
	return "…"
}
