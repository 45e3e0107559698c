package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/folio/internal/layout"
)

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// Shortcuts are the keyboard actions pressed this tick.
type Shortcuts struct {
	Back        bool
	ToggleTheme bool
	CycleMode   bool
	Mode        layout.Mode
	ModeChosen  bool
}

var modeKeys = map[ebiten.Key]layout.Mode{
	ebiten.KeyDigit1: layout.ModeList,
	ebiten.KeyDigit2: layout.ModeCatalog,
	ebiten.KeyDigit3: layout.ModePanoramic,
}

// ReadShortcuts polls the keys screens react to.
func ReadShortcuts() Shortcuts {
	var s Shortcuts
	s.Back = inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3)
	if IsModifierPressed() {
		return s
	}
	s.ToggleTheme = inpututil.IsKeyJustPressed(ebiten.KeyT)
	for k, m := range modeKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.Mode, s.ModeChosen = m, true
		}
	}
	s.CycleMode = !s.ModeChosen && inpututil.IsKeyJustPressed(ebiten.KeyM)
	return s
}

// MouseJustClicked returns the cursor position and whether the left mouse button was just clicked.
func MouseJustClicked() (x, y int, clicked bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		clicked = true
	}
	return
}
