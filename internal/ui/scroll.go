package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/folio/internal/input"
	"github.com/depeter/folio/internal/scroll"
)

// ScrollWheelSpeed is pixels per mouse wheel notch.
const ScrollWheelSpeed = 60

// Pointer turns ebiten's mouse, touch and wheel state into input events,
// one poll per Update. Only the first finger of a touch is followed.
type Pointer struct {
	last     scroll.Point
	seen     bool
	touchID  ebiten.TouchID
	touching bool
	touchPos scroll.Point
	touchBuf []ebiten.TouchID
}

// Poll returns this tick's events in down, move, up order.
func (p *Pointer) Poll() []input.Event {
	var events []input.Event

	mx, my := ebiten.CursorPosition()
	pos := scroll.Point{X: float64(mx), Y: float64(my)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, input.Event{Phase: input.PhaseDown, Kind: scroll.PointerMouse, Pos: pos})
	}
	if !p.seen || pos != p.last {
		events = append(events, input.Event{Phase: input.PhaseMove, Kind: scroll.PointerMouse, Pos: pos})
		p.last, p.seen = pos, true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, input.Event{Phase: input.PhaseUp, Kind: scroll.PointerMouse, Pos: pos})
	}

	events = p.pollTouch(events)

	wx, wy := ebiten.Wheel()
	if wx == 0 && ebiten.IsKeyPressed(ebiten.KeyShift) {
		wx, wy = wy, 0
	}
	if wx != 0 || wy != 0 {
		events = append(events, input.Event{
			Phase:  input.PhaseWheel,
			Kind:   scroll.PointerMouse,
			Pos:    pos,
			WheelX: -wx * ScrollWheelSpeed,
			WheelY: -wy * ScrollWheelSpeed,
		})
	}
	return events
}

func (p *Pointer) pollTouch(events []input.Event) []input.Event {
	if !p.touching {
		p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
		if len(p.touchBuf) == 0 {
			return events
		}
		p.touchID = p.touchBuf[0]
		p.touching = true
		tx, ty := ebiten.TouchPosition(p.touchID)
		p.touchPos = scroll.Point{X: float64(tx), Y: float64(ty)}
		return append(events, input.Event{Phase: input.PhaseDown, Kind: scroll.PointerTouch, Pos: p.touchPos})
	}

	if inpututil.IsTouchJustReleased(p.touchID) {
		p.touching = false
		tx, ty := inpututil.TouchPositionInPreviousTick(p.touchID)
		pos := scroll.Point{X: float64(tx), Y: float64(ty)}
		return append(events, input.Event{Phase: input.PhaseUp, Kind: scroll.PointerTouch, Pos: pos})
	}

	tx, ty := ebiten.TouchPosition(p.touchID)
	pos := scroll.Point{X: float64(tx), Y: float64(ty)}
	if pos != p.touchPos {
		p.touchPos = pos
		events = append(events, input.Event{Phase: input.PhaseMove, Kind: scroll.PointerTouch, Pos: pos})
	}
	return events
}

var lastCursor = input.CursorDefault

// ApplyCursor sets the window cursor for the router's wanted shape. Ebiten
// has no grab hands, so both grab states use the move cursor.
func ApplyCursor(c input.Cursor) {
	if c == lastCursor {
		return
	}
	lastCursor = c
	switch c {
	case input.CursorPointer:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	case input.CursorGrab, input.CursorGrabbing:
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}
