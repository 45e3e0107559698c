// Package input routes one frame of pointer and wheel events to the drag
// scrollers of a screen, the way a document delivers events to nested
// scroll containers.
package input

import (
	"github.com/depeter/folio/internal/scroll"
)

// Phase is the kind of a raw input event.
type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
	PhaseWheel
)

// Event is one raw input event in window pixels. Wheel deltas are already
// converted to pixels, positive meaning right/down.
type Event struct {
	Phase          Phase
	Kind           scroll.PointerKind
	Pos            scroll.Point
	WheelX, WheelY float64
}

// HitTester finds the target under a window point. It returns nil for
// background.
type HitTester interface {
	HitTest(p scroll.Point) scroll.Target
}

// HitFunc adapts a function to HitTester.
type HitFunc func(p scroll.Point) scroll.Target

func (f HitFunc) HitTest(p scroll.Point) scroll.Target { return f(p) }

// Region is the window area a scroller listens on.
type Region interface {
	Contains(p scroll.Point) bool
}

// Cursor is the pointer shape the router wants shown.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorGrab
	CursorGrabbing
)

type layer struct {
	scroller *scroll.DragScroller
	region   Region // nil covers the whole window
}

// press remembers where the current press started.
type press struct {
	kind   scroll.PointerKind
	target scroll.Target
	layer  *layer
}

// Router delivers events to attached scrollers. Presses and wheel events go
// to the innermost scroller under the pointer; moves and releases go to all
// of them, each ignoring what it is not dragging.
type Router struct {
	hit        HitTester
	dispatcher scroll.ClickDispatcher
	layers     []*layer
	press      *press
	pos        scroll.Point
}

func NewRouter(hit HitTester, dispatcher scroll.ClickDispatcher) *Router {
	return &Router{hit: hit, dispatcher: dispatcher}
}

// Attach adds a scroller. Attach inner containers before the surfaces that
// enclose them; a nil region matches everywhere.
func (r *Router) Attach(s *scroll.DragScroller, region Region) {
	r.layers = append(r.layers, &layer{scroller: s, region: region})
}

// Scrollers returns the attached scrollers in routing order.
func (r *Router) Scrollers() []*scroll.DragScroller {
	out := make([]*scroll.DragScroller, len(r.layers))
	for i, l := range r.layers {
		out[i] = l.scroller
	}
	return out
}

// Handle processes events in order. It reports whether any wheel event was
// consumed by a scroller.
func (r *Router) Handle(events []Event) (wheelHandled bool) {
	for _, ev := range events {
		r.pos = ev.Pos
		switch ev.Phase {
		case PhaseDown:
			r.down(ev)
		case PhaseMove:
			pe := scroll.PointerEvent{Kind: ev.Kind, Pos: ev.Pos, Target: r.hitTest(ev.Pos)}
			for _, l := range r.layers {
				l.scroller.PointerMove(pe)
			}
		case PhaseUp:
			r.up(ev)
		case PhaseWheel:
			if r.wheel(ev) {
				wheelHandled = true
			}
		}
	}
	return wheelHandled
}

func (r *Router) down(ev Event) {
	if r.press != nil {
		// A second pointer while one is held is ignored.
		return
	}
	target := r.hitTest(ev.Pos)
	p := &press{kind: ev.Kind, target: target}
	r.press = p
	if scroll.IsInteractive(target) {
		return
	}
	if l := r.layerAt(ev.Pos); l != nil {
		p.layer = l
		l.scroller.PointerDown(scroll.PointerEvent{Kind: ev.Kind, Pos: ev.Pos, Target: target})
	}
}

func (r *Router) up(ev Event) {
	p := r.press
	if p == nil || p.kind != ev.Kind {
		return
	}
	r.press = nil

	pe := scroll.PointerEvent{Kind: ev.Kind, Pos: ev.Pos, Target: r.hitTest(ev.Pos)}
	for _, l := range r.layers {
		l.scroller.PointerUp(pe)
	}

	switch {
	case scroll.IsInteractive(p.target):
		// Native click: press and release on the same control.
		if sameTarget(pe.Target, p.target) {
			r.dispatch(scroll.Click{Target: p.target, Pos: ev.Pos, Bubbles: true, Cancelable: true})
		}
	case p.layer != nil && p.layer.scroller.HasMoved():
		// The click that trails a drag; the click guard decides its fate.
		r.dispatch(scroll.Click{Target: p.target, Pos: ev.Pos, Bubbles: true, Cancelable: true})
	}
}

func (r *Router) wheel(ev Event) bool {
	l := r.layerAt(ev.Pos)
	if l == nil {
		return false
	}
	return l.scroller.Wheel(scroll.WheelEvent{
		DeltaX: ev.WheelX,
		DeltaY: ev.WheelY,
		Target: r.hitTest(ev.Pos),
	})
}

// Cursor is the shape to show for the last known pointer position.
func (r *Router) Cursor() Cursor {
	for _, l := range r.layers {
		if l.scroller.IsDragging() {
			return CursorGrabbing
		}
	}
	if scroll.IsInteractive(r.hitTest(r.pos)) {
		return CursorPointer
	}
	if l := r.layerAt(r.pos); l != nil {
		if l.scroller.Cursor() == scroll.CursorGrabbing {
			return CursorGrabbing
		}
		return CursorGrab
	}
	return CursorDefault
}

// Reset forgets a press in progress, e.g. when the screen is left mid-drag.
func (r *Router) Reset() {
	r.press = nil
}

func (r *Router) layerAt(p scroll.Point) *layer {
	for _, l := range r.layers {
		if l.region == nil || l.region.Contains(p) {
			return l
		}
	}
	return nil
}

func (r *Router) hitTest(p scroll.Point) scroll.Target {
	if r.hit == nil {
		return nil
	}
	return r.hit.HitTest(p)
}

func (r *Router) dispatch(c scroll.Click) {
	if r.dispatcher != nil {
		r.dispatcher.DispatchClick(c)
	}
}

// sameTarget compares targets; targets are expected to be comparable values.
func sameTarget(a, b scroll.Target) bool {
	return a != nil && a == b
}
