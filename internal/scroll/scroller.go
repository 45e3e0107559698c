// Package scroll turns pointer drags and wheel input into scroll offsets,
// with inertial momentum after release and tap-to-click replay.
//
// A DragScroller is driven entirely by its host: input events are pushed in
// through PointerDown, PointerMove, PointerUp and Wheel, and Tick is called
// once per frame. It is not safe for concurrent use; call it from the frame
// loop only.
package scroll

import (
	"math"
	"time"
)

const (
	// MoveThreshold is the displacement in pixels that must be exceeded on
	// either axis before a press counts as a drag rather than a tap.
	MoveThreshold = 3.0
	// MomentumThreshold is the release speed in px/frame that must be
	// exceeded on either axis to start momentum.
	MomentumThreshold = 1.0
	// StopThreshold ends momentum once both axes are slower than this.
	StopThreshold = 0.1
	// Friction is the per-frame velocity multiplier during momentum.
	Friction = 0.94
	// SmoothDuration is the length of one eased wheel scroll.
	SmoothDuration = 200 * time.Millisecond
)

// Cursor is the pointer affordance a scroller wants over its surface.
type Cursor int

const (
	CursorGrab Cursor = iota
	CursorGrabbing
)

// session is the state of one press from down to up.
type session struct {
	kind        PointerKind
	target      Target
	origin      Point
	startScroll Point
	last        Point
	velocity    Point
}

// DragScroller scrolls one Surface.
type DragScroller struct {
	surface    Surface
	dispatcher ClickDispatcher

	wheelSpeed  float64
	smoothWheel bool
	friction    float64
	now         func() time.Time

	drag     *session
	hasMoved bool
	velocity Point
	anim     *animation
}

// Option configures a DragScroller.
type Option func(*DragScroller)

// WithWheelSpeed scales wheel deltas. Non-positive values are ignored.
func WithWheelSpeed(f float64) Option {
	return func(s *DragScroller) {
		if f > 0 {
			s.wheelSpeed = f
		}
	}
}

// WithSmoothWheel enables eased wheel scrolling.
func WithSmoothWheel(on bool) Option {
	return func(s *DragScroller) { s.smoothWheel = on }
}

// WithFriction overrides the momentum friction. Values outside (0, 1) are ignored.
func WithFriction(f float64) Option {
	return func(s *DragScroller) {
		if f > 0 && f < 1 {
			s.friction = f
		}
	}
}

// WithClock sets the time source used to start smooth wheel animations.
func WithClock(now func() time.Time) Option {
	return func(s *DragScroller) {
		if now != nil {
			s.now = now
		}
	}
}

// New attaches a scroller to surface. dispatcher receives synthetic clicks
// for taps and may be nil.
func New(surface Surface, dispatcher ClickDispatcher, opts ...Option) *DragScroller {
	s := &DragScroller{
		surface:    surface,
		dispatcher: dispatcher,
		wheelSpeed: 1,
		friction:   Friction,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DragScroller) Surface() Surface { return s.surface }

// IsDragging reports whether a press is in progress.
func (s *DragScroller) IsDragging() bool { return s.drag != nil }

// HasMoved reports whether the current or last press moved past
// MoveThreshold. It stays set until the next press or ResetMoved.
func (s *DragScroller) HasMoved() bool { return s.hasMoved }

// ResetMoved clears the moved flag once a click guard has consumed it.
func (s *DragScroller) ResetMoved() { s.hasMoved = false }

// Animating reports whether momentum or a smooth wheel scroll is live.
func (s *DragScroller) Animating() bool { return s.anim != nil }

// Velocity is the last sampled drag velocity in px/frame.
func (s *DragScroller) Velocity() Point { return s.velocity }

// Cursor returns the affordance to show over the surface.
func (s *DragScroller) Cursor() Cursor {
	if s.drag != nil {
		return CursorGrabbing
	}
	return CursorGrab
}

// Cancel stops any live animation.
func (s *DragScroller) Cancel() {
	if s.anim != nil {
		s.anim.cancelled = true
		s.anim = nil
	}
}

// PointerDown starts a drag unless the press landed on an interactive target.
func (s *DragScroller) PointerDown(ev PointerEvent) {
	if IsInteractive(ev.Target) {
		return
	}
	s.Cancel()

	s.drag = &session{
		kind:        ev.Kind,
		target:      ev.Target,
		origin:      ev.Pos,
		startScroll: Point{X: s.surface.ScrollLeft(), Y: s.surface.ScrollTop()},
		last:        ev.Pos,
	}
	s.hasMoved = false
	s.velocity = Point{}
}

// PointerMove follows the pointer while dragging. Moves from another
// pointer kind than the one that started the drag are ignored.
func (s *DragScroller) PointerMove(ev PointerEvent) {
	d := s.drag
	if d == nil || ev.Kind != d.kind {
		return
	}

	delta := ev.Pos.Sub(d.origin)
	if math.Abs(delta.X) > MoveThreshold || math.Abs(delta.Y) > MoveThreshold {
		s.hasMoved = true
	}

	s.surface.SetScroll(
		clamp(d.startScroll.X-delta.X, s.surface.MaxScrollX()),
		clamp(d.startScroll.Y-delta.Y, s.surface.MaxScrollY()),
	)

	d.velocity = ev.Pos.Sub(d.last)
	d.last = ev.Pos
	s.velocity = d.velocity
}

// PointerUp ends the drag. A press that never moved is replayed as a click
// on the original target; a fast release hands over to momentum.
func (s *DragScroller) PointerUp(ev PointerEvent) {
	d := s.drag
	if d == nil || ev.Kind != d.kind {
		return
	}
	s.drag = nil

	if !s.hasMoved && s.dispatcher != nil {
		s.dispatcher.DispatchClick(Click{
			Target:     d.target,
			Pos:        ev.Pos,
			Bubbles:    true,
			Cancelable: true,
			Synthetic:  true,
		})
	}

	v := d.velocity
	if math.Abs(v.X) > MomentumThreshold || math.Abs(v.Y) > MomentumThreshold {
		s.start(&momentum{surface: s.surface, v: v, friction: s.friction})
	}
}

// Wheel scrolls by the event deltas. It returns false when the event was
// left alone so the host can run its default action.
func (s *DragScroller) Wheel(ev WheelEvent) bool {
	if IsInteractive(ev.Target) {
		return false
	}
	s.Cancel()

	dx := ev.DeltaX * s.wheelSpeed
	dy := ev.DeltaY * s.wheelSpeed
	from := Point{X: s.surface.ScrollLeft(), Y: s.surface.ScrollTop()}
	to := Point{
		X: clamp(from.X+dx, s.surface.MaxScrollX()),
		Y: clamp(from.Y+dy, s.surface.MaxScrollY()),
	}

	if d := s.drag; d != nil {
		// Mid-drag the wheel applies at once and shifts the drag anchor, so
		// the next move does not undo it and no task competes with the drag.
		s.surface.SetScroll(to.X, to.Y)
		d.startScroll.X += s.surface.ScrollLeft() - from.X
		d.startScroll.Y += s.surface.ScrollTop() - from.Y
		return true
	}
	if !s.smoothWheel {
		s.surface.SetScroll(to.X, to.Y)
		return true
	}
	s.start(&smoothWheel{
		surface:  s.surface,
		start:    from,
		target:   to,
		began:    s.now(),
		duration: SmoothDuration,
	})
	return true
}

// Tick advances the live animation by one frame.
func (s *DragScroller) Tick(now time.Time) {
	a := s.anim
	if a == nil || a.cancelled {
		s.anim = nil
		return
	}
	if !a.task.step(now) && s.anim == a {
		s.anim = nil
	}
}

func (s *DragScroller) start(t task) {
	s.Cancel()
	s.anim = &animation{task: t}
}
