package scroll

// Point is a position in window pixels.
type Point struct {
	X, Y float64
}

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// PointerKind tells mouse and touch input apart. A session only accepts
// moves and releases of the kind that started it.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

func (k PointerKind) String() string {
	if k == PointerTouch {
		return "touch"
	}
	return "mouse"
}

// Target is whatever the host hit-tested under the pointer. Interactive
// targets (buttons, links, inputs) keep their native behavior and are
// never dragged.
type Target interface {
	Interactive() bool
}

// IsInteractive reports whether t should bypass the scroller. A nil target
// is plain background.
func IsInteractive(t Target) bool {
	return t != nil && t.Interactive()
}

// PointerEvent is a mouse button or touch transition/motion.
type PointerEvent struct {
	Kind   PointerKind
	Pos    Point
	Target Target
}

// WheelEvent carries wheel deltas in pixels. Positive values scroll
// right/down.
type WheelEvent struct {
	DeltaX, DeltaY float64
	Target         Target
}

// Click is delivered to a ClickDispatcher. Synthetic clicks come from a
// scroller replaying a tap that it swallowed.
type Click struct {
	Target     Target
	Pos        Point
	Bubbles    bool
	Cancelable bool
	Synthetic  bool
}

// ClickDispatcher receives clicks for targets under a scroll surface.
type ClickDispatcher interface {
	DispatchClick(Click)
}

// ClickFunc adapts a function to ClickDispatcher.
type ClickFunc func(Click)

func (f ClickFunc) DispatchClick(c Click) { f(c) }
