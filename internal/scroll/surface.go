package scroll

// Surface is the scrollable entity a DragScroller manages.
type Surface interface {
	ScrollLeft() float64
	ScrollTop() float64
	// SetScroll moves the surface, clamping each axis to [0, max].
	SetScroll(x, y float64)
	MaxScrollX() float64
	MaxScrollY() float64
}

// Viewport is the whole-window surface. Its bounds are the document size
// minus the window size.
type Viewport struct {
	x, y       float64
	docW, docH float64
	winW, winH float64
}

func NewViewport(winW, winH float64) *Viewport {
	return &Viewport{winW: winW, winH: winH}
}

// SetWindowSize is called on resize. The current offset is re-clamped.
func (v *Viewport) SetWindowSize(w, h float64) {
	v.winW, v.winH = w, h
	v.SetScroll(v.x, v.y)
}

// SetDocumentSize sets the laid-out content size. The current offset is re-clamped.
func (v *Viewport) SetDocumentSize(w, h float64) {
	v.docW, v.docH = w, h
	v.SetScroll(v.x, v.y)
}

func (v *Viewport) WindowSize() (w, h float64) { return v.winW, v.winH }

func (v *Viewport) ScrollLeft() float64 { return v.x }
func (v *Viewport) ScrollTop() float64  { return v.y }

func (v *Viewport) SetScroll(x, y float64) {
	v.x = clamp(x, v.MaxScrollX())
	v.y = clamp(y, v.MaxScrollY())
}

func (v *Viewport) MaxScrollX() float64 { return nonNegative(v.docW - v.winW) }
func (v *Viewport) MaxScrollY() float64 { return nonNegative(v.docH - v.winH) }

// Element is a scrollable container placed somewhere on screen. Its bounds
// are the content size minus the visible (client) size.
type Element struct {
	Rect Rect

	x, y               float64
	contentW, contentH float64
}

// Rect is an on-screen rectangle in window pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. Empty rectangles contain nothing.
func (r Rect) Contains(p Point) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func NewElement(rect Rect) *Element {
	return &Element{Rect: rect}
}

// SetRect moves or resizes the visible area. The current offset is re-clamped.
func (e *Element) SetRect(r Rect) {
	e.Rect = r
	e.SetScroll(e.x, e.y)
}

// SetContentSize sets the scrollable content size. The current offset is re-clamped.
func (e *Element) SetContentSize(w, h float64) {
	e.contentW, e.contentH = w, h
	e.SetScroll(e.x, e.y)
}

// Contains reports whether a window point falls inside the element.
func (e *Element) Contains(p Point) bool { return e.Rect.Contains(p) }

func (e *Element) ScrollLeft() float64 { return e.x }
func (e *Element) ScrollTop() float64  { return e.y }

func (e *Element) SetScroll(x, y float64) {
	e.x = clamp(x, e.MaxScrollX())
	e.y = clamp(y, e.MaxScrollY())
}

func (e *Element) MaxScrollX() float64 { return nonNegative(e.contentW - e.Rect.W) }
func (e *Element) MaxScrollY() float64 { return nonNegative(e.contentH - e.Rect.H) }

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// clamp limits v to [0, hi]. A non-positive hi pins v to 0.
func clamp(v, hi float64) float64 {
	if hi <= 0 || v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
