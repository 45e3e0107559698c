package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/folio/internal/scroll"
)

type target struct {
	name        string
	interactive bool
}

func (t target) Interactive() bool { return t.interactive }

var (
	button = target{name: "button", interactive: true}
	tile   = target{name: "tile"}
)

type clicks []scroll.Click

func (c *clicks) DispatchClick(cl scroll.Click) { *c = append(*c, cl) }

// fixture: a 1000x800 window whose viewport scrolls vertically, with a
// horizontal strip at y in [100, 300). A button sits at the top left, tiles
// everywhere else.
type fixture struct {
	page, strip *scroll.DragScroller
	pageSurf    *scroll.Viewport
	stripSurf   *scroll.Element
	router      *Router
	got         clicks
}

func newFixture() *fixture {
	f := &fixture{}
	f.pageSurf = scroll.NewViewport(1000, 800)
	f.pageSurf.SetDocumentSize(1000, 3000)
	f.stripSurf = scroll.NewElement(scroll.Rect{X: 0, Y: 100, W: 1000, H: 200})
	f.stripSurf.SetContentSize(5000, 200)

	hit := HitFunc(func(p scroll.Point) scroll.Target {
		if p.X < 50 && p.Y < 50 {
			return button
		}
		return tile
	})
	f.router = NewRouter(hit, &f.got)
	f.page = scroll.New(f.pageSurf, &f.got)
	f.strip = scroll.New(f.stripSurf, &f.got)
	f.router.Attach(f.strip, f.stripSurf)
	f.router.Attach(f.page, nil)
	return f
}

func ev(phase Phase, x, y float64) Event {
	return Event{Phase: phase, Kind: scroll.PointerMouse, Pos: scroll.Point{X: x, Y: y}}
}

func TestPressInsideStripDragsOnlyStrip(t *testing.T) {
	f := newFixture()
	f.router.Handle([]Event{ev(PhaseDown, 500, 200)})
	assert.True(t, f.strip.IsDragging())
	assert.False(t, f.page.IsDragging())
	assert.Equal(t, CursorGrabbing, f.router.Cursor())

	f.router.Handle([]Event{ev(PhaseMove, 400, 150), ev(PhaseUp, 400, 150)})
	assert.Equal(t, 100.0, f.stripSurf.ScrollLeft())
	assert.Equal(t, 0.0, f.pageSurf.ScrollTop())
}

func TestPressOutsideStripDragsPage(t *testing.T) {
	f := newFixture()
	f.router.Handle([]Event{ev(PhaseDown, 500, 600), ev(PhaseMove, 500, 400)})
	assert.True(t, f.page.IsDragging())
	assert.Equal(t, 200.0, f.pageSurf.ScrollTop())
	assert.Equal(t, 0.0, f.stripSurf.ScrollLeft())
}

func TestTapGivesOneSyntheticClick(t *testing.T) {
	f := newFixture()
	f.router.Handle([]Event{ev(PhaseDown, 500, 600), ev(PhaseMove, 501, 601), ev(PhaseUp, 501, 601)})
	require.Len(t, f.got, 1)
	assert.True(t, f.got[0].Synthetic)
	assert.Equal(t, tile, f.got[0].Target)
}

func TestDragGivesTrailingNativeClick(t *testing.T) {
	f := newFixture()
	f.router.Handle([]Event{ev(PhaseDown, 500, 600), ev(PhaseMove, 500, 500), ev(PhaseUp, 500, 500)})
	require.Len(t, f.got, 1)
	assert.False(t, f.got[0].Synthetic)

	var reporters []scroll.MoveReporter
	for _, s := range f.router.Scrollers() {
		reporters = append(reporters, s)
	}
	guard := scroll.NewClickGuard(reporters...)
	assert.False(t, guard.Allow(), "trailing click is suppressed")
	assert.True(t, guard.Allow())
}

func TestButtonGetsNativeClickAndNoDrag(t *testing.T) {
	f := newFixture()
	f.router.Handle([]Event{ev(PhaseMove, 10, 10)})
	assert.Equal(t, CursorPointer, f.router.Cursor())

	f.router.Handle([]Event{ev(PhaseDown, 10, 10), ev(PhaseMove, 20, 30), ev(PhaseUp, 20, 30)})
	assert.False(t, f.page.IsDragging())
	assert.Equal(t, 0.0, f.pageSurf.ScrollTop())
	require.Len(t, f.got, 1)
	assert.Equal(t, button, f.got[0].Target)
	assert.False(t, f.got[0].Synthetic)
}

func TestButtonReleaseElsewhereIsNoClick(t *testing.T) {
	f := newFixture()
	f.router.Handle([]Event{ev(PhaseDown, 10, 10), ev(PhaseUp, 600, 600)})
	assert.Empty(t, f.got)
}

func TestWheelGoesToInnermostScroller(t *testing.T) {
	f := newFixture()
	handled := f.router.Handle([]Event{{Phase: PhaseWheel, Pos: scroll.Point{X: 500, Y: 200}, WheelX: 0, WheelY: 120}})
	assert.True(t, handled)
	assert.Equal(t, 0.0, f.stripSurf.ScrollTop(), "strip has no vertical range")
	assert.Equal(t, 0.0, f.pageSurf.ScrollTop())

	f.router.Handle([]Event{{Phase: PhaseWheel, Pos: scroll.Point{X: 500, Y: 600}, WheelY: 120}})
	assert.Equal(t, 120.0, f.pageSurf.ScrollTop())

	handled = f.router.Handle([]Event{{Phase: PhaseWheel, Pos: scroll.Point{X: 10, Y: 10}, WheelY: 120}})
	assert.False(t, handled, "wheel over a button is left alone")
	assert.Equal(t, 120.0, f.pageSurf.ScrollTop())
}

func TestSecondPointerIgnoredWhileHeld(t *testing.T) {
	f := newFixture()
	f.router.Handle([]Event{ev(PhaseDown, 500, 600)})
	touch := Event{Phase: PhaseDown, Kind: scroll.PointerTouch, Pos: scroll.Point{X: 500, Y: 200}}
	f.router.Handle([]Event{touch})
	assert.False(t, f.strip.IsDragging())

	touch.Phase = PhaseUp
	f.router.Handle([]Event{touch})
	assert.True(t, f.page.IsDragging(), "mouse press survives a stray touch release")
}

func TestCursorOverBackground(t *testing.T) {
	f := newFixture()
	f.router.Handle([]Event{ev(PhaseMove, 500, 500)})
	assert.Equal(t, CursorGrab, f.router.Cursor())

	empty := NewRouter(nil, nil)
	assert.Equal(t, CursorDefault, empty.Cursor())
	assert.False(t, empty.Handle([]Event{ev(PhaseWheel, 0, 0)}))
}
