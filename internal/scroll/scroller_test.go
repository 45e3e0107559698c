package scroll

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	name        string
	interactive bool
}

func (t *fakeTarget) Interactive() bool { return t.interactive }

type clickRecorder struct {
	clicks []Click
}

func (r *clickRecorder) DispatchClick(c Click) { r.clicks = append(r.clicks, c) }

// strip returns an element with the given scroll bounds on each axis.
func strip(maxX, maxY float64) *Element {
	e := NewElement(Rect{X: 0, Y: 0, W: 200, H: 100})
	e.SetContentSize(200+maxX, 100+maxY)
	return e
}

func mouse(x, y float64, t Target) PointerEvent {
	return PointerEvent{Kind: PointerMouse, Pos: Point{X: x, Y: y}, Target: t}
}

func TestTapDispatchesExactlyOneClick(t *testing.T) {
	surf := strip(800, 0)
	rec := &clickRecorder{}
	s := New(surf, rec)
	tile := &fakeTarget{name: "tile"}

	s.PointerDown(mouse(50, 50, tile))
	require.True(t, s.IsDragging())
	s.PointerMove(mouse(52, 53, tile))
	s.PointerMove(mouse(53, 47, tile))
	assert.False(t, s.HasMoved(), "3px is not past the threshold")
	s.PointerUp(mouse(53, 47, tile))

	require.Len(t, rec.clicks, 1)
	c := rec.clicks[0]
	assert.Same(t, tile, c.Target)
	assert.Equal(t, Point{X: 53, Y: 47}, c.Pos)
	assert.True(t, c.Synthetic)
	assert.True(t, c.Bubbles)
	assert.True(t, c.Cancelable)
	assert.False(t, s.IsDragging())
}

func TestDragPastThresholdSuppressesClick(t *testing.T) {
	surf := strip(800, 0)
	rec := &clickRecorder{}
	s := New(surf, rec)

	s.PointerDown(mouse(100, 50, nil))
	s.PointerMove(mouse(96, 50, nil))
	assert.True(t, s.HasMoved())
	assert.Equal(t, 4.0, surf.ScrollLeft(), "dragging left moves content right")
	s.PointerUp(mouse(96, 50, nil))

	assert.Empty(t, rec.clicks)
	assert.True(t, s.HasMoved(), "flag survives release for the click guard")
}

func TestDragStaysInBoundsAtEveryStep(t *testing.T) {
	surf := strip(300, 50)
	surf.SetScroll(150, 25)
	s := New(surf, nil)

	s.PointerDown(mouse(500, 500, nil))
	path := []Point{{480, 510}, {300, 400}, {-200, 300}, {900, 900}, {1200, -100}, {510, 490}}
	for _, p := range path {
		s.PointerMove(mouse(p.X, p.Y, nil))
		x, y := surf.ScrollLeft(), surf.ScrollTop()
		assert.GreaterOrEqual(t, x, 0.0)
		assert.LessOrEqual(t, x, 300.0)
		assert.GreaterOrEqual(t, y, 0.0)
		assert.LessOrEqual(t, y, 50.0)
	}
	// Last point maps back inside: start - (510-500, 490-500).
	assert.Equal(t, 140.0, surf.ScrollLeft())
	assert.Equal(t, 35.0, surf.ScrollTop())
}

func TestVelocityIsOneFrameDifference(t *testing.T) {
	s := New(strip(1000, 1000), nil)
	s.PointerDown(mouse(0, 0, nil))
	s.PointerMove(mouse(10, 0, nil))
	s.PointerMove(mouse(12, 5, nil))
	assert.Equal(t, Point{X: 2, Y: 5}, s.Velocity())
}

func TestMomentumDecaysByFriction(t *testing.T) {
	surf := strip(10000, 1000)
	surf.SetScroll(500, 500)
	s := New(surf, nil)

	s.PointerDown(mouse(500, 10, nil))
	s.PointerMove(mouse(490, 10, nil))
	s.PointerUp(mouse(490, 10, nil))
	require.True(t, s.Animating())
	require.Equal(t, 510.0, surf.ScrollLeft())

	want := 510.0
	v := -10.0
	now := time.Now()
	frames := 0
	for s.Animating() {
		v *= Friction
		want -= v
		s.Tick(now)
		frames++
		require.InDelta(t, want, surf.ScrollLeft(), 1e-9, "frame %d", frames)
		require.Less(t, frames, 1000)
	}

	// 10 * 0.94^n drops below 0.1 at n = 75.
	assert.Equal(t, 75, frames)
	assert.Less(t, math.Abs(v), StopThreshold)
	assert.Equal(t, 500.0, surf.ScrollTop())
}

func TestMomentumStopsWhenIdleAxisRestsOnBound(t *testing.T) {
	tests := []struct {
		name       string
		maxX, maxY float64
		startX     float64
	}{
		{"idle axis at zero", 1000, 1000, 0},
		{"idle axis at max", 1000, 1000, 1000},
		{"idle axis without range", 0, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surf := strip(tt.maxX, tt.maxY)
			surf.SetScroll(tt.startX, 500)
			s := New(surf, nil)

			s.PointerDown(mouse(0, 100, nil))
			s.PointerMove(mouse(0, 80, nil))
			s.PointerUp(mouse(0, 80, nil))
			require.True(t, s.Animating())

			s.Tick(time.Now())
			assert.False(t, s.Animating(), "one frame, then the bound on the idle axis stops it")
			assert.InDelta(t, 520+20*Friction, surf.ScrollTop(), 1e-9)
			assert.Equal(t, tt.startX, surf.ScrollLeft())
		})
	}
}

func TestMomentumStopsOnBound(t *testing.T) {
	surf := strip(1000, 1000)
	surf.SetScroll(20, 500)
	s := New(surf, nil)

	s.PointerDown(mouse(0, 0, nil))
	s.PointerMove(mouse(10, 0, nil))
	s.PointerUp(mouse(10, 0, nil))
	require.Equal(t, 10.0, surf.ScrollLeft())

	now := time.Now()
	s.Tick(now) // v = 9.4 -> 0.6
	assert.InDelta(t, 0.6, surf.ScrollLeft(), 1e-9)
	assert.True(t, s.Animating())

	s.Tick(now) // v = 8.836 -> clamped to 0
	assert.Equal(t, 0.0, surf.ScrollLeft())
	assert.False(t, s.Animating(), "momentum must not pin against the wall")
}

func TestSlowReleaseHasNoMomentum(t *testing.T) {
	s := New(strip(1000, 1000), nil)
	s.PointerDown(mouse(0, 0, nil))
	s.PointerMove(mouse(10, 10, nil))
	s.PointerMove(mouse(11, 9, nil))
	s.PointerUp(mouse(11, 9, nil))
	assert.False(t, s.Animating())
}

func TestNewDragCancelsMomentum(t *testing.T) {
	surf := strip(10000, 1000)
	surf.SetScroll(5000, 500)
	s := New(surf, nil)

	s.PointerDown(mouse(100, 0, nil))
	s.PointerMove(mouse(60, 0, nil))
	s.PointerUp(mouse(60, 0, nil))
	require.True(t, s.Animating())
	s.Tick(time.Now())

	s.PointerDown(mouse(300, 0, nil))
	assert.False(t, s.Animating())
	frozen := surf.ScrollLeft()
	for i := 0; i < 10; i++ {
		s.Tick(time.Now())
	}
	assert.Equal(t, frozen, surf.ScrollLeft())
	assert.Equal(t, CursorGrabbing, s.Cursor())
}

func TestInteractiveTargetIsIgnored(t *testing.T) {
	surf := strip(1000, 1000)
	surf.SetScroll(100, 100)
	rec := &clickRecorder{}
	s := New(surf, rec)
	button := &fakeTarget{name: "button", interactive: true}

	s.PointerDown(mouse(10, 10, button))
	assert.False(t, s.IsDragging())
	s.PointerMove(mouse(200, 200, button))
	s.PointerUp(mouse(200, 200, button))
	assert.False(t, s.Wheel(WheelEvent{DeltaY: 50, Target: button}))

	assert.Equal(t, 100.0, surf.ScrollLeft())
	assert.Equal(t, 100.0, surf.ScrollTop())
	assert.Empty(t, rec.clicks)
	assert.Equal(t, CursorGrab, s.Cursor())
}

func TestMovesWithoutDragAreIgnored(t *testing.T) {
	surf := strip(1000, 0)
	s := New(surf, nil)
	s.PointerMove(mouse(50, 0, nil))
	s.PointerUp(mouse(50, 0, nil))
	assert.Equal(t, 0.0, surf.ScrollLeft())
	assert.False(t, s.HasMoved())
}

func TestTouchDragIgnoresMouse(t *testing.T) {
	surf := strip(1000, 0)
	surf.SetScroll(500, 0)
	rec := &clickRecorder{}
	s := New(surf, rec)

	s.PointerDown(PointerEvent{Kind: PointerTouch, Pos: Point{X: 100}})
	s.PointerMove(mouse(0, 0, nil))
	s.PointerUp(mouse(0, 0, nil))
	assert.True(t, s.IsDragging())
	assert.Equal(t, 500.0, surf.ScrollLeft())

	s.PointerMove(PointerEvent{Kind: PointerTouch, Pos: Point{X: 80}})
	s.PointerUp(PointerEvent{Kind: PointerTouch, Pos: Point{X: 80}})
	assert.False(t, s.IsDragging())
	assert.Equal(t, 520.0, surf.ScrollLeft())
	assert.Empty(t, rec.clicks)
}

func TestWheelImmediateClamps(t *testing.T) {
	surf := strip(1000, 0)
	s := New(surf, nil, WithWheelSpeed(1.0))

	assert.True(t, s.Wheel(WheelEvent{DeltaX: 100}))
	assert.Equal(t, 100.0, surf.ScrollLeft())

	assert.True(t, s.Wheel(WheelEvent{DeltaX: 1000}))
	assert.Equal(t, 1000.0, surf.ScrollLeft())
}

func TestWheelSpeedScalesDelta(t *testing.T) {
	surf := strip(0, 1000)
	s := New(surf, nil, WithWheelSpeed(2.5))
	s.Wheel(WheelEvent{DeltaY: 40})
	assert.Equal(t, 100.0, surf.ScrollTop())
	s.Wheel(WheelEvent{DeltaY: -400})
	assert.Equal(t, 0.0, surf.ScrollTop())
}

func TestSmoothWheelEasesOverDuration(t *testing.T) {
	surf := strip(0, 1000)
	began := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New(surf, nil, WithSmoothWheel(true), WithClock(func() time.Time { return began }))

	require.True(t, s.Wheel(WheelEvent{DeltaY: 100}))
	assert.Equal(t, 0.0, surf.ScrollTop(), "nothing moves before the first frame")
	assert.True(t, s.Animating())

	s.Tick(began.Add(SmoothDuration / 2))
	assert.InDelta(t, 87.5, surf.ScrollTop(), 1e-9)
	assert.True(t, s.Animating())

	s.Tick(began.Add(SmoothDuration))
	assert.Equal(t, 100.0, surf.ScrollTop())
	assert.False(t, s.Animating())
}

func TestSmoothWheelTargetIsClamped(t *testing.T) {
	surf := strip(0, 50)
	began := time.Now()
	s := New(surf, nil, WithSmoothWheel(true), WithClock(func() time.Time { return began }))
	s.Wheel(WheelEvent{DeltaY: 500})
	for i := 1; i <= 12; i++ {
		s.Tick(began.Add(time.Duration(i) * 20 * time.Millisecond))
		assert.LessOrEqual(t, surf.ScrollTop(), 50.0)
	}
	assert.Equal(t, 50.0, surf.ScrollTop())
	assert.False(t, s.Animating())
}

func TestWheelCancelsMomentum(t *testing.T) {
	surf := strip(10000, 1000)
	surf.SetScroll(5000, 500)
	s := New(surf, nil)

	s.PointerDown(mouse(100, 0, nil))
	s.PointerMove(mouse(50, 0, nil))
	s.PointerUp(mouse(50, 0, nil))
	require.True(t, s.Animating())

	s.Wheel(WheelEvent{DeltaX: 10})
	assert.False(t, s.Animating())
	at := surf.ScrollLeft()
	s.Tick(time.Now())
	assert.Equal(t, at, surf.ScrollLeft())
}

func TestWheelDuringDragShiftsAnchor(t *testing.T) {
	surf := strip(0, 1000)
	s := New(surf, nil, WithSmoothWheel(true))

	s.PointerDown(mouse(0, 500, nil))
	s.PointerMove(mouse(0, 480, nil))
	require.Equal(t, 20.0, surf.ScrollTop())

	s.Wheel(WheelEvent{DeltaY: 100})
	assert.Equal(t, 120.0, surf.ScrollTop())
	assert.False(t, s.Animating(), "no task competes with a drag")

	s.PointerMove(mouse(0, 470, nil))
	assert.Equal(t, 130.0, surf.ScrollTop())
}

func TestFrictionOption(t *testing.T) {
	surf := strip(10000, 1000)
	surf.SetScroll(100, 500)
	s := New(surf, nil, WithFriction(0.5), WithFriction(2))

	s.PointerDown(mouse(10, 0, nil))
	s.PointerMove(mouse(0, 0, nil))
	s.PointerUp(mouse(0, 0, nil))
	s.Tick(time.Now())
	assert.InDelta(t, 115.0, surf.ScrollLeft(), 1e-9)
}

func TestEaseOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutCubic(0))
	assert.Equal(t, 1.0, EaseOutCubic(1))
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-12)
}
