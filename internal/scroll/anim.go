package scroll

import (
	"math"
	"time"
)

// task is one frame-driven animation bound to a surface. step advances it
// by one frame and returns false once it has finished.
type task interface {
	step(now time.Time) bool
}

// animation is the handle for the live task. Cancelling sets the flag,
// which Tick checks before every step.
type animation struct {
	task      task
	cancelled bool
}

// momentum decays the release velocity of a drag by a constant friction
// factor per frame.
type momentum struct {
	surface  Surface
	v        Point
	friction float64
}

func (m *momentum) step(time.Time) bool {
	m.v.X *= m.friction
	m.v.Y *= m.friction

	maxX, maxY := m.surface.MaxScrollX(), m.surface.MaxScrollY()
	x := clamp(m.surface.ScrollLeft()-m.v.X, maxX)
	y := clamp(m.surface.ScrollTop()-m.v.Y, maxY)
	m.surface.SetScroll(x, y)

	if math.Abs(m.v.X) < StopThreshold && math.Abs(m.v.Y) < StopThreshold {
		return false
	}
	// Momentum only coasts strictly inside the bounds on both axes; landing
	// on 0 or max on either axis ends it.
	if x <= 0 || x >= maxX || y <= 0 || y >= maxY {
		return false
	}
	return true
}

// smoothWheel interpolates from start to target over a fixed duration.
type smoothWheel struct {
	surface  Surface
	start    Point
	target   Point
	began    time.Time
	duration time.Duration
}

func (s *smoothWheel) step(now time.Time) bool {
	p := 1.0
	if s.duration > 0 {
		p = float64(now.Sub(s.began)) / float64(s.duration)
	}
	p = math.Max(0, math.Min(1, p))

	e := EaseOutCubic(p)
	s.surface.SetScroll(
		s.start.X+(s.target.X-s.start.X)*e,
		s.start.Y+(s.target.Y-s.start.Y)*e,
	)
	return p < 1
}

// EaseOutCubic maps progress t in [0, 1] onto a decelerating curve.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
