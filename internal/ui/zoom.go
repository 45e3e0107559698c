package ui

import (
	"time"

	"github.com/depeter/folio/internal/scroll"
)

const (
	zoomHold     = time.Second
	zoomDuration = 1500 * time.Millisecond
)

// zoomIntro shows the whole panorama when it opens, holds, then eases back
// to full size. It is stepped once per frame like the scroll animations.
type zoomIntro struct {
	from  float64
	start time.Time
	scale float64
}

func newZoomIntro(from float64, now time.Time) *zoomIntro {
	return &zoomIntro{from: from, start: now, scale: from}
}

// step moves the scale to its value at now and reports whether the intro is
// still running.
func (z *zoomIntro) step(now time.Time) bool {
	elapsed := now.Sub(z.start) - zoomHold
	if elapsed <= 0 {
		z.scale = z.from
		return true
	}
	t := min(float64(elapsed)/float64(zoomDuration), 1)
	z.scale = z.from + (1-z.from)*scroll.EaseOutCubic(t)
	return t < 1
}

// fitScale is the scale that shows a content box of cw x ch inside a view of
// vw x vh. It is never above 1.
func fitScale(vw, vh, cw, ch float64) float64 {
	if cw <= 0 || ch <= 0 {
		return 1
	}
	return min(vw/cw, vh/ch, 1)
}
