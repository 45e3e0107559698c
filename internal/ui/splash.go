package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/folio/internal/cache"
)

// splashMinFrames keeps the splash up long enough to read on fast loads.
const splashMinFrames = 30

// SplashScreen preloads every picture and shows progress, then replaces
// itself with the screen built by Next.
type SplashScreen struct {
	images     *cache.ImageCache
	title      string
	paths      []string
	totalBytes int64
	frames     int
	w, h       float64
	started    bool

	Next func() Screen
}

func NewSplashScreen(title string, images *cache.ImageCache, paths []string, totalBytes int64) *SplashScreen {
	return &SplashScreen{
		images:     images,
		title:      title,
		paths:      paths,
		totalBytes: totalBytes,
		w:          1600,
		h:          1000,
	}
}

func (s *SplashScreen) Name() string { return "Splash" }

func (s *SplashScreen) OnEnter() {
	if s.started {
		return
	}
	s.started = true
	s.images.Expect(s.paths, s.totalBytes)
	for _, p := range s.paths {
		s.images.LoadAsync(p, func(*ebiten.Image) {})
	}
}

func (s *SplashScreen) OnExit() {}

func (s *SplashScreen) Resize(w, h int) {
	s.w, s.h = float64(w), float64(h)
}

func (s *SplashScreen) Update() (*ScreenTransition, error) {
	s.frames++
	if s.frames < splashMinFrames || s.Next == nil {
		return nil, nil
	}
	if !s.images.Progress().Done() {
		return nil, nil
	}
	return &ScreenTransition{Type: TransitionReplace, Screen: s.Next()}, nil
}

func (s *SplashScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)
	p := s.images.Progress()

	cx, cy := s.w/2, s.h/2
	title := s.title
	if title == "" {
		title = "Gallery"
	}
	DrawTextCentered(dst, title, cx, cy-80, FontSizeTitle, ColorText)

	const barW, barH = 600.0, 8.0
	bx := cx - barW/2
	DrawFilledRect(dst, bx, cy-barH/2, barW, barH, ColorSurface)
	DrawFilledRect(dst, bx, cy-barH/2, barW*p.Fraction(), barH, ColorPrimary)

	status := fmt.Sprintf("%d / %d pictures", p.Loaded+p.Failed, p.Total)
	if p.TotalBytes > 0 {
		status += fmt.Sprintf("  ·  %s of %s", humanize.Bytes(uint64(p.Bytes)), humanize.Bytes(uint64(p.TotalBytes)))
	}
	DrawTextCentered(dst, status, cx, cy+32, FontSizeSmall, ColorTextSecondary)

	switch {
	case p.Failed > 0:
		msg := fmt.Sprintf("%d failed: %s", p.Failed, p.LastErr)
		DrawTextWrapped(dst, msg, cx-barW/2, cy+56, barW, FontSizeCaption, ColorError)
	case p.Done():
		DrawTextCentered(dst, "Ready", cx, cy+64, FontSizeBody, ColorSuccess)
	}
}
