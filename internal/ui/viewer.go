package ui

import (
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/folio/internal/cache"
	"github.com/depeter/folio/internal/gallery"
	"github.com/depeter/folio/internal/input"
)

// ViewerScreen shows one picture fitted to the window. Back, a click or a
// tap returns to the gallery.
type ViewerScreen struct {
	item   gallery.Item
	images *cache.ImageCache
	img    *ebiten.Image
	w, h   float64

	touchBuf []ebiten.TouchID
	mu       sync.Mutex
}

func NewViewerScreen(item gallery.Item, images *cache.ImageCache) *ViewerScreen {
	return &ViewerScreen{item: item, images: images, w: 1600, h: 1000}
}

func (vs *ViewerScreen) Name() string { return "Viewer: " + vs.item.Title }

func (vs *ViewerScreen) OnEnter() {
	vs.images.LoadAsync(vs.item.Path, func(img *ebiten.Image) {
		vs.mu.Lock()
		vs.img = img
		vs.mu.Unlock()
	})
}

func (vs *ViewerScreen) OnExit() {}

func (vs *ViewerScreen) Resize(w, h int) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	vs.w, vs.h = float64(w), float64(h)
}

func (vs *ViewerScreen) Update() (*ScreenTransition, error) {
	ApplyCursor(input.CursorDefault)
	if ReadShortcuts().Back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	if _, _, clicked := MouseJustClicked(); clicked {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	vs.touchBuf = inpututil.AppendJustPressedTouchIDs(vs.touchBuf[:0])
	if len(vs.touchBuf) > 0 {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

func (vs *ViewerScreen) Draw(dst *ebiten.Image) {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	dst.Fill(ColorBackground)

	const margin, captionH = 40.0, 56.0
	boxW, boxH := vs.w-2*margin, vs.h-2*margin-captionH
	if vs.img != nil {
		DrawImageFit(dst, vs.img, margin, margin, boxW, boxH)
	} else {
		DrawTextCentered(dst, "Loading…", vs.w/2, margin+boxH/2, FontSizeHeading, ColorTextMuted)
	}

	y := vs.h - margin - captionH + 16
	DrawText(dst, truncateText(vs.item.Title, boxW*0.6, FontSizeHeading), margin, y, FontSizeHeading, ColorText)

	info := vs.item.File
	if vs.img != nil {
		b := vs.img.Bounds()
		info += fmt.Sprintf("  ·  %d×%d", b.Dx(), b.Dy())
	}
	if vs.item.Size > 0 {
		info += "  ·  " + humanize.Bytes(uint64(vs.item.Size))
	}
	iw, _ := MeasureText(info, FontSizeSmall)
	DrawText(dst, info, vs.w-margin-iw, y+6, FontSizeSmall, ColorTextSecondary)
}
