package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/folio/internal/cache"
	"github.com/depeter/folio/internal/gallery"
	"github.com/depeter/folio/internal/input"
	"github.com/depeter/folio/internal/layout"
	"github.com/depeter/folio/internal/scroll"
)

type hitKind int

const (
	hitTile hitKind = iota
	hitMode
	hitTheme
)

// hitTarget is what lies under the pointer. Header buttons are interactive
// and keep their own clicks; tiles are dragged through.
type hitTarget struct {
	kind  hitKind
	index int // item index for tiles, mode for mode buttons
}

func (h hitTarget) Interactive() bool { return h.kind != hitTile }

type headerButton struct {
	rect   scroll.Rect
	label  string
	target hitTarget
}

const (
	buttonW   = 120
	buttonH   = 36
	buttonGap = 8
)

// GalleryScreen shows the catalog in the current mode. The window scrolls
// vertically in list and catalog mode; panoramic mode scrolls a container
// element on both axes instead, opening centred and zoomed out.
type GalleryScreen struct {
	catalog *gallery.Catalog
	images  *cache.ImageCache

	mode  layout.Mode
	grid  layout.Grid
	dirty bool
	w, h  float64

	page        *scroll.Viewport
	strip       *scroll.Element
	pageScroll  *scroll.DragScroller
	stripScroll *scroll.DragScroller
	router      *input.Router
	guard       *scroll.ClickGuard
	pointer     Pointer
	buttons     []headerButton
	hover       scroll.Target
	open        int

	textures []*ebiten.Image
	started  bool

	zoom   *zoomIntro
	centre bool // centre the panorama on the next relayout
	now    func() time.Time

	// OnOpen is called with the item a tile click navigates to.
	OnOpen        func(item int)
	OnModeChange  func(mode layout.Mode)
	OnThemeChange func(theme string)

	mu sync.Mutex
}

func NewGalleryScreen(c *gallery.Catalog, images *cache.ImageCache, mode layout.Mode, opts ...scroll.Option) *GalleryScreen {
	gs := &GalleryScreen{
		catalog:  c,
		images:   images,
		mode:     mode,
		dirty:    true,
		w:        1600,
		h:        1000,
		open:     -1,
		textures: make([]*ebiten.Image, len(c.Items)),
		centre:   mode == layout.ModePanoramic,
		now:      time.Now,
	}
	gs.page = scroll.NewViewport(gs.w, gs.h-layout.HeaderHeight)
	gs.strip = scroll.NewElement(scroll.Rect{})
	gs.pageScroll = scroll.New(gs.page, gs, opts...)
	gs.stripScroll = scroll.New(gs.strip, gs, opts...)

	gs.router = input.NewRouter(input.HitFunc(gs.hitTest), gs)
	gs.router.Attach(gs.stripScroll, gs.strip)
	gs.router.Attach(gs.pageScroll, nil)
	gs.guard = scroll.NewClickGuard(gs.pageScroll, gs.stripScroll)
	return gs
}

func (gs *GalleryScreen) Name() string { return "Gallery" }

func (gs *GalleryScreen) OnEnter() {
	if gs.started {
		return
	}
	gs.started = true
	for i, it := range gs.catalog.Items {
		idx := i
		gs.images.LoadAsync(it.Path, func(img *ebiten.Image) {
			gs.mu.Lock()
			defer gs.mu.Unlock()
			gs.textures[idx] = img
		})
	}
}

func (gs *GalleryScreen) OnExit() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.router.Reset()
	gs.pageScroll.Cancel()
	gs.stripScroll.Cancel()
}

func (gs *GalleryScreen) Resize(w, h int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.w, gs.h = float64(w), float64(h)
	gs.dirty = true
}

func (gs *GalleryScreen) Scrollers() []*scroll.DragScroller {
	return []*scroll.DragScroller{gs.pageScroll, gs.stripScroll}
}

func (gs *GalleryScreen) Update() (*ScreenTransition, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	keys := ReadShortcuts()
	if keys.ToggleTheme {
		gs.toggleTheme()
	}
	if keys.ModeChosen {
		gs.setMode(keys.Mode)
	} else if keys.CycleMode {
		gs.setMode(gs.mode.Next())
	}
	if gs.dirty {
		gs.relayout()
	}

	gs.handle(gs.pointer.Poll())
	gs.tick(gs.now())

	gs.hover = gs.hitTest(gs.pointer.last)
	ApplyCursor(gs.router.Cursor())

	if gs.open >= 0 {
		item := gs.open
		gs.open = -1
		if gs.OnOpen != nil {
			gs.OnOpen(item)
		}
	}
	return nil, nil
}

// tick advances every running animation by one frame.
func (gs *GalleryScreen) tick(now time.Time) {
	gs.pageScroll.Tick(now)
	gs.stripScroll.Tick(now)
	if gs.zoom != nil && !gs.zoom.step(now) {
		gs.zoom = nil
	}
}

// handle routes one frame of pointer events. Touching the panorama ends the
// intro zoom at once.
func (gs *GalleryScreen) handle(events []input.Event) {
	for _, ev := range events {
		if ev.Phase == input.PhaseDown || ev.Phase == input.PhaseWheel {
			gs.zoom = nil
			break
		}
	}
	gs.router.Handle(events)
}

// DispatchClick receives native and synthetic clicks from the router and
// the scrollers. It runs inside Update.
func (gs *GalleryScreen) DispatchClick(c scroll.Click) {
	t, ok := c.Target.(hitTarget)
	if !ok {
		return
	}
	switch t.kind {
	case hitTile:
		if !gs.guard.Allow() {
			return
		}
		if dst := gs.catalog.Target(t.index); dst >= 0 {
			gs.open = dst
		}
	case hitMode:
		gs.setMode(layout.Mode(t.index))
	case hitTheme:
		gs.toggleTheme()
	}
}

func (gs *GalleryScreen) setMode(m layout.Mode) {
	if m == gs.mode {
		return
	}
	gs.mode = m
	gs.zoom = nil
	gs.centre = m == layout.ModePanoramic
	gs.pageScroll.Cancel()
	gs.stripScroll.Cancel()
	gs.page.SetScroll(0, 0)
	gs.strip.SetScroll(0, 0)
	gs.relayout()
	if gs.OnModeChange != nil {
		gs.OnModeChange(m)
	}
}

func (gs *GalleryScreen) toggleTheme() {
	name := NextTheme(CurrentTheme())
	ApplyTheme(name)
	gs.layoutButtons()
	if gs.OnThemeChange != nil {
		gs.OnThemeChange(name)
	}
}

func (gs *GalleryScreen) relayout() {
	gs.dirty = false
	viewH := gs.h - layout.HeaderHeight

	groups := gs.catalog.Groups()
	idx := make([][]int, len(groups))
	for i, g := range groups {
		idx[i] = g.Items
	}

	titleW := float64(layout.TileW)
	if gs.mode == layout.ModeList {
		titleW = layout.ListTitleW
	}
	titles := make([]float64, len(gs.catalog.Items))
	for i, it := range gs.catalog.Items {
		titles[i] = layout.TitleLines(len(WrapLines(it.Title, titleW, FontSizeCaption)))
	}

	gs.grid = layout.Generate(layout.Input{
		Mode:         gs.mode,
		ViewW:        gs.w,
		ViewH:        viewH,
		Groups:       idx,
		TitleHeights: titles,
	})

	gs.page.SetWindowSize(gs.w, viewH)
	if gs.mode == layout.ModePanoramic {
		gs.page.SetDocumentSize(gs.w, viewH)
		gs.strip.SetRect(scroll.Rect{X: 0, Y: layout.HeaderHeight, W: gs.w, H: viewH})
		gs.strip.SetContentSize(gs.grid.Width, gs.grid.Height)
		if gs.centre {
			gs.centre = false
			gs.strip.SetScroll(gs.strip.MaxScrollX()/2, gs.strip.MaxScrollY()/2)
			if from := fitScale(gs.w, viewH, gs.grid.Width, gs.grid.Height); from < 1 {
				gs.zoom = newZoomIntro(from, gs.now())
			}
		}
	} else {
		gs.strip.SetRect(scroll.Rect{})
		gs.strip.SetContentSize(0, 0)
		gs.page.SetDocumentSize(gs.grid.Width, gs.grid.Height)
	}
	gs.layoutButtons()
}

func (gs *GalleryScreen) layoutButtons() {
	gs.buttons = gs.buttons[:0]
	x := gs.w - layout.Padding - buttonW
	y := float64(layout.HeaderHeight-buttonH) / 2
	gs.buttons = append(gs.buttons, headerButton{
		rect:   scroll.Rect{X: x, Y: y, W: buttonW, H: buttonH},
		label:  "Theme: " + CurrentTheme(),
		target: hitTarget{kind: hitTheme},
	})
	modes := layout.Modes()
	x -= buttonGap * 3
	for i := len(modes) - 1; i >= 0; i-- {
		x -= buttonW
		gs.buttons = append(gs.buttons, headerButton{
			rect:   scroll.Rect{X: x, Y: y, W: buttonW, H: buttonH},
			label:  modeLabel(modes[i]),
			target: hitTarget{kind: hitMode, index: int(modes[i])},
		})
		x -= buttonGap
	}
}

func modeLabel(m layout.Mode) string {
	switch m {
	case layout.ModeList:
		return "List"
	case layout.ModePanoramic:
		return "Panoramic"
	default:
		return "Catalog"
	}
}

// contentTransform maps content coordinates to window coordinates as
// window = content*s + offset. The panorama zooms about the centre of its
// container.
func (gs *GalleryScreen) contentTransform() (ox, oy, s float64) {
	if gs.mode != layout.ModePanoramic {
		return -gs.page.ScrollLeft(), layout.HeaderHeight - gs.page.ScrollTop(), 1
	}
	r := gs.strip.Rect
	ox, oy, s = r.X-gs.strip.ScrollLeft(), r.Y-gs.strip.ScrollTop(), 1
	if gs.zoom != nil {
		s = gs.zoom.scale
		cx, cy := r.X+r.W/2, r.Y+r.H/2
		ox = cx + (ox-cx)*s
		oy = cy + (oy-cy)*s
	}
	return ox, oy, s
}

func (gs *GalleryScreen) hitTest(p scroll.Point) scroll.Target {
	if p.Y < layout.HeaderHeight {
		for _, b := range gs.buttons {
			if b.rect.Contains(p) {
				return b.target
			}
		}
		return nil
	}
	ox, oy, s := gs.contentTransform()
	c := scroll.Point{X: (p.X - ox) / s, Y: (p.Y - oy) / s}
	for _, t := range gs.grid.Tiles {
		if t.Rect.Contains(c) || t.Title.Contains(c) {
			return hitTarget{kind: hitTile, index: t.Item}
		}
	}
	return nil
}

func (gs *GalleryScreen) Draw(dst *ebiten.Image) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	dst.Fill(ColorBackground)

	top := float64(layout.HeaderHeight)
	groups := gs.catalog.Groups()
	for _, x := range backdropColumns(len(groups), gs.w) {
		DrawFilledRect(dst, x, top, 1, gs.h-top, ColorSurface)
	}

	ox, oy, s := gs.contentTransform()
	if s != 1 {
		for _, t := range gs.grid.Tiles {
			r := scaleRect(t.Rect, ox, oy, s)
			if visible(r, 0, 0, top, gs.w, gs.h) {
				drawTileScaled(dst, r, gs.textures[t.Item])
			}
		}
		gs.drawHeader(dst)
		return
	}

	for _, hd := range gs.grid.Headings {
		if hd.Group < len(groups) && visible(hd.Rect, ox, oy, top, gs.w, gs.h) {
			DrawText(dst, groups[hd.Group].Name, hd.Rect.X+ox, hd.Rect.Y+oy+8, FontSizeHeading, ColorText)
		}
	}
	for _, t := range gs.grid.Tiles {
		if !visible(t.Rect, ox, oy, top, gs.w, gs.h) && !visible(t.Title, ox, oy, top, gs.w, gs.h) {
			continue
		}
		hovered := gs.hover == hitTarget{kind: hitTile, index: t.Item}
		drawTile(dst, t, gs.textures[t.Item], gs.catalog.Items[t.Item].Title, ox, oy, hovered)
	}

	if gs.mode == layout.ModePanoramic {
		gs.drawStripIndicator(dst)
	}
	gs.drawHeader(dst)
}

// drawStripIndicator shows how far across the panorama the view is.
func (gs *GalleryScreen) drawStripIndicator(dst *ebiten.Image) {
	maxX := gs.strip.MaxScrollX()
	if maxX <= 0 {
		return
	}
	trackW := gs.w - 2*layout.Padding
	y := gs.h - 12
	DrawFilledRect(dst, layout.Padding, y, trackW, 4, ColorSurfaceHover)
	thumbW := max(trackW*gs.strip.Rect.W/(maxX+gs.strip.Rect.W), 24)
	thumbX := layout.Padding + (trackW-thumbW)*gs.strip.ScrollLeft()/maxX
	DrawFilledRect(dst, thumbX, y, thumbW, 4, ColorPrimary)
}

func (gs *GalleryScreen) drawHeader(dst *ebiten.Image) {
	DrawFilledRect(dst, 0, 0, gs.w, layout.HeaderHeight, ColorSurface)

	title := gs.catalog.Title
	if title == "" {
		title = "Gallery"
	}
	DrawText(dst, title, layout.Padding, 16, FontSizeTitle, ColorText)
	tw, _ := MeasureText(title, FontSizeTitle)
	DrawText(dst, fmt.Sprintf("%d pictures", len(gs.catalog.Items)), layout.Padding+tw+16, 26, FontSizeSmall, ColorTextMuted)

	for _, b := range gs.buttons {
		r := b.rect
		icon := iconFunc(drawThemeIcon)
		active := false
		if b.target.kind == hitMode {
			m := layout.Mode(b.target.index)
			icon = modeIcon(m)
			active = m == gs.mode
		}
		drawHeaderButton(dst, b.label, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
			active, gs.hover == b.target, icon)
	}
}
