package main

import (
	"log"

	"github.com/depeter/folio/internal/app"
	"github.com/depeter/folio/internal/cache"
	"github.com/depeter/folio/internal/config"
	"github.com/depeter/folio/internal/gallery"
	"github.com/depeter/folio/internal/layout"
	"github.com/depeter/folio/internal/scroll"
	"github.com/depeter/folio/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game     *app.Game
	cfg      *config.Config
	imgCache *cache.ImageCache
	catalog  *gallery.Catalog
}

func (sf *screenFactory) pushSplash() {
	var total int64
	for _, it := range sf.catalog.Items {
		total += it.Size
	}
	splash := ui.NewSplashScreen(sf.catalog.Title, sf.imgCache, sf.catalog.Paths(), total)
	splash.Next = func() ui.Screen { return sf.newGallery() }
	sf.game.Screens.Replace(splash)
}

func (sf *screenFactory) newGallery() ui.Screen {
	mode, ok := layout.ParseMode(sf.cfg.UI.Mode)
	if !ok {
		mode = layout.ModeCatalog
	}
	gs := ui.NewGalleryScreen(sf.catalog, sf.imgCache, mode, sf.scrollOptions()...)
	gs.OnOpen = func(item int) {
		sf.pushViewer(item)
	}
	gs.OnModeChange = func(m layout.Mode) {
		sf.cfg.UI.Mode = m.String()
		sf.save()
	}
	gs.OnThemeChange = func(theme string) {
		sf.cfg.UI.Theme = theme
		sf.save()
	}
	return gs
}

func (sf *screenFactory) pushViewer(item int) {
	if item < 0 || item >= len(sf.catalog.Items) {
		return
	}
	sf.game.Screens.Push(ui.NewViewerScreen(sf.catalog.Items[item], sf.imgCache))
}

func (sf *screenFactory) scrollOptions() []scroll.Option {
	sc := sf.cfg.Scroll
	return []scroll.Option{
		scroll.WithWheelSpeed(sc.WheelSpeed),
		scroll.WithSmoothWheel(sc.SmoothWheel),
		scroll.WithFriction(sc.Friction),
	}
}

func (sf *screenFactory) save() {
	if err := sf.cfg.Save(); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}
