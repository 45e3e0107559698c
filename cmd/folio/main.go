package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/folio/assets/icon"
	"github.com/depeter/folio/internal/app"
	"github.com/depeter/folio/internal/cache"
	"github.com/depeter/folio/internal/config"
	"github.com/depeter/folio/internal/constants"
	"github.com/depeter/folio/internal/gallery"
	"github.com/depeter/folio/internal/ui"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if len(os.Args) > 1 {
		cfg.Gallery.Dir = os.Args[1]
	}

	// Init fonts
	if err := ui.InitFonts(nil); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}
	if !ui.ApplyTheme(cfg.UI.Theme) {
		log.Printf("Unknown theme %q, using %s", cfg.UI.Theme, ui.CurrentTheme())
	}

	// Scan the gallery directory
	catalog, err := gallery.Load(cfg.Gallery.Dir)
	if err != nil {
		log.Fatalf("Failed to load gallery: %v", err)
	}
	if cfg.Gallery.Title != "" {
		catalog.Title = cfg.Gallery.Title
	}
	log.Printf("Loaded %d pictures in %d groups from %s", len(catalog.Items), len(catalog.Groups()), catalog.Dir)

	imgCache := cache.NewImageCache(4)
	game := app.NewGame(cfg, imgCache)
	sf := &screenFactory{game: game, cfg: cfg, imgCache: imgCache, catalog: catalog}
	sf.pushSplash()

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle(windowTitle(catalog))
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)
	ebiten.SetTPS(constants.TicksPerSecond)

	err = ebiten.RunGame(game)
	game.Shutdown()
	if err != nil {
		log.Fatal(err)
	}
}

func windowTitle(c *gallery.Catalog) string {
	if c.Title == "" {
		return "Folio"
	}
	return c.Title + " - Folio"
}
