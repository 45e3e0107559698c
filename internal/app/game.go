package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/folio/internal/cache"
	"github.com/depeter/folio/internal/config"
	"github.com/depeter/folio/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Cache   *cache.ImageCache
	Screens *ui.ScreenManager

	Width, Height int
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, imgCache *cache.ImageCache) *Game {
	return &Game{
		Config:  cfg,
		Cache:   imgCache,
		Screens: ui.NewScreenManager(),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
	}
}

// Update runs one animation frame.
func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	return g.Screens.Update()
}

// Shutdown exits every screen and releases the decoded pictures once the
// run loop has returned.
func (g *Game) Shutdown() {
	g.Screens.ClearStack()
	g.Cache.Clear()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Screens.Current())
}

// Layout follows the window size so resizing reflows the gallery.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.Width, g.Height
	}
	g.Width, g.Height = outsideWidth, outsideHeight
	g.Screens.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
