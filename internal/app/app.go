//go:build ebiten

package app

import (
	"fmt"
	"image"
	"time"

	"fernpond/internal/render"
	"fernpond/internal/scene"
	"fernpond/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// Game adapts a fern scene to the ebiten.Game interface. The scene is only
// re-rendered when its settings change; every frame just blits the result.
type Game struct {
	scene   *scene.Scene
	painter *render.ImagePainter
	hud     *ui.HUD
	backend render.Backend
	log     zerolog.Logger

	scale    int
	hudWidth int
	dirty    bool
}

// New constructs a Game for the provided scene.
func New(sc *scene.Scene, scale, hudWidth int, log zerolog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sc.Size()
	g := &Game{
		scene:    sc,
		painter:  render.NewImagePainter(size.W, size.H),
		hud:      ui.NewHUD(sc, hudWidth),
		log:      log,
		scale:    scale,
		hudWidth: hudWidth,
		dirty:    true,
	}
	g.backend = render.NewRaster(func(img *image.RGBA) error {
		g.painter.Upload(img)
		return nil
	})
	return g
}

// Reset re-renders the scene with the provided seed.
func (g *Game) Reset(seed int64) {
	g.scene.Reseed(seed)
	g.dirty = true
}

// Update handles per-frame input and re-renders the scene when needed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.scene.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if g.hud.Update(g.scene.Size().W * g.scale) {
		g.dirty = true
	}

	if g.dirty {
		g.dirty = false
		if err := g.scene.Render(g.backend); err != nil {
			g.log.Error().Err(err).Msg("render failed")
			return nil
		}
		stats := g.scene.LastStats()
		g.hud.SetStatus(
			fmt.Sprintf("seed %d", g.scene.Seed()),
			fmt.Sprintf("%d segments", stats.Segments),
			fmt.Sprintf("%d ripple rings", stats.Ellipses),
			stats.Elapsed.Round(time.Millisecond).String(),
			"R redraw  S new seed  Q quit",
		)
	}
	return nil
}

// Draw blits the last rendered image and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	g.hud.Draw(screen, g.scene.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.scene.Size()
	return s.W*g.scale + max(g.hudWidth, 0), s.H * g.scale
}
