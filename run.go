package letterfield

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts a Scene to ebiten.Game for Run.
type game struct {
	scene *Scene
	fps   *fpsOverlay
}

func (g *game) Update() error {
	if g.scene.updateFunc != nil {
		if err := g.scene.updateFunc(); err != nil {
			return err
		}
	}
	g.scene.Update()
	if g.fps != nil {
		g.fps.update(float32(1.0 / float64(ebiten.TPS())))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.scene.drawFunc != nil {
		g.scene.drawFunc(screen)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.scene.flushScreenshots(screen)
}

func (g *game) Layout(w, h int) (int, int) {
	g.scene.Resize(w, h)
	return w, h
}

// Run opens a resizable window and drives scene until the window closes or
// the update func returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("letterfield: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	scene.Resize(cfg.Width, cfg.Height)

	Logger().Info("letterfield: starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	g := &game{scene: scene}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("letterfield: run: %w", err)
	}
	return nil
}
