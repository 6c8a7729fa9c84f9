package letterfield

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the FPS overlay re-reads the counters.
const fpsRefresh = 0.5

// fpsOverlay draws the current FPS and TPS in the top-left corner. The label
// is re-rendered at most every fpsRefresh seconds.
type fpsOverlay struct {
	img     *ebiten.Image
	label   string
	elapsed float32
	dirty   bool
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{dirty: true}
}

func (o *fpsOverlay) update(dt float32) {
	o.elapsed += dt
	if o.elapsed < fpsRefresh && o.label != "" {
		return
	}
	o.elapsed = 0
	o.label = formatFPS(ebiten.ActualFPS(), ebiten.ActualTPS())
	o.dirty = true
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
	}
	if o.dirty {
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.label)
		o.dirty = false
	}
	screen.DrawImage(o.img, nil)
}

func formatFPS(fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}
