package letterfield

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultScreenshotDir is where Screenshot writes when Scene.ScreenshotDir
// is empty.
const DefaultScreenshotDir = "screenshots"

// Screenshot queues a labeled capture of the next drawn frame. Files are
// named "<prefix>_<time>_f<frame>_<label>.png", where the prefix is
// Scene.ScreenshotPrefix (default "letterfield") and the frame is the
// scheduler's tick count, so captures from a test script sort in order.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label.
// Called from Run after the frame is drawn.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	dir := s.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		Logger().Warn("letterfield: screenshot dir", "dir", dir, "error", err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := frameImage(pixels, b.Dx(), b.Dy())

	stamp := time.Now()
	frame := s.frames.Frames()
	for _, label := range s.screenshotQueue {
		path := filepath.Join(dir, screenshotName(s.ScreenshotPrefix, stamp, frame, label))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("letterfield: screenshot", "error", err)
			continue
		}
		Logger().Info("letterfield: screenshot", "path", path, "frame", frame)
	}
}

// frameImage wraps premultiplied pixels read back from the GPU and converts
// them to straight alpha.
func frameImage(pixels []byte, w, h int) *image.NRGBA {
	src := &image.RGBA{Pix: pixels, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewNRGBA(src.Rect)
	draw.Draw(dst, dst.Rect, src, image.Point{}, draw.Src)
	return dst
}

func screenshotName(prefix string, at time.Time, frame uint64, label string) string {
	if prefix = fileSafe(prefix); prefix == "" {
		prefix = "letterfield"
	}
	name := fileSafe(label)
	if name == "" {
		name = "unlabeled"
	}
	return fmt.Sprintf("%s_%s_f%06d_%s.png", prefix, at.Format("20060102_150405"), frame, name)
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// fileSafe trims s and maps every rune outside [A-Za-z0-9.-] to '_'.
func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, strings.TrimSpace(s))
}
