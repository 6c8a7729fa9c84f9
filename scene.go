package letterfield

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is the top-level object that owns the title, its engine, the frame
// scheduler, the tweens and the input state.
type Scene struct {
	title  *Title
	engine *Engine
	tweens *Animator
	frames FrameScheduler
	debug  bool

	// ClearColor fills the screen before the title is drawn when no
	// Backdrop is set.
	ClearColor Color
	// Backdrop, when set, supplies the fill color each frame.
	Backdrop *Backdrop
	// OnResize runs after the scene has re-laid out the title for a new
	// screen size.
	OnResize func(width, height int)
	// ScreenshotDir is where Screenshot writes PNGs. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string
	// ScreenshotPrefix starts every screenshot file name. Empty means
	// "letterfield".
	ScreenshotPrefix string

	width, height int
	updateFunc    func() error
	drawFunc      func(screen *ebiten.Image)

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	source      PointerSource
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	screenshotQueue []string
}

// NewScene creates a scene for title using cfg. The title is decomposed
// immediately. A nil title gives a scene where every interaction is a no-op.
func NewScene(title *Title, cfg Config) *Scene {
	s := &Scene{
		title:  title,
		tweens: NewAnimator(),
		source: ebitenCursor{},
	}
	title.Decompose()
	s.engine = NewEngine(cfg, sceneHost{s})
	return s
}

// Title returns the scene's title.
func (s *Scene) Title() *Title {
	return s.title
}

// Engine returns the letter-field engine driving the title.
func (s *Scene) Engine() *Engine {
	return s.engine
}

// Animator returns the scene's tween animator. Callers may animate their own
// Transforms with it; they advance with the title's glyphs.
func (s *Scene) Animator() *Animator {
	return s.tweens
}

// Frames returns the scene's frame scheduler.
func (s *Scene) Frames() *FrameScheduler {
	return &s.frames
}

// SetUpdateFunc sets a callback run by Run before each Scene.Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDrawFunc sets a callback run by Run after each Scene.Draw, for overlays
// drawn above the title.
func (s *Scene) SetDrawFunc(fn func(screen *ebiten.Image)) {
	s.drawFunc = fn
}

// SetDebugMode enables or disables per-frame stats logging.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update processes input, runs scheduled frame callbacks and advances tweens.
func (s *Scene) Update() {
	s.UpdateDelta(float32(1.0 / float64(ebiten.TPS())))
}

// UpdateDelta is Update with an explicit time step in seconds.
func (s *Scene) UpdateDelta(dt float32) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.frames.Tick()
	s.tweens.Update(dt)

	if s.debug {
		s.debugLog(s.collectStats())
	}
}

// Resize re-lays out the title across the new width and invalidates the
// engine's glyph center cache. Calls with an unchanged size do nothing.
func (s *Scene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	if s.title != nil {
		b := s.title.Bounds()
		s.title.SetBounds(Rect{X: 0, Y: b.Y, Width: float64(width), Height: b.Height})
	}
	s.engine.Resize()
	if s.OnResize != nil {
		s.OnResize(width, height)
	}
}

// Size returns the last size passed to Resize.
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

// Draw fills the screen and renders every glyph with its current transform.
// Only TTF fonts can be drawn; other fonts are measured but not rendered.
func (s *Scene) Draw(screen *ebiten.Image) {
	fill := s.ClearColor
	if s.Backdrop != nil {
		fill = s.Backdrop.Color()
	}
	screen.Fill(fill.RGBA())

	if s.title == nil {
		return
	}
	f, ok := s.title.Font.(*TTFFont)
	if !ok {
		return
	}
	origin := s.title.Bounds()
	row := s.title.Transform
	pivot := Vec2{X: origin.X + origin.Width/2, Y: origin.Y + origin.Height/2}
	c := s.title.Color
	for _, g := range s.title.Glyphs() {
		if g.IsSpace() {
			continue
		}
		center := g.Box.Center()
		op := &text.DrawOptions{}
		op.GeoM.Translate(-g.Box.Width/2, -g.Box.Height/2)
		op.GeoM.Scale(g.Transform.Scale, g.Transform.Scale)
		op.GeoM.Translate(
			origin.X+center.X+g.Transform.OffsetX,
			origin.Y+center.Y+g.Transform.OffsetY,
		)
		op.GeoM.Translate(-pivot.X, -pivot.Y)
		op.GeoM.Scale(row.Scale, row.Scale)
		op.GeoM.Translate(pivot.X+row.OffsetX, pivot.Y+row.OffsetY)

		a := float32(clamp(c.A*row.Alpha*g.Transform.Alpha, 0, 1))
		op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
		op.LineSpacing = f.LineHeight()
		text.Draw(screen, string(g.Char), f.Face(), op)
	}
}

// sceneHost adapts a Scene to the engine's Host interface.
type sceneHost struct {
	s *Scene
}

func (h sceneHost) GlyphCount() int                { return h.s.title.Len() }
func (h sceneHost) GlyphCenters() []Vec2           { return h.s.title.GlyphCenters() }
func (h sceneHost) RequestFrame(fn func()) FrameID { return h.s.frames.RequestFrame(fn) }
func (h sceneHost) CancelFrame(id FrameID)         { h.s.frames.CancelFrame(id) }

func (h sceneHost) AnimateTo(i int, tr Transition) {
	gs := h.s.title.Glyphs()
	if i < 0 || i >= len(gs) {
		return
	}
	h.s.tweens.AnimateTo(&gs[i].Transform, tr)
}
