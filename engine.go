package letterfield

import "github.com/tanema/gween/ease"

// Host is everything the engine needs from its surroundings. Scene provides
// the real implementation; tests use a fake.
type Host interface {
	// GlyphCount returns the number of glyphs in the title.
	GlyphCount() int
	// GlyphCenters returns each glyph's rendered center relative to the
	// title container, in index order.
	GlyphCenters() []Vec2
	// RequestFrame schedules fn for the next frame.
	RequestFrame(fn func()) FrameID
	// CancelFrame drops a scheduled callback.
	CancelFrame(id FrameID)
	// AnimateTo requests an eased transition of glyph i.
	AnimateTo(i int, tr Transition)
}

// State is the pointer-interaction state of an Engine.
type State uint8

const (
	StateIdle   State = iota // pointer outside the title; glyphs easing to rest
	StateActive              // pointer over the title; force applied every frame
)

// String returns "idle" or "active".
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// Engine drives the letter-field effect for one title. It is not safe for
// concurrent use; every method is expected to run on the game loop.
type Engine struct {
	cfg  Config
	host Host

	returnEase, leaveEase ease.TweenFunc

	state   State
	pointer Vec2
	centers []Vec2
	frame   FrameID

	// per-frame counters, reset by takeStats
	pulls, returns int
}

// NewEngine creates an idle engine. A nil host makes every method a no-op.
func NewEngine(cfg Config, host Host) *Engine {
	return &Engine{
		cfg:        cfg,
		host:       host,
		returnEase: ElasticOut(1, 0.3),
		leaveEase:  ElasticOut(1.2, 0.4),
	}
}

// Config returns the engine's tuning.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the current interaction state.
func (e *Engine) State() State {
	return e.state
}

// Pointer returns the last pointer position relative to the title container.
func (e *Engine) Pointer() Vec2 {
	return e.pointer
}

// Cached returns a copy of the cached glyph centers. It is either empty or
// holds exactly one entry per glyph.
func (e *Engine) Cached() []Vec2 {
	if len(e.centers) == 0 {
		return nil
	}
	out := make([]Vec2, len(e.centers))
	copy(out, e.centers)
	return out
}

// PendingFrame returns the handle of the scheduled evaluation, or 0.
func (e *Engine) PendingFrame() FrameID {
	return e.frame
}

// PointerMove records the pointer position (relative to the title container),
// enters the active state, fills the center cache if empty and replaces any
// scheduled evaluation with a fresh one.
func (e *Engine) PointerMove(p Vec2) {
	if e.host == nil {
		return
	}
	e.pointer = p
	if e.state != StateActive {
		Logger().Debug("letterfield: engine active", "x", p.X, "y", p.Y)
	}
	e.state = StateActive

	if len(e.centers) == 0 {
		e.cacheCenters()
	}

	if e.frame != 0 {
		e.host.CancelFrame(e.frame)
	}
	e.frame = e.host.RequestFrame(e.evaluate)
}

// PointerLeave enters the idle state and eases every glyph back to rest, each
// one starting LeaveStagger seconds after the previous.
func (e *Engine) PointerLeave() {
	if e.host == nil {
		return
	}
	if e.state == StateActive {
		Logger().Debug("letterfield: engine idle")
	}
	e.state = StateIdle

	n := e.host.GlyphCount()
	for i := 0; i < n; i++ {
		e.host.AnimateTo(i, toRest(e.cfg.LeaveDuration, e.leaveEase, float32(i)*e.cfg.LeaveStagger))
	}
	e.returns += n
}

// Resize drops the center cache. The next PointerMove rebuilds it before any
// force is computed.
func (e *Engine) Resize() {
	e.centers = e.centers[:0]
}

// cacheCenters fills the cache from the host. A host reporting a different
// number of centers than glyphs leaves the cache empty.
func (e *Engine) cacheCenters() {
	centers := e.host.GlyphCenters()
	n := e.host.GlyphCount()
	if len(centers) != n {
		if n > 0 {
			Logger().Warn("letterfield: glyph center count mismatch", "centers", len(centers), "glyphs", n)
		}
		e.centers = e.centers[:0]
		return
	}
	e.centers = append(e.centers[:0], centers...)
	Logger().Debug("letterfield: cached glyph centers", "count", n)
}

// evaluate is the per-frame callback: it applies the force field to every
// glyph and reschedules itself while the pointer stays over the title.
func (e *Engine) evaluate() {
	e.frame = 0
	if e.state != StateActive || len(e.centers) == 0 {
		return
	}

	closest := closestIndex(e.centers, e.pointer.X)
	for i, c := range e.centers {
		p := e.cfg.glyphPull(i, closest, c, e.pointer)
		if p.active(e.cfg.Threshold) {
			k := p.force * e.cfg.Pull
			e.host.AnimateTo(i, Transition{
				OffsetX:   p.dx * k,
				OffsetY:   p.dy * k,
				Scale:     1 + p.force*e.cfg.ScaleAmt,
				Duration:  e.cfg.ActiveDuration,
				Ease:      PowerOut2,
				Overwrite: true,
			})
			e.pulls++
			continue
		}
		e.host.AnimateTo(i, toRest(e.cfg.ReturnDuration, e.returnEase, 0))
		e.returns++
	}

	if e.state == StateActive {
		e.frame = e.host.RequestFrame(e.evaluate)
	}
}

// toRest is an overwriting transition back to Rest, opacity included.
func toRest(duration float32, fn ease.TweenFunc, delay float32) Transition {
	return Transition{
		Scale:     1,
		Alpha:     1,
		Fade:      true,
		Duration:  duration,
		Ease:      fn,
		Delay:     delay,
		Overwrite: true,
	}
}

// takeStats returns and resets the transition counters.
func (e *Engine) takeStats() (pulls, returns int) {
	pulls, returns = e.pulls, e.returns
	e.pulls, e.returns = 0, 0
	return pulls, returns
}
