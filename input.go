package letterfield

import "github.com/hajimehoshi/ebiten/v2"

// PointerSource reports the pointer position in screen space. ok is false
// when no pointer is available (for example, a touch-only device between
// touches).
type PointerSource interface {
	CursorPosition() (x, y float64, ok bool)
}

// ebitenCursor reads the mouse through Ebitengine.
type ebitenCursor struct{}

func (ebitenCursor) CursorPosition() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y), true
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Type    EventType
	GlobalX float64
	GlobalY float64
	// LocalX and LocalY are relative to the title container.
	LocalX float64
	LocalY float64
}

// --- Per-pointer state ---

type pointerState struct {
	inside bool
	seen   bool
	lastX  float64
	lastY  float64
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	pointerMove  []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	case EventPointerEnter:
		h.reg.pointerEnter = removePointerHandler(h.reg.pointerEnter, h.id)
	case EventPointerLeave:
		h.reg.pointerLeave = removePointerHandler(h.reg.pointerLeave, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	h := pointerHandler{id: r.nextID, fn: fn}
	switch event {
	case EventPointerMove:
		r.pointerMove = append(r.pointerMove, h)
	case EventPointerEnter:
		r.pointerEnter = append(r.pointerEnter, h)
	case EventPointerLeave:
		r.pointerLeave = append(r.pointerLeave, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

// --- Scene-level event registration ---

// OnPointerMove registers a callback fired for every pointer move over the
// title, after the engine has seen it.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerMove, fn)
}

// OnPointerEnter registers a callback fired when the pointer enters the
// title bounds.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerEnter, fn)
}

// OnPointerLeave registers a callback fired when the pointer leaves the
// title bounds.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerLeave, fn)
}

// SetPointerSource replaces the pointer reader. Pass nil to ignore real input
// entirely, which headless tests do so that only injected events count.
func (s *Scene) SetPointerSource(src PointerSource) {
	s.source = src
}

// --- Input processing ---

// processInput is called from Scene.Update. Injected events take priority
// over the real pointer for the frame they are consumed in.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.source == nil {
		return
	}
	x, y, ok := s.source.CursorPosition()
	s.processPointer(x, y, ok)
}

// processPointer runs the enter/move/leave state machine for the title.
func (s *Scene) processPointer(x, y float64, present bool) {
	if s.title == nil {
		return
	}
	ps := &s.pointer
	inside := present && s.title.Bounds().Contains(x, y)
	moved := !ps.seen || x != ps.lastX || y != ps.lastY
	ps.seen = present
	ps.lastX, ps.lastY = x, y

	switch {
	case inside && !ps.inside:
		ps.inside = true
		s.fire(EventPointerEnter, x, y)
		s.fire(EventPointerMove, x, y)
	case inside && moved:
		s.fire(EventPointerMove, x, y)
	case !inside && ps.inside:
		ps.inside = false
		s.fire(EventPointerLeave, x, y)
	}
}

// --- Event dispatch ---

func (s *Scene) fire(event EventType, x, y float64) {
	local := s.title.ToLocal(x, y)
	ctx := PointerContext{
		Type:    event,
		GlobalX: x, GlobalY: y,
		LocalX: local.X, LocalY: local.Y,
	}

	var hs []pointerHandler
	switch event {
	case EventPointerMove:
		s.engine.PointerMove(local)
		hs = s.handlers.pointerMove
	case EventPointerEnter:
		hs = s.handlers.pointerEnter
	case EventPointerLeave:
		s.engine.PointerLeave()
		hs = s.handlers.pointerLeave
	}
	for _, h := range hs {
		h.fn(ctx)
	}
}
