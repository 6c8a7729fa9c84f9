package letterfield

// syntheticPointerEvent represents a single injected pointer sample in screen
// coordinates. present=false models the pointer leaving the window.
type syntheticPointerEvent struct {
	screenX, screenY float64
	present          bool
}

// InjectMove queues a pointer sample at the given screen coordinates. The
// event is consumed on the next frame's processInput call.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		present: true,
	})
}

// InjectLeave queues a sample with no pointer present, which leaves the title
// if the pointer was over it.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{})
}

// InjectSweep queues a straight pointer path from (fromX, fromY) to
// (toX, toY), one sample per frame, including both endpoints. Minimum frames
// is 2.
func (s *Scene) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.screenX, evt.screenY, evt.present)
	return true
}
