package letterfield

// FrameID identifies a callback queued with a FrameScheduler. The zero value
// never refers to a queued callback.
type FrameID uint32

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameScheduler queues callbacks for the next tick, in the manner of a
// browser's requestAnimationFrame. Callbacks requested while a tick is running
// are deferred to the following tick.
type FrameScheduler struct {
	queue  []frameRequest
	run    []frameRequest // reused buffer for the tick in progress
	nextID FrameID
	frames uint64
}

// RequestFrame queues fn for the next Tick and returns a handle for
// CancelFrame.
func (f *FrameScheduler) RequestFrame(fn func()) FrameID {
	f.nextID++
	if f.nextID == 0 {
		f.nextID++
	}
	f.queue = append(f.queue, frameRequest{id: f.nextID, fn: fn})
	return f.nextID
}

// CancelFrame removes a queued callback. Unknown or already-run handles are
// ignored.
func (f *FrameScheduler) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i := range f.queue {
		if f.queue[i].id == id {
			copy(f.queue[i:], f.queue[i+1:])
			f.queue[len(f.queue)-1] = frameRequest{}
			f.queue = f.queue[:len(f.queue)-1]
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next Tick.
func (f *FrameScheduler) Pending() int {
	return len(f.queue)
}

// Frames returns the number of ticks run so far.
func (f *FrameScheduler) Frames() uint64 {
	return f.frames
}

// Tick runs every callback queued before the call, in request order.
func (f *FrameScheduler) Tick() {
	f.frames++
	if len(f.queue) == 0 {
		return
	}
	f.run = append(f.run[:0], f.queue...)
	for i := range f.queue {
		f.queue[i] = frameRequest{}
	}
	f.queue = f.queue[:0]
	for i := range f.run {
		f.run[i].fn()
		f.run[i] = frameRequest{}
	}
}
