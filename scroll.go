package letterfield

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ExpoOut is the scroller's default ease, 1 - 2^(-10t).
var ExpoOut ease.TweenFunc = func(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	return b + c*float32(1-math.Pow(2, -10*float64(t/d)))
}

// ScrollRegion reports scroll progress through a span of the page, in the
// manner of a scroll trigger. Progress is 0 before Start, 1 after End and
// grows linearly in between.
//
// With Scrub set, Progress trails the scroll position: each change eases the
// reported progress toward the new value over Scrub seconds, advanced by
// Update. Enter and leave callbacks always fire on the raw position.
type ScrollRegion struct {
	Name       string
	Start, End float64 // scroll offsets in pixels
	Scrub      float32 // seconds for progress to catch up; 0 follows exactly

	OnEnter     func(r *ScrollRegion) // forward past Start
	OnLeave     func(r *ScrollRegion) // forward past End
	OnEnterBack func(r *ScrollRegion) // backward past End
	OnLeaveBack func(r *ScrollRegion) // backward past Start
	OnUpdate    func(r *ScrollRegion) // progress changed

	progress float64 // reported, possibly scrubbed
	raw      float64 // unsmoothed progress at the last Sync
	scrub    *gween.Tween
	zone     int // -1 before, 0 inside, 1 after
	synced   bool
}

// Progress returns the reported progress in [0, 1].
func (r *ScrollRegion) Progress() float64 {
	return r.progress
}

// RawProgress returns the unsmoothed progress at the last scroll offset.
func (r *ScrollRegion) RawProgress() float64 {
	return r.raw
}

// Scrubbing reports whether the reported progress is still catching up.
func (r *ScrollRegion) Scrubbing() bool {
	return r.scrub != nil
}

// IsActive reports whether the last scroll offset was inside the region.
func (r *ScrollRegion) IsActive() bool {
	return r.synced && r.zone == 0
}

func (r *ScrollRegion) zoneOf(y float64) int {
	switch {
	case y < r.Start:
		return -1
	case y > r.End:
		return 1
	default:
		return 0
	}
}

func (r *ScrollRegion) progressAt(y float64) float64 {
	if r.End <= r.Start {
		if y >= r.Start {
			return 1
		}
		return 0
	}
	return clamp((y-r.Start)/(r.End-r.Start), 0, 1)
}

// Sync updates the region for scroll offset y and fires callbacks for every
// boundary crossed since the previous call. The first call only records the
// starting position, except that OnUpdate fires if progress is non-zero.
func (r *ScrollRegion) Sync(y float64) {
	zone := r.zoneOf(y)
	p := r.progressAt(y)

	if !r.synced {
		r.synced = true
		r.zone = zone
		r.raw = p
		r.setProgress(p)
		return
	}

	prev := r.zone
	r.zone = zone
	changed := p != r.raw
	r.raw = p

	switch {
	case zone > prev:
		if prev < 0 {
			r.fire(r.OnEnter)
		}
		if zone > 0 {
			r.fire(r.OnLeave)
		}
	case zone < prev:
		if prev > 0 {
			r.fire(r.OnEnterBack)
		}
		if zone < 0 {
			r.fire(r.OnLeaveBack)
		}
	}
	if !changed {
		return
	}
	if r.Scrub <= 0 {
		r.setProgress(p)
		return
	}
	r.scrub = gween.New(float32(r.progress), float32(p), r.Scrub, PowerOut3)
}

// Update advances a scrubbing region by dt seconds. Regions without Scrub
// ignore it.
func (r *ScrollRegion) Update(dt float32) {
	if r.scrub == nil {
		return
	}
	v, done := r.scrub.Update(dt)
	p := float64(v)
	if done {
		p = r.raw
		r.scrub = nil
	}
	r.setProgress(p)
}

func (r *ScrollRegion) setProgress(p float64) {
	if p == r.progress {
		return
	}
	r.progress = p
	r.fire(r.OnUpdate)
}

func (r *ScrollRegion) fire(fn func(*ScrollRegion)) {
	if fn != nil {
		fn(r)
	}
}

// SmoothScroller eases the page offset toward a wheel-driven target and
// keeps its regions in sync.
type SmoothScroller struct {
	Duration        float32 // seconds to reach a new target
	Ease            ease.TweenFunc
	WheelMultiplier float64
	Limit           float64 // maximum offset; 0 disables scrolling

	current float64
	target  float64
	tween   *gween.Tween
	regions []*ScrollRegion
}

// NewSmoothScroller returns a scroller with a 1.2s expo ease over [0, limit].
func NewSmoothScroller(limit float64) *SmoothScroller {
	return &SmoothScroller{
		Duration:        1.2,
		Ease:            ExpoOut,
		WheelMultiplier: 1,
		Limit:           limit,
	}
}

// AddRegion registers a region and syncs it to the current offset.
func (s *SmoothScroller) AddRegion(r *ScrollRegion) {
	s.regions = append(s.regions, r)
	r.Sync(s.current)
}

// Offset returns the current, eased scroll offset.
func (s *SmoothScroller) Offset() float64 {
	return s.current
}

// Target returns the offset the scroller is easing toward.
func (s *SmoothScroller) Target() float64 {
	return s.target
}

// Scrolling reports whether an ease is in progress.
func (s *SmoothScroller) Scrolling() bool {
	return s.tween != nil
}

// AddWheel moves the target by delta wheel units (positive scrolls down) and
// restarts the ease from the current offset.
func (s *SmoothScroller) AddWheel(delta float64) {
	if delta == 0 {
		return
	}
	s.ScrollTo(s.target + delta*s.WheelMultiplier)
}

// ScrollTo eases toward y, clamped to [0, Limit].
func (s *SmoothScroller) ScrollTo(y float64) {
	y = clamp(y, 0, s.Limit)
	if y == s.target && s.tween == nil {
		return
	}
	s.target = y
	fn := s.Ease
	if fn == nil {
		fn = ExpoOut
	}
	s.tween = gween.New(float32(s.current), float32(y), s.Duration, fn)
}

// Jump moves to y immediately without easing.
func (s *SmoothScroller) Jump(y float64) {
	y = clamp(y, 0, s.Limit)
	s.target = y
	s.current = y
	s.tween = nil
	s.sync()
}

// Update advances the ease by dt seconds, syncs every region to the new
// offset and advances scrubbing regions.
func (s *SmoothScroller) Update(dt float32) {
	if s.tween != nil {
		v, done := s.tween.Update(dt)
		s.current = float64(v)
		if done {
			s.current = s.target
			s.tween = nil
		}
		s.sync()
	}
	for _, r := range s.regions {
		r.Update(dt)
	}
}

func (s *SmoothScroller) sync() {
	for _, r := range s.regions {
		r.Sync(s.current)
	}
}
