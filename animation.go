package letterfield

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transform is the display-affecting state of a glyph (or any other animated
// element): an offset from its rest position, a uniform scale about its
// center and an opacity.
type Transform struct {
	OffsetX, OffsetY float64
	Scale            float64
	Alpha            float64
}

// Rest is the untransformed, fully opaque state.
var Rest = Transform{Scale: 1, Alpha: 1}

// AtRest reports whether t is within eps of Rest.
func (t Transform) AtRest(eps float64) bool {
	return math.Abs(t.OffsetX) <= eps && math.Abs(t.OffsetY) <= eps &&
		math.Abs(t.Scale-1) <= eps && math.Abs(t.Alpha-1) <= eps
}

// Transition describes an eased move of a Transform toward a target. Alpha
// is only animated when Fade is set; otherwise the target keeps its opacity.
type Transition struct {
	OffsetX, OffsetY float64
	Scale            float64
	Alpha            float64
	Fade             bool
	Duration         float32 // seconds
	Ease             ease.TweenFunc
	Delay            float32 // seconds before the tween starts
	Overwrite        bool    // drop in-flight tweens of the same target

	// OnComplete runs from Animator.Update once the transition lands. It
	// does not run for transitions dropped by an overwrite.
	OnComplete func()
}

// Target returns the transform the transition ends at. Alpha is zero unless
// the transition fades.
func (tr Transition) Target() Transform {
	t := Transform{OffsetX: tr.OffsetX, OffsetY: tr.OffsetY, Scale: tr.Scale}
	if tr.Fade {
		t.Alpha = tr.Alpha
	}
	return t
}

// land writes the end values into t, leaving Alpha alone unless fading.
func (tr Transition) land(t *Transform) {
	t.OffsetX, t.OffsetY, t.Scale = tr.OffsetX, tr.OffsetY, tr.Scale
	if tr.Fade {
		t.Alpha = tr.Alpha
	}
}

// GSAP-named eases. PowerOut1 is GSAP's default; PowerOut2 is used for
// pulls and PowerOut3 for the title intro.
var (
	PowerOut1 ease.TweenFunc = ease.OutQuad
	PowerOut2 ease.TweenFunc = ease.OutCubic
	PowerOut3 ease.TweenFunc = ease.OutQuart
)

// ElasticOut returns a springy ease-out that overshoots the target and
// settles. amplitude below 1 is treated as 1; period is the oscillation
// length as a fraction of the duration.
func ElasticOut(amplitude, period float64) ease.TweenFunc {
	a := math.Max(amplitude, 1)
	p := period / math.Min(amplitude, 1)
	shift := p / (2 * math.Pi) * math.Asin(1/a)
	return func(t, b, c, d float32) float32 {
		if d <= 0 || t >= d {
			return b + c
		}
		x := float64(t / d)
		v := a*math.Pow(2, -10*x)*math.Sin((x-shift)*2*math.Pi/p) + 1
		return b + c*float32(v)
	}
}

// TweenGroup animates the three Transform fields of one target toward a
// Transition. The start values are sampled when the delay expires, so a
// delayed group picks up whatever the target looks like at that moment.
type TweenGroup struct {
	tweens  [4]*gween.Tween // nil alpha tween when not fading
	fields  [4]*float64
	target  *Transform
	tr      Transition
	delay   float32
	started bool
	Done    bool
}

func newTweenGroup(target *Transform, tr Transition) *TweenGroup {
	g := &TweenGroup{target: target, tr: tr, delay: tr.Delay}
	if g.tr.Ease == nil {
		g.tr.Ease = ease.Linear
	}
	g.fields = [4]*float64{&target.OffsetX, &target.OffsetY, &target.Scale, &target.Alpha}
	return g
}

func (g *TweenGroup) start() {
	to := [4]float64{g.tr.OffsetX, g.tr.OffsetY, g.tr.Scale, g.tr.Alpha}
	n := 3
	if g.tr.Fade {
		n = 4
	}
	for i := 0; i < n; i++ {
		g.tweens[i] = gween.New(float32(*g.fields[i]), float32(to[i]), g.tr.Duration, g.tr.Ease)
	}
	g.started = true
}

// Update advances the group by dt seconds and writes the eased values into
// the target.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.delay > 0 {
		if dt < g.delay {
			g.delay -= dt
			return
		}
		dt -= g.delay
		g.delay = 0
	}
	if !g.started {
		g.start()
	}

	if g.tr.Duration <= 0 {
		g.tr.land(g.target)
		g.Done = true
		return
	}

	allDone := true
	for i := range g.tweens {
		if g.tweens[i] == nil {
			continue
		}
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		// gween stops at float32 precision; land exactly on the target.
		g.tr.land(g.target)
	}
	g.Done = allDone
}

// Animator owns the in-flight tween groups for any number of targets and
// advances them together. There is no global instance; the Scene owns one.
type Animator struct {
	groups  map[*Transform][]*TweenGroup
	order   []*Transform // first-request order, for deterministic updates
	started int          // groups created since construction
}

// NewAnimator returns an empty animator.
func NewAnimator() *Animator {
	return &Animator{groups: make(map[*Transform][]*TweenGroup)}
}

// AnimateTo starts an eased transition of target. With Overwrite set, any
// tween already running on target is discarded first.
func (a *Animator) AnimateTo(target *Transform, tr Transition) *TweenGroup {
	if target == nil {
		return nil
	}
	g := newTweenGroup(target, tr)
	existing, ok := a.groups[target]
	if !ok {
		a.order = append(a.order, target)
	}
	if tr.Overwrite {
		existing = existing[:0]
	}
	a.groups[target] = append(existing, g)
	a.started++
	return g
}

// AnimateFrom jumps target to the values in from and eases it back to where
// it was, in the manner of a "from" tween. Timing, ease and callbacks come
// from from.
func (a *Animator) AnimateFrom(target *Transform, from Transition) *TweenGroup {
	if target == nil {
		return nil
	}
	to := from
	to.OffsetX, to.OffsetY, to.Scale, to.Alpha = target.OffsetX, target.OffsetY, target.Scale, target.Alpha
	from.land(target)
	return a.AnimateTo(target, to)
}

// Update advances every tween by dt seconds and forgets finished ones.
// OnComplete callbacks run after every group has advanced, so they may start
// new transitions.
func (a *Animator) Update(dt float32) {
	var completed []func()
	live := a.order[:0]
	for _, t := range a.order {
		gs := a.groups[t]
		kept := gs[:0]
		for _, g := range gs {
			g.Update(dt)
			if !g.Done {
				kept = append(kept, g)
			} else if g.tr.OnComplete != nil {
				completed = append(completed, g.tr.OnComplete)
			}
		}
		if len(kept) == 0 {
			delete(a.groups, t)
			continue
		}
		a.groups[t] = kept
		live = append(live, t)
	}
	for i := len(live); i < len(a.order); i++ {
		a.order[i] = nil
	}
	a.order = live

	for _, fn := range completed {
		fn()
	}
}

// Active returns the number of tween groups still running.
func (a *Animator) Active() int {
	n := 0
	for _, gs := range a.groups {
		n += len(gs)
	}
	return n
}

// Started returns the number of tween groups requested since construction.
func (a *Animator) Started() int {
	return a.started
}

// Pending returns the running tween groups of target, oldest first. The
// returned slice MUST NOT be mutated.
func (a *Animator) Pending(target *Transform) []*TweenGroup {
	return a.groups[target]
}

// Transition returns the transition this group was created with.
func (g *TweenGroup) Transition() Transition {
	return g.tr
}
