package letterfield

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenGroupReachesTarget(t *testing.T) {
	tf := Rest
	g := newTweenGroup(&tf, Transition{OffsetX: 10, OffsetY: -20, Scale: 1.5, Duration: 1, Ease: ease.Linear})

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if g.Done {
		t.Fatal("Done after half the duration")
	}
	if math.Abs(tf.OffsetX-5) > 0.01 || math.Abs(tf.OffsetY+10) > 0.01 || math.Abs(tf.Scale-1.25) > 0.01 {
		t.Errorf("midpoint = %+v, want ~{5 -10 1.25}", tf)
	}
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if tf != (Transform{OffsetX: 10, OffsetY: -20, Scale: 1.5, Alpha: 1}) {
		t.Errorf("final = %+v, want exact target", tf)
	}
}

func TestTweenGroupDelay(t *testing.T) {
	tf := Transform{OffsetX: 8, Scale: 1}
	g := newTweenGroup(&tf, Transition{Scale: 1, Duration: 0.5, Delay: 0.25, Ease: ease.Linear})

	g.Update(0.125)
	if tf.OffsetX != 8 {
		t.Errorf("OffsetX moved during delay: %v", tf.OffsetX)
	}
	// Finishes the delay and runs 0.25s of the tween.
	g.Update(0.375)
	if math.Abs(tf.OffsetX-4) > 0.01 {
		t.Errorf("OffsetX = %v, want ~4", tf.OffsetX)
	}
	g.Update(0.25)
	if !g.Done || tf.OffsetX != 0 {
		t.Errorf("Done = %v, OffsetX = %v, want done at 0", g.Done, tf.OffsetX)
	}
}

func TestTweenGroupSamplesStartAfterDelay(t *testing.T) {
	tf := Rest
	g := newTweenGroup(&tf, Transition{OffsetX: 10, Scale: 1, Duration: 1, Delay: 0.5, Ease: ease.Linear})
	g.Update(0.25)
	tf.OffsetX = 6 // moved by something else while waiting
	g.Update(0.25)
	g.Update(0.5)
	if math.Abs(tf.OffsetX-8) > 0.01 {
		t.Errorf("OffsetX = %v, want ~8 (halfway from 6 to 10)", tf.OffsetX)
	}
}

func TestTweenGroupZeroDurationSnaps(t *testing.T) {
	tf := Rest
	g := newTweenGroup(&tf, Transition{OffsetX: 3, Scale: 2})
	g.Update(0.016)
	if !g.Done || tf != (Transform{OffsetX: 3, Scale: 2, Alpha: 1}) {
		t.Errorf("Done = %v, tf = %+v", g.Done, tf)
	}
}

func TestAnimatorOverwrite(t *testing.T) {
	a := NewAnimator()
	tf := Rest
	a.AnimateTo(&tf, Transition{OffsetX: 100, Scale: 1, Duration: 1, Ease: ease.Linear})
	a.Update(0.5)
	a.AnimateTo(&tf, Transition{OffsetX: 0, Scale: 1, Duration: 1, Ease: ease.Linear, Overwrite: true})

	if got := len(a.Pending(&tf)); got != 1 {
		t.Fatalf("pending = %d, want 1 after overwrite", got)
	}
	a.Update(1)
	if tf.OffsetX != 0 {
		t.Errorf("OffsetX = %v, want 0", tf.OffsetX)
	}
	if a.Active() != 0 {
		t.Errorf("Active = %d, want 0", a.Active())
	}
}

func TestAnimatorWithoutOverwriteStacks(t *testing.T) {
	a := NewAnimator()
	tf := Rest
	a.AnimateTo(&tf, Transition{OffsetX: 10, Scale: 1, Duration: 1})
	a.AnimateTo(&tf, Transition{OffsetY: 10, Scale: 1, Duration: 2})
	if got := len(a.Pending(&tf)); got != 2 {
		t.Errorf("pending = %d, want 2", got)
	}
	if a.Started() != 2 {
		t.Errorf("Started = %d, want 2", a.Started())
	}
}

func TestAnimatorForgetsFinished(t *testing.T) {
	a := NewAnimator()
	targets := make([]Transform, 3)
	for i := range targets {
		targets[i] = Rest
		a.AnimateTo(&targets[i], Transition{Scale: 2, Duration: float32(i+1) * 0.5, Ease: ease.Linear})
	}
	a.Update(0.5)
	if a.Active() != 2 {
		t.Errorf("Active = %d, want 2", a.Active())
	}
	a.Update(1)
	if a.Active() != 0 {
		t.Errorf("Active = %d, want 0", a.Active())
	}
	for i := range targets {
		if targets[i].Scale != 2 {
			t.Errorf("target %d scale = %v, want 2", i, targets[i].Scale)
		}
	}
}

func TestAnimatorNilTarget(t *testing.T) {
	a := NewAnimator()
	if g := a.AnimateTo(nil, Transition{Duration: 1}); g != nil {
		t.Error("expected nil group for nil target")
	}
	if a.Active() != 0 {
		t.Errorf("Active = %d, want 0", a.Active())
	}
}

func TestElasticOutEndpoints(t *testing.T) {
	for _, tt := range []struct{ amp, period float64 }{{1, 0.3}, {1.2, 0.4}, {0.5, 0.3}} {
		fn := ElasticOut(tt.amp, tt.period)
		if got := fn(0, 2, 8, 1); math.Abs(float64(got)-2) > 1e-4 {
			t.Errorf("ElasticOut(%v,%v) at start = %v, want 2", tt.amp, tt.period, got)
		}
		if got := fn(1, 2, 8, 1); got != 10 {
			t.Errorf("ElasticOut(%v,%v) at end = %v, want 10", tt.amp, tt.period, got)
		}
	}
}

func TestElasticOutOvershoots(t *testing.T) {
	fn := ElasticOut(1, 0.3)
	if got := fn(0.15, 0, 1, 1); got <= 1 {
		t.Errorf("ElasticOut at 0.15 = %v, want > 1", got)
	}
}

func TestPowerOutCurves(t *testing.T) {
	tests := []struct {
		name  string
		fn    ease.TweenFunc
		power float64
	}{
		{"power1", PowerOut1, 2},
		{"power2", PowerOut2, 3},
		{"power3", PowerOut3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range []float32{0, 0.25, 0.5, 0.75, 1} {
				want := 1 - math.Pow(1-float64(x), tt.power)
				if got := tt.fn(x, 0, 1, 1); math.Abs(float64(got)-want) > 1e-5 {
					t.Errorf("at %v = %v, want %v", x, got, want)
				}
			}
		})
	}
}

func TestPowerOut2MatchesCubic(t *testing.T) {
	// 0.25 -> 0.578125, 0.5 -> 0.875, 0.75 -> 0.984375
	for x, want := range map[float32]float64{0.25: 0.578125, 0.5: 0.875, 0.75: 0.984375} {
		if got := PowerOut2(x, 0, 1, 1); math.Abs(float64(got)-want) > 1e-6 {
			t.Errorf("PowerOut2(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestTweenGroupFade(t *testing.T) {
	tf := Rest
	g := newTweenGroup(&tf, Transition{Scale: 1, Alpha: 0, Fade: true, Duration: 1, Ease: ease.Linear})
	g.Update(0.5)
	if math.Abs(tf.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha = %v, want ~0.5", tf.Alpha)
	}
	g.Update(0.5)
	if tf.Alpha != 0 {
		t.Errorf("Alpha = %v, want 0", tf.Alpha)
	}
}

func TestTweenGroupKeepsAlphaWithoutFade(t *testing.T) {
	tf := Transform{Scale: 1, Alpha: 0.4}
	g := newTweenGroup(&tf, Transition{OffsetX: 5, Scale: 1, Duration: 0.5, Ease: ease.Linear})
	g.Update(1)
	if tf.Alpha != 0.4 || tf.OffsetX != 5 {
		t.Errorf("tf = %+v, want alpha untouched at 0.4", tf)
	}
}

func TestAnimateFrom(t *testing.T) {
	a := NewAnimator()
	tf := Rest
	a.AnimateFrom(&tf, Transition{OffsetY: 100, Scale: 1, Alpha: 0, Fade: true, Duration: 1, Delay: 0.5, Ease: ease.Linear})

	if tf.OffsetY != 100 || tf.Alpha != 0 {
		t.Fatalf("from state not applied immediately: %+v", tf)
	}
	a.Update(0.25)
	if tf.OffsetY != 100 {
		t.Errorf("moved during delay: %+v", tf)
	}
	a.Update(0.75)
	if math.Abs(tf.OffsetY-50) > 0.01 || math.Abs(tf.Alpha-0.5) > 0.01 {
		t.Errorf("midpoint = %+v, want ~{OffsetY 50 Alpha 0.5}", tf)
	}
	a.Update(0.5)
	if tf != Rest {
		t.Errorf("final = %+v, want rest", tf)
	}
	if a.AnimateFrom(nil, Transition{}) != nil {
		t.Error("expected nil group for nil target")
	}
}

func TestAnimatorOnComplete(t *testing.T) {
	a := NewAnimator()
	tf := Rest
	var steps []string
	a.AnimateTo(&tf, Transition{
		Alpha: 0, Fade: true, Scale: 1, Duration: 0.5, Ease: ease.Linear,
		OnComplete: func() {
			steps = append(steps, "out")
			// Chained from the callback, as a fade-out then fade-in swap.
			a.AnimateTo(&tf, Transition{
				Alpha: 1, Fade: true, Scale: 1, Duration: 0.5, Ease: ease.Linear,
				OnComplete: func() { steps = append(steps, "in") },
			})
		},
	})

	a.Update(0.5)
	if len(steps) != 1 || tf.Alpha != 0 {
		t.Fatalf("steps = %v, alpha = %v after fade out", steps, tf.Alpha)
	}
	if a.Active() != 1 {
		t.Fatalf("Active = %d, want the chained transition", a.Active())
	}
	a.Update(0.5)
	if len(steps) != 2 || steps[1] != "in" || tf.Alpha != 1 {
		t.Errorf("steps = %v, alpha = %v after fade in", steps, tf.Alpha)
	}
}

func TestOverwriteSkipsOnComplete(t *testing.T) {
	a := NewAnimator()
	tf := Rest
	called := false
	a.AnimateTo(&tf, Transition{Scale: 2, Duration: 1, OnComplete: func() { called = true }})
	a.AnimateTo(&tf, Transition{Scale: 1, Duration: 1, Overwrite: true})
	a.Update(2)
	if called {
		t.Error("overwritten transition ran OnComplete")
	}
}

func TestTransformAtRest(t *testing.T) {
	if !Rest.AtRest(0) {
		t.Error("Rest.AtRest(0) = false")
	}
	if (Transform{OffsetX: 0.1, Scale: 1, Alpha: 1}).AtRest(0.01) {
		t.Error("offset transform reported at rest")
	}
	if (Transform{Scale: 1, Alpha: 0.5}).AtRest(0.01) {
		t.Error("faded transform reported at rest")
	}
}
