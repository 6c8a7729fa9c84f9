package letterfield

// DefaultIntro is the title's entrance: the row rises 100px into place
// while fading in, over 1.5s on a power3 ease-out after a 0.6s delay.
func DefaultIntro() Transition {
	return Transition{
		OffsetY:  100,
		Scale:    1,
		Alpha:    0,
		Fade:     true,
		Duration: 1.5,
		Ease:     PowerOut3,
		Delay:    0.6,
	}
}

// PlayIntro jumps the title row to from and eases it back to its current
// transform. The glyph effect keeps working during the intro. Returns nil
// for a scene without a title.
func (s *Scene) PlayIntro(from Transition) *TweenGroup {
	if s.title == nil {
		return nil
	}
	from.Overwrite = true
	return s.tweens.AnimateFrom(&s.title.Transform, from)
}
