package letterfield

// Track is a horizontal strip pinned to the top of the screen while Region
// scrolls past, sliding from its first item to its last as the region
// progresses. Pair it with a scrubbing region for a trailing slide.
type Track struct {
	Region        *ScrollRegion
	ContentWidth  float64 // full strip width
	ViewportWidth float64 // visible width, usually the screen
}

// Travel returns how far the strip slides over the whole region.
func (t *Track) Travel() float64 {
	return max(t.ContentWidth-t.ViewportWidth, 0)
}

// X returns the strip's horizontal offset, from 0 down to -Travel.
func (t *Track) X() float64 {
	if t.Region == nil {
		return 0
	}
	return -t.Travel() * t.Region.Progress()
}

// ScreenY returns the strip's top edge on screen for scroll offset y. The
// strip scrolls in with the page, holds at 0 between Region.Start and
// Region.End, then scrolls out. Content below the strip is pushed down by
// the pinned length.
func (t *Track) ScreenY(y float64) float64 {
	if t.Region == nil {
		return 0
	}
	switch {
	case y < t.Region.Start:
		return t.Region.Start - y
	case y > t.Region.End:
		return t.Region.End - y
	default:
		return 0
	}
}

// Pinned reports whether the strip is held at the top of the screen.
func (t *Track) Pinned() bool {
	return t.Region != nil && t.Region.IsActive()
}
