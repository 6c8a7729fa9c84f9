package letterfield

import (
	"fmt"

	css "github.com/mazznoer/csscolorparser"
)

// ParseColor parses any CSS color string ("#111", "#6d6d6dff", "rgb(...)",
// named colors).
func ParseColor(s string) (Color, error) {
	c, err := css.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("letterfield: parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// Backdrop is a background color that transitions between stops as scroll
// regions progress.
type Backdrop struct {
	stops   []Color
	current Color
}

// NewBackdrop parses the color stops. The backdrop starts at the first stop.
func NewBackdrop(stops ...string) (*Backdrop, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("letterfield: backdrop needs at least one color stop")
	}
	b := &Backdrop{stops: make([]Color, len(stops))}
	for i, s := range stops {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		b.stops[i] = c
	}
	b.current = b.stops[0]
	return b, nil
}

// Color returns the current backdrop color.
func (b *Backdrop) Color() Color {
	return b.current
}

// Stop returns color stop i.
func (b *Backdrop) Stop(i int) Color {
	return b.stops[i]
}

// Bind makes region drive the transition from stop `from` to stop `to`. Any
// OnUpdate already set on region still runs first.
func (b *Backdrop) Bind(region *ScrollRegion, from, to int) error {
	if from < 0 || from >= len(b.stops) || to < 0 || to >= len(b.stops) {
		return fmt.Errorf("letterfield: backdrop stops %d->%d out of range [0,%d)", from, to, len(b.stops))
	}
	prev := region.OnUpdate
	region.OnUpdate = func(r *ScrollRegion) {
		if prev != nil {
			prev(r)
		}
		b.current = b.stops[from].Lerp(b.stops[to], r.Progress())
	}
	return nil
}
