package letterfield

import "math"

// BaseForce evaluates the exponential falloff for a pointer at dist pixels.
// It has no cutoff: the result approaches zero as dist grows and equals
// MaxForce at dist == 0.
func (c Config) BaseForce(dist float64) float64 {
	return math.Exp(-dist/(c.MaxDist*c.DecayFactor)) * c.MaxForce
}

// NeighborFactor returns the multiplier applied to a glyph nDist indices away
// from the closest glyph. The closest glyph itself is unmodulated.
func (c Config) NeighborFactor(nDist int) float64 {
	if nDist < 0 {
		nDist = -nDist
	}
	switch {
	case nDist == 0:
		return 1
	case nDist <= c.NeighborRange:
		return c.NeighborInfluence * math.Pow(0.5, float64(nDist-1))
	default:
		return math.Exp(-float64(nDist)/2) * 0.1
	}
}

// closestIndex returns the index whose center is horizontally nearest to x.
// Ties resolve to the lowest index; an empty slice yields 0.
func closestIndex(centers []Vec2, x float64) int {
	idx, best := 0, math.Inf(1)
	for i, c := range centers {
		if d := math.Abs(x - c.X); d < best {
			best = d
			idx = i
		}
	}
	return idx
}

// pull is the outcome of the force model for one glyph in one frame.
type pull struct {
	force  float64 // modulated force; 0 when the pointer sits on the center
	dx, dy float64 // vector from the glyph center to the pointer
}

// active reports whether the glyph should be pulled rather than returned.
func (p pull) active(threshold float64) bool {
	return p.force > threshold
}

// glyphPull computes the modulated force for glyph i given the closest glyph
// index. A pointer exactly on the center is treated as zero force.
func (c Config) glyphPull(i, closest int, center, pointer Vec2) pull {
	dx := pointer.X - center.X
	dy := pointer.Y - center.Y
	dist := math.Hypot(dx, dy)
	p := pull{dx: dx, dy: dy}
	if dist > 0 {
		p.force = c.BaseForce(dist) * c.NeighborFactor(i-closest)
	}
	return p
}
