package letterfield

import "golang.org/x/exp/constraints"

func clamp[N constraints.Float | constraints.Integer](n, lo, hi N) N {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
