package span

import (
	"math"

	"golang.org/x/exp/constraints"
)

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func iround(v float64) int {
	return int(math.Round(v))
}
