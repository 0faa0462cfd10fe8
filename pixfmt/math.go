package pixfmt

import "golang.org/x/exp/constraints"

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func addSat(a, b uint8) uint8 {
	return uint8(clamp(uint16(a)+uint16(b), 0, 255))
}
