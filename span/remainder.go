package span

import (
	"fmt"
	"math/bits"
)

// Remainder maps any integer coordinate into [0, Size()). Tiling samplers
// use one remainder per axis, chosen once from the source dimensions.
type Remainder interface {
	// Apply wraps v into [0, Size()).
	Apply(v int) int
	// Size returns the period.
	Size() int
	// Mirrored reports whether every other period is reflected.
	Mirrored() bool
}

// Unsigned repeats with an exact Euclidean modulo: negative coordinates
// wrap to the end of the period.
func Unsigned(n int) Remainder {
	return unsignedRemainder{n: max(n, 1)}
}

// Pow2 repeats with a bit mask. n is rounded up to a power of two, so it
// suits only sources whose size already is one.
func Pow2(n int) Remainder {
	return pow2Remainder{mask: ceilPow2(n) - 1}
}

// Auto returns Pow2 when n is a power of two and Unsigned otherwise.
func Auto(n int) Remainder {
	if isPow2(n) {
		return Pow2(n)
	}
	return Unsigned(n)
}

// Reflect mirrors every other period, so tiles meet at matching edges.
func Reflect(n int) Remainder {
	return reflectRemainder{n: max(n, 1)}
}

// ReflectPow2 is Reflect with bit masks. n is rounded up to a power of
// two.
func ReflectPow2(n int) Remainder {
	n = ceilPow2(n)
	return reflectPow2Remainder{n: n, mask: 2*n - 1}
}

// ReflectAuto returns ReflectPow2 when n is a power of two and Reflect
// otherwise.
func ReflectAuto(n int) Remainder {
	if isPow2(n) {
		return ReflectPow2(n)
	}
	return Reflect(n)
}

type unsignedRemainder struct{ n int }

func (r unsignedRemainder) Apply(v int) int {
	v %= r.n
	if v < 0 {
		v += r.n
	}
	return v
}

func (r unsignedRemainder) Size() int      { return r.n }
func (r unsignedRemainder) Mirrored() bool { return false }
func (r unsignedRemainder) String() string { return fmt.Sprintf("unsigned(%d)", r.n) }

type pow2Remainder struct{ mask int }

func (r pow2Remainder) Apply(v int) int { return v & r.mask }
func (r pow2Remainder) Size() int       { return r.mask + 1 }
func (r pow2Remainder) Mirrored() bool  { return false }
func (r pow2Remainder) String() string  { return fmt.Sprintf("pow2(%d)", r.mask+1) }

type reflectRemainder struct{ n int }

func (r reflectRemainder) Apply(v int) int {
	p := 2 * r.n
	v %= p
	if v < 0 {
		v += p
	}
	if v >= r.n {
		v = p - 1 - v
	}
	return v
}

func (r reflectRemainder) Size() int      { return r.n }
func (r reflectRemainder) Mirrored() bool { return true }
func (r reflectRemainder) String() string { return fmt.Sprintf("reflect(%d)", r.n) }

type reflectPow2Remainder struct{ n, mask int }

func (r reflectPow2Remainder) Apply(v int) int {
	v &= r.mask
	if v >= r.n {
		v = r.mask - v
	}
	return v
}

func (r reflectPow2Remainder) Size() int      { return r.n }
func (r reflectPow2Remainder) Mirrored() bool { return true }
func (r reflectPow2Remainder) String() string { return fmt.Sprintf("reflect-pow2(%d)", r.n) }

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
