package span

// Allocator hands out a reusable span buffer. The buffer grows to the
// longest span requested and is never shrunk; each slice returned is valid
// until the next call.
type Allocator[C any] struct {
	buf []C
}

// Allocate returns a slice of n elements. Contents are unspecified.
func (a *Allocator[C]) Allocate(n int) []C {
	if n > cap(a.buf) {
		// round up to limit regrowth on slowly increasing widths
		a.buf = make([]C, (n+255)&^255)
	}
	return a.buf[:n]
}

// Cap returns the current capacity.
func (a *Allocator[C]) Cap() int {
	return cap(a.buf)
}
