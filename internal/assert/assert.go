// Package assert holds precondition checks that are compiled in only with
// the pixeldebug build tag.
//
// Callers guard every check with the Enabled constant so that release
// builds eliminate the call entirely:
//
//	if assert.Enabled {
//	    assert.Span(x, y, n, w, h)
//	}
package assert

import "fmt"

// Point panics unless (x, y) lies inside a w by h area.
func Point(x, y, w, h int) {
	if x < 0 || y < 0 || x >= w || y >= h {
		panic(fmt.Sprintf("pixel: point (%d,%d) outside %dx%d", x, y, w, h))
	}
}

// Span panics unless the horizontal run of n pixels starting at (x, y) is
// non-empty and lies inside a w by h area.
func Span(x, y, n, w, h int) {
	if n < 1 {
		panic(fmt.Sprintf("pixel: empty span of length %d at (%d,%d)", n, x, y))
	}
	Point(x, y, w, h)
	Point(x+n-1, y, w, h)
}

// VSpan is Span for a vertical run.
func VSpan(x, y, n, w, h int) {
	if n < 1 {
		panic(fmt.Sprintf("pixel: empty span of length %d at (%d,%d)", n, x, y))
	}
	Point(x, y, w, h)
	Point(x, y+n-1, w, h)
}

// Len panics if a caller-supplied slice is shorter than n.
func Len(what string, have, n int) {
	if have < n {
		panic(fmt.Sprintf("pixel: %s has %d elements, need %d", what, have, n))
	}
}
