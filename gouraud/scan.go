package gouraud

import "math"

// channels is the interpolated color as integers: RGBA, or gray and alpha
// in the first two slots.
type channels [4]int

// edge interpolates position and color along one triangle edge.
type edge struct {
	x1, y1 float64
	dx     float64
	invDy  float64
	c1, dc channels

	// results of the last calc
	x int
	c channels
}

func (e *edge) init(p1, p2 Point, c1, c2 channels) {
	e.x1 = p1.X - 0.5
	e.y1 = p1.Y - 0.5
	e.dx = p2.X - p1.X
	dy := p2.Y - p1.Y
	if dy < 1e-5 {
		e.invDy = 1e5
	} else {
		e.invDy = 1 / dy
	}
	e.c1 = c1
	for i := range e.dc {
		e.dc[i] = c2[i] - c1[i]
	}
}

func (e *edge) calc(y float64) {
	k := (y - e.y1) * e.invDy
	k = min(max(k, 0), 1)
	for i := range e.c {
		e.c[i] = e.c1[i] + int(math.Round(float64(e.dc[i])*k))
	}
	e.x = int(math.Round((e.x1 + e.dx*k) * subpixelScale))
}

// scanner finds the two span endpoints of a sorted triangle.
type scanner struct {
	triangle
	long  edge // top to bottom
	upper edge // top to middle
	lower edge // middle to bottom
	midY  int
	swap  bool
}

func (s *scanner) prepare(colors [3]channels) {
	idx := s.order()
	p0, p1, p2 := s.corners[idx[0]], s.corners[idx[1]], s.corners[idx[2]]
	c0, c1, c2 := colors[idx[0]], colors[idx[1]], colors[idx[2]]

	s.midY = int(p1.Y)
	// the middle vertex lies left of the long edge
	s.swap = cross(p0, p2, p1) < 0
	s.long.init(p0, p2, c0, c2)
	s.upper.init(p0, p1, c0, c1)
	s.lower.init(p1, p2, c1, c2)
}

// endpoints returns the left and right edges for scanline y with their
// positions and colors computed.
func (s *scanner) endpoints(y int) (left, right *edge) {
	s.long.calc(float64(y))
	left = &s.long
	if y <= s.midY {
		s.upper.calc(float64(y) + s.upper.invDy)
		right = &s.upper
	} else {
		s.lower.calc(float64(y) - s.lower.invDy)
		right = &s.lower
	}
	if s.swap {
		left, right = right, left
	}
	return left, right
}

// dda steps an integer with 14 fractional bits.
type dda struct {
	y, inc, dy int
}

const ddaShift = 14

func newDDA(y1, y2, count int) dda {
	return dda{y: y1, inc: ((y2 - y1) << ddaShift) / count}
}

func (d *dda) value() int { return d.y + d.dy>>ddaShift }

// interpolate steps n channels from left to right across a span of length
// pixels starting at x, calling put for each pixel. Pixels before the left
// edge and past the right edge are clamped to [0, 255]; in between the
// values stay within the endpoint colors.
func interpolate(left, right *edge, nch, x, length int, put func(i int, v *channels)) {
	nlen := abs(right.x - left.x)
	if nlen <= 0 {
		nlen = 1
	}
	var d [4]dda
	for i := 0; i < nch; i++ {
		d[i] = newDDA(left.c[i], right.c[i], nlen)
	}

	// roll back to the first pixel of the span
	start := left.x - x<<subpixelShift
	for i := 0; i < nch; i++ {
		d[i].dy -= d[i].inc * start
	}
	nlen += start

	var v channels
	step := func() {
		for i := 0; i < nch; i++ {
			d[i].dy += d[i].inc * subpixelScale
		}
		nlen -= subpixelScale
	}

	i := 0
	for ; i < length && start > 0; i++ {
		for c := 0; c < nch; c++ {
			v[c] = clamp255(d[c].value())
		}
		put(i, &v)
		step()
		start -= subpixelScale
	}
	for ; i < length && nlen > 0; i++ {
		for c := 0; c < nch; c++ {
			v[c] = d[c].value()
		}
		put(i, &v)
		step()
	}
	for ; i < length; i++ {
		for c := 0; c < nch; c++ {
			v[c] = clamp255(d[c].value())
		}
		put(i, &v)
		step()
	}
}

func clamp255(v int) int {
	return min(max(v, 0), 255)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
