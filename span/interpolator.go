package span

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/pixel/filter"
)

// Subpixel precision of source coordinates.
const (
	SubpixelShift = filter.SubpixelShift
	SubpixelScale = filter.SubpixelScale
	SubpixelMask  = filter.SubpixelMask
)

// Interpolator yields the source coordinate of each pixel of a span.
//
// Begin starts a span of n pixels whose first pixel is sampled at (x, y)
// in destination space. Coordinates returns the current source coordinate
// with SubpixelShift fractional bits, and Next advances one pixel.
type Interpolator interface {
	Begin(x, y float64, n int)
	Coordinates() (x, y int)
	Next()
}

// Linear maps destination to source coordinates through an affine
// transform. It transforms only the two ends of a span and steps between
// them with exact integer DDAs, so long spans accumulate no error.
type Linear struct {
	m  f64.Aff3
	li dda2
	lj dda2
}

// NewLinear returns an interpolator for the destination-to-source
// transform m.
func NewLinear(m f64.Aff3) *Linear {
	return &Linear{m: m}
}

// Transform returns the destination-to-source transform.
func (l *Linear) Transform() f64.Aff3 { return l.m }

// SetTransform replaces the transform for the next Begin.
func (l *Linear) SetTransform(m f64.Aff3) { l.m = m }

// Begin starts a span of n pixels at destination point (x, y).
func (l *Linear) Begin(x, y float64, n int) {
	tx, ty := transformPoint(&l.m, x, y)
	x1 := int(math.Round(tx * SubpixelScale))
	y1 := int(math.Round(ty * SubpixelScale))

	tx, ty = transformPoint(&l.m, x+float64(n), y)
	x2 := int(math.Round(tx * SubpixelScale))
	y2 := int(math.Round(ty * SubpixelScale))

	l.li = newDDA2(x1, x2, n)
	l.lj = newDDA2(y1, y2, n)
}

// Coordinates returns the current source coordinate.
func (l *Linear) Coordinates() (int, int) {
	return l.li.y, l.lj.y
}

// Next advances to the next pixel.
func (l *Linear) Next() {
	l.li.next()
	l.lj.next()
}

// dda2 steps an integer from y1 to y2 in count equal steps, distributing
// the remainder so that the last step lands exactly on y2.
type dda2 struct {
	cnt int
	lft int
	rem int
	mod int
	y   int
}

func newDDA2(y1, y2, count int) dda2 {
	d := dda2{y: y1, cnt: max(count, 1)}
	d.lft = (y2 - y1) / d.cnt
	d.rem = (y2 - y1) % d.cnt
	d.mod = d.rem
	if d.mod <= 0 {
		d.mod += d.cnt
		d.rem += d.cnt
		d.lft--
	}
	d.mod -= d.cnt
	return d
}

func (d *dda2) next() {
	d.mod += d.rem
	d.y += d.lft
	if d.mod > 0 {
		d.mod -= d.cnt
		d.y++
	}
}
