package gouraud

import (
	"github.com/gogpu/pixel/color"
	"github.com/gogpu/pixel/span"
)

// Gray shades a triangle with color.Gray8 vertex values.
type Gray struct {
	scanner
	colors [3]color.Gray8
	gamma  *color.GammaLUT
}

var _ span.Generator[color.Gray8] = (*Gray)(nil)

// NewGray returns a gray generator; see NewRGBA.
func NewGray(c1, c2, c3 color.Gray8, p1, p2, p3 Point, dilation float64, opts ...Option) *Gray {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	g := &Gray{gamma: o.gamma}
	g.SetColors(c1, c2, c3)
	g.SetTriangle(p1, p2, p3, dilation)
	return g
}

// SetColors replaces the vertex values.
func (g *Gray) SetColors(c1, c2, c3 color.Gray8) {
	g.colors = [3]color.Gray8{c1, c2, c3}
}

// SetTriangle replaces the vertex positions.
func (g *Gray) SetTriangle(p1, p2, p3 Point, dilation float64) {
	g.set(p1, p2, p3, dilation)
}

// Prepare sorts the vertices and sets up the edges.
func (g *Gray) Prepare() {
	var cs [3]channels
	for i, c := range g.colors {
		cs[i] = channels{int(c.V), int(c.A)}
	}
	g.prepare(cs)
}

// Generate fills out with the shaded values of scanline y starting at x.
func (g *Gray) Generate(out []color.Gray8, x, y int) {
	left, right := g.endpoints(y)
	interpolate(left, right, 2, x, len(out), func(i int, v *channels) {
		c := color.Gray8{V: uint8(v[0]), A: uint8(v[1])}
		if g.gamma != nil {
			c.V = g.gamma.Dir8(c.V)
		}
		out[i] = c
	})
}
