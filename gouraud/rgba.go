package gouraud

import (
	"github.com/gogpu/pixel/color"
	"github.com/gogpu/pixel/span"
)

// RGBA shades a triangle with color.RGBA8 vertex colors.
type RGBA struct {
	scanner
	colors [3]color.RGBA8
	gamma  *color.GammaLUT
}

var _ span.Generator[color.RGBA8] = (*RGBA)(nil)

// NewRGBA returns a generator for the triangle p1, p2, p3 with colors
// c1, c2, c3, grown outward by dilation pixels.
func NewRGBA(c1, c2, c3 color.RGBA8, p1, p2, p3 Point, dilation float64, opts ...Option) *RGBA {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	g := &RGBA{gamma: o.gamma}
	g.SetColors(c1, c2, c3)
	g.SetTriangle(p1, p2, p3, dilation)
	return g
}

// SetColors replaces the vertex colors. Call Prepare afterwards.
func (g *RGBA) SetColors(c1, c2, c3 color.RGBA8) {
	g.colors = [3]color.RGBA8{c1, c2, c3}
}

// SetTriangle replaces the vertex positions. Call Prepare afterwards.
func (g *RGBA) SetTriangle(p1, p2, p3 Point, dilation float64) {
	g.set(p1, p2, p3, dilation)
}

// Prepare sorts the vertices and sets up the edges.
func (g *RGBA) Prepare() {
	var cs [3]channels
	for i, c := range g.colors {
		cs[i] = channels{int(c.R), int(c.G), int(c.B), int(c.A)}
	}
	g.prepare(cs)
}

// Generate fills out with the shaded colors of scanline y starting at x.
func (g *RGBA) Generate(out []color.RGBA8, x, y int) {
	left, right := g.endpoints(y)
	interpolate(left, right, 4, x, len(out), func(i int, v *channels) {
		c := color.RGBA8{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: uint8(v[3])}
		if g.gamma != nil {
			c.R = g.gamma.Dir8(c.R)
			c.G = g.gamma.Dir8(c.G)
			c.B = g.gamma.Dir8(c.B)
		}
		out[i] = c
	})
}
