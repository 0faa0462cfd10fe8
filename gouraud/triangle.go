package gouraud

import "math"

// Point is a vertex position in destination pixels.
type Point struct {
	X, Y float64
}

const (
	subpixelShift = 4
	subpixelScale = 1 << subpixelShift

	intersectionEpsilon = 1.0e-30
)

// triangle holds the shading corners and the fill outline.
type triangle struct {
	corners [3]Point
	outline []Point
}

func (t *triangle) set(p1, p2, p3 Point, d float64) {
	t.corners = [3]Point{p1, p2, p3}
	if d == 0 {
		t.outline = []Point{p1, p2, p3}
		return
	}
	o := dilate(p1, p2, p3, d)
	t.outline = o[:]
	// corners move to where neighboring offset edges meet
	t.corners[0] = intersect(o[4], o[5], o[0], o[1], p1)
	t.corners[1] = intersect(o[0], o[1], o[2], o[3], p2)
	t.corners[2] = intersect(o[2], o[3], o[4], o[5], p3)
}

// Vertices returns the outline to fill: the triangle itself, or six
// points forming the beveled outline of a dilated triangle.
func (t *triangle) Vertices() []Point {
	return append([]Point(nil), t.outline...)
}

// Corners returns the positions the vertex colors are anchored to.
func (t *triangle) Corners() [3]Point {
	return t.corners
}

// order returns the corner indices sorted by ascending y.
func (t *triangle) order() [3]int {
	idx := [3]int{0, 1, 2}
	y := func(i int) float64 { return t.corners[idx[i]].Y }
	if y(0) > y(2) {
		idx[0], idx[2] = idx[2], idx[0]
	}
	if y(0) > y(1) {
		idx[0], idx[1] = idx[1], idx[0]
	}
	if y(1) > y(2) {
		idx[1], idx[2] = idx[2], idx[1]
	}
	return idx
}

// cross tells by its sign on which side of the directed line a->b the
// point p lies.
func cross(a, b, p Point) float64 {
	return (p.X-b.X)*(b.Y-a.Y) - (p.Y-b.Y)*(b.X-a.X)
}

// orthogonal returns the offset of length d perpendicular to a->b.
func orthogonal(d float64, a, b Point) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	return Point{X: d * dy / l, Y: -d * dx / l}
}

// dilate offsets each edge outward by d. Points 2k and 2k+1 are the ends
// of offset edge k.
func dilate(p1, p2, p3 Point, d float64) [6]Point {
	var o1, o2, o3 Point
	if math.Abs(cross(p1, p2, p3)) > intersectionEpsilon {
		if cross(p1, p2, p3) > 0 {
			d = -d
		}
		o1 = orthogonal(d, p1, p2)
		o2 = orthogonal(d, p2, p3)
		o3 = orthogonal(d, p3, p1)
	}
	add := func(p, o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }
	return [6]Point{
		add(p1, o1), add(p2, o1),
		add(p2, o2), add(p3, o2),
		add(p3, o3), add(p1, o3),
	}
}

// intersect returns where lines a-b and c-d cross, or fallback when they
// are parallel.
func intersect(a, b, c, d, fallback Point) Point {
	num := (a.Y-c.Y)*(d.X-c.X) - (a.X-c.X)*(d.Y-c.Y)
	den := (b.X-a.X)*(d.Y-c.Y) - (b.Y-a.Y)*(d.X-c.X)
	if math.Abs(den) < intersectionEpsilon {
		return fallback
	}
	r := num / den
	return Point{X: a.X + r*(b.X-a.X), Y: a.Y + r*(b.Y-a.Y)}
}
