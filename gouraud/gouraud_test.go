package gouraud

import (
	"math"
	"testing"

	"github.com/gogpu/pixel/color"
	"github.com/gogpu/pixel/pixfmt"
	"github.com/gogpu/pixel/span"
)

// A triangle whose right vertex is the only bright one. On scanline 100
// the long edge sits half a pixel left of x=0 and the bright vertex half a
// pixel left of x=200, so value i lands on pixel i.
var (
	top    = Point{X: 0, Y: 0}
	right  = Point{X: 200, Y: 100}
	bottom = Point{X: 0, Y: 200}
)

func TestGrayGradient(t *testing.T) {
	g := NewGray(color.NewGray8(0, 255), color.NewGray8(200, 255), color.NewGray8(0, 255), top, right, bottom, 0)
	g.Prepare()
	out := make([]color.Gray8, 200)
	g.Generate(out, 0, 100)
	for i, c := range out {
		if int(c.V) != i || c.A != 255 {
			t.Fatalf("pixel %d = %v, want V=%d A=255", i, c, i)
		}
	}
}

func TestGrayLeadingPixelsClamp(t *testing.T) {
	g := NewGray(color.NewGray8(0, 255), color.NewGray8(200, 255), color.NewGray8(0, 255), top, right, bottom, 0)
	g.Prepare()
	out := make([]color.Gray8, 20)
	g.Generate(out, -5, 100)
	for j, c := range out {
		if want := max(0, j-5); int(c.V) != want {
			t.Errorf("pixel %d = %d, want %d", j-5, c.V, want)
		}
	}
}

func TestGraySpanStartsInside(t *testing.T) {
	g := NewGray(color.NewGray8(0, 255), color.NewGray8(200, 255), color.NewGray8(0, 255), top, right, bottom, 0)
	g.Prepare()
	out := make([]color.Gray8, 10)
	g.Generate(out, 50, 100)
	for i, c := range out {
		if want := 50 + i; int(c.V) != want {
			t.Errorf("pixel %d = %d, want %d", 50+i, c.V, want)
		}
	}
}

func TestGraySwappedEdges(t *testing.T) {
	// mirror image: the middle vertex lies left of the long edge
	g := NewGray(color.NewGray8(0, 255), color.NewGray8(200, 255), color.NewGray8(0, 255),
		Point{X: 200, Y: 0}, Point{X: 0, Y: 100}, Point{X: 200, Y: 200}, 0)
	g.Prepare()
	if !g.swap {
		t.Fatal("swap flag not set")
	}
	out := make([]color.Gray8, 200)
	g.Generate(out, 0, 100)
	for i, c := range out {
		if int(c.V) != 199-i {
			t.Fatalf("pixel %d = %d, want %d", i, c.V, 199-i)
		}
	}
}

func TestRGBAGradient(t *testing.T) {
	black := color.RGBA8{A: 255}
	c := color.RGBA8{R: 200, G: 100, A: 255}
	tests := []struct {
		name  string
		opts  []Option
		gamma *color.GammaLUT
	}{
		{"linear", nil, nil},
		{"gamma", []Option{WithGamma(color.NewGammaLUT(2.2))}, color.NewGammaLUT(2.2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// vertex order does not matter
			g := NewRGBA(c, black, black, right, bottom, top, 0, tt.opts...)
			g.Prepare()
			out := make([]color.RGBA8, 200)
			g.Generate(out, 0, 100)
			for i, got := range out {
				want := color.RGBA8{R: uint8(i), G: uint8(i / 2), A: 255}
				if tt.gamma != nil {
					want.R = tt.gamma.Dir8(want.R)
					want.G = tt.gamma.Dir8(want.G)
					want.B = tt.gamma.Dir8(want.B)
				}
				if got != want {
					t.Fatalf("pixel %d = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestConstantColor(t *testing.T) {
	c := color.RGBA8{R: 10, G: 120, B: 230, A: 200}
	g := NewRGBA(c, c, c, Point{X: 3.3, Y: 1.7}, Point{X: 40.1, Y: 12}, Point{X: 9, Y: 33.5}, 0.5)
	g.Prepare()
	out := make([]color.RGBA8, 64)
	for _, y := range []int{-4, 0, 5, 12, 20, 33, 50} {
		g.Generate(out, -10, y)
		for i, got := range out {
			if got != c {
				t.Fatalf("y=%d pixel %d = %v, want %v", y, i-10, got, c)
			}
		}
	}
}

func TestVertices(t *testing.T) {
	p1, p2, p3 := Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, Point{X: 0, Y: 10}
	g := NewGray(color.Gray8{}, color.Gray8{}, color.Gray8{}, p1, p2, p3, 0)
	if v := g.Vertices(); len(v) != 3 || v[0] != p1 || v[1] != p2 || v[2] != p3 {
		t.Errorf("Vertices() = %v", v)
	}
	if g.Corners() != [3]Point{p1, p2, p3} {
		t.Errorf("Corners() = %v", g.Corners())
	}

	g.SetTriangle(p1, p2, p3, 1)
	s := 1 / math.Sqrt2
	wantOutline := []Point{
		{0, -1}, {10, -1},
		{10 + s, s}, {s, 10 + s},
		{-1, 10}, {-1, 0},
	}
	v := g.Vertices()
	if len(v) != 6 {
		t.Fatalf("dilated outline has %d points", len(v))
	}
	for i, want := range wantOutline {
		if !nearPoint(v[i], want) {
			t.Errorf("outline[%d] = %v, want %v", i, v[i], want)
		}
	}
	d := 10 + 2*s
	wantCorners := [3]Point{{-1, -1}, {d + 1, -1}, {-1, d + 1}}
	for i, want := range wantCorners {
		if got := g.Corners()[i]; !nearPoint(got, want) {
			t.Errorf("corner %d = %v, want %v", i, got, want)
		}
	}
}

func TestDilationKeepsOrientation(t *testing.T) {
	// the same triangle wound the other way grows outward too
	g := NewGray(color.Gray8{}, color.Gray8{}, color.Gray8{},
		Point{X: 0, Y: 0}, Point{X: 0, Y: 10}, Point{X: 10, Y: 0}, 1)
	if got := g.Corners()[0]; !nearPoint(got, Point{X: -1, Y: -1}) {
		t.Errorf("corner 0 = %v, want (-1, -1)", got)
	}
}

func TestRenderIntoGray8(t *testing.T) {
	buf, err := pixfmt.NewRenderingBuffer(make([]byte, 200*200), 200, 200, 200)
	if err != nil {
		t.Fatal(err)
	}
	dst, err := pixfmt.NewGray8(buf, pixfmt.BlendStraight)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGray(color.NewGray8(0, 255), color.NewGray8(200, 255), color.NewGray8(0, 255), top, right, bottom, 0)
	g.Prepare()
	var alloc span.Allocator[color.Gray8]
	span.RenderSpan[color.Gray8](dst, g, &alloc, 0, 100, 200, nil, 255)
	for _, x := range []int{0, 50, 199} {
		if got := dst.Pixel(x, 100); int(got.V) != x {
			t.Errorf("dst (%d, 100) = %v, want %d", x, got, x)
		}
	}
}

func BenchmarkRGBAGenerate(b *testing.B) {
	g := NewRGBA(color.RGBA8{R: 255, A: 255}, color.RGBA8{G: 255, A: 255}, color.RGBA8{B: 255, A: 255}, top, right, bottom, 0.5)
	g.Prepare()
	out := make([]color.RGBA8, 256)
	b.ReportAllocs()
	for b.Loop() {
		g.Generate(out, -20, 100)
	}
}

func nearPoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
