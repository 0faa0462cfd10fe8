package span

import (
	"errors"
	"testing"

	"github.com/gogpu/pixel/color"
	"github.com/gogpu/pixel/filter"
	"github.com/gogpu/pixel/pixfmt"
)

// newSource returns an opaque RGBA image whose red channel encodes x and
// green channel encodes y.
func newSource(t testing.TB, w, h int) *pixfmt.ByteFormat {
	t.Helper()
	f := newTarget(t, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.CopyPixel(x, y, color.RGBA8{R: uint8(x * 40), G: uint8(y * 40), B: 100, A: 255})
		}
	}
	return f
}

func newTarget(t testing.TB, w, h int) *pixfmt.ByteFormat {
	t.Helper()
	buf, err := pixfmt.NewRenderingBuffer(make([]byte, w*h*4), w, h, w*4)
	if err != nil {
		t.Fatalf("NewRenderingBuffer: %v", err)
	}
	f, err := pixfmt.NewRGBA(buf)
	if err != nil {
		t.Fatalf("NewRGBA: %v", err)
	}
	return f
}

// mustSampler wraps a constructor result, as in mustSampler(t)(NewImageNearest(...)),
// and prepares the sampler.
func mustSampler(t testing.TB) func(*Sampler, error) *Sampler {
	return func(s *Sampler, err error) *Sampler {
		t.Helper()
		if err != nil {
			t.Fatalf("constructor: %v", err)
		}
		s.Prepare()
		return s
	}
}

func TestImageNearestIdentity(t *testing.T) {
	src := newSource(t, 4, 4)
	s := mustSampler(t)(NewImageNearest(src, NewLinear(Identity())))
	span := make([]color.RGBA8, 4)
	s.Generate(span, 0, 1)
	for x, got := range span {
		if want := src.Pixel(x, 1); got != want {
			t.Errorf("pixel %d = %v, want %v", x, got, want)
		}
	}
}

func TestImageNearestBackground(t *testing.T) {
	src := newSource(t, 4, 4)
	red := color.RGBA8{R: 255, A: 255}
	s := mustSampler(t)(NewImageNearest(src, NewLinear(Identity()), WithBackground(red)))
	span := make([]color.RGBA8, 8)
	s.Generate(span, -2, 0)
	for i, got := range span {
		want := red
		if x := i - 2; x >= 0 && x < 4 {
			want = src.Pixel(x, 0)
		}
		if got != want {
			t.Errorf("pixel %d = %v, want %v", i-2, got, want)
		}
	}
}

func TestImageBilinearIdentity(t *testing.T) {
	src := newSource(t, 5, 3)
	s := mustSampler(t)(NewImageBilinear(src, NewLinear(Identity())))
	span := make([]color.RGBA8, 5)
	for y := 0; y < 3; y++ {
		s.Generate(span, 0, y)
		for x, got := range span {
			if want := src.Pixel(x, y); got != want {
				t.Errorf("(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestImageBilinearHalfPixel(t *testing.T) {
	src := newSource(t, 4, 1)
	s := mustSampler(t)(NewImageBilinear(src, NewLinear(Translate(0.5, 0))))
	span := make([]color.RGBA8, 1)
	s.Generate(span, 0, 0)
	// halfway between R=0 and R=40
	if want := (color.RGBA8{R: 20, G: 0, B: 100, A: 255}); span[0] != want {
		t.Errorf("got %v, want %v", span[0], want)
	}
}

func TestImageBilinearEdgeMixesBackground(t *testing.T) {
	src := newSource(t, 2, 1)
	s := mustSampler(t)(NewImageBilinear(src, NewLinear(Translate(0.5, 0))))
	span := make([]color.RGBA8, 1)
	s.Generate(span, 1, 0)
	// half of pixel 1, half of the transparent background
	if span[0].A != 128 || span[0].R != 20 {
		t.Errorf("got %v, want R=20 A=128", span[0])
	}
}

// TestImageFilterIdentity checks that interpolating kernels reproduce the
// source when samples fall on pixel centers.
func TestImageFilterIdentity(t *testing.T) {
	src := newSource(t, 6, 6)
	for _, shape := range []filter.Shape{filter.Bilinear{}, filter.Spline16{}, filter.Sinc64, filter.Blackman100} {
		lut, err := filter.Cached(shape)
		if err != nil {
			t.Fatal(err)
		}
		s := mustSampler(t)(NewImageFilter(src, NewLinear(Identity()), lut))
		span := make([]color.RGBA8, 6)
		for y := 0; y < 6; y++ {
			s.Generate(span, 0, y)
			for x, got := range span {
				if want := src.Pixel(x, y); got != want {
					t.Fatalf("%s: (%d, %d) = %v, want %v", shape.Name(), x, y, got, want)
				}
			}
		}
	}
}

func TestFilterMatchesBilinear(t *testing.T) {
	src := newSource(t, 6, 6)
	interp := func() Interpolator { return NewLinear(Translate(0.25, 0.75)) }
	bl := mustSampler(t)(NewImageBilinear(src, interp()))
	fl := mustSampler(t)(NewImageFilter(src, interp(), filter.MustLUT(filter.Bilinear{})))
	a := make([]color.RGBA8, 4)
	b := make([]color.RGBA8, 4)
	for y := 0; y < 4; y++ {
		bl.Generate(a, 0, y)
		fl.Generate(b, 0, y)
		for x := range a {
			if !near(a[x], b[x], 1) {
				t.Errorf("(%d, %d): bilinear %v, filter %v", x, y, a[x], b[x])
			}
		}
	}
}

// TestImageFilterClampsOvershoot samples between pixels of a hard edge,
// where the negative lobes of a sinc kernel push past the channel range.
func TestImageFilterClampsOvershoot(t *testing.T) {
	src := newTarget(t, 16, 1)
	src.CopyHLine(0, 0, 8, color.RGBA8{A: 255})
	src.CopyHLine(8, 0, 8, color.RGBA8{R: 255, A: 255})
	s := mustSampler(t)(NewImageFilter(src, NewLinear(Translate(0.5, 0)), filter.MustLUT(filter.Sinc64)))
	span := make([]color.RGBA8, 3)
	s.Generate(span, 6, 0)
	if span[0].R != 0 {
		t.Errorf("dark side = %d, want 0", span[0].R)
	}
	if span[1].R < 120 || span[1].R > 135 {
		t.Errorf("edge = %d, want about half", span[1].R)
	}
	if span[2].R != 255 {
		t.Errorf("bright side = %d, want 255", span[2].R)
	}
}

func TestPatternFilterClampsToAlpha(t *testing.T) {
	src := newTarget(t, 4, 4)
	src.CopyHLine(0, 0, 4, color.RGBA8{R: 200, G: 50, B: 200, A: 100})
	for y := 1; y < 4; y++ {
		src.CopyFrom(src.Buffer(), 0, y, 0, 0, 4)
	}
	lut := filter.MustLUT(filter.Spline36{})
	span := make([]color.RGBA8, 4)

	img := mustSampler(t)(NewImageFilter(src, NewLinear(Identity()), lut))
	img.Generate(span, 0, 1)
	if want := (color.RGBA8{R: 200, G: 50, B: 200, A: 100}); span[1] != want {
		t.Errorf("image filter = %v, want %v", span[1], want)
	}

	pat := mustSampler(t)(NewPatternFilter(src, NewLinear(Identity()), lut, nil, nil))
	pat.Generate(span, 0, 1)
	if want := (color.RGBA8{R: 100, G: 50, B: 100, A: 100}); span[1] != want {
		t.Errorf("pattern filter = %v, want %v", span[1], want)
	}
}

func TestPatternNearestTiles(t *testing.T) {
	src := newSource(t, 3, 2)
	s := mustSampler(t)(NewPatternNearest(src, NewLinear(Identity()), nil, nil))
	span := make([]color.RGBA8, 9)
	s.Generate(span, -3, 2)
	for i, got := range span {
		if want := src.Pixel(i%3, 0); got != want {
			t.Errorf("pixel %d = %v, want %v", i-3, got, want)
		}
	}

	s = mustSampler(t)(NewPatternNearest(src, NewLinear(Identity()), Reflect(3), nil))
	s.Generate(span[:6], 0, 0)
	for i, x := range []int{0, 1, 2, 2, 1, 0} {
		if want := src.Pixel(x, 0); span[i] != want {
			t.Errorf("reflected pixel %d = %v, want %v", i, span[i], want)
		}
	}
}

func TestPatternBilinearWrapsSeam(t *testing.T) {
	src := newSource(t, 4, 4)
	s := mustSampler(t)(NewPatternBilinear(src, NewLinear(Translate(0.5, 0)), nil, nil))
	span := make([]color.RGBA8, 1)
	s.Generate(span, 3, 0)
	// halfway between the last pixel (R=120) and the first (R=0)
	if want := (color.RGBA8{R: 60, G: 0, B: 100, A: 255}); span[0] != want {
		t.Errorf("got %v, want %v", span[0], want)
	}
}

func TestSamplerErrors(t *testing.T) {
	src := newSource(t, 3, 3)
	id := NewLinear(Identity())
	lut := filter.MustLUT(filter.Bicubic{})
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil source", second(NewImageNearest(nil, id)), ErrNilSource},
		{"nil pattern source", second(NewPatternBilinear(nil, id, nil, nil)), ErrNilSource},
		{"nil interpolator", second(NewImageBilinear(src, nil)), ErrNilInterpolator},
		{"nil filter", second(NewImageFilter(src, id, nil)), ErrNilFilter},
		{"nil pattern filter", second(NewPatternFilter(src, id, nil, nil, nil)), ErrNilFilter},
		{"mask wider than source", second(NewPatternNearest(src, id, Pow2(3), nil)), ErrRemainderSize},
		{"period taller than source", second(NewPatternFilter(src, id, lut, nil, Unsigned(4))), ErrRemainderSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("got %v, want %v", tt.err, tt.want)
			}
		})
	}
}

func TestSamplingString(t *testing.T) {
	for s, want := range map[Sampling]string{
		SampleNearest:  "nearest",
		SampleBilinear: "bilinear",
		SampleFilter:   "filter",
		Sampling(9):    "unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("Sampling(%d) = %q, want %q", s, got, want)
		}
	}
}

func second(_ *Sampler, err error) error { return err }

func near(a, b color.RGBA8, tol int) bool {
	d := func(x, y uint8) bool { return abs(int(x)-int(y)) <= tol }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func filter64(tb testing.TB) *filter.LUT {
	tb.Helper()
	lut, err := filter.Cached(filter.Sinc64)
	if err != nil {
		tb.Fatal(err)
	}
	return lut
}
