package span

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixel"
	"github.com/gogpu/pixel/color"
	"github.com/gogpu/pixel/filter"
)

// Errors returned by sampler constructors.
var (
	// ErrNilSource is returned when no source image is given.
	ErrNilSource = errors.New("span: nil source")

	// ErrNilInterpolator is returned when no interpolator is given.
	ErrNilInterpolator = errors.New("span: nil interpolator")

	// ErrNilFilter is returned by filter samplers without a lookup table.
	ErrNilFilter = errors.New("span: nil filter")

	// ErrRemainderSize is returned when a wrap period exceeds the source.
	ErrRemainderSize = errors.New("span: remainder period exceeds source size")
)

// Generator produces the colors of one span.
//
// Prepare is called once before a batch of spans. Generate fills span with
// len(span) colors for the pixels starting at (x, y); span is owned by the
// caller and overwritten on every call.
type Generator[C any] interface {
	Prepare()
	Generate(span []C, x, y int)
}

// Sampling is the method a sampler uses to read its source.
type Sampling uint8

const (
	// SampleNearest reads the source pixel containing each coordinate.
	SampleNearest Sampling = iota
	// SampleBilinear blends a 2x2 block.
	SampleBilinear
	// SampleFilter convolves with a filter.LUT.
	SampleFilter
)

// String returns the sampling name.
func (s Sampling) String() string {
	switch s {
	case SampleNearest:
		return "nearest"
	case SampleBilinear:
		return "bilinear"
	case SampleFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// Sampler is an image or pattern span generator.
//
// Image samplers clip: coordinates outside the source read the background
// color. Pattern samplers tile the source through a Remainder per axis.
type Sampler struct {
	acc     Accessor
	fetch   Fetcher
	interp  Interpolator
	method  Sampling
	lut     *filter.LUT
	pattern bool
	wrapX   Remainder
	wrapY   Remainder
	dx, dy  float64

	// subpixel offsets subtracted before bilinear and filter sampling
	dxInt, dyInt int
}

var _ Generator[color.RGBA8] = (*Sampler)(nil)

// NewImageNearest returns a clipping nearest-neighbor sampler.
func NewImageNearest(src Source, interp Interpolator, opts ...Option) (*Sampler, error) {
	return newImage(src, interp, SampleNearest, nil, opts)
}

// NewImageBilinear returns a clipping bilinear sampler.
func NewImageBilinear(src Source, interp Interpolator, opts ...Option) (*Sampler, error) {
	return newImage(src, interp, SampleBilinear, nil, opts)
}

// NewImageFilter returns a clipping sampler convolving with lut.
func NewImageFilter(src Source, interp Interpolator, lut *filter.LUT, opts ...Option) (*Sampler, error) {
	if lut == nil {
		return nil, ErrNilFilter
	}
	return newImage(src, interp, SampleFilter, lut, opts)
}

// NewPatternNearest returns a tiling nearest-neighbor sampler. A nil
// remainder selects Auto for that axis.
func NewPatternNearest(src Source, interp Interpolator, wx, wy Remainder, opts ...Option) (*Sampler, error) {
	return newPattern(src, interp, SampleNearest, nil, wx, wy, opts)
}

// NewPatternBilinear returns a tiling bilinear sampler.
func NewPatternBilinear(src Source, interp Interpolator, wx, wy Remainder, opts ...Option) (*Sampler, error) {
	return newPattern(src, interp, SampleBilinear, nil, wx, wy, opts)
}

// NewPatternFilter returns a tiling sampler convolving with lut. Output
// color channels are clamped to alpha, keeping premultiplied sources
// valid.
func NewPatternFilter(src Source, interp Interpolator, lut *filter.LUT, wx, wy Remainder, opts ...Option) (*Sampler, error) {
	if lut == nil {
		return nil, ErrNilFilter
	}
	return newPattern(src, interp, SampleFilter, lut, wx, wy, opts)
}

func newImage(src Source, interp Interpolator, method Sampling, lut *filter.LUT, opts []Option) (*Sampler, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newSampler(&Clip{Source: src, Background: o.background}, interp, method, lut, o)
}

func newPattern(src Source, interp Interpolator, method Sampling, lut *filter.LUT, wx, wy Remainder, opts []Option) (*Sampler, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if wx == nil {
		wx = Auto(src.Width())
	}
	if wy == nil {
		wy = Auto(src.Height())
	}
	if wx.Size() > src.Width() || wy.Size() > src.Height() {
		return nil, fmt.Errorf("%w: %dx%d periods for a %dx%d source",
			ErrRemainderSize, wx.Size(), wy.Size(), src.Width(), src.Height())
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s, err := newSampler(&Wrap{Source: src, X: wx, Y: wy}, interp, method, lut, o)
	if err != nil {
		return nil, err
	}
	s.pattern = true
	s.wrapX, s.wrapY = wx, wy
	return s, nil
}

func newSampler(acc Accessor, interp Interpolator, method Sampling, lut *filter.LUT, o options) (*Sampler, error) {
	if interp == nil {
		return nil, ErrNilInterpolator
	}
	s := &Sampler{
		acc:    acc,
		interp: interp,
		method: method,
		lut:    lut,
		dx:     o.dx,
		dy:     o.dy,
		dxInt:  iround(o.dx * SubpixelScale),
		dyInt:  iround(o.dy * SubpixelScale),
	}
	switch method {
	case SampleNearest:
		s.fetch = Nearest{Accessor: acc}
	case SampleBilinear:
		s.fetch = Bilinear{Accessor: acc}
	}
	return s, nil
}

// Method returns the sampling method.
func (s *Sampler) Method() Sampling { return s.method }

// Interpolator returns the coordinate source.
func (s *Sampler) Interpolator() Interpolator { return s.interp }

// Prepare is called before a batch of spans.
func (s *Sampler) Prepare() {
	attrs := []any{
		"method", s.method.String(),
		"pattern", s.pattern,
		"width", s.acc.Width(),
		"height", s.acc.Height(),
	}
	if s.lut != nil {
		attrs = append(attrs, "filter", s.lut.Shape().Name(), "dimension", s.lut.Dimension())
	}
	pixel.Logger().Debug("span: prepared sampler", attrs...)
}

// Generate fills span with samples for the pixels starting at (x, y).
func (s *Sampler) Generate(span []color.RGBA8, x, y int) {
	if len(span) == 0 {
		return
	}
	s.interp.Begin(float64(x)+s.dx, float64(y)+s.dy, len(span))
	switch s.method {
	case SampleNearest:
		s.generateFetch(span, 0, 0)
	case SampleBilinear:
		s.generateFetch(span, s.dxInt, s.dyInt)
	case SampleFilter:
		s.generateFilter(span)
	}
}

func (s *Sampler) generateFetch(span []color.RGBA8, ox, oy int) {
	for i := range span {
		sx, sy := s.interp.Coordinates()
		span[i] = s.fetch.Fetch(sx-ox, sy-oy)
		s.interp.Next()
	}
}

func (s *Sampler) generateFilter(span []color.RGBA8) {
	dim := s.lut.Dimension()
	start := s.lut.Start()
	for i := range span {
		sx, sy := s.interp.Coordinates()
		sx -= s.dxInt
		sy -= s.dyInt
		xl, yl := sx>>SubpixelShift, sy>>SubpixelShift
		fx, fy := sx&SubpixelMask, sy&SubpixelMask

		var acc [4]int
		for ty := 0; ty < dim; ty++ {
			wy := int(s.lut.TapWeight(ty, fy))
			py := yl + start + ty
			for tx := 0; tx < dim; tx++ {
				w := (wy*int(s.lut.TapWeight(tx, fx)) + filter.Scale/2) >> filter.Shift
				c := s.acc.Pixel(xl+start+tx, py)
				acc[0] += w * int(c.R)
				acc[1] += w * int(c.G)
				acc[2] += w * int(c.B)
				acc[3] += w * int(c.A)
			}
		}

		var c color.RGBA8
		a := clamp((acc[3]+filter.Scale/2)>>filter.Shift, 0, 255)
		c.A = uint8(a)
		hi := 255
		if s.pattern {
			hi = a
		}
		c.R = uint8(clamp((acc[0]+filter.Scale/2)>>filter.Shift, 0, hi))
		c.G = uint8(clamp((acc[1]+filter.Scale/2)>>filter.Shift, 0, hi))
		c.B = uint8(clamp((acc[2]+filter.Scale/2)>>filter.Shift, 0, hi))
		span[i] = c
		s.interp.Next()
	}
}
