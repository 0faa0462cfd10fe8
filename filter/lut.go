package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/pixel"
)

// Subpixel and weight precision of the lookup tables.
const (
	// SubpixelShift is the number of fractional bits in source coordinates.
	SubpixelShift = 8
	// SubpixelScale is the number of phases per source pixel.
	SubpixelScale = 1 << SubpixelShift
	// SubpixelMask extracts the phase from a subpixel coordinate.
	SubpixelMask = SubpixelScale - 1

	// Shift is the number of fractional bits of fixed-point weights.
	Shift = 14
	// Scale is the fixed-point representation of a weight of 1.
	Scale = 1 << Shift
	// Mask is Scale - 1.
	Mask = Scale - 1

	// MaxRadius bounds the support so Dimension never exceeds 16.
	MaxRadius = 8
)

// Errors returned by NewLUT.
var (
	// ErrNilShape is returned when no shape is given.
	ErrNilShape = errors.New("filter: nil shape")

	// ErrInvalidRadius is returned for a radius outside (0, MaxRadius].
	ErrInvalidRadius = errors.New("filter: radius out of range")
)

// LUT is a discretized, normalized filter kernel.
//
// The table holds Dimension() taps for each of SubpixelScale phases.
// Tap t covers the source pixel at offset Start()+t from the integer part
// of the sample coordinate. A LUT is immutable; share it freely.
type LUT struct {
	shape       Shape
	dimension   int
	start       int
	weights     []int16
	weightsF    []float64
	corrections int
}

// NewLUT samples shape into a lookup table.
//
// Sample i of the table is the weight at x = i/256 - Dimension()/2 for
// i in [0, Dimension()*256). Fixed-point weights are round(w*Scale) and,
// unless WithoutNormalization is given, each phase column is normalized
// to sum to exactly Scale.
func NewLUT(shape Shape, opts ...Option) (*LUT, error) {
	if shape == nil {
		return nil, ErrNilShape
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := shape.Radius()
	if !(r > 0 && r <= MaxRadius) {
		return nil, fmt.Errorf("%w: %s has radius %g", ErrInvalidRadius, shape.Name(), r)
	}

	dim := Dimension(r)
	n := dim << SubpixelShift
	l := &LUT{
		shape:     shape,
		dimension: dim,
		start:     1 - dim/2,
		weights:   make([]int16, n),
		weightsF:  make([]float64, n),
	}

	half := float64(dim / 2)
	for i := range n {
		x := float64(i)/SubpixelScale - half
		w := shape.Weight(x)
		l.weightsF[i] = w
		l.weights[i] = int16(math.Round(w * Scale))
	}

	if o.normalize {
		l.weights, l.corrections = normalize(l.weights, dim)
	}

	pixel.Logger().Debug("filter: built lookup table",
		"shape", shape.Name(),
		"dimension", dim,
		"normalized", o.normalize,
		"corrections", l.corrections)
	return l, nil
}

// MustLUT is NewLUT for shapes known to be valid; it panics on error.
func MustLUT(shape Shape, opts ...Option) *LUT {
	l, err := NewLUT(shape, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// Dimension returns the number of taps for a support radius.
func Dimension(radius float64) int {
	d := int(math.Ceil(radius)) * 2
	if d < 2 {
		d = 2
	}
	return d
}

// Shape returns the kernel the table was built from.
func (l *LUT) Shape() Shape { return l.shape }

// Radius returns the support radius of the kernel.
func (l *LUT) Radius() float64 { return l.shape.Radius() }

// Dimension returns the number of taps per phase.
func (l *LUT) Dimension() int { return l.dimension }

// Start returns the offset of tap 0 relative to the integer part of the
// sample coordinate.
func (l *LUT) Start() int { return l.start }

// Corrections returns how many unit nudges normalization applied.
func (l *LUT) Corrections() int { return l.corrections }

// Weights returns the fixed-point table, indexed by i as in NewLUT.
// The slice is shared and must not be modified.
func (l *LUT) Weights() []int16 { return l.weights }

// WeightsFloat returns the float64 table before quantization.
// The slice is shared and must not be modified.
func (l *LUT) WeightsFloat() []float64 { return l.weightsF }

// TapWeight returns the fixed-point weight of tap t at subpixel phase p.
//
// The source pixel of tap t lies at distance Start()+t-p/256 from the
// sample point, which is the mirror image of table sample
// (Dimension()-1-t)*256 + p.
func (l *LUT) TapWeight(t, p int) int32 {
	return int32(l.weights[(l.dimension-1-t)<<SubpixelShift+p])
}

// ColumnSum returns the sum of the fixed-point weights of phase p.
func (l *LUT) ColumnSum(p int) int {
	sum := 0
	for j := 0; j < l.dimension; j++ {
		sum += int(l.weights[j<<SubpixelShift+p])
	}
	return sum
}
