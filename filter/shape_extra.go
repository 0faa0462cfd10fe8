package filter

import (
	"fmt"
	"math"
)

// Hanning is the raised cosine 0.5+0.5cos(pi*x), 2 taps.
type Hanning struct{}

func (Hanning) Name() string    { return "hanning" }
func (Hanning) Radius() float64 { return 1 }

func (Hanning) Weight(x float64) float64 {
	if math.Abs(x) >= 1 {
		return 0
	}
	return 0.5 + 0.5*math.Cos(math.Pi*x)
}

// Hamming is 0.54+0.46cos(pi*x), 2 taps.
type Hamming struct{}

func (Hamming) Name() string    { return "hamming" }
func (Hamming) Radius() float64 { return 1 }

func (Hamming) Weight(x float64) float64 {
	if math.Abs(x) >= 1 {
		return 0
	}
	return 0.54 + 0.46*math.Cos(math.Pi*x)
}

// Hermite is the cubic (2|x|-3)x^2+1, 2 taps.
type Hermite struct{}

func (Hermite) Name() string    { return "hermite" }
func (Hermite) Radius() float64 { return 1 }

func (Hermite) Weight(x float64) float64 {
	x = math.Abs(x)
	if x >= 1 {
		return 0
	}
	return (2*x-3)*x*x + 1
}

// Quadric is the quadratic B-spline, radius 1.5.
type Quadric struct{}

func (Quadric) Name() string    { return "quadric" }
func (Quadric) Radius() float64 { return 1.5 }

func (Quadric) Weight(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 0.5:
		return 0.75 - x*x
	case x < 1.5:
		t := x - 1.5
		return 0.5 * t * t
	}
	return 0
}

// Catrom is the Catmull-Rom spline, 4 taps.
type Catrom struct{}

func (Catrom) Name() string    { return "catrom" }
func (Catrom) Radius() float64 { return 2 }

func (Catrom) Weight(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 1:
		return 0.5 * (2 + x*x*(-5+x*3))
	case x < 2:
		return 0.5 * (4 + x*(-8+x*(5-x)))
	}
	return 0
}

// Mitchell is the Mitchell-Netravali cubic with parameters B and C, 4 taps.
// NewMitchell returns the customary B = C = 1/3.
type Mitchell struct {
	B, C float64
}

// NewMitchell returns the Mitchell filter with B = C = 1/3.
func NewMitchell() Mitchell {
	return Mitchell{B: 1.0 / 3.0, C: 1.0 / 3.0}
}

func (m Mitchell) Name() string    { return fmt.Sprintf("mitchell(b=%g,c=%g)", m.B, m.C) }
func (m Mitchell) Radius() float64 { return 2 }

func (m Mitchell) Weight(x float64) float64 {
	b, c := m.B, m.C
	x = math.Abs(x)
	switch {
	case x < 1:
		p0 := (6 - 2*b) / 6
		p2 := (-18 + 12*b + 6*c) / 6
		p3 := (12 - 9*b - 6*c) / 6
		return p0 + x*x*(p2+x*p3)
	case x < 2:
		q0 := (8*b + 24*c) / 6
		q1 := (-12*b - 48*c) / 6
		q2 := (6*b + 30*c) / 6
		q3 := (-b - 6*c) / 6
		return q0 + x*(q1+x*(q2+x*q3))
	}
	return 0
}

// Gaussian is exp(-2x^2)*sqrt(2/pi), 4 taps.
type Gaussian struct{}

func (Gaussian) Name() string    { return "gaussian" }
func (Gaussian) Radius() float64 { return 2 }

func (Gaussian) Weight(x float64) float64 {
	return math.Exp(-2*x*x) * math.Sqrt(2/math.Pi)
}

// Kaiser is the Kaiser window with shape parameter A, 2 taps.
// NewKaiser returns A = 6.33.
type Kaiser struct {
	A float64
}

// NewKaiser returns the Kaiser filter with A = 6.33.
func NewKaiser() Kaiser {
	return Kaiser{A: 6.33}
}

func (k Kaiser) Name() string    { return fmt.Sprintf("kaiser(a=%g)", k.A) }
func (k Kaiser) Radius() float64 { return 1 }

func (k Kaiser) Weight(x float64) float64 {
	t := 1 - x*x
	if t < 0 {
		return 0
	}
	return besselI0(k.A*math.Sqrt(t)) / besselI0(k.A)
}

// besselI0 is the modified Bessel function of the first kind, order 0,
// summed until terms drop below 1e-12.
func besselI0(x float64) float64 {
	const epsilon = 1e-12
	sum := 1.0
	y := x * x / 4
	t := y
	for i := 2; t > epsilon; i++ {
		sum += t
		t *= y / float64(i*i)
	}
	return sum
}

// Bessel is the jinc kernel J1(pi*x)/(2x), radius 3.2383.
type Bessel struct{}

func (Bessel) Name() string    { return "bessel" }
func (Bessel) Radius() float64 { return 3.2383 }

func (Bessel) Weight(x float64) float64 {
	if x == 0 {
		return math.Pi / 4
	}
	return math.J1(math.Pi*x) / (2 * x)
}
