package filter

import (
	"fmt"
	"math"
)

// Shape is a continuous filter kernel.
//
// Weight must be symmetric around zero. Radius is the half-width of the
// support; the discretized table spans 2*ceil(Radius()) source pixels.
type Shape interface {
	// Name identifies the shape and its parameters.
	Name() string
	// Radius returns the support half-width in source pixels.
	Radius() float64
	// Weight evaluates the kernel at distance x.
	Weight(x float64) float64
}

// Predefined shapes.
var (
	Sinc36  = Sinc{Lobes: 3}
	Sinc64  = Sinc{Lobes: 4}
	Sinc100 = Sinc{Lobes: 5}
	Sinc144 = Sinc{Lobes: 6}
	Sinc196 = Sinc{Lobes: 7}
	Sinc256 = Sinc{Lobes: 8}

	Blackman36  = Blackman{Lobes: 3}
	Blackman64  = Blackman{Lobes: 4}
	Blackman100 = Blackman{Lobes: 5}
	Blackman144 = Blackman{Lobes: 6}
	Blackman196 = Blackman{Lobes: 7}
	Blackman256 = Blackman{Lobes: 8}
)

// Bilinear is the triangle kernel, 2 taps.
type Bilinear struct{}

func (Bilinear) Name() string    { return "bilinear" }
func (Bilinear) Radius() float64 { return 1 }

func (Bilinear) Weight(x float64) float64 {
	x = math.Abs(x)
	if x >= 1 {
		return 0
	}
	return 1 - x
}

// Bicubic is the cubic B-spline convolution kernel, 4 taps.
// It smooths rather than interpolates: the weight at 0 is 2/3.
type Bicubic struct{}

func (Bicubic) Name() string    { return "bicubic" }
func (Bicubic) Radius() float64 { return 2 }

func (Bicubic) Weight(x float64) float64 {
	return (1.0 / 6.0) * (pow3(x+2) - 4*pow3(x+1) + 6*pow3(x) - 4*pow3(x-1))
}

func pow3(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return x * x * x
}

// Spline16 is a piecewise cubic interpolating spline, 4 taps.
type Spline16 struct{}

func (Spline16) Name() string    { return "spline16" }
func (Spline16) Radius() float64 { return 2 }

func (Spline16) Weight(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 1:
		return ((x-9.0/5.0)*x-1.0/5.0)*x + 1
	case x < 2:
		x--
		return ((-1.0/3.0*x+4.0/5.0)*x - 7.0/15.0) * x
	}
	return 0
}

// Spline36 is a piecewise cubic interpolating spline, 6 taps.
type Spline36 struct{}

func (Spline36) Name() string    { return "spline36" }
func (Spline36) Radius() float64 { return 3 }

func (Spline36) Weight(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 1:
		return ((13.0/11.0*x-453.0/209.0)*x-3.0/209.0)*x + 1
	case x < 2:
		x--
		return ((-6.0/11.0*x+270.0/209.0)*x - 156.0/209.0) * x
	case x < 3:
		x -= 2
		return ((1.0/11.0*x-45.0/209.0)*x + 26.0/209.0) * x
	}
	return 0
}

// Sinc is sinc(pi*x) windowed by sinc(pi*x/Lobes).
// Lobes is also the radius; Sinc36 through Sinc256 use 3 to 8 lobes.
type Sinc struct {
	Lobes float64
}

func (s Sinc) Name() string    { return fmt.Sprintf("sinc%g", 4*s.Lobes*s.Lobes) }
func (s Sinc) Radius() float64 { return s.Lobes }

func (s Sinc) Weight(x float64) float64 {
	if math.Abs(x) >= s.Lobes {
		return 0
	}
	x *= math.Pi
	return sinc(x) * sinc(x/s.Lobes)
}

// Blackman is sinc(pi*x) windowed by a Blackman window over Lobes.
type Blackman struct {
	Lobes float64
}

func (b Blackman) Name() string    { return fmt.Sprintf("blackman%g", 4*b.Lobes*b.Lobes) }
func (b Blackman) Radius() float64 { return b.Lobes }

func (b Blackman) Weight(x float64) float64 {
	if math.Abs(x) >= b.Lobes {
		return 0
	}
	x *= math.Pi
	xr := x / b.Lobes
	return sinc(x) * (0.42 + 0.5*math.Cos(xr) + 0.08*math.Cos(2*xr))
}

// sinc returns sin(x)/x with sinc(0) == 1.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(x) / x
}
