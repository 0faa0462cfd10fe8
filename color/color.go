// Package color provides the color values used by pixel formats and span
// generators.
//
// Three value types are provided:
//   - RGBA: float64 components, semantically in [0,1]
//   - RGBA8: uint8 components in [0,255]
//   - Gray8: uint8 value and alpha in [0,255]
//
// All types are immutable values; every operation returns a new color.
// A color is premultiplied when each color channel is at most its alpha.
// An alpha of zero always forces the color channels to zero on
// premultiply and demultiply, so no operation divides by zero.
package color

import (
	stdcolor "image/color"
	"math"
)

// Channel scale constants for the 8-bit types.
const (
	BaseShift = 8
	BaseScale = 1 << BaseShift
	BaseMask  = BaseScale - 1
)

// RGBA is a color with float64 components.
type RGBA struct {
	R, G, B, A float64
}

// NewRGBA returns a color from its components.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// RGB returns an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// NoColor returns transparent black.
func NoColor() RGBA {
	return RGBA{}
}

// Opacity returns the alpha component.
func (c RGBA) Opacity() float64 {
	return c.A
}

// WithOpacity returns c with alpha set to a clamped to [0,1].
func (c RGBA) WithOpacity(a float64) RGBA {
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	c.A = a
	return c
}

// Transparent returns c with alpha zero.
func (c RGBA) Transparent() RGBA {
	c.A = 0
	return c
}

// Premultiply multiplies each color channel by alpha.
func (c RGBA) Premultiply() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// PremultiplyAlpha rescales a premultiplied color so that its alpha
// becomes a while the channel to alpha ratios are preserved.
// If either the current or the new alpha is zero the result is all zero.
func (c RGBA) PremultiplyAlpha(a float64) RGBA {
	if c.A <= 0 || a <= 0 {
		return RGBA{}
	}
	k := a / c.A
	return RGBA{R: c.R * k, G: c.G * k, B: c.B * k, A: a}
}

// Demultiply divides each color channel by alpha.
func (c RGBA) Demultiply() RGBA {
	if c.A == 0 {
		return RGBA{}
	}
	k := 1 / c.A
	return RGBA{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// Gradient interpolates linearly between c and c2. k is not clamped.
func (c RGBA) Gradient(c2 RGBA, k float64) RGBA {
	return RGBA{
		R: c.R + (c2.R-c.R)*k,
		G: c.G + (c2.G-c.G)*k,
		B: c.B + (c2.B-c.B)*k,
		A: c.A + (c2.A-c.A)*k,
	}
}

// Add returns the channel-wise sum of c and c2.
func (c RGBA) Add(c2 RGBA) RGBA {
	return RGBA{R: c.R + c2.R, G: c.G + c2.G, B: c.B + c2.B, A: c.A + c2.A}
}

// Scale multiplies every channel, alpha included, by k.
func (c RGBA) Scale(k float64) RGBA {
	return RGBA{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A * k}
}

// RGBA8 converts c to 8-bit components with rounding.
// Components are clamped to [0,1] first.
func (c RGBA) RGBA8() RGBA8 {
	return RGBA8{
		R: unitToByte(c.R),
		G: unitToByte(c.G),
		B: unitToByte(c.B),
		A: unitToByte(c.A),
	}
}

// Color converts c to the standard library color model.
func (c RGBA) Color() stdcolor.Color {
	return c.RGBA8().Color()
}

// FromColor converts a standard library color to RGBA.
func FromColor(c stdcolor.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// stdlib colors are premultiplied
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}.Demultiply()
}

// unitToByte clamps v to [0,1] and converts it to uint8 with rounding.
func unitToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
