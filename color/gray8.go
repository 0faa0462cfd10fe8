package color

import (
	stdcolor "image/color"
	"math"
)

// Gray8 is an 8-bit gray value with alpha.
type Gray8 struct {
	V, A uint8
}

// NewGray8 returns a gray color.
func NewGray8(v, a uint8) Gray8 {
	return Gray8{V: v, A: a}
}

// Gray8FromRGBA computes luminance with the BT.601 weights.
func Gray8FromRGBA(c RGBA) Gray8 {
	v := 0.299*c.R + 0.587*c.G + 0.114*c.B
	return Gray8{V: unitToByte(v), A: unitToByte(c.A)}
}

// Gray8FromRGBA8 computes luminance with integer weights 77/150/29 over 256.
func Gray8FromRGBA8(c RGBA8) Gray8 {
	v := (uint32(c.R)*77 + uint32(c.G)*150 + uint32(c.B)*29) >> BaseShift
	return Gray8{V: uint8(v), A: c.A}
}

// RGBA8 expands the gray value to all three color channels.
func (c Gray8) RGBA8() RGBA8 {
	return RGBA8{R: c.V, G: c.V, B: c.V, A: c.A}
}

// Opacity returns the alpha component in [0,1].
func (c Gray8) Opacity() float64 {
	return float64(c.A) / BaseMask
}

// WithOpacity returns c with alpha set from a, clamped to [0,1].
func (c Gray8) WithOpacity(a float64) Gray8 {
	c.A = unitToByte(a)
	return c
}

// Premultiply multiplies the value by alpha/255 with rounding.
func (c Gray8) Premultiply() Gray8 {
	switch c.A {
	case BaseMask:
		return c
	case 0:
		return Gray8{}
	}
	return Gray8{V: MulDiv255(c.V, c.A), A: c.A}
}

// PremultiplyAlpha rescales a premultiplied gray so its alpha becomes a.
// The value is clamped to a.
func (c Gray8) PremultiplyAlpha(a uint8) Gray8 {
	if c.A == BaseMask && a == BaseMask {
		return c
	}
	if c.A == 0 || a == 0 {
		return Gray8{}
	}
	old, na := uint32(c.A), uint32(a)
	return Gray8{V: uint8(min((uint32(c.V)*na+old/2)/old, na)), A: a}
}

// Demultiply divides the value by alpha/255 with rounding.
func (c Gray8) Demultiply() Gray8 {
	switch c.A {
	case BaseMask:
		return c
	case 0:
		return Gray8{}
	}
	a := uint32(c.A)
	return Gray8{V: clampByte((uint32(c.V)*BaseMask + a/2) / a), A: c.A}
}

// Gradient interpolates between c and c2, see RGBA8.Gradient.
func (c Gray8) Gradient(c2 Gray8, k float64) Gray8 {
	ik := int32(math.Round(k * BaseScale))
	return Gray8{V: lerp8(c.V, c2.V, ik), A: lerp8(c.A, c2.A, ik)}
}

// Color converts c to the standard library model.
func (c Gray8) Color() stdcolor.Color {
	return stdcolor.NRGBA{R: c.V, G: c.V, B: c.V, A: c.A}
}
