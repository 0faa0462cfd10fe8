package color

import (
	stdcolor "image/color"
	"math"
)

// RGBA8 is a color with 8-bit components.
//
// Whether the color channels are premultiplied depends on context: pixel
// formats with premultiplied storage expect premultiplied input, the other
// formats expect straight alpha.
type RGBA8 struct {
	R, G, B, A uint8
}

// NewRGBA8 returns a color from its components.
func NewRGBA8(r, g, b, a uint8) RGBA8 {
	return RGBA8{R: r, G: g, B: b, A: a}
}

// RGB8 returns an opaque color.
func RGB8(r, g, b uint8) RGBA8 {
	return RGBA8{R: r, G: g, B: b, A: BaseMask}
}

// RGBA8FromRGBA converts a float color, see RGBA.RGBA8.
func RGBA8FromRGBA(c RGBA) RGBA8 {
	return c.RGBA8()
}

// RGBA returns the color with float components in [0,1].
func (c RGBA8) RGBA() RGBA {
	return RGBA{
		R: float64(c.R) / BaseMask,
		G: float64(c.G) / BaseMask,
		B: float64(c.B) / BaseMask,
		A: float64(c.A) / BaseMask,
	}
}

// Opacity returns the alpha component in [0,1].
func (c RGBA8) Opacity() float64 {
	return float64(c.A) / BaseMask
}

// WithOpacity returns c with alpha set from a, clamped to [0,1].
func (c RGBA8) WithOpacity(a float64) RGBA8 {
	c.A = unitToByte(a)
	return c
}

// Transparent returns c with alpha zero.
func (c RGBA8) Transparent() RGBA8 {
	c.A = 0
	return c
}

// Premultiply multiplies each color channel by alpha/255 with rounding.
func (c RGBA8) Premultiply() RGBA8 {
	switch c.A {
	case BaseMask:
		return c
	case 0:
		return RGBA8{}
	}
	return RGBA8{
		R: MulDiv255(c.R, c.A),
		G: MulDiv255(c.G, c.A),
		B: MulDiv255(c.B, c.A),
		A: c.A,
	}
}

// PremultiplyAlpha rescales a premultiplied color so that its alpha
// becomes a. Channels are clamped to a. If either alpha is zero the
// result is all zero.
func (c RGBA8) PremultiplyAlpha(a uint8) RGBA8 {
	if c.A == BaseMask && a == BaseMask {
		return c
	}
	if c.A == 0 || a == 0 {
		return RGBA8{}
	}
	old := uint32(c.A)
	na := uint32(a)
	return RGBA8{
		R: uint8(min((uint32(c.R)*na+old/2)/old, na)),
		G: uint8(min((uint32(c.G)*na+old/2)/old, na)),
		B: uint8(min((uint32(c.B)*na+old/2)/old, na)),
		A: a,
	}
}

// Demultiply divides each color channel by alpha/255 with rounding.
// Results are clamped to 255 so malformed premultiplied input stays valid.
func (c RGBA8) Demultiply() RGBA8 {
	switch c.A {
	case BaseMask:
		return c
	case 0:
		return RGBA8{}
	}
	a := uint32(c.A)
	return RGBA8{
		R: clampByte((uint32(c.R)*BaseMask + a/2) / a),
		G: clampByte((uint32(c.G)*BaseMask + a/2) / a),
		B: clampByte((uint32(c.B)*BaseMask + a/2) / a),
		A: c.A,
	}
}

// Gradient interpolates between c and c2 with weight k quantized to
// 1/256 steps. k is not clamped; channels are clamped to [0,255].
func (c RGBA8) Gradient(c2 RGBA8, k float64) RGBA8 {
	ik := int32(math.Round(k * BaseScale))
	return RGBA8{
		R: lerp8(c.R, c2.R, ik),
		G: lerp8(c.G, c2.G, ik),
		B: lerp8(c.B, c2.B, ik),
		A: lerp8(c.A, c2.A, ik),
	}
}

// Add adds c2 scaled by cover to c, saturating at 255.
// A cover of 255 adds c2 unchanged.
func (c RGBA8) Add(c2 RGBA8, cover uint8) RGBA8 {
	if cover == BaseMask {
		if c2.A == BaseMask {
			return c2
		}
		return RGBA8{
			R: addSat(c.R, c2.R),
			G: addSat(c.G, c2.G),
			B: addSat(c.B, c2.B),
			A: addSat(c.A, c2.A),
		}
	}
	return RGBA8{
		R: addSat(c.R, MulDiv255(c2.R, cover)),
		G: addSat(c.G, MulDiv255(c2.G, cover)),
		B: addSat(c.B, MulDiv255(c2.B, cover)),
		A: addSat(c.A, MulDiv255(c2.A, cover)),
	}
}

// Color converts c, taken as straight alpha, to the standard library model.
func (c RGBA8) Color() stdcolor.Color {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA8FromColor converts a standard library color to straight RGBA8.
func RGBA8FromColor(c stdcolor.Color) RGBA8 {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGBA8{R: n.R, G: n.G, B: n.B, A: n.A}
}

// MulDiv255 returns round(a*b/255) without a division.
func MulDiv255(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + (t >> 8)) >> 8)
}

func lerp8(a, b uint8, ik int32) uint8 {
	v := int32(a) + (((int32(b) - int32(a)) * ik) >> BaseShift)
	return clampInt(v)
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > BaseMask {
		return BaseMask
	}
	return uint8(s)
}

func clampByte(v uint32) uint8 {
	if v > BaseMask {
		return BaseMask
	}
	return uint8(v)
}

func clampInt(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > BaseMask {
		return BaseMask
	}
	return uint8(v)
}
