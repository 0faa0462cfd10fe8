package pixfmt

import "github.com/gogpu/pixel/color"

// Blending selects the compositing arithmetic of an adapter.
type Blending uint8

const (
	// BlendStraight stores straight alpha: alpha = cover*a in 0..65025 and
	// ch += ((src-ch)*alpha) >> 16.
	BlendStraight Blending = iota

	// BlendPremultiplied stores premultiplied colors. Input colors must be
	// premultiplied too.
	BlendPremultiplied

	// BlendPlain stores straight alpha and composites in premultiplied
	// space, demultiplying the result.
	BlendPlain

	// BlendGamma blends color channels in linear light through a gamma
	// table (see WithGamma).
	BlendGamma
)

// String returns the blending name.
func (b Blending) String() string {
	switch b {
	case BlendStraight:
		return "Straight"
	case BlendPremultiplied:
		return "Premultiplied"
	case BlendPlain:
		return "Plain"
	case BlendGamma:
		return "Gamma"
	default:
		return "Unknown"
	}
}

// blender composites one color into one pixel with coverage.
//
// Callers handle the trivial cases first: a transparent color or zero
// coverage never reaches a blender, and an opaque color at full coverage
// is copied.
type blender interface {
	// blend composites c into the pixel p laid out as o.
	blend(p []byte, o Order, c color.RGBA8, cover uint8)
	// blendValue composites a single channel value with alpha a.
	blendValue(d, v, a, cover uint8) uint8
}

func newBlender(b Blending, lut *color.GammaLUT) blender {
	switch b {
	case BlendPremultiplied:
		return premultipliedBlender{}
	case BlendPlain:
		return plainBlender{}
	case BlendGamma:
		if lut == nil {
			lut = color.LinearLUT()
		}
		return gammaBlender{lut: lut}
	default:
		return straightBlender{}
	}
}

type straightBlender struct{}

func (straightBlender) blend(p []byte, o Order, c color.RGBA8, cover uint8) {
	alpha := int32(cover) * int32(c.A)
	p[o.R] = lerpStraight(p[o.R], c.R, alpha)
	p[o.G] = lerpStraight(p[o.G], c.G, alpha)
	p[o.B] = lerpStraight(p[o.B], c.B, alpha)
	if o.A >= 0 {
		p[o.A] = accumulateAlpha(p[o.A], alpha)
	}
}

func (straightBlender) blendValue(d, v, a, cover uint8) uint8 {
	return lerpStraight(d, v, int32(cover)*int32(a))
}

// lerpStraight moves d toward s by alpha/65536. The arithmetic shift of a
// negative product rounds toward minus infinity, keeping the result between
// d and s.
func lerpStraight(d, s uint8, alpha int32) uint8 {
	v := int32(d)
	return uint8(v + ((int32(s)-v)*alpha)>>16)
}

// accumulateAlpha applies the Porter-Duff over operator to stored alpha.
func accumulateAlpha(a uint8, alpha int32) uint8 {
	v := int32(a)
	return uint8(v + ((255-v)*alpha)>>16)
}

type premultipliedBlender struct{}

func (premultipliedBlender) blend(p []byte, o Order, c color.RGBA8, cover uint8) {
	alpha := color.MulDiv255(c.A, cover)
	inv := 255 - alpha
	p[o.R] = addSat(color.MulDiv255(p[o.R], inv), color.MulDiv255(c.R, cover))
	p[o.G] = addSat(color.MulDiv255(p[o.G], inv), color.MulDiv255(c.G, cover))
	p[o.B] = addSat(color.MulDiv255(p[o.B], inv), color.MulDiv255(c.B, cover))
	if o.A >= 0 {
		p[o.A] = addSat(alpha, color.MulDiv255(p[o.A], inv))
	}
}

func (premultipliedBlender) blendValue(d, v, a, cover uint8) uint8 {
	inv := 255 - color.MulDiv255(a, cover)
	return addSat(color.MulDiv255(d, inv), color.MulDiv255(v, cover))
}

type plainBlender struct{}

func (plainBlender) blend(p []byte, o Order, c color.RGBA8, cover uint8) {
	if o.A < 0 {
		straightBlender{}.blend(p, o, c, cover)
		return
	}
	alpha := color.MulDiv255(c.A, cover)
	if alpha == 0 {
		return
	}
	inv := 255 - alpha
	da := p[o.A]
	na := alpha + color.MulDiv255(da, inv)
	p[o.R] = plainChannel(p[o.R], c.R, da, alpha, na)
	p[o.G] = plainChannel(p[o.G], c.G, da, alpha, na)
	p[o.B] = plainChannel(p[o.B], c.B, da, alpha, na)
	p[o.A] = na
}

// plainChannel premultiplies the stored channel d by its alpha da,
// composites the straight source s with alpha, and divides by the new
// alpha na.
func plainChannel(d, s, da, alpha, na uint8) uint8 {
	v := uint32(color.MulDiv255(color.MulDiv255(d, da), 255-alpha)) +
		uint32(color.MulDiv255(s, alpha))
	return uint8(clamp((v*255+uint32(na)/2)/uint32(na), 0, 255))
}

func (plainBlender) blendValue(d, v, a, cover uint8) uint8 {
	return straightBlender{}.blendValue(d, v, a, cover)
}

type gammaBlender struct {
	lut *color.GammaLUT
}

func (g gammaBlender) blend(p []byte, o Order, c color.RGBA8, cover uint8) {
	alpha := int32(cover) * int32(c.A)
	p[o.R] = g.channel(p[o.R], c.R, alpha)
	p[o.G] = g.channel(p[o.G], c.G, alpha)
	p[o.B] = g.channel(p[o.B], c.B, alpha)
	if o.A >= 0 {
		p[o.A] = accumulateAlpha(p[o.A], alpha)
	}
}

func (g gammaBlender) blendValue(d, v, a, cover uint8) uint8 {
	return g.channel(d, v, int32(cover)*int32(a))
}

// channel interpolates in 12-bit linear light.
func (g gammaBlender) channel(d, s uint8, alpha int32) uint8 {
	dl := int32(g.lut.Dir(d))
	sl := int32(g.lut.Dir(s))
	return g.lut.Inv(uint16(dl + ((sl-dl)*alpha)>>16))
}
