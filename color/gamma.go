package color

import "math"

// Gamma table resolutions. Linear values carry more precision than the
// 8-bit encoded values so that blending in linear light does not band.
const (
	GammaShift      = 8
	GammaSize       = 1 << GammaShift
	GammaMask       = GammaSize - 1
	GammaHiResShift = 12
	GammaHiResSize  = 1 << GammaHiResShift
	GammaHiResMask  = GammaHiResSize - 1
)

// GammaLUT converts between 8-bit encoded values and 12-bit linear values
// using lookup tables.
//
// Dir maps an encoded byte to linear light, Inv maps back. The tables are
// filled once at construction and never modified, so a GammaLUT may be
// shared by any number of pixel formats.
type GammaLUT struct {
	gamma float64
	dir   [GammaSize]uint16
	inv   [GammaHiResSize]uint8
}

// NewGammaLUT builds tables for the power law v_linear = v^gamma.
// A gamma of 1 produces an identity mapping (up to quantization).
func NewGammaLUT(gamma float64) *GammaLUT {
	if gamma <= 0 {
		gamma = 1
	}
	return newGammaLUT(gamma,
		func(v float64) float64 { return math.Pow(v, gamma) },
		func(v float64) float64 { return math.Pow(v, 1/gamma) })
}

// NewSRGBLUT builds tables for the sRGB transfer function.
func NewSRGBLUT() *GammaLUT {
	return newGammaLUT(2.2, SRGBToLinear, LinearToSRGB)
}

var linearLUT = NewGammaLUT(1)

// LinearLUT returns a shared identity table.
func LinearLUT() *GammaLUT {
	return linearLUT
}

func newGammaLUT(gamma float64, toLinear, fromLinear func(float64) float64) *GammaLUT {
	g := &GammaLUT{gamma: gamma}
	for i := 0; i < GammaSize; i++ {
		v := toLinear(float64(i) / GammaMask)
		g.dir[i] = uint16(math.Round(clampUnit(v) * GammaHiResMask))
	}
	for i := 0; i < GammaHiResSize; i++ {
		v := fromLinear(float64(i) / GammaHiResMask)
		g.inv[i] = uint8(math.Round(clampUnit(v) * GammaMask))
	}
	return g
}

// Gamma returns the exponent the tables were built for.
func (g *GammaLUT) Gamma() float64 {
	return g.gamma
}

// Dir converts an encoded value to a 12-bit linear value.
func (g *GammaLUT) Dir(v uint8) uint16 {
	return g.dir[v]
}

// Inv converts a 12-bit linear value back to an encoded byte.
// Values above the table range saturate.
func (g *GammaLUT) Inv(v uint16) uint8 {
	if v > GammaHiResMask {
		v = GammaHiResMask
	}
	return g.inv[v]
}

// Dir8 converts an encoded value to linear light at 8-bit precision.
func (g *GammaLUT) Dir8(v uint8) uint8 {
	return uint8((uint32(g.dir[v])*GammaMask + GammaHiResMask/2) / GammaHiResMask)
}

// SRGBToLinear is the sRGB electro-optical transfer function on [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB is the inverse of SRGBToLinear on [0,1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
