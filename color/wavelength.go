package color

import "math"

// Visible spectrum limits in nanometers.
const (
	WavelengthMin = 380.0
	WavelengthMax = 780.0
)

// FromWavelength maps a wavelength in nanometers to an opaque color.
//
// The mapping is piecewise linear over the bands 380-440, 440-490,
// 490-510, 510-580, 580-645 and 645-780 nm. Intensity tapers from 1 to 0.3
// below 420 nm and above 700 nm. Each channel is finally raised to gamma.
// Wavelengths outside the visible range yield black.
func FromWavelength(wl, gamma float64) RGBA {
	var t RGBA
	switch {
	case wl >= 380 && wl <= 440:
		t.R = -1 * (wl - 440) / (440 - 380)
		t.B = 1
	case wl >= 440 && wl <= 490:
		t.G = (wl - 440) / (490 - 440)
		t.B = 1
	case wl >= 490 && wl <= 510:
		t.G = 1
		t.B = -1 * (wl - 510) / (510 - 490)
	case wl >= 510 && wl <= 580:
		t.R = (wl - 510) / (580 - 510)
		t.G = 1
	case wl >= 580 && wl <= 645:
		t.R = 1
		t.G = -1 * (wl - 645) / (645 - 580)
	case wl >= 645 && wl <= 780:
		t.R = 1
	}

	s := 1.0
	if wl > 700 {
		s = 0.3 + 0.7*(780-wl)/(780-700)
	} else if wl < 420 {
		s = 0.3 + 0.7*(wl-380)/(420-380)
	}

	t.R = math.Pow(t.R*s, gamma)
	t.G = math.Pow(t.G*s, gamma)
	t.B = math.Pow(t.B*s, gamma)
	t.A = 1
	return t
}

// RGBA8FromWavelength is FromWavelength converted to 8-bit components.
func RGBA8FromWavelength(wl, gamma float64) RGBA8 {
	return FromWavelength(wl, gamma).RGBA8()
}
