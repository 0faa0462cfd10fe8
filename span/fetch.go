package span

import "github.com/gogpu/pixel/color"

// Fetcher samples an accessor at a coordinate with SubpixelShift
// fractional bits.
type Fetcher interface {
	Fetch(x, y int) color.RGBA8
}

// Nearest returns the pixel that contains the coordinate.
type Nearest struct {
	Accessor Accessor
}

// Fetch returns the pixel at (x>>SubpixelShift, y>>SubpixelShift).
func (n Nearest) Fetch(x, y int) color.RGBA8 {
	return n.Accessor.Pixel(x>>SubpixelShift, y>>SubpixelShift)
}

// Bilinear blends the 2x2 block whose top-left pixel contains the
// coordinate. Each of the four taps goes through the accessor on its own,
// so a sample straddling the edge of a clipped image mixes source pixels
// with the background.
type Bilinear struct {
	Accessor Accessor
}

// Fetch returns the weighted average of the four pixels around (x, y).
// A coordinate with zero fraction returns the top-left pixel unchanged.
func (b Bilinear) Fetch(x, y int) color.RGBA8 {
	xl, yl := x>>SubpixelShift, y>>SubpixelShift
	fx, fy := x&SubpixelMask, y&SubpixelMask

	const half = SubpixelScale * SubpixelScale / 2
	acc := [4]int{half, half, half, half}
	add := func(px, py, w int) {
		if w == 0 {
			return
		}
		c := b.Accessor.Pixel(px, py)
		acc[0] += w * int(c.R)
		acc[1] += w * int(c.G)
		acc[2] += w * int(c.B)
		acc[3] += w * int(c.A)
	}
	add(xl, yl, (SubpixelScale-fx)*(SubpixelScale-fy))
	add(xl+1, yl, fx*(SubpixelScale-fy))
	add(xl, yl+1, (SubpixelScale-fx)*fy)
	add(xl+1, yl+1, fx*fy)

	const shift = SubpixelShift * 2
	return color.RGBA8{
		R: uint8(acc[0] >> shift),
		G: uint8(acc[1] >> shift),
		B: uint8(acc[2] >> shift),
		A: uint8(acc[3] >> shift),
	}
}
