package pixfmt

import (
	"image"
	stdcolor "image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixel/color"
)

// Image exposes a color adapter as a draw.Image so that the standard
// image packages and golang.org/x/image/draw can read and write it.
//
// Set overwrites pixels; compositing goes through draw operators such as
// draw.Over, which read back with At.
type Image struct {
	f             Format[color.RGBA8]
	premultiplied bool
}

var _ draw.Image = (*Image)(nil)

// NewImage wraps f. Premultiplied adapters report image/color.RGBA values;
// all others report image/color.NRGBA.
func NewImage(f Format[color.RGBA8]) *Image {
	img := &Image{f: f}
	if b, ok := f.(interface{ Blending() Blending }); ok {
		img.premultiplied = b.Blending() == BlendPremultiplied
	}
	return img
}

// ColorModel returns the model matching the adapter's storage.
func (m *Image) ColorModel() stdcolor.Model {
	if m.premultiplied {
		return stdcolor.RGBAModel
	}
	return stdcolor.NRGBAModel
}

// Bounds returns the buffer rectangle anchored at the origin.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.f.Width(), m.f.Height())
}

// At returns the pixel at (x, y), or transparent outside the bounds.
func (m *Image) At(x, y int) stdcolor.Color {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return stdcolor.NRGBA{}
	}
	c := m.f.Pixel(x, y)
	if m.premultiplied {
		return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Set overwrites the pixel at (x, y). Points outside the bounds are
// ignored.
func (m *Image) Set(x, y int, c stdcolor.Color) {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return
	}
	if m.premultiplied {
		p := stdcolor.RGBAModel.Convert(c).(stdcolor.RGBA)
		m.f.CopyPixel(x, y, color.RGBA8{R: p.R, G: p.G, B: p.B, A: p.A})
		return
	}
	m.f.CopyPixel(x, y, color.RGBA8FromColor(c))
}

// Scale resamples the sr part of src into the r part of dst with the
// given x/image/draw interpolator, for example draw.CatmullRom.
func Scale(dst Format[color.RGBA8], r image.Rectangle, src image.Image, sr image.Rectangle, q draw.Interpolator, op draw.Op) {
	q.Scale(NewImage(dst), r, src, sr, op, nil)
}
