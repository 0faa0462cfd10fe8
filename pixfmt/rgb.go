package pixfmt

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixel/color"
	"github.com/gogpu/pixel/internal/assert"
)

// ByteFormat adapts layouts that store each channel in its own byte:
// 24-bit RGB and 32-bit RGBA in any Order.
type ByteFormat struct {
	buf      Buffer
	order    Order
	size     int
	blending Blending
	bl       blender
}

var _ Format[color.RGBA8] = (*ByteFormat)(nil)

// NewRGB24 attaches a 24-bit adapter. order must be OrderRGB or OrderBGR;
// blending may be BlendStraight, BlendPremultiplied or BlendGamma.
func NewRGB24(buf Buffer, order Order, blending Blending, opts ...Option) (*ByteFormat, error) {
	if order.Size() != 3 {
		return nil, fmt.Errorf("%w: %s for a 24-bit layout", ErrUnsupportedOrder, order)
	}
	if blending == BlendPlain {
		return nil, fmt.Errorf("%w: %s without an alpha channel", ErrUnsupportedBlending, blending)
	}
	return newByteFormat(buf, order, blending, opts)
}

// NewRGBA32 attaches a 32-bit adapter. order must be one of OrderRGBA,
// OrderARGB, OrderABGR or OrderBGRA.
func NewRGBA32(buf Buffer, order Order, blending Blending, opts ...Option) (*ByteFormat, error) {
	if order.Size() != 4 || !order.HasAlpha() {
		return nil, fmt.Errorf("%w: %s for a 32-bit layout", ErrUnsupportedOrder, order)
	}
	return newByteFormat(buf, order, blending, opts)
}

// NewRGBA attaches the common straight-alpha RGBA layout.
func NewRGBA(buf Buffer) (*ByteFormat, error) {
	return NewRGBA32(buf, OrderRGBA, BlendStraight)
}

func newByteFormat(buf Buffer, order Order, blending Blending, opts []Option) (*ByteFormat, error) {
	if blending > BlendGamma {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBlending, blending)
	}
	if err := checkBuffer(buf, order.Size()); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	return &ByteFormat{
		buf:      buf,
		order:    order,
		size:     order.Size(),
		blending: blending,
		bl:       newBlender(blending, o.gamma),
	}, nil
}

// Buffer returns the attached buffer.
func (f *ByteFormat) Buffer() Buffer { return f.buf }

// Order returns the channel layout.
func (f *ByteFormat) Order() Order { return f.order }

// Blending returns the compositing mode.
func (f *ByteFormat) Blending() Blending { return f.blending }

// Width returns the width in pixels.
func (f *ByteFormat) Width() int { return f.buf.Width() }

// Height returns the height in pixels.
func (f *ByteFormat) Height() int { return f.buf.Height() }

// TextureFormat returns the matching GPU texture format, or
// TextureFormatUndefined when no 8-bit format has the same layout.
func (f *ByteFormat) TextureFormat() gputypes.TextureFormat {
	switch f.order {
	case OrderRGBA:
		return gputypes.TextureFormatRGBA8Unorm
	case OrderBGRA:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

func (f *ByteFormat) pix(x, y int) []byte {
	i := x * f.size
	return f.buf.Row(y)[i : i+f.size]
}

func (f *ByteFormat) load(p []byte) color.RGBA8 {
	c := color.RGBA8{R: p[f.order.R], G: p[f.order.G], B: p[f.order.B], A: 255}
	if f.order.A >= 0 {
		c.A = p[f.order.A]
	}
	return c
}

func (f *ByteFormat) store(p []byte, c color.RGBA8) {
	p[f.order.R] = c.R
	p[f.order.G] = c.G
	p[f.order.B] = c.B
	if f.order.A >= 0 {
		p[f.order.A] = c.A
	}
}

func (f *ByteFormat) copyOrBlend(p []byte, c color.RGBA8, cover uint8) {
	if c.A == 0 || cover == 0 {
		return
	}
	if c.A == 255 && cover == 255 {
		f.store(p, c)
		return
	}
	f.bl.blend(p, f.order, c, cover)
}

// Pixel returns the color at (x, y). Layouts without alpha report 255.
func (f *ByteFormat) Pixel(x, y int) color.RGBA8 {
	if assert.Enabled {
		assert.Point(x, y, f.Width(), f.Height())
	}
	return f.load(f.pix(x, y))
}

// CopyPixel overwrites the pixel at (x, y).
func (f *ByteFormat) CopyPixel(x, y int, c color.RGBA8) {
	if assert.Enabled {
		assert.Point(x, y, f.Width(), f.Height())
	}
	f.store(f.pix(x, y), c)
}

// CopyHLine overwrites n pixels to the right of (x, y).
func (f *ByteFormat) CopyHLine(x, y, n int, c color.RGBA8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
	}
	row := f.buf.Row(y)
	for i := x * f.size; n > 0; n-- {
		f.store(row[i:i+f.size], c)
		i += f.size
	}
}

// CopyVLine overwrites n pixels downward from (x, y).
func (f *ByteFormat) CopyVLine(x, y, n int, c color.RGBA8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
	}
	for ; n > 0; n-- {
		f.store(f.pix(x, y), c)
		y++
	}
}

// BlendPixel composites c over (x, y) with coverage.
func (f *ByteFormat) BlendPixel(x, y int, c color.RGBA8, cover uint8) {
	if assert.Enabled {
		assert.Point(x, y, f.Width(), f.Height())
	}
	f.copyOrBlend(f.pix(x, y), c, cover)
}

// BlendHLine composites c over n pixels to the right of (x, y).
func (f *ByteFormat) BlendHLine(x, y, n int, c color.RGBA8, cover uint8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
	}
	if c.A == 0 || cover == 0 {
		return
	}
	if c.A == 255 && cover == 255 {
		f.CopyHLine(x, y, n, c)
		return
	}
	row := f.buf.Row(y)
	for i := x * f.size; n > 0; n-- {
		f.bl.blend(row[i:i+f.size], f.order, c, cover)
		i += f.size
	}
}

// BlendVLine composites c over n pixels downward from (x, y).
func (f *ByteFormat) BlendVLine(x, y, n int, c color.RGBA8, cover uint8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
	}
	if c.A == 0 || cover == 0 {
		return
	}
	if c.A == 255 && cover == 255 {
		f.CopyVLine(x, y, n, c)
		return
	}
	for ; n > 0; n-- {
		f.bl.blend(f.pix(x, y), f.order, c, cover)
		y++
	}
}

// BlendSolidHSpan composites c over n pixels with per-pixel coverage.
func (f *ByteFormat) BlendSolidHSpan(x, y, n int, c color.RGBA8, covers []uint8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
		assert.Len("covers", len(covers), n)
	}
	if c.A == 0 {
		return
	}
	row := f.buf.Row(y)
	i := x * f.size
	for _, cover := range covers[:n] {
		f.copyOrBlend(row[i:i+f.size], c, cover)
		i += f.size
	}
}

// BlendSolidVSpan is BlendSolidHSpan along a column.
func (f *ByteFormat) BlendSolidVSpan(x, y, n int, c color.RGBA8, covers []uint8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
		assert.Len("covers", len(covers), n)
	}
	if c.A == 0 {
		return
	}
	for _, cover := range covers[:n] {
		f.copyOrBlend(f.pix(x, y), c, cover)
		y++
	}
}

// CopyColorHSpan overwrites n pixels with colors.
func (f *ByteFormat) CopyColorHSpan(x, y, n int, colors []color.RGBA8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
	}
	row := f.buf.Row(y)
	i := x * f.size
	for _, c := range colors[:n] {
		f.store(row[i:i+f.size], c)
		i += f.size
	}
}

// CopyColorVSpan overwrites n pixels of a column with colors.
func (f *ByteFormat) CopyColorVSpan(x, y, n int, colors []color.RGBA8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
	}
	for _, c := range colors[:n] {
		f.store(f.pix(x, y), c)
		y++
	}
}

// BlendColorHSpan composites n colors. covers, when non-nil, gives the
// coverage of each pixel; otherwise cover applies to all of them.
func (f *ByteFormat) BlendColorHSpan(x, y, n int, colors []color.RGBA8, covers []uint8, cover uint8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
		if covers != nil {
			assert.Len("covers", len(covers), n)
		}
	}
	row := f.buf.Row(y)
	i := x * f.size
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		f.copyOrBlend(row[i:i+f.size], c, cv)
		i += f.size
	}
}

// BlendColorVSpan is BlendColorHSpan along a column.
func (f *ByteFormat) BlendColorVSpan(x, y, n int, colors []color.RGBA8, covers []uint8, cover uint8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
		if covers != nil {
			assert.Len("covers", len(covers), n)
		}
	}
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		f.copyOrBlend(f.pix(x, y), c, cv)
		y++
	}
}

// CopyFrom copies n pixels of raw bytes. Overlapping ranges are handled.
func (f *ByteFormat) CopyFrom(src Buffer, xdst, ydst, xsrc, ysrc int, n int) {
	if assert.Enabled {
		assert.Span(xdst, ydst, n, f.Width(), f.Height())
		assert.Span(xsrc, ysrc, n, src.Width(), src.Height())
	}
	s := src.Row(ysrc)[xsrc*f.size : (xsrc+n)*f.size]
	copy(f.buf.Row(ydst)[xdst*f.size:], s)
}

// BlendFrom composites n pixels of src onto this buffer. When src is the
// same memory and the destination lies to the right, pixels are visited
// right to left so that no source pixel is read after being written.
func (f *ByteFormat) BlendFrom(src Format[color.RGBA8], xdst, ydst, xsrc, ysrc, n int, cover uint8) {
	if assert.Enabled {
		assert.Span(xdst, ydst, n, f.Width(), f.Height())
		assert.Span(xsrc, ysrc, n, src.Width(), src.Height())
	}
	row := f.buf.Row(ydst)
	if blendFromReversed(src, f.buf, xdst, ydst, xsrc, ysrc) {
		for k := n - 1; k >= 0; k-- {
			i := (xdst + k) * f.size
			f.copyOrBlend(row[i:i+f.size], src.Pixel(xsrc+k, ysrc), cover)
		}
		return
	}
	for k := 0; k < n; k++ {
		i := (xdst + k) * f.size
		f.copyOrBlend(row[i:i+f.size], src.Pixel(xsrc+k, ysrc), cover)
	}
}
