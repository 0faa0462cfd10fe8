package pixfmt

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixel/color"
	"github.com/gogpu/pixel/internal/assert"
)

// Gray8 adapts one byte per pixel. With WithStep it addresses a single
// channel of an interleaved layout, for example the green channel of an
// RGB24 row with step 3 and offset 1.
type Gray8 struct {
	buf      Buffer
	step     int
	offset   int
	blending Blending
	bl       blender
}

var _ Format[color.Gray8] = (*Gray8)(nil)

// NewGray8 attaches a gray adapter. Gray layouts store no alpha, so
// BlendPlain behaves as BlendStraight.
func NewGray8(buf Buffer, blending Blending, opts ...Option) (*Gray8, error) {
	if blending > BlendGamma {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBlending, blending)
	}
	o := applyOptions(opts)
	if o.step < 1 || o.offset < 0 || o.offset >= o.step {
		return nil, fmt.Errorf("%w: step %d offset %d", ErrInvalidStride, o.step, o.offset)
	}
	if err := checkBuffer(buf, o.step); err != nil {
		return nil, err
	}
	return &Gray8{
		buf:      buf,
		step:     o.step,
		offset:   o.offset,
		blending: blending,
		bl:       newBlender(blending, o.gamma),
	}, nil
}

// Buffer returns the attached buffer.
func (f *Gray8) Buffer() Buffer { return f.buf }

// Width returns the width in pixels.
func (f *Gray8) Width() int { return f.buf.Width() }

// Height returns the height in pixels.
func (f *Gray8) Height() int { return f.buf.Height() }

// TextureFormat returns R8Unorm for a packed gray buffer.
func (f *Gray8) TextureFormat() gputypes.TextureFormat {
	if f.step == 1 {
		return gputypes.TextureFormatR8Unorm
	}
	return gputypes.TextureFormatUndefined
}

func (f *Gray8) index(x int) int {
	return x*f.step + f.offset
}

func (f *Gray8) copyOrBlend(p *uint8, c color.Gray8, cover uint8) {
	if c.A == 0 || cover == 0 {
		return
	}
	if c.A == 255 && cover == 255 {
		*p = c.V
		return
	}
	*p = f.bl.blendValue(*p, c.V, c.A, cover)
}

// Pixel returns the value at (x, y) with alpha 255.
func (f *Gray8) Pixel(x, y int) color.Gray8 {
	if assert.Enabled {
		assert.Point(x, y, f.Width(), f.Height())
	}
	return color.Gray8{V: f.buf.Row(y)[f.index(x)], A: 255}
}

// CopyPixel overwrites the value at (x, y).
func (f *Gray8) CopyPixel(x, y int, c color.Gray8) {
	if assert.Enabled {
		assert.Point(x, y, f.Width(), f.Height())
	}
	f.buf.Row(y)[f.index(x)] = c.V
}

// CopyHLine overwrites n values to the right of (x, y).
func (f *Gray8) CopyHLine(x, y, n int, c color.Gray8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
	}
	row := f.buf.Row(y)
	for i := f.index(x); n > 0; n-- {
		row[i] = c.V
		i += f.step
	}
}

// CopyVLine overwrites n values downward from (x, y).
func (f *Gray8) CopyVLine(x, y, n int, c color.Gray8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
	}
	i := f.index(x)
	for ; n > 0; n-- {
		f.buf.Row(y)[i] = c.V
		y++
	}
}

// BlendPixel composites c over (x, y) with coverage.
func (f *Gray8) BlendPixel(x, y int, c color.Gray8, cover uint8) {
	if assert.Enabled {
		assert.Point(x, y, f.Width(), f.Height())
	}
	f.copyOrBlend(&f.buf.Row(y)[f.index(x)], c, cover)
}

// BlendHLine composites c over n values to the right of (x, y).
func (f *Gray8) BlendHLine(x, y, n int, c color.Gray8, cover uint8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
	}
	row := f.buf.Row(y)
	for i := f.index(x); n > 0; n-- {
		f.copyOrBlend(&row[i], c, cover)
		i += f.step
	}
}

// BlendVLine composites c over n values downward from (x, y).
func (f *Gray8) BlendVLine(x, y, n int, c color.Gray8, cover uint8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
	}
	i := f.index(x)
	for ; n > 0; n-- {
		f.copyOrBlend(&f.buf.Row(y)[i], c, cover)
		y++
	}
}

// BlendSolidHSpan composites c with per-pixel coverage.
func (f *Gray8) BlendSolidHSpan(x, y, n int, c color.Gray8, covers []uint8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
		assert.Len("covers", len(covers), n)
	}
	row := f.buf.Row(y)
	i := f.index(x)
	for _, cover := range covers[:n] {
		f.copyOrBlend(&row[i], c, cover)
		i += f.step
	}
}

// BlendSolidVSpan is BlendSolidHSpan along a column.
func (f *Gray8) BlendSolidVSpan(x, y, n int, c color.Gray8, covers []uint8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
		assert.Len("covers", len(covers), n)
	}
	i := f.index(x)
	for _, cover := range covers[:n] {
		f.copyOrBlend(&f.buf.Row(y)[i], c, cover)
		y++
	}
}

// CopyColorHSpan overwrites n values.
func (f *Gray8) CopyColorHSpan(x, y, n int, colors []color.Gray8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
	}
	row := f.buf.Row(y)
	i := f.index(x)
	for _, c := range colors[:n] {
		row[i] = c.V
		i += f.step
	}
}

// CopyColorVSpan overwrites n values of a column.
func (f *Gray8) CopyColorVSpan(x, y, n int, colors []color.Gray8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
	}
	i := f.index(x)
	for _, c := range colors[:n] {
		f.buf.Row(y)[i] = c.V
		y++
	}
}

// BlendColorHSpan composites n values with per-pixel or constant coverage.
func (f *Gray8) BlendColorHSpan(x, y, n int, colors []color.Gray8, covers []uint8, cover uint8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
	}
	row := f.buf.Row(y)
	i := f.index(x)
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		f.copyOrBlend(&row[i], c, cv)
		i += f.step
	}
}

// BlendColorVSpan is BlendColorHSpan along a column.
func (f *Gray8) BlendColorVSpan(x, y, n int, colors []color.Gray8, covers []uint8, cover uint8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
	}
	i := f.index(x)
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		f.copyOrBlend(&f.buf.Row(y)[i], c, cv)
		y++
	}
}

// CopyFrom copies n whole interleaved pixels, step bytes each.
func (f *Gray8) CopyFrom(src Buffer, xdst, ydst, xsrc, ysrc, n int) {
	if assert.Enabled {
		assert.Span(xdst, ydst, n, f.Width(), f.Height())
		assert.Span(xsrc, ysrc, n, src.Width(), src.Height())
	}
	s := src.Row(ysrc)[xsrc*f.step : (xsrc+n)*f.step]
	copy(f.buf.Row(ydst)[xdst*f.step:], s)
}

// BlendFrom composites n color pixels of src, converted to gray.
func (f *Gray8) BlendFrom(src Format[color.RGBA8], xdst, ydst, xsrc, ysrc, n int, cover uint8) {
	if assert.Enabled {
		assert.Span(xdst, ydst, n, f.Width(), f.Height())
		assert.Span(xsrc, ysrc, n, src.Width(), src.Height())
	}
	row := f.buf.Row(ydst)
	blendAt := func(k int) {
		c := color.Gray8FromRGBA8(src.Pixel(xsrc+k, ysrc))
		f.copyOrBlend(&row[f.index(xdst+k)], c, cover)
	}
	if blendFromReversed(src, f.buf, xdst, ydst, xsrc, ysrc) {
		for k := n - 1; k >= 0; k-- {
			blendAt(k)
		}
		return
	}
	for k := 0; k < n; k++ {
		blendAt(k)
	}
}
