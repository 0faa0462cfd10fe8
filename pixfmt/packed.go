package pixfmt

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
	"golang.org/x/sys/cpu"

	"github.com/gogpu/pixel/color"
	"github.com/gogpu/pixel/internal/assert"
)

// Pack555 packs a color into a 15-bit word, keeping the top five bits of
// each channel. Bit 15 is always set.
func Pack555(r, g, b uint8) uint16 {
	return 0x8000 | uint16(r&0xF8)<<7 | uint16(g&0xF8)<<2 | uint16(b)>>3
}

// Unpack555 expands a 15-bit word. The low three bits of each channel are
// zero.
func Unpack555(w uint16) (r, g, b uint8) {
	return uint8(w>>7) & 0xF8, uint8(w>>2) & 0xF8, uint8(w<<3) & 0xF8
}

// Pack565 packs a color into a 16-bit word, keeping the top five bits of
// red and blue and the top six bits of green.
func Pack565(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3
}

// Unpack565 expands a 16-bit word.
func Unpack565(w uint16) (r, g, b uint8) {
	return uint8(w>>8) & 0xF8, uint8(w>>3) & 0xFC, uint8(w<<3) & 0xF8
}

// HostByteOrder returns the byte order of the machine, for buffers shared
// with code that writes packed words natively.
func HostByteOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

type packing struct {
	name   string
	pack   func(r, g, b uint8) uint16
	unpack func(w uint16) (r, g, b uint8)
}

var (
	packing555 = packing{name: "RGB555", pack: Pack555, unpack: Unpack555}
	packing565 = packing{name: "RGB565", pack: Pack565, unpack: Unpack565}
)

// Packed16 adapts 16-bit packed layouts. Blending unpacks the word,
// composites at 8 bits per channel and packs the result, dropping the low
// bits without dithering.
type Packed16 struct {
	buf      Buffer
	packing  packing
	bo       binary.ByteOrder
	blending Blending
	bl       blender
}

var _ Format[color.RGBA8] = (*Packed16)(nil)

// NewRGB555 attaches a 5-5-5 adapter. Words are little-endian unless
// WithByteOrder says otherwise.
func NewRGB555(buf Buffer, blending Blending, opts ...Option) (*Packed16, error) {
	return newPacked16(buf, packing555, blending, opts)
}

// NewRGB565 attaches a 5-6-5 adapter.
func NewRGB565(buf Buffer, blending Blending, opts ...Option) (*Packed16, error) {
	return newPacked16(buf, packing565, blending, opts)
}

func newPacked16(buf Buffer, p packing, blending Blending, opts []Option) (*Packed16, error) {
	if blending == BlendPlain || blending > BlendGamma {
		return nil, fmt.Errorf("%w: %s for %s", ErrUnsupportedBlending, blending, p.name)
	}
	if err := checkBuffer(buf, 2); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	return &Packed16{
		buf:      buf,
		packing:  p,
		bo:       o.byteOrder,
		blending: blending,
		bl:       newBlender(blending, o.gamma),
	}, nil
}

// Buffer returns the attached buffer.
func (f *Packed16) Buffer() Buffer { return f.buf }

// ByteOrder returns the byte order of stored words.
func (f *Packed16) ByteOrder() binary.ByteOrder { return f.bo }

// Width returns the width in pixels.
func (f *Packed16) Width() int { return f.buf.Width() }

// Height returns the height in pixels.
func (f *Packed16) Height() int { return f.buf.Height() }

// TextureFormat reports TextureFormatUndefined: the texture formats in
// use carry no packed 16-bit color layout.
func (f *Packed16) TextureFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

func (f *Packed16) word(x, y int) []byte {
	i := x * 2
	return f.buf.Row(y)[i : i+2]
}

func (f *Packed16) load(p []byte) color.RGBA8 {
	r, g, b := f.packing.unpack(f.bo.Uint16(p))
	return color.RGBA8{R: r, G: g, B: b, A: 255}
}

func (f *Packed16) store(p []byte, c color.RGBA8) {
	f.bo.PutUint16(p, f.packing.pack(c.R, c.G, c.B))
}

func (f *Packed16) copyOrBlend(p []byte, c color.RGBA8, cover uint8) {
	if c.A == 0 || cover == 0 {
		return
	}
	if c.A == 255 && cover == 255 {
		f.store(p, c)
		return
	}
	var px [3]byte
	px[0], px[1], px[2] = f.packing.unpack(f.bo.Uint16(p))
	f.bl.blend(px[:], OrderRGB, c, cover)
	f.bo.PutUint16(p, f.packing.pack(px[0], px[1], px[2]))
}

// Pixel returns the unpacked color at (x, y) with alpha 255.
func (f *Packed16) Pixel(x, y int) color.RGBA8 {
	if assert.Enabled {
		assert.Point(x, y, f.Width(), f.Height())
	}
	return f.load(f.word(x, y))
}

// CopyPixel overwrites the pixel at (x, y).
func (f *Packed16) CopyPixel(x, y int, c color.RGBA8) {
	if assert.Enabled {
		assert.Point(x, y, f.Width(), f.Height())
	}
	f.store(f.word(x, y), c)
}

// CopyHLine overwrites n pixels to the right of (x, y).
func (f *Packed16) CopyHLine(x, y, n int, c color.RGBA8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
	}
	w := f.packing.pack(c.R, c.G, c.B)
	row := f.buf.Row(y)
	for i := x * 2; n > 0; n-- {
		f.bo.PutUint16(row[i:], w)
		i += 2
	}
}

// CopyVLine overwrites n pixels downward from (x, y).
func (f *Packed16) CopyVLine(x, y, n int, c color.RGBA8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
	}
	w := f.packing.pack(c.R, c.G, c.B)
	for ; n > 0; n-- {
		f.bo.PutUint16(f.word(x, y), w)
		y++
	}
}

// BlendPixel composites c over (x, y) with coverage.
func (f *Packed16) BlendPixel(x, y int, c color.RGBA8, cover uint8) {
	if assert.Enabled {
		assert.Point(x, y, f.Width(), f.Height())
	}
	f.copyOrBlend(f.word(x, y), c, cover)
}

// BlendHLine composites c over n pixels to the right of (x, y).
func (f *Packed16) BlendHLine(x, y, n int, c color.RGBA8, cover uint8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
	}
	row := f.buf.Row(y)
	for i := x * 2; n > 0; n-- {
		f.copyOrBlend(row[i:i+2], c, cover)
		i += 2
	}
}

// BlendVLine composites c over n pixels downward from (x, y).
func (f *Packed16) BlendVLine(x, y, n int, c color.RGBA8, cover uint8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
	}
	for ; n > 0; n-- {
		f.copyOrBlend(f.word(x, y), c, cover)
		y++
	}
}

// BlendSolidHSpan composites c with per-pixel coverage.
func (f *Packed16) BlendSolidHSpan(x, y, n int, c color.RGBA8, covers []uint8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
		assert.Len("covers", len(covers), n)
	}
	row := f.buf.Row(y)
	i := x * 2
	for _, cover := range covers[:n] {
		f.copyOrBlend(row[i:i+2], c, cover)
		i += 2
	}
}

// BlendSolidVSpan is BlendSolidHSpan along a column.
func (f *Packed16) BlendSolidVSpan(x, y, n int, c color.RGBA8, covers []uint8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
		assert.Len("covers", len(covers), n)
	}
	for _, cover := range covers[:n] {
		f.copyOrBlend(f.word(x, y), c, cover)
		y++
	}
}

// CopyColorHSpan overwrites n pixels with colors.
func (f *Packed16) CopyColorHSpan(x, y, n int, colors []color.RGBA8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
	}
	row := f.buf.Row(y)
	i := x * 2
	for _, c := range colors[:n] {
		f.store(row[i:i+2], c)
		i += 2
	}
}

// CopyColorVSpan overwrites n pixels of a column with colors.
func (f *Packed16) CopyColorVSpan(x, y, n int, colors []color.RGBA8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
	}
	for _, c := range colors[:n] {
		f.store(f.word(x, y), c)
		y++
	}
}

// BlendColorHSpan composites n colors with per-pixel or constant coverage.
func (f *Packed16) BlendColorHSpan(x, y, n int, colors []color.RGBA8, covers []uint8, cover uint8) {
	if assert.Enabled {
		assert.Span(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
	}
	row := f.buf.Row(y)
	i := x * 2
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		f.copyOrBlend(row[i:i+2], c, cv)
		i += 2
	}
}

// BlendColorVSpan is BlendColorHSpan along a column.
func (f *Packed16) BlendColorVSpan(x, y, n int, colors []color.RGBA8, covers []uint8, cover uint8) {
	if assert.Enabled {
		assert.VSpan(x, y, n, f.Width(), f.Height())
		assert.Len("colors", len(colors), n)
	}
	for k, c := range colors[:n] {
		cv := cover
		if covers != nil {
			cv = covers[k]
		}
		f.copyOrBlend(f.word(x, y), c, cv)
		y++
	}
}

// CopyFrom copies n packed words. Overlapping ranges are handled.
func (f *Packed16) CopyFrom(src Buffer, xdst, ydst, xsrc, ysrc, n int) {
	if assert.Enabled {
		assert.Span(xdst, ydst, n, f.Width(), f.Height())
		assert.Span(xsrc, ysrc, n, src.Width(), src.Height())
	}
	copy(f.buf.Row(ydst)[xdst*2:], src.Row(ysrc)[xsrc*2:(xsrc+n)*2])
}

// BlendFrom composites n pixels of src onto this buffer.
func (f *Packed16) BlendFrom(src Format[color.RGBA8], xdst, ydst, xsrc, ysrc, n int, cover uint8) {
	if assert.Enabled {
		assert.Span(xdst, ydst, n, f.Width(), f.Height())
		assert.Span(xsrc, ysrc, n, src.Width(), src.Height())
	}
	row := f.buf.Row(ydst)
	if blendFromReversed(src, f.buf, xdst, ydst, xsrc, ysrc) {
		for k := n - 1; k >= 0; k-- {
			i := (xdst + k) * 2
			f.copyOrBlend(row[i:i+2], src.Pixel(xsrc+k, ysrc), cover)
		}
		return
	}
	for k := 0; k < n; k++ {
		i := (xdst + k) * 2
		f.copyOrBlend(row[i:i+2], src.Pixel(xsrc+k, ysrc), cover)
	}
}
