package pixfmt

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixel/color"
)

// Format is the uniform pixel access and compositing contract shared by
// every adapter. C is color.RGBA8 for color layouts and color.Gray8 for
// gray layouts.
//
// Spans are n pixels long starting at (x, y). A nil covers slice in
// BlendColorHSpan and BlendColorVSpan applies the constant cover to every
// pixel.
type Format[C any] interface {
	Width() int
	Height() int
	Pixel(x, y int) C

	CopyPixel(x, y int, c C)
	CopyHLine(x, y, n int, c C)
	CopyVLine(x, y, n int, c C)

	BlendPixel(x, y int, c C, cover uint8)
	BlendHLine(x, y, n int, c C, cover uint8)
	BlendVLine(x, y, n int, c C, cover uint8)
	BlendSolidHSpan(x, y, n int, c C, covers []uint8)
	BlendSolidVSpan(x, y, n int, c C, covers []uint8)

	CopyColorHSpan(x, y, n int, colors []C)
	CopyColorVSpan(x, y, n int, colors []C)
	BlendColorHSpan(x, y, n int, colors []C, covers []uint8, cover uint8)
	BlendColorVSpan(x, y, n int, colors []C, covers []uint8, cover uint8)

	// CopyFrom copies n pixels of raw bytes from row ysrc of src, which
	// must share this adapter's layout.
	CopyFrom(src Buffer, xdst, ydst, xsrc, ysrc, n int)
	// BlendFrom composites n pixels read from src with a constant cover.
	BlendFrom(src Format[color.RGBA8], xdst, ydst, xsrc, ysrc, n int, cover uint8)
}

// Attached is implemented by adapters that expose their buffer.
type Attached interface {
	Buffer() Buffer
}

// TextureFormatter is implemented by adapters whose layout has a GPU
// texture equivalent.
type TextureFormatter interface {
	TextureFormat() gputypes.TextureFormat
}

// blendFromReversed reports whether BlendFrom must walk right to left:
// the source is the same row of memory and the destination starts after
// the source.
func blendFromReversed(src any, dst Buffer, xdst, ydst, xsrc, ysrc int) bool {
	if xdst <= xsrc {
		return false
	}
	a, ok := src.(Attached)
	if !ok {
		return false
	}
	return rowSharesMemory(a.Buffer().Row(ysrc), dst.Row(ydst))
}
