package pixfmt

import (
	"errors"
	"fmt"
)

// Errors returned by buffer and adapter constructors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixfmt: invalid dimensions")

	// ErrInvalidStride is returned when a row cannot hold width pixels.
	ErrInvalidStride = errors.New("pixfmt: stride too small for width")

	// ErrDataTooSmall is returned when the data cannot hold every row.
	ErrDataTooSmall = errors.New("pixfmt: data buffer too small")

	// ErrUnsupportedOrder is returned for a channel order the layout cannot use.
	ErrUnsupportedOrder = errors.New("pixfmt: unsupported channel order")

	// ErrUnsupportedBlending is returned for a blending mode the layout cannot use.
	ErrUnsupportedBlending = errors.New("pixfmt: unsupported blending")
)

// Buffer is row-addressable pixel memory owned by the caller.
type Buffer interface {
	// Row returns the bytes of row y, at least Stride() long except
	// possibly for the last row.
	Row(y int) []byte
	// Width returns the width in pixels.
	Width() int
	// Height returns the height in pixels.
	Height() int
	// Stride returns the distance between rows in bytes.
	Stride() int
}

// RenderingBuffer attaches to an existing byte slice without copying.
//
// The caller keeps ownership of the memory; it must stay valid while any
// adapter uses the buffer.
type RenderingBuffer struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewRenderingBuffer attaches a buffer of width by height pixels to data,
// with rows stride bytes apart. Stride is in bytes and must be at least
// width; adapters check it against their own pixel size.
func NewRenderingBuffer(data []byte, width, height, stride int) (*RenderingBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width {
		return nil, fmt.Errorf("%w: stride %d for width %d", ErrInvalidStride, stride, width)
	}
	required := stride * height
	if len(data) < required {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(data), required)
	}
	return &RenderingBuffer{
		data:   data[:required],
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Row returns the bytes of row y.
func (b *RenderingBuffer) Row(y int) []byte {
	start := y * b.stride
	return b.data[start : start+b.stride]
}

// Width returns the width in pixels.
func (b *RenderingBuffer) Width() int { return b.width }

// Height returns the height in pixels.
func (b *RenderingBuffer) Height() int { return b.height }

// Stride returns the distance between rows in bytes.
func (b *RenderingBuffer) Stride() int { return b.stride }

// Data returns the attached slice.
func (b *RenderingBuffer) Data() []byte { return b.data }

// Clear sets every byte of the buffer to v.
func (b *RenderingBuffer) Clear(v byte) {
	for i := range b.data {
		b.data[i] = v
	}
}

// checkBuffer verifies that buf can hold bpp bytes per pixel.
func checkBuffer(buf Buffer, bpp int) error {
	if buf == nil || buf.Width() <= 0 || buf.Height() <= 0 {
		return ErrInvalidDimensions
	}
	if buf.Stride() < buf.Width()*bpp {
		return fmt.Errorf("%w: stride %d for %d pixels of %d bytes",
			ErrInvalidStride, buf.Stride(), buf.Width(), bpp)
	}
	return nil
}

// rowSharesMemory reports whether two rows start at the same address.
func rowSharesMemory(a, b []byte) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
