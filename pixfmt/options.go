package pixfmt

import (
	"encoding/binary"

	"github.com/gogpu/pixel/color"
)

// Option configures an adapter.
type Option func(*options)

type options struct {
	gamma     *color.GammaLUT
	byteOrder binary.ByteOrder
	step      int
	offset    int
}

func defaultOptions() options {
	return options{
		byteOrder: binary.LittleEndian,
		step:      1,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithGamma sets the table used by BlendGamma. Without it BlendGamma uses
// color.LinearLUT.
func WithGamma(lut *color.GammaLUT) Option {
	return func(o *options) {
		o.gamma = lut
	}
}

// WithByteOrder sets the byte order of packed 16-bit pixels.
// The default is little-endian; HostByteOrder matches the machine.
func WithByteOrder(bo binary.ByteOrder) Option {
	return func(o *options) {
		if bo != nil {
			o.byteOrder = bo
		}
	}
}

// WithStep makes a gray adapter address one channel of an interleaved
// layout: pixel x is byte x*step+offset of the row.
func WithStep(step, offset int) Option {
	return func(o *options) {
		o.step = step
		o.offset = offset
	}
}
