package span

import "github.com/gogpu/pixel/color"

// Option configures a sampler.
type Option func(*options)

type options struct {
	background color.RGBA8
	dx, dy     float64
}

func defaultOptions() options {
	return options{dx: 0.5, dy: 0.5}
}

// WithBackground sets the color returned outside a clipped image.
// The default is transparent black.
func WithBackground(c color.RGBA8) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithFilterOffset sets where inside each destination pixel the source is
// sampled. The default (0.5, 0.5) samples pixel centers.
func WithFilterOffset(dx, dy float64) Option {
	return func(o *options) {
		o.dx = dx
		o.dy = dy
	}
}
