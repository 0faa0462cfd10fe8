package gouraud

import "github.com/gogpu/pixel/color"

// Option configures a generator.
type Option func(*options)

type options struct {
	gamma *color.GammaLUT
}

// WithGamma passes generated color channels through lut.Dir8. Alpha is
// left unchanged.
func WithGamma(lut *color.GammaLUT) Option {
	return func(o *options) {
		o.gamma = lut
	}
}
