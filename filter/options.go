package filter

// Option configures lookup table construction.
type Option func(*options)

// options holds optional configuration for NewLUT.
type options struct {
	normalize bool
}

// defaultOptions returns the default table options.
func defaultOptions() options {
	return options{normalize: true}
}

// WithoutNormalization keeps the rounded weights as sampled.
// Integer convolution with such a table may brighten or darken flat areas
// by a few units; it exists for inspecting raw kernels.
func WithoutNormalization() Option {
	return func(o *options) {
		o.normalize = false
	}
}
