// Package filter builds discretized resampling kernels for image span
// generators.
//
// A Shape is a continuous, symmetric weight function with a support
// radius. NewLUT samples it at 256 subpixel phases for each of
// Dimension() source taps and stores both float64 weights and 1<<14 based
// fixed-point weights. The fixed-point columns are then normalized so that
// every phase sums to exactly 1<<14, which keeps integer convolution free
// of DC drift:
//
//	lut, err := filter.NewLUT(filter.Sinc64)
//	// lut.Dimension() == 8, lut.Start() == -3
//
// Shapes:
//   - Bilinear, Bicubic, Spline16, Spline36
//   - Sinc36 .. Sinc256 (sinc windowed by sinc, 3 to 8 lobes)
//   - Blackman36 .. Blackman256 (sinc windowed by Blackman, 3 to 8 lobes)
//   - Hanning, Hamming, Hermite, Quadric, Catrom, Mitchell, Gaussian,
//     Kaiser, Bessel, and Sinc/Blackman with any radius up to MaxRadius
//
// A LUT is immutable after construction and safe for concurrent readers.
// Cached returns tables shared process-wide.
package filter
