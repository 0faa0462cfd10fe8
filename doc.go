// Package pixel provides pixel formats, alpha compositing and image
// resampling for software scanline renderers.
//
// # Overview
//
// pixel is the back half of a scanline renderer: a rasterizer computes
// coverage for each span of a scanline, and pixel turns that coverage and
// a color source into bytes in a caller-owned buffer. All arithmetic is
// fixed-point and bit-reproducible across platforms.
//
// # Packages
//
//   - color: float and 8-bit colors, premultiplication, gradients, gamma
//   - filter: resampling kernels discretized into normalized lookup tables
//   - pixfmt: pixel format adapters (gray, RGB, packed 15/16-bit, RGBA)
//     sharing one blend/copy/span method set
//   - span: interpolators, pattern fetchers and image span generators
//   - gouraud: color interpolation across triangles
//
// # Quick Start
//
//	buf := make([]byte, 256*256*4)
//	rb, _ := pixfmt.NewRenderingBuffer(buf, 256, 256, 256*4)
//	dst, _ := pixfmt.NewRGBA(rb)
//	dst.BlendHLine(10, 20, 100, color.RGB8(255, 0, 0), 128)
//
// # Concurrency
//
// Filter lookup tables are immutable and may be shared freely. Pixel
// formats and span generators borrow caller buffers and provide no
// synchronization; use distinct buffers for concurrent work.
//
// # Debug assertions
//
// Building with the pixeldebug tag turns precondition violations
// (out-of-range coordinates, empty spans) into panics with a message.
package pixel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
