// Package pixfmt provides pixel format adapters over caller-owned memory.
//
// An adapter attaches to a Buffer (rows of raw bytes) and implements the
// Format method set: reading pixels, overwriting them, and compositing
// solid colors, color spans and other buffers into them with per-pixel
// coverage. Adapters never allocate pixel memory.
//
// # Layouts
//
//   - Gray8: one byte per pixel, optionally interleaved (step and offset).
//   - RGB24: three bytes per pixel in OrderRGB or OrderBGR.
//   - RGB555 and RGB565: packed 16-bit words in a chosen byte order.
//   - RGBA32: four bytes per pixel in OrderRGBA, OrderARGB, OrderABGR or
//     OrderBGRA.
//
// # Blending
//
// Blending selects the arithmetic used to composite a color with coverage:
//
//   - BlendStraight stores straight alpha and blends with
//     ch += ((src-ch)*alpha) >> 16 where alpha = cover*a.
//   - BlendPremultiplied stores premultiplied colors and expects them as
//     input.
//   - BlendPlain stores straight alpha but composites in premultiplied
//     space, demultiplying the result.
//   - BlendGamma blends in linear light through a color.GammaLUT.
//
// All blenders share the copy fast path: an opaque color at full coverage
// overwrites the pixel, and a transparent color or zero coverage leaves it
// unchanged.
//
// # Preconditions
//
// Coordinates must lie inside the buffer and lengths must be at least 1.
// Building with the pixeldebug tag turns these into explicit panics; in
// release builds out-of-range access is caught only by slice bounds checks.
package pixfmt
