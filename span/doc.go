// Package span generates runs of colors for one scanline by sampling a
// source image.
//
// A Generator fills a caller-owned slice with len(span) colors for the
// pixels starting at (x, y). The source coordinates of each output pixel
// come from an Interpolator in fixed point with SubpixelShift fractional
// bits. Samplers read the source through an Accessor, which decides what
// lies outside the image: a background color (Clip) or a tiled copy of the
// image (Wrap).
//
// Three sampling methods are provided:
//
//   - nearest: the source pixel containing the coordinate
//   - bilinear: a 2x2 weighted average
//   - filter: a full convolution with a filter.LUT
//
// RenderSpan glues a generator to a pixfmt.Format the way a scanline
// renderer does.
package span
