package span

import "github.com/gogpu/pixel/pixfmt"

// RenderSpan generates n colors starting at (x, y) into a buffer from
// alloc and composites them onto dst. covers, when non-nil, holds the
// coverage of each pixel; otherwise cover applies to the whole span.
//
// It is the glue a scanline renderer runs for every span of a shape.
func RenderSpan[C any](dst pixfmt.Format[C], gen Generator[C], alloc *Allocator[C], x, y, n int, covers []uint8, cover uint8) {
	if n <= 0 {
		return
	}
	colors := alloc.Allocate(n)
	gen.Generate(colors, x, y)
	dst.BlendColorHSpan(x, y, n, colors, covers, cover)
}
