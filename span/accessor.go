package span

import "github.com/gogpu/pixel/color"

// Source is a readable image. Every pixfmt color adapter satisfies it.
type Source interface {
	Width() int
	Height() int
	Pixel(x, y int) color.RGBA8
}

// Accessor reads a source at any integer coordinate.
type Accessor interface {
	Source
}

// Clip returns Background for coordinates outside the source.
type Clip struct {
	Source     Source
	Background color.RGBA8
}

// Width returns the source width.
func (c *Clip) Width() int { return c.Source.Width() }

// Height returns the source height.
func (c *Clip) Height() int { return c.Source.Height() }

// Pixel returns the source pixel at (x, y) or the background.
func (c *Clip) Pixel(x, y int) color.RGBA8 {
	if x < 0 || y < 0 || x >= c.Source.Width() || y >= c.Source.Height() {
		return c.Background
	}
	return c.Source.Pixel(x, y)
}

// Wrap tiles the source, wrapping each axis with its own remainder.
type Wrap struct {
	Source Source
	X, Y   Remainder
}

// NewWrap tiles src, choosing power-of-two masks where the dimensions
// allow.
func NewWrap(src Source) *Wrap {
	return &Wrap{Source: src, X: Auto(src.Width()), Y: Auto(src.Height())}
}

// Width returns the source width.
func (w *Wrap) Width() int { return w.Source.Width() }

// Height returns the source height.
func (w *Wrap) Height() int { return w.Source.Height() }

// Pixel returns the source pixel at the wrapped coordinate.
func (w *Wrap) Pixel(x, y int) color.RGBA8 {
	return w.Source.Pixel(w.X.Apply(x), w.Y.Apply(y))
}
