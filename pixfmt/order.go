package pixfmt

import "fmt"

// Order is the byte layout of one pixel: the offsets of the red, green,
// blue and alpha channels. A negative alpha offset means the layout has no
// alpha channel.
type Order struct {
	R, G, B, A int
	size       int
	name       string
}

// Predefined channel orders.
var (
	OrderRGB  = Order{R: 0, G: 1, B: 2, A: -1, size: 3, name: "RGB"}
	OrderBGR  = Order{R: 2, G: 1, B: 0, A: -1, size: 3, name: "BGR"}
	OrderRGBA = Order{R: 0, G: 1, B: 2, A: 3, size: 4, name: "RGBA"}
	OrderARGB = Order{R: 1, G: 2, B: 3, A: 0, size: 4, name: "ARGB"}
	OrderABGR = Order{R: 3, G: 2, B: 1, A: 0, size: 4, name: "ABGR"}
	OrderBGRA = Order{R: 2, G: 1, B: 0, A: 3, size: 4, name: "BGRA"}
)

// Size returns the number of bytes per pixel.
func (o Order) Size() int { return o.size }

// HasAlpha reports whether the layout stores alpha.
func (o Order) HasAlpha() bool { return o.A >= 0 }

// String returns the order name, such as "BGRA".
func (o Order) String() string {
	if o.name == "" {
		return fmt.Sprintf("Order(%d,%d,%d,%d)", o.R, o.G, o.B, o.A)
	}
	return o.name
}
