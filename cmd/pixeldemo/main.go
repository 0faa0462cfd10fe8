// Command pixeldemo renders a sampler of the pixel span generators to a
// PNG file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/gogpu/pixel"
	"github.com/gogpu/pixel/color"
	"github.com/gogpu/pixel/filter"
	"github.com/gogpu/pixel/gouraud"
	"github.com/gogpu/pixel/pixfmt"
	"github.com/gogpu/pixel/span"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "pixeldemo.png", "output file")
		shape   = flag.String("filter", "sinc64", "resampling filter: "+strings.Join(filter.Names(), ", "))
		gamma   = flag.Float64("gamma", 1, "gamma applied to Gouraud shading")
		verbose = flag.Bool("v", false, "log span generator setup")
	)
	flag.Parse()

	if *verbose {
		pixel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	dst, err := newCanvas(*width, *height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	s, err := filter.ByName(*shape)
	if err != nil {
		log.Fatalf("Invalid filter: %v", err)
	}

	drawSpectrum(dst)
	if err := drawPattern(dst); err != nil {
		log.Fatalf("Failed to draw pattern: %v", err)
	}
	if err := drawResampled(dst, s); err != nil {
		log.Fatalf("Failed to draw resampled image: %v", err)
	}
	drawTriangle(dst, *gamma)

	if err := savePNG(dst, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, filter %s)\n", *output, *width, *height, s.Name())
}

func newCanvas(w, h int) (*pixfmt.ByteFormat, error) {
	buf, err := pixfmt.NewRenderingBuffer(make([]byte, w*h*4), w, h, w*4)
	if err != nil {
		return nil, err
	}
	return pixfmt.NewRGBA32(buf, pixfmt.OrderRGBA, pixfmt.BlendStraight)
}

// drawSpectrum fills the background with the visible spectrum, darkened
// towards the bottom.
func drawSpectrum(dst *pixfmt.ByteFormat) {
	w, h := dst.Width(), dst.Height()
	for x := 0; x < w; x++ {
		wl := 380 + 400*float64(x)/float64(w)
		dst.CopyVLine(x, 0, h, color.RGBA8FromWavelength(wl, 0.8))
	}
	shade := color.RGBA8{A: 255}
	for y := 0; y < h; y++ {
		dst.BlendHLine(0, y, w, shade, uint8(200*y/h))
	}
}

// checkerboard returns a size x size two-color tile source.
func checkerboard(size int, a, b color.RGBA8) (*pixfmt.ByteFormat, error) {
	src, err := newCanvas(size, size)
	if err != nil {
		return nil, err
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/(size/2)+y/(size/2))%2 == 1 {
				c = b
			}
			src.CopyPixel(x, y, c)
		}
	}
	return src, nil
}

// drawPattern tiles a rotated checkerboard into the upper left quarter.
func drawPattern(dst *pixfmt.ByteFormat) error {
	tile, err := checkerboard(16, color.RGB8(240, 240, 240), color.RGB8(40, 60, 90))
	if err != nil {
		return err
	}
	place := span.Multiply(span.Rotate(math.Pi/7), span.Scaling(2, 2))
	inv, ok := span.Invert(place)
	if !ok {
		return errors.New("singular pattern transform")
	}
	gen, err := span.NewPatternBilinear(tile, span.NewLinear(inv), nil, span.ReflectAuto(16))
	if err != nil {
		return err
	}
	return fill(dst, gen, rect{20, 20, dst.Width() / 2, dst.Height() / 2}, 220)
}

// drawResampled magnifies a small gradient with the chosen filter.
func drawResampled(dst *pixfmt.ByteFormat, s filter.Shape) error {
	const n = 8
	src, err := newCanvas(n, n)
	if err != nil {
		return err
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			src.CopyPixel(x, y, color.RGBA8{R: uint8(x * 255 / (n - 1)), G: uint8(y * 255 / (n - 1)), B: 128, A: 255})
		}
	}
	lut, err := filter.Cached(s)
	if err != nil {
		return err
	}
	r := rect{dst.Width()/2 + 20, 20, dst.Width() - 20, dst.Height()/2 - 20}
	scale := float64(r.x1-r.x0) / n
	inv, _ := span.Invert(span.Multiply(span.Translate(float64(r.x0), float64(r.y0)), span.Scaling(scale, float64(r.y1-r.y0)/n)))
	gen, err := span.NewImageFilter(src, span.NewLinear(inv), lut)
	if err != nil {
		return err
	}
	return fill(dst, gen, r, 255)
}

// drawTriangle shades a triangle in the lower half with primary colors.
func drawTriangle(dst *pixfmt.ByteFormat, gamma float64) {
	w, h := float64(dst.Width()), float64(dst.Height())
	p1 := gouraud.Point{X: w * 0.5, Y: h * 0.55}
	p2 := gouraud.Point{X: w * 0.85, Y: h * 0.95}
	p3 := gouraud.Point{X: w * 0.15, Y: h * 0.9}
	var opts []gouraud.Option
	if gamma != 1 {
		opts = append(opts, gouraud.WithGamma(color.NewGammaLUT(gamma)))
	}
	g := gouraud.NewRGBA(color.RGB8(255, 0, 0), color.RGB8(0, 255, 0), color.RGB8(0, 0, 255), p1, p2, p3, 0, opts...)
	g.Prepare()

	var alloc span.Allocator[color.RGBA8]
	outline := g.Vertices()
	covers := make([]uint8, dst.Width())
	for y := int(p1.Y); y <= int(math.Ceil(p2.Y)) && y < dst.Height(); y++ {
		x0, x1 := dst.Width(), -1
		for x := 0; x < dst.Width(); x++ {
			covers[x] = 0
			if inside(float64(x)+0.5, float64(y)+0.5, outline) {
				covers[x] = 255
				x0, x1 = min(x0, x), max(x1, x)
			}
		}
		if x1 < x0 {
			continue
		}
		span.RenderSpan(dst, g, &alloc, x0, y, x1-x0+1, covers[x0:x1+1], 255)
	}
}

// inside reports whether (x, y) lies within the convex polygon poly.
func inside(x, y float64, poly []gouraud.Point) bool {
	var pos, neg bool
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		c := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		pos = pos || c > 0
		neg = neg || c < 0
	}
	return !(pos && neg)
}

type rect struct {
	x0, y0, x1, y1 int
}

// fill runs gen over every row of r.
func fill(dst *pixfmt.ByteFormat, gen span.Generator[color.RGBA8], r rect, cover uint8) error {
	if r.x1 <= r.x0 || r.y1 <= r.y0 {
		return fmt.Errorf("empty region %v", r)
	}
	gen.Prepare()
	var alloc span.Allocator[color.RGBA8]
	for y := r.y0; y < r.y1; y++ {
		span.RenderSpan(dst, gen, &alloc, r.x0, y, r.x1-r.x0, nil, cover)
	}
	return nil
}

func savePNG(dst *pixfmt.ByteFormat, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, pixfmt.NewImage(dst)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
