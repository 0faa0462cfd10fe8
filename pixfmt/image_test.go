package pixfmt

import (
	"image"
	stdcolor "image/color"
	"testing"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixel/color"
)

func TestImageDraw(t *testing.T) {
	rb := newBuffer(t, 4, 4, 4)
	f, err := NewRGBA32(rb, OrderBGRA, BlendStraight)
	if err != nil {
		t.Fatal(err)
	}
	img := NewImage(f)
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("Bounds() = %v", img.Bounds())
	}
	if img.ColorModel() != stdcolor.NRGBAModel {
		t.Error("straight adapter should report NRGBAModel")
	}

	red := stdcolor.NRGBA{R: 255, A: 255}
	draw.Draw(img, image.Rect(1, 1, 3, 3), image.NewUniform(red), image.Point{}, draw.Src)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := color.RGBA8{}
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = color.RGBA8{R: 255, A: 255}
			}
			if got := f.Pixel(x, y); got != want {
				t.Errorf("Pixel(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got := img.At(1, 1); got != red {
		t.Errorf("At(1,1) = %v", got)
	}
	if got := img.At(-1, 0); got != (stdcolor.NRGBA{}) {
		t.Errorf("At outside bounds = %v", got)
	}
	img.Set(10, 10, red)
}

func TestImagePremultiplied(t *testing.T) {
	rb := newBuffer(t, 1, 1, 4)
	f, err := NewRGBA32(rb, OrderRGBA, BlendPremultiplied)
	if err != nil {
		t.Fatal(err)
	}
	img := NewImage(f)
	if img.ColorModel() != stdcolor.RGBAModel {
		t.Error("premultiplied adapter should report RGBAModel")
	}
	img.Set(0, 0, stdcolor.NRGBA{R: 255, A: 128})
	if got := f.Pixel(0, 0); got != (color.RGBA8{R: 128, A: 128}) {
		t.Errorf("stored %v, want premultiplied red", got)
	}
	if got := img.At(0, 0); got != (stdcolor.RGBA{R: 128, A: 128}) {
		t.Errorf("At = %v", got)
	}
}

func TestScaleNearest(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, stdcolor.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, stdcolor.NRGBA{G: 255, A: 255})
	src.SetNRGBA(0, 1, stdcolor.NRGBA{B: 255, A: 255})
	src.SetNRGBA(1, 1, stdcolor.NRGBA{R: 255, G: 255, B: 255, A: 255})

	rb := newBuffer(t, 4, 4, 3)
	f, err := NewRGB24(rb, OrderBGR, BlendStraight)
	if err != nil {
		t.Fatal(err)
	}
	Scale(f, image.Rect(0, 0, 4, 4), src, src.Bounds(), draw.NearestNeighbor, draw.Src)
	tests := []struct {
		x, y int
		want color.RGBA8
	}{
		{0, 0, color.RGBA8{R: 255, A: 255}},
		{1, 1, color.RGBA8{R: 255, A: 255}},
		{3, 0, color.RGBA8{G: 255, A: 255}},
		{0, 3, color.RGBA8{B: 255, A: 255}},
		{2, 2, color.RGBA8{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := f.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
