package span

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixel/color"
)

func TestAllocator(t *testing.T) {
	var a Allocator[color.RGBA8]
	tests := []struct {
		n       int
		wantCap int
	}{
		{10, 256},
		{256, 256},
		{300, 512},
		{5, 512},
	}
	for _, tt := range tests {
		s := a.Allocate(tt.n)
		if len(s) != tt.n || a.Cap() != tt.wantCap {
			t.Errorf("Allocate(%d): len %d cap %d, want cap %d", tt.n, len(s), a.Cap(), tt.wantCap)
		}
	}
}

func TestRenderSpan(t *testing.T) {
	src := newSource(t, 4, 2)
	dst := newTarget(t, 6, 2)
	gen := mustSampler(t)(NewImageNearest(src, NewLinear(Translate(-1, 0))))
	var alloc Allocator[color.RGBA8]

	RenderSpan(dst, gen, &alloc, 1, 1, 4, nil, 255)
	for x := 1; x < 5; x++ {
		if got, want := dst.Pixel(x, 1), src.Pixel(x-1, 1); got != want {
			t.Errorf("dst (%d, 1) = %v, want %v", x, got, want)
		}
	}
	if got := dst.Pixel(0, 1); got != (color.RGBA8{}) {
		t.Errorf("pixel outside the span was written: %v", got)
	}

	// zero coverage leaves the destination alone
	RenderSpan(dst, gen, &alloc, 0, 0, 4, []uint8{0, 0, 0, 0}, 255)
	for x := 0; x < 4; x++ {
		if got := dst.Pixel(x, 0); got != (color.RGBA8{}) {
			t.Errorf("dst (%d, 0) = %v, want transparent", x, got)
		}
	}

	RenderSpan(dst, gen, &alloc, 0, 0, 0, nil, 255)
	if alloc.Cap() != 256 {
		t.Errorf("allocator cap = %d", alloc.Cap())
	}
}

func TestSamplerDescriptor(t *testing.T) {
	tests := []struct {
		method Sampling
		wx, wy Remainder
		filter gputypes.FilterMode
		u, v   gputypes.AddressMode
	}{
		{SampleNearest, nil, nil, gputypes.FilterModeNearest, gputypes.AddressModeClampToEdge, gputypes.AddressModeClampToEdge},
		{SampleBilinear, Auto(8), Reflect(3), gputypes.FilterModeLinear, gputypes.AddressModeRepeat, gputypes.AddressModeMirrorRepeat},
		{SampleFilter, ReflectAuto(4), Unsigned(5), gputypes.FilterModeLinear, gputypes.AddressModeMirrorRepeat, gputypes.AddressModeRepeat},
	}
	for _, tt := range tests {
		d := SamplerDescriptor(tt.method, tt.wx, tt.wy)
		if d.MagFilter != tt.filter || d.MinFilter != tt.filter {
			t.Errorf("%s: filters %v/%v, want %v", tt.method, d.MagFilter, d.MinFilter, tt.filter)
		}
		if d.AddressModeU != tt.u || d.AddressModeV != tt.v {
			t.Errorf("%s: address modes %v/%v, want %v/%v", tt.method, d.AddressModeU, d.AddressModeV, tt.u, tt.v)
		}
		if d.Label == "" {
			t.Errorf("%s: empty label", tt.method)
		}
	}

	src := newSource(t, 4, 4)
	s := mustSampler(t)(NewPatternBilinear(src, NewLinear(Identity()), nil, Reflect(4)))
	if d := s.Descriptor(); d.AddressModeU != gputypes.AddressModeRepeat || d.AddressModeV != gputypes.AddressModeMirrorRepeat {
		t.Errorf("pattern descriptor = %+v", d)
	}
	img := mustSampler(t)(NewImageNearest(src, NewLinear(Identity())))
	if d := img.Descriptor(); d.AddressModeU != gputypes.AddressModeClampToEdge {
		t.Errorf("image descriptor = %+v", d)
	}
}

func BenchmarkImageFilterSinc64(b *testing.B) {
	src := newSource(b, 64, 64)
	s, err := NewImageFilter(src, NewLinear(Rotate(0.3)), filter64(b))
	if err != nil {
		b.Fatal(err)
	}
	span := make([]color.RGBA8, 64)
	b.ReportAllocs()
	for b.Loop() {
		s.Generate(span, 0, 32)
	}
}
