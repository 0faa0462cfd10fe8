package span

import "github.com/gogpu/gputypes"

// SamplerDescriptor describes the GPU sampler closest to a CPU sampler
// configuration, for renderers that hand the same image to a GPU path.
//
// Nearest sampling maps to nearest filtering; bilinear and filter
// sampling map to linear filtering. A nil remainder (clipping) maps to
// clamp-to-edge, mirrored remainders to mirror-repeat, others to repeat.
func SamplerDescriptor(method Sampling, wx, wy Remainder) gputypes.SamplerDescriptor {
	d := gputypes.DefaultSamplerDescriptor()
	if method != SampleNearest {
		d = gputypes.LinearSamplerDescriptor()
	}
	d.Label = "pixel/span " + method.String()
	d.AddressModeU = addressMode(wx)
	d.AddressModeV = addressMode(wy)
	return d
}

// Descriptor returns the GPU sampler descriptor for s.
func (s *Sampler) Descriptor() gputypes.SamplerDescriptor {
	return SamplerDescriptor(s.method, s.wrapX, s.wrapY)
}

func addressMode(r Remainder) gputypes.AddressMode {
	switch {
	case r == nil:
		return gputypes.AddressModeClampToEdge
	case r.Mirrored():
		return gputypes.AddressModeMirrorRepeat
	default:
		return gputypes.AddressModeRepeat
	}
}
