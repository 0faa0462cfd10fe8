package filter

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownShape is returned by ByName for names it does not know.
var ErrUnknownShape = errors.New("filter: unknown shape")

var predefined = []Shape{
	Bilinear{}, Bicubic{}, Spline16{}, Spline36{},
	Hanning{}, Hamming{}, Hermite{}, Quadric{}, Catrom{},
	NewMitchell(), Gaussian{}, NewKaiser(), Bessel{},
	Sinc36, Sinc64, Sinc100, Sinc144, Sinc196, Sinc256,
	Blackman36, Blackman64, Blackman100, Blackman144, Blackman196, Blackman256,
}

// ByName returns the predefined shape with the given name, such as
// "bicubic" or "sinc64".
func ByName(name string) (Shape, error) {
	for _, s := range predefined {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Names lists the predefined shape names in sorted order.
func Names() []string {
	names := make([]string, len(predefined))
	for i, s := range predefined {
		names[i] = s.Name()
	}
	slices.Sort(names)
	return names
}
