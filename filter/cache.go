package filter

import (
	"github.com/gogpu/pixel"
	"github.com/gogpu/pixel/internal/cache"
)

// cacheCapacity bounds the number of shared tables. The predefined shapes
// number well below it.
const cacheCapacity = 48

// lutKey identifies a normalized table. Name includes shape parameters.
type lutKey struct {
	name   string
	radius float64
}

var lutCache = newLUTCache()

func newLUTCache() *cache.Cache[lutKey, *LUT] {
	c := cache.New[lutKey, *LUT](cacheCapacity)
	c.OnEvict(func(k lutKey, _ *LUT) {
		pixel.Logger().Info("filter: evicted cached lookup table", "shape", k.name)
	})
	return c
}

// Cached returns a shared normalized table for shape, building it on
// first use. Tables are keyed by shape name and radius.
func Cached(shape Shape) (*LUT, error) {
	if shape == nil {
		return nil, ErrNilShape
	}
	key := lutKey{name: shape.Name(), radius: shape.Radius()}
	return lutCache.GetOrCreate(key, func() (*LUT, error) { return NewLUT(shape) })
}

// CacheStats reports the shared table cache statistics.
func CacheStats() cache.Stats {
	return lutCache.Stats()
}

// ResetCache drops every shared table. Tables already handed out stay
// valid; later lookups rebuild them. Statistics are kept.
func ResetCache() {
	lutCache.Clear()
	pixel.Logger().Debug("filter: lookup table cache cleared")
}
