// Package cache provides a small generic LRU cache.
//
// The cache backs process-wide tables that are expensive to build and
// immutable once built, such as discretized filter kernels. Lookups and
// insertions are O(1); the least recently used entry is evicted when the
// capacity is exceeded.
//
//	c := cache.New[string, *Table](32)
//	t := c.GetOrCreate("bicubic", buildBicubic)
//
// # Thread Safety
//
// Cache is safe for concurrent use. The create function passed to
// GetOrCreate runs under the cache lock, so each key is built once.
package cache
