package cache

import (
	"errors"
	"sync"
	"testing"
)

func build(v int) func() (int, error) {
	return func() (int, error) { return v, nil }
}

func TestCacheGet(t *testing.T) {
	c := New[string, int](4)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache returned ok")
	}
	c.GetOrCreate("a", build(1))
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if s := c.Stats(); s.Len != 1 || s.Hits != 1 || s.Misses != 2 {
		t.Errorf("Stats() = %+v, want len 1, hits 1, misses 2", s)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	var evicted []int
	c.OnEvict(func(k, _ int) { evicted = append(evicted, k) })

	c.GetOrCreate(1, build(1))
	c.GetOrCreate(2, build(2))
	c.GetOrCreate(3, build(3))
	c.Get(1) // 2 is now the oldest
	c.GetOrCreate(4, build(4))

	if len(evicted) != 1 || evicted[0] != 2 {
		t.Fatalf("evicted = %v, want [2]", evicted)
	}
	if _, ok := c.Get(2); ok {
		t.Error("evicted key still present")
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d missing", k)
		}
	}
	if s := c.Stats(); s.Evictions != 1 || s.Len != 3 || s.Capacity != 3 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestCacheGetOrCreateOnce(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	create := func() (int, error) { calls++; return 7, nil }
	for range 5 {
		if v, err := c.GetOrCreate("k", create); err != nil || v != 7 {
			t.Fatalf("GetOrCreate = %d, %v, want 7, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 4 || s.Misses != 1 {
		t.Errorf("Stats() hits=%d misses=%d, want 4, 1", s.Hits, s.Misses)
	}
	if s.HitRate != 0.8 {
		t.Errorf("HitRate = %v, want 0.8", s.HitRate)
	}
}

func TestCacheGetOrCreateError(t *testing.T) {
	c := New[string, int](0)
	errBuild := errors.New("build failed")
	if _, err := c.GetOrCreate("k", func() (int, error) { return 0, errBuild }); !errors.Is(err, errBuild) {
		t.Fatalf("GetOrCreate error = %v, want %v", err, errBuild)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("failed create was cached")
	}
	if v, err := c.GetOrCreate("k", build(3)); err != nil || v != 3 {
		t.Errorf("GetOrCreate after failure = %d, %v, want 3, nil", v, err)
	}
}

func TestCacheClear(t *testing.T) {
	c := New[int, string](0)
	var evicted int
	c.OnEvict(func(int, string) { evicted++ })
	for i, v := range []string{"a", "b", "c"} {
		c.GetOrCreate(i, func() (string, error) { return v, nil })
	}
	c.Get(1)
	c.Clear()
	s := c.Stats()
	if s.Len != 0 || evicted != 0 {
		t.Errorf("after Clear: len %d, evicted %d, want 0, 0", s.Len, evicted)
	}
	if s.Misses != 3 || s.Hits != 1 {
		t.Errorf("Clear reset statistics: %+v", s)
	}
	// list links must be usable after a reset
	c.GetOrCreate(5, func() (string, error) { return "e", nil })
	if v, _ := c.Get(5); v != "e" {
		t.Errorf("Get(5) = %q after Clear", v)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				k := (i + g) % 32
				c.GetOrCreate(k, build(k*2))
			}
		}()
	}
	wg.Wait()
	if n := c.Stats().Len; n > 16 {
		t.Errorf("Len = %d exceeds capacity", n)
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[int, int](64)
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		c.GetOrCreate(i&31, build(i))
		i++
	}
}
