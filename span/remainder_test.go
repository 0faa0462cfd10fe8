package span

import (
	"fmt"
	"testing"
)

func TestRemainderApply(t *testing.T) {
	tests := []struct {
		r    Remainder
		in   []int
		want []int
	}{
		{Unsigned(5), []int{-1, -5, -6, 0, 4, 7}, []int{4, 0, 4, 0, 4, 2}},
		{Pow2(8), []int{-1, 9, 16, 7}, []int{7, 1, 0, 7}},
		{Reflect(3), []int{0, 1, 2, 3, 4, 5, 6, -1, -2}, []int{0, 1, 2, 2, 1, 0, 0, 0, 1}},
		{ReflectPow2(4), []int{3, 4, 5, 7, 8, -1}, []int{3, 3, 2, 0, 0, 0}},
	}
	for _, tt := range tests {
		for i, v := range tt.in {
			if got := tt.r.Apply(v); got != tt.want[i] {
				t.Errorf("%v.Apply(%d) = %d, want %d", tt.r, v, got, tt.want[i])
			}
		}
	}
}

// TestRemainderAgreement checks that the mask and modulo variants wrap
// every coordinate, negative ones included, to the same place.
func TestRemainderAgreement(t *testing.T) {
	for _, n := range []int{1, 2, 8, 64} {
		u, p := Unsigned(n), Pow2(n)
		r, rp := Reflect(n), ReflectPow2(n)
		for v := -300; v <= 300; v++ {
			if a, b := u.Apply(v), p.Apply(v); a != b {
				t.Fatalf("n=%d v=%d: unsigned %d, pow2 %d", n, v, a, b)
			}
			if a, b := r.Apply(v), rp.Apply(v); a != b {
				t.Fatalf("n=%d v=%d: reflect %d, reflect-pow2 %d", n, v, a, b)
			}
		}
	}
}

func TestRemainderAuto(t *testing.T) {
	tests := []struct {
		r        Remainder
		name     string
		size     int
		mirrored bool
	}{
		{Auto(8), "pow2(8)", 8, false},
		{Auto(6), "unsigned(6)", 6, false},
		{ReflectAuto(16), "reflect-pow2(16)", 16, true},
		{ReflectAuto(5), "reflect(5)", 5, true},
		{Pow2(5), "pow2(8)", 8, false},
		{Unsigned(0), "unsigned(1)", 1, false},
	}
	for _, tt := range tests {
		if got := fmt.Sprint(tt.r); got != tt.name {
			t.Errorf("got %q, want %q", got, tt.name)
		}
		if tt.r.Size() != tt.size || tt.r.Mirrored() != tt.mirrored {
			t.Errorf("%s: Size %d Mirrored %v", tt.name, tt.r.Size(), tt.r.Mirrored())
		}
	}
}
