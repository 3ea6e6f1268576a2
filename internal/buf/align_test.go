package buf

import (
	"math"
	"testing"
)

func TestAlignUp(t *testing.T) {
	cases := []struct{ n, align, want int }{
		{0, 8, 0},
		{1, 8, 8},
		{20, 8, 24},
		{24, 8, 24},
		{5, 1, 5},
		{17, 16, 32},
	}
	for _, c := range cases {
		got, ok := AlignUp(c.n, c.align)
		if !ok || got != c.want {
			t.Fatalf("AlignUp(%d,%d)=%d,%v want %d", c.n, c.align, got, ok, c.want)
		}
	}
	if _, ok := AlignUp(math.MaxInt, 8); ok {
		t.Fatalf("AlignUp should report overflow near MaxInt")
	}
}

func TestAlignAddr(t *testing.T) {
	if got := AlignAddr(0x1001, 16); got != 0x1010 {
		t.Fatalf("AlignAddr(0x1001,16)=%#x", got)
	}
	if got := AlignAddr(0x1000, 16); got != 0x1000 {
		t.Fatalf("AlignAddr(0x1000,16)=%#x", got)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 64, 4096} {
		if !IsPowerOfTwo(n) {
			t.Fatalf("%d should be a power of two", n)
		}
	}
	for _, n := range []int{0, -2, 3, 12, 100} {
		if IsPowerOfTwo(n) {
			t.Fatalf("%d should not be a power of two", n)
		}
	}
}

func TestRoundUpMultiple(t *testing.T) {
	cases := []struct{ n, m, want int }{
		{0, 48, 0},
		{1, 48, 48},
		{48, 48, 48},
		{49, 48, 96},
		{20, 64, 64},
	}
	for _, c := range cases {
		got, ok := RoundUpMultiple(c.n, c.m)
		if !ok || got != c.want {
			t.Fatalf("RoundUpMultiple(%d,%d)=%d,%v want %d", c.n, c.m, got, ok, c.want)
		}
	}
	if _, ok := RoundUpMultiple(math.MaxInt-1, 4); ok {
		t.Fatalf("RoundUpMultiple should report overflow near MaxInt")
	}
}
