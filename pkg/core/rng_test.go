package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 256; i++ {
		if x, y := a.IntN(4), b.IntN(4); x != y {
			t.Fatalf("draw %d diverged: %d != %d", i, x, y)
		}
	}
}

func TestRNGReseed(t *testing.T) {
	r := NewRNG(7)
	first := make([]int, 32)
	for i := range first {
		first[i] = r.IntN(1000)
	}
	r.Reseed(7)
	for i, want := range first {
		if got := r.IntN(1000); got != want {
			t.Fatalf("draw %d after reseed = %d, want %d", i, got, want)
		}
	}
}

func TestRNGIntNRange(t *testing.T) {
	r := NewRNG(1)
	seen := [4]int{}
	for i := 0; i < 4000; i++ {
		v := r.IntN(4)
		if v < 0 || v >= 4 {
			t.Fatalf("IntN(4) = %d out of range", v)
		}
		seen[v]++
	}
	for dir, n := range seen {
		if n == 0 {
			t.Fatalf("value %d never drawn", dir)
		}
	}
	if r.IntN(0) != 0 || r.IntN(-3) != 0 {
		t.Fatal("IntN with non-positive bound must return 0")
	}
}

func TestRNGFloat64SharesStream(t *testing.T) {
	a := NewRNG(5)
	b := NewRNG(5)
	for i := 0; i < 64; i++ {
		f := a.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 = %v out of [0,1)", f)
		}
		if g := b.Float64(); f != g {
			t.Fatalf("draw %d diverged: %v != %v", i, f, g)
		}
	}
}
