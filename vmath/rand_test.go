package vmath

import (
	"math"
	"testing"
)

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("zero seed produced stuck generator")
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		if v := r.Range(45, 1155); v < 45 || v >= 1155 {
			t.Fatalf("Range out of bounds: %v", v)
		}
		if a := r.Angle(); a < 0 || a >= 2*math.Pi {
			t.Fatalf("Angle out of range: %v", a)
		}
		if n := r.Intn(5); n < 0 || n >= 5 {
			t.Fatalf("Intn out of range: %v", n)
		}
	}
	if r.Range(3, 3) != 3 {
		t.Error("empty range should return lower bound")
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}
