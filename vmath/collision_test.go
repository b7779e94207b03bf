package vmath

import "testing"

func TestCirclesOverlapSelf(t *testing.T) {
	points := []Vec2{{0, 0}, {600, 450}, {-3.5, 1e6}}
	radii := []float64{0, 1, 45}
	for _, p := range points {
		for _, r := range radii {
			if !CirclesOverlap(p, r, p, r) {
				t.Errorf("circle at %+v r=%v does not overlap itself", p, r)
			}
		}
	}
}

func TestCirclesOverlapBoundary(t *testing.T) {
	tests := []struct {
		name string
		a    Vec2
		ra   float64
		b    Vec2
		rb   float64
		want bool
	}{
		{"touching", V2(0, 0), 45, V2(50, 0), 5, true},
		{"gap", V2(0, 0), 45, V2(50.001, 0), 5, false},
		{"diagonal inside", V2(10, 10), 5, V2(13, 14), 0, true},
		{"point radii apart", V2(0, 0), 0, V2(0, 1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.a, tt.ra, tt.b, tt.rb); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			// Symmetry
			if got := CirclesOverlap(tt.b, tt.rb, tt.a, tt.ra); got != tt.want {
				t.Errorf("swapped: got %v, want %v", got, tt.want)
			}
		})
	}
}
