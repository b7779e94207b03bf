package collision

import (
	"testing"

	"github.com/lixenwraith/shoot/vmath"
)

func TestSATIdentical(t *testing.T) {
	shapes := [][]vmath.Vec2{
		square(0, 0, 15),
		square(600, 450, 2.5),
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}},
	}
	for i, s := range shapes {
		if !SAT(s, s) {
			t.Errorf("shape %d does not intersect itself", i)
		}
	}
}

func TestSATFarApart(t *testing.T) {
	a := square(0, 0, 15)
	b := square(1000, -1000, 15)
	if SAT(a, b) || SAT(b, a) {
		t.Error("distant squares reported intersecting")
	}
}

func TestSATCases(t *testing.T) {
	tri := []vmath.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	tests := []struct {
		name string
		a, b []vmath.Vec2
		want bool
	}{
		{"overlapping squares", square(0, 0, 10), square(15, 0, 10), true},
		{"touching edges", square(0, 0, 10), square(20, 0, 10), true},
		{"separated on x", square(0, 0, 10), square(20.5, 0, 10), false},
		{"contained", square(0, 0, 10), square(1, 1, 2), true},
		// Bounding boxes overlap but the hypotenuse separates them
		{"triangle diagonal gap", tri, square(9, 9, 2), false},
		{"rotated square", vmath.TransformPoints(square(0, 0, 10), vmath.V2(24, 0), 45), square(0, 0, 10), true},
		{"empty", nil, square(0, 0, 1), false},
		{"point inside", []vmath.Vec2{{X: 1, Y: 1}}, square(0, 0, 5), true},
		{"point outside", []vmath.Vec2{{X: 9, Y: 9}}, square(0, 0, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SAT(tt.a, tt.b); got != tt.want {
				t.Errorf("SAT(a,b) = %v, want %v", got, tt.want)
			}
			if got := SAT(tt.b, tt.a); got != tt.want {
				t.Errorf("SAT(b,a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSATDegenerateEdges(t *testing.T) {
	// Duplicate vertex yields a zero-length edge that must be skipped
	a := []vmath.Vec2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	if !SAT(a, square(5, 5, 1)) {
		t.Error("duplicate vertex broke intersection")
	}
	if SAT(a, square(50, 50, 1)) {
		t.Error("duplicate vertex broke separation")
	}
}

func TestBoundingCircles(t *testing.T) {
	if !BoundingCircles(square(0, 0, 10), square(25, 0, 10)) {
		t.Error("circumscribed circles (r≈14.1) 25 apart should overlap")
	}
	if BoundingCircles(square(0, 0, 10), square(40, 0, 10)) {
		t.Error("circles 40 apart should not overlap")
	}
	if BoundingCircles(nil, square(0, 0, 1)) {
		t.Error("empty polygon should not collide")
	}
}
