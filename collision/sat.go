package collision

import (
	"math"

	"github.com/lixenwraith/shoot/vmath"
)

// SAT tests two polygons with the Separating Axis Theorem
// Exact for convex polygons only. Concave outlines (the asteroid) are tested as if
// convex along their own edge normals, which can report false positives/negatives
func SAT(a, b []vmath.Vec2) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	// Two points have no edges to project on
	if len(a) == 1 && len(b) == 1 {
		return a[0] == b[0]
	}
	if separatedOnAxes(a, a, b) {
		return false
	}
	if separatedOnAxes(b, a, b) {
		return false
	}
	return true
}

// separatedOnAxes checks every edge normal of src as a candidate separating axis
// Returns true on the first axis where the projections of a and b do not overlap
func separatedOnAxes(src, a, b []vmath.Vec2) bool {
	n := len(src)
	if n < 2 {
		return false
	}
	for i := 0; i < n; i++ {
		edge := src[(i+1)%n].Sub(src[i])
		if edge.LenSq() == 0 {
			continue
		}
		axis := edge.Perpendicular().Normalize()
		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		if maxA < minB || maxB < minA {
			return true
		}
	}
	return false
}

// project returns the scalar extent of points along axis
func project(points []vmath.Vec2, axis vmath.Vec2) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		d := p.Dot(axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}
