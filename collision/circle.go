package collision

import (
	"math"

	"github.com/lixenwraith/shoot/vmath"
)

// BoundingCircles tests the circles enclosing each polygon around its vertex centroid
// Cheap broad test usable as a registered method
func BoundingCircles(a, b []vmath.Vec2) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	ca, ra := boundingCircle(a)
	cb, rb := boundingCircle(b)
	return vmath.CirclesOverlap(ca, ra, cb, rb)
}

func boundingCircle(points []vmath.Vec2) (vmath.Vec2, float64) {
	var c vmath.Vec2
	for _, p := range points {
		c = c.Add(p)
	}
	c = c.Scale(1 / float64(len(points)))

	var r2 float64
	for _, p := range points {
		if d := p.Sub(c).LenSq(); d > r2 {
			r2 = d
		}
	}
	return c, math.Sqrt(r2)
}
