package parameter

import (
	"math"

	"github.com/lixenwraith/shoot/vmath"
)

// Entity outlines in local space, 0° facing +X
var (
	// PlayerOutline is the 30x30 player quad
	PlayerOutline = []vmath.Vec2{
		{X: -15, Y: -15},
		{X: -15, Y: 15},
		{X: 15, Y: 15},
		{X: 15, Y: -15},
	}

	// BulletOutline is a small quad matching the bullet collision radius
	BulletOutline = []vmath.Vec2{
		{X: -5, Y: -5},
		{X: -5, Y: 5},
		{X: 5, Y: 5},
		{X: 5, Y: -5},
	}

	// AsteroidOutline is the 11-point rock, scaled so the farthest vertex sits on AsteroidOutlineRadius
	// Non-convex: SAT on this outline is an approximation
	AsteroidOutline = buildAsteroidOutline()
)

// AsteroidOutlineRadius is the radius of the unscaled outline
const AsteroidOutlineRadius = 45.0

// asteroidRadii are per-vertex distances as a fraction of the outline radius
var asteroidRadii = [11]float64{1.0, 0.84, 0.96, 0.8, 1.0, 0.89, 0.76, 0.98, 0.87, 1.0, 0.82}

func buildAsteroidOutline() []vmath.Vec2 {
	points := make([]vmath.Vec2, len(asteroidRadii))
	step := 2 * math.Pi / float64(len(asteroidRadii))
	for i, f := range asteroidRadii {
		points[i] = vmath.FromRadians(float64(i) * step).Scale(f * AsteroidOutlineRadius)
	}
	return points
}

// ScaleOutline returns outline scaled by factor
func ScaleOutline(outline []vmath.Vec2, factor float64) []vmath.Vec2 {
	out := make([]vmath.Vec2, len(outline))
	for i, p := range outline {
		out[i] = p.Scale(factor)
	}
	return out
}
