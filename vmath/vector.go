package vmath

import "math"

// Vec2 is a float64 2D vector in arena units
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns x1*x2 + y1*y2
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns Euclidean magnitude
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Len()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// Angle returns the direction of v in radians, atan2(y, x)
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Perpendicular returns vector rotated 90° counter-clockwise
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// ReflectX returns vector reflected off a vertical wall (left/right edge)
func (v Vec2) ReflectX() Vec2 {
	return Vec2{-v.X, v.Y}
}

// ReflectY returns vector reflected off a horizontal wall (top/bottom edge)
func (v Vec2) ReflectY() Vec2 {
	return Vec2{v.X, -v.Y}
}

// Translate offsets every point by delta, returning a new slice
func Translate(points []Vec2, delta Vec2) []Vec2 {
	out := make([]Vec2, len(points))
	for i, p := range points {
		out[i] = p.Add(delta)
	}
	return out
}

// TransformPoints rotates local-space points by degrees then translates them to pos
// Used to produce world-space outlines for drawing and polygon collision
func TransformPoints(points []Vec2, pos Vec2, degrees float64) []Vec2 {
	rad := DegToRad(degrees)
	sin, cos := math.Sincos(rad)
	out := make([]Vec2, len(points))
	for i, p := range points {
		out[i] = Vec2{
			X: p.X*cos - p.Y*sin + pos.X,
			Y: p.X*sin + p.Y*cos + pos.Y,
		}
	}
	return out
}
