package vmath

import "math"

// DegToRad converts degrees to radians (angle * π/180)
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Rotate rotates v counter-clockwise by degrees around the origin
func Rotate(v Vec2, degrees float64) Vec2 {
	sin, cos := math.Sincos(DegToRad(degrees))
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// FromAngle returns the unit heading for an orientation in degrees
// 0° is local +X
func FromAngle(degrees float64) Vec2 {
	sin, cos := math.Sincos(DegToRad(degrees))
	return Vec2{X: cos, Y: sin}
}

// FromRadians returns the unit vector for an angle in radians
func FromRadians(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{X: cos, Y: sin}
}
