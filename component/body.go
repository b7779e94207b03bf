// Package component defines the closed set of simulation entity variants
// Dispatch happens by type switch in the engine; Body exists so the live set can hold
// any variant without open-ended inheritance.
package component

import (
	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/vmath"
)

// Body is implemented only by *Player, *Bullet and *Asteroid
type Body interface {
	Kind() core.Kind
	Pos() vmath.Vec2
	// Shape returns the world-space outline
	Shape() []vmath.Vec2
	// Radius is the gameplay collision radius
	Radius() float64
	sealed()
}

// Arena is the playfield rectangle [0,Width]x[0,Height], y grows downward
type Arena struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the middle of the arena
func (a Arena) Center() vmath.Vec2 {
	return vmath.V2(a.Width/2, a.Height/2)
}
