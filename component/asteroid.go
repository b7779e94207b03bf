package component

import (
	"github.com/lixenwraith/shoot/config"
	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/parameter"
	"github.com/lixenwraith/shoot/vmath"
)

// Asteroid drifts in a straight line and bounces off arena edges
// Spin is cosmetic; gameplay collision uses the bounding circle
type Asteroid struct {
	Position  vmath.Vec2
	Direction vmath.Vec2 // Unit vector
	Angle     float64    // Degrees, cosmetic
	Spin      float64    // Degrees per second
	Speed     float64
	Size      float64 // Bounding radius
}

// SpawnAsteroid draws direction and position from rng
// Direction angle is uniform in [0, 2π); position is uniform in the arena inset by the radius
func SpawnAsteroid(rng *vmath.FastRand, arena Arena, cfg config.AsteroidConfig) *Asteroid {
	r := cfg.Radius
	return &Asteroid{
		Position:  vmath.V2(rng.Range(r, arena.Width-r), rng.Range(r, arena.Height-r)),
		Direction: vmath.FromRadians(rng.Angle()),
		Spin:      rng.Range(cfg.SpinMin, cfg.SpinMax),
		Speed:     cfg.Speed,
		Size:      r,
	}
}

func (a *Asteroid) Kind() core.Kind { return core.KindAsteroid }
func (a *Asteroid) Pos() vmath.Vec2 { return a.Position }
func (a *Asteroid) Radius() float64 { return a.Size }
func (a *Asteroid) sealed()         {}

func (a *Asteroid) Shape() []vmath.Vec2 {
	outline := parameter.ScaleOutline(parameter.AsteroidOutline, a.Size/parameter.AsteroidOutlineRadius)
	return vmath.TransformPoints(outline, a.Position, a.Angle)
}

// Update moves and spins the asteroid, then reflects on edge contact
// Position is not corrected after crossing an edge
func (a *Asteroid) Update(dt float64, arena Arena) {
	a.Position = a.Position.Add(a.Direction.Scale(a.Speed * dt))
	a.Angle += a.Spin * dt
	a.reflect(arena)
}

// reflect flips a direction component only while it still points out of the arena
func (a *Asteroid) reflect(arena Arena) {
	r := a.Size
	p := a.Position
	if (p.X <= r && a.Direction.X < 0) || (p.X >= arena.Width-r && a.Direction.X > 0) {
		a.Direction = a.Direction.ReflectX()
	}
	if (p.Y <= r && a.Direction.Y < 0) || (p.Y >= arena.Height-r && a.Direction.Y > 0) {
		a.Direction = a.Direction.ReflectY()
	}
}
