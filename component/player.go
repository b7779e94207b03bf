package component

import (
	"github.com/lixenwraith/shoot/config"
	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/input"
	"github.com/lixenwraith/shoot/parameter"
	"github.com/lixenwraith/shoot/vmath"
)

// Player is the ship; the only variant clamped to the arena
type Player struct {
	Position vmath.Vec2
	Angle    float64 // Degrees, unbounded

	TurnRate      float64 // Degrees per second
	Speed         float64 // Units per second while thrusting
	HalfExtent    float64
	ShootCooldown float64 // Seconds between shots
	Cooldown      float64 // Remaining seconds until the next shot is allowed
}

func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{
		Position:      vmath.V2(cfg.StartX, cfg.StartY),
		Angle:         cfg.StartAngle,
		TurnRate:      cfg.TurnRate,
		Speed:         cfg.Speed,
		HalfExtent:    cfg.HalfExtent,
		ShootCooldown: cfg.ShootCooldown,
	}
}

func (p *Player) Kind() core.Kind { return core.KindPlayer }
func (p *Player) Pos() vmath.Vec2 { return p.Position }
func (p *Player) Radius() float64 { return p.HalfExtent }
func (p *Player) sealed()         {}

// Heading returns the unit vector the player faces
func (p *Player) Heading() vmath.Vec2 { return vmath.FromAngle(p.Angle) }

func (p *Player) Shape() []vmath.Vec2 {
	outline := parameter.ScaleOutline(parameter.PlayerOutline, p.HalfExtent/15)
	return vmath.TransformPoints(outline, p.Position, p.Angle)
}

// Update advances the player one tick and reports whether a shot should be fired
// The caller owns bullet creation so staging stays in the world
// Angle is not wrapped; trig handles periodicity
func (p *Player) Update(dt float64, in input.Snapshot, arena Arena) (fire bool) {
	p.Cooldown -= dt
	if p.Cooldown < 0 {
		p.Cooldown = 0
	}

	// y grows downward, so decreasing the angle turns left on screen
	if in.TurnLeft {
		p.Angle -= p.TurnRate * dt
	}
	if in.TurnRight {
		p.Angle += p.TurnRate * dt
	}

	if in.Thrust {
		p.Position = p.Position.Add(p.Heading().Scale(p.Speed * dt))
		p.Position = vmath.ClampToRect(p.Position, arena.Width, arena.Height, p.HalfExtent, p.HalfExtent)
	}

	if in.Fire && p.Cooldown <= parameter.TimerEpsilon {
		p.Cooldown = p.ShootCooldown
		return true
	}
	return false
}
