package component

import (
	"github.com/lixenwraith/shoot/config"
	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/parameter"
	"github.com/lixenwraith/shoot/vmath"
)

// Bullet is a linear projectile with a finite lifetime
type Bullet struct {
	Position  vmath.Vec2
	Direction vmath.Vec2 // Unit vector
	Speed     float64
	Lifetime  float64 // Remaining seconds
	Size      float64 // Collision radius
}

// NewBullet launches a bullet from pos along dir; dir is normalized
func NewBullet(pos, dir vmath.Vec2, cfg config.BulletConfig) *Bullet {
	return &Bullet{
		Position:  pos,
		Direction: dir.Normalize(),
		Speed:     cfg.Speed,
		Lifetime:  cfg.Lifetime,
		Size:      cfg.Radius,
	}
}

func (b *Bullet) Kind() core.Kind { return core.KindBullet }
func (b *Bullet) Pos() vmath.Vec2 { return b.Position }
func (b *Bullet) Radius() float64 { return b.Size }
func (b *Bullet) sealed()         {}

func (b *Bullet) Shape() []vmath.Vec2 {
	outline := parameter.ScaleOutline(parameter.BulletOutline, b.Size/5)
	angle := vmath.RadToDeg(b.Direction.Angle())
	return vmath.TransformPoints(outline, b.Position, angle)
}

// Update moves the bullet and reports expiry
// Expiry is reported on every tick once lifetime is spent; the world dedupes removals
func (b *Bullet) Update(dt float64) (expired bool) {
	b.Lifetime -= dt
	b.Position = b.Position.Add(b.Direction.Scale(b.Speed * dt))
	return b.Expired()
}

// Expired reports lifetime <= 0 within float tolerance
func (b *Bullet) Expired() bool {
	return b.Lifetime <= parameter.TimerEpsilon
}
