package component

import (
	"math"
	"testing"

	"github.com/lixenwraith/shoot/config"
	"github.com/lixenwraith/shoot/input"
	"github.com/lixenwraith/shoot/vmath"
)

const tol = 1e-9

var testArena = Arena{Width: 1200, Height: 900}

func TestZeroDtLeavesStateUnchanged(t *testing.T) {
	cfg := config.Default()

	p := NewPlayer(cfg.Player)
	p.Angle = 30
	allInput := input.Snapshot{TurnLeft: true, TurnRight: true, Thrust: true}
	pos, angle := p.Position, p.Angle
	p.Update(0, allInput, testArena)
	if p.Position != pos || p.Angle != angle {
		t.Errorf("player moved with dt=0: %+v %v", p.Position, p.Angle)
	}

	b := NewBullet(vmath.V2(10, 10), vmath.V2(0, 1), cfg.Bullet)
	pos = b.Position
	b.Update(0)
	if b.Position != pos {
		t.Errorf("bullet moved with dt=0: %+v", b.Position)
	}

	a := SpawnAsteroid(vmath.NewFastRand(3), testArena, cfg.Asteroid)
	pos, angle = a.Position, a.Angle
	a.Update(0, testArena)
	if a.Position != pos || a.Angle != angle {
		t.Errorf("asteroid moved with dt=0: %+v %v", a.Position, a.Angle)
	}
}

func TestPlayerTurnAndThrust(t *testing.T) {
	cfg := config.Default().Player
	cfg.StartX, cfg.StartY, cfg.StartAngle = 600, 450, 0
	p := NewPlayer(cfg)

	p.Update(0.5, input.Snapshot{TurnRight: true}, testArena)
	if math.Abs(p.Angle-cfg.TurnRate*0.5) > tol {
		t.Errorf("angle = %v, want %v", p.Angle, cfg.TurnRate*0.5)
	}
	p.Update(0.5, input.Snapshot{TurnLeft: true}, testArena)
	if math.Abs(p.Angle) > tol {
		t.Errorf("angle after turning back = %v", p.Angle)
	}

	p.Update(0.1, input.Snapshot{Thrust: true}, testArena)
	if math.Abs(p.Position.X-(600+cfg.Speed*0.1)) > tol || math.Abs(p.Position.Y-450) > tol {
		t.Errorf("thrust position = %+v", p.Position)
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	cfg := config.Default().Player
	cfg.StartX, cfg.StartY, cfg.StartAngle = 1180, 20, -45
	p := NewPlayer(cfg)

	for i := 0; i < 100; i++ {
		p.Update(0.1, input.Snapshot{Thrust: true}, testArena)
	}
	if p.Position.X != testArena.Width-p.HalfExtent || p.Position.Y != p.HalfExtent {
		t.Errorf("player not clamped to corner: %+v", p.Position)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	cfg := config.Default().Player
	cfg.ShootCooldown = 0.25
	p := NewPlayer(cfg)
	fire := input.Snapshot{Fire: true}

	if !p.Update(0.01, fire, testArena) {
		t.Fatal("first shot should fire immediately")
	}
	shots := 1
	// 1 second of held fire at 0.05 steps: one shot per 0.25s
	for i := 0; i < 20; i++ {
		if p.Update(0.05, fire, testArena) {
			shots++
		}
	}
	if shots != 5 {
		t.Errorf("shots = %d, want 5", shots)
	}

	if p.Update(10, input.Snapshot{}, testArena) {
		t.Error("fired without fire input")
	}
	if p.Cooldown != 0 {
		t.Errorf("cooldown should floor at 0, got %v", p.Cooldown)
	}
}

func TestBulletLifetime(t *testing.T) {
	cfg := config.Default().Bullet
	cfg.Lifetime = 1.0
	b := NewBullet(vmath.V2(0, 0), vmath.V2(2, 0), cfg)
	if math.Abs(b.Direction.Len()-1) > tol {
		t.Fatalf("direction not normalized: %+v", b.Direction)
	}

	// 1.0 - 10*0.1 leaves float residue; must still expire on tick 10
	const dt = 0.1
	ticks := int(math.Ceil(cfg.Lifetime / dt))
	prev := b.Lifetime
	for i := 1; i <= ticks; i++ {
		expired := b.Update(dt)
		if b.Lifetime >= prev {
			t.Fatalf("lifetime did not decrease at tick %d", i)
		}
		prev = b.Lifetime
		if i < ticks && expired {
			t.Fatalf("expired early at tick %d", i)
		}
		if i == ticks && !expired {
			t.Fatalf("not expired after %d ticks, lifetime %v", ticks, b.Lifetime)
		}
	}
	if math.Abs(b.Position.X-cfg.Speed*1.0) > 1e-6 {
		t.Errorf("bullet traveled to %v, want %v", b.Position.X, cfg.Speed)
	}
}

func TestAsteroidDirectionStaysUnit(t *testing.T) {
	cfg := config.Default().Asteroid
	rng := vmath.NewFastRand(99)
	for n := 0; n < 20; n++ {
		a := SpawnAsteroid(rng, testArena, cfg)
		a.Speed = 900 // Cross the arena often to force reflections
		for i := 0; i < 500; i++ {
			a.Update(1.0/30, testArena)
			if math.Abs(a.Direction.Len()-1) > 1e-9 {
				t.Fatalf("asteroid %d tick %d direction length %v", n, i, a.Direction.Len())
			}
		}
	}
}

func TestAsteroidReflect(t *testing.T) {
	cfg := config.Default().Asteroid
	tests := []struct {
		name    string
		pos     vmath.Vec2
		dir     vmath.Vec2
		wantDir vmath.Vec2
	}{
		{"left edge moving out", vmath.V2(44, 450), vmath.V2(-1, 0), vmath.V2(1, 0)},
		{"left edge moving in", vmath.V2(44, 450), vmath.V2(1, 0), vmath.V2(1, 0)},
		{"right edge", vmath.V2(1156, 450), vmath.V2(1, 0), vmath.V2(-1, 0)},
		{"top edge keeps x", vmath.V2(600, 45), vmath.V2(0.6, -0.8), vmath.V2(0.6, 0.8)},
		{"bottom right corner", vmath.V2(1160, 860), vmath.V2(0.6, 0.8), vmath.V2(-0.6, -0.8)},
		{"interior", vmath.V2(600, 450), vmath.V2(0.6, 0.8), vmath.V2(0.6, 0.8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Asteroid{Position: tt.pos, Direction: tt.dir, Speed: cfg.Speed, Size: 45}
			a.Update(0, testArena)
			if math.Abs(a.Direction.X-tt.wantDir.X) > tol || math.Abs(a.Direction.Y-tt.wantDir.Y) > tol {
				t.Errorf("direction = %+v, want %+v", a.Direction, tt.wantDir)
			}
			if a.Position != tt.pos {
				t.Errorf("position corrected to %+v", a.Position)
			}
		})
	}
}

func TestSpawnAsteroidInsideInset(t *testing.T) {
	cfg := config.Default().Asteroid
	rng := vmath.NewFastRand(5)
	for i := 0; i < 200; i++ {
		a := SpawnAsteroid(rng, testArena, cfg)
		if a.Position.X < cfg.Radius || a.Position.X > testArena.Width-cfg.Radius ||
			a.Position.Y < cfg.Radius || a.Position.Y > testArena.Height-cfg.Radius {
			t.Fatalf("spawn %d outside inset: %+v", i, a.Position)
		}
		if a.Spin < cfg.SpinMin || a.Spin > cfg.SpinMax {
			t.Fatalf("spin %v outside range", a.Spin)
		}
	}

	// Same seed, same field
	a1 := SpawnAsteroid(vmath.NewFastRand(11), testArena, cfg)
	a2 := SpawnAsteroid(vmath.NewFastRand(11), testArena, cfg)
	if *a1 != *a2 {
		t.Errorf("seeded spawns differ: %+v vs %+v", a1, a2)
	}
}

func TestShapesFollowPose(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg.Player)
	shape := p.Shape()
	if len(shape) != 4 {
		t.Fatalf("player shape has %d points", len(shape))
	}
	for _, v := range shape {
		d := v.Sub(p.Position).Len()
		if math.Abs(d-15*math.Sqrt2) > 1e-6 {
			t.Errorf("player vertex at distance %v", d)
		}
	}

	a := &Asteroid{Position: vmath.V2(100, 100), Size: 90}
	for _, v := range a.Shape() {
		if v.Sub(a.Position).Len() > 90+1e-6 {
			t.Errorf("scaled asteroid vertex outside radius: %+v", v)
		}
	}

	b := NewBullet(vmath.V2(5, 5), vmath.V2(0, 1), cfg.Bullet)
	if len(b.Shape()) != 4 {
		t.Error("bullet shape should be a quad")
	}
}
