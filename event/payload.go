package event

import (
	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/vmath"
)

// ShotFiredPayload carries the staged bullet and its launch state
type ShotFiredPayload struct {
	Bullet    core.Entity
	Position  vmath.Vec2
	Direction vmath.Vec2
}

// AsteroidDestroyedPayload carries the destroyed asteroid and the bullet that hit it
type AsteroidDestroyedPayload struct {
	Asteroid core.Entity
	Bullet   core.Entity
	Position vmath.Vec2
	Points   int
}

type AsteroidSpawnedPayload struct {
	Asteroid core.Entity
	Position vmath.Vec2
}

type BulletExpiredPayload struct {
	Bullet core.Entity
}

// ScorePayload carries the per-tick delta and the resulting total
type ScorePayload struct {
	Delta int
	Total int
}

// PhaseChangePayload carries phase names as strings to keep event free of engine types
type PhaseChangePayload struct {
	From string
	To   string
}

type GameOverPayload struct {
	Asteroid core.Entity
	Score    int
}
