package config

import (
	"fmt"
	"strings"
)

// ValidationError lists every invalid field found in one pass
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s", strings.Join(e.Fields, "; "))
}

// Validate checks ranges; collision method names are checked by the engine against its driver
func (c *Config) Validate() error {
	var bad []string
	positive := func(name string, v float64) {
		if v <= 0 {
			bad = append(bad, fmt.Sprintf("%s must be > 0 (got %v)", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			bad = append(bad, fmt.Sprintf("%s must be >= 0 (got %v)", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)

	nonNegative("player.turn_rate", c.Player.TurnRate)
	nonNegative("player.speed", c.Player.Speed)
	positive("player.half_extent", c.Player.HalfExtent)
	nonNegative("player.shoot_cooldown", c.Player.ShootCooldown)

	nonNegative("bullet.speed", c.Bullet.Speed)
	positive("bullet.lifetime", c.Bullet.Lifetime)
	nonNegative("bullet.radius", c.Bullet.Radius)

	nonNegative("asteroid.speed", c.Asteroid.Speed)
	positive("asteroid.radius", c.Asteroid.Radius)
	if c.Asteroid.SpinMax < c.Asteroid.SpinMin {
		bad = append(bad, "asteroid.spin_max must be >= asteroid.spin_min")
	}

	positive("spawn.interval", c.Spawn.Interval)
	nonNegative("spawn.initial", float64(c.Spawn.Initial))
	nonNegative("spawn.background", float64(c.Spawn.Background))
	nonNegative("spawn.safe_radius", c.Spawn.SafeRadius)
	nonNegative("spawn.max_asteroids", float64(c.Spawn.MaxAsteroids))

	nonNegative("score.asteroid", float64(c.Score.Asteroid))

	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}
