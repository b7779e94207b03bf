// Package config loads simulation tunables from TOML
// Priority: explicit path > ./shoot.toml > embedded defaults
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var embeddedDefault string

// DefaultPath is checked when no explicit path is given
const DefaultPath = "shoot.toml"

// Config holds every tunable of the simulation core
type Config struct {
	Arena     ArenaConfig     `toml:"arena"`
	Player    PlayerConfig    `toml:"player"`
	Bullet    BulletConfig    `toml:"bullet"`
	Asteroid  AsteroidConfig  `toml:"asteroid"`
	Spawn     SpawnConfig     `toml:"spawn"`
	Score     ScoreConfig     `toml:"score"`
	Collision CollisionConfig `toml:"collision"`
	Loop      LoopConfig      `toml:"loop"`
}

type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PlayerConfig struct {
	StartX        float64 `toml:"start_x"`
	StartY        float64 `toml:"start_y"`
	StartAngle    float64 `toml:"start_angle"`
	TurnRate      float64 `toml:"turn_rate"`
	Speed         float64 `toml:"speed"`
	HalfExtent    float64 `toml:"half_extent"`
	ShootCooldown float64 `toml:"shoot_cooldown"`
}

type BulletConfig struct {
	Speed    float64 `toml:"speed"`
	Lifetime float64 `toml:"lifetime"`
	Radius   float64 `toml:"radius"`
}

type AsteroidConfig struct {
	Speed   float64 `toml:"speed"`
	Radius  float64 `toml:"radius"`
	SpinMin float64 `toml:"spin_min"`
	SpinMax float64 `toml:"spin_max"`
}

type SpawnConfig struct {
	Interval     float64 `toml:"interval"`
	Initial      int     `toml:"initial"`
	Background   int     `toml:"background"`
	SafeRadius   float64 `toml:"safe_radius"`
	MaxAsteroids int     `toml:"max_asteroids"`
}

type ScoreConfig struct {
	Asteroid int `toml:"asteroid"`
}

// CollisionConfig selects an optional narrow phase by driver method name
// Empty means circle overlap alone decides hits
type CollisionConfig struct {
	Method string `toml:"method"`
}

type LoopConfig struct {
	Seed uint64 `toml:"seed"`
}

// Default returns the embedded configuration
// Panics only if the embedded file is malformed, which is a build defect
func Default() *Config {
	cfg := &Config{}
	if _, err := toml.Decode(embeddedDefault, cfg); err != nil {
		panic(fmt.Sprintf("embedded default config: %v", err))
	}
	return cfg
}

// Load resolves the config source by priority and validates the result
// Keys absent from a file keep their default values
func Load(customPath string) (*Config, error) {
	cfg := Default()

	path := customPath
	if path == "" && fileExists(DefaultPath) {
		path = DefaultPath
	}
	if path == "" {
		return cfg, nil
	}

	if !fileExists(path) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg and validates it
// Unknown keys are rejected so typos do not silently fall back to defaults
func Decode(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config keys: %v", undecoded)
	}
	return cfg.Validate()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
