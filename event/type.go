package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// EventShotFired signals the player fired a bullet
	// Trigger: World when Player.Update reports fire
	// Consumer: audio Sink | Payload: *ShotFiredPayload
	EventShotFired

	// EventAsteroidDestroyed signals a bullet destroyed an asteroid
	// Trigger: World bullet x asteroid pass
	// Consumer: audio Sink, metrics | Payload: *AsteroidDestroyedPayload
	EventAsteroidDestroyed

	// EventAsteroidSpawned signals the spawn timer produced an asteroid
	// Trigger: World spawn countdown | Payload: *AsteroidSpawnedPayload
	EventAsteroidSpawned

	// EventBulletExpired signals a bullet ran out of lifetime
	// Trigger: World update pass | Payload: *BulletExpiredPayload
	EventBulletExpired

	// EventScoreChanged signals a score delta applied during a tick
	// Trigger: World collision pass | Payload: *ScorePayload
	EventScoreChanged

	// EventPhaseChanged signals a game phase transition
	// Trigger: start, game over, restart
	// Consumer: presenter prompts, audio Sink | Payload: *PhaseChangePayload
	EventPhaseChanged

	// EventGameOver signals the player was hit
	// Trigger: World player x asteroid pass | Payload: *GameOverPayload
	EventGameOver
)

var typeNames = map[EventType]string{
	EventNone:              "None",
	EventShotFired:         "ShotFired",
	EventAsteroidDestroyed: "AsteroidDestroyed",
	EventAsteroidSpawned:   "AsteroidSpawned",
	EventBulletExpired:     "BulletExpired",
	EventScoreChanged:      "ScoreChanged",
	EventPhaseChanged:      "PhaseChanged",
	EventGameOver:          "GameOver",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single emitted outcome tagged with the tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
