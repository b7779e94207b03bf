package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Player fired
	SoundExplosion                  // Asteroid destroyed
	SoundGameOver                   // Player hit
	SoundStart                      // Run started or restarted
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundExplosion:
		return "explosion"
	case SoundGameOver:
		return "gameover"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}
