package engine

// Phase is the world's top-level state
// NotStarted -> Running -> GameOver, and GameOver -> Running only through restart
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText renders the phase name in JSON snapshots
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Prompt is the text shown to the player for a phase, empty while running
func (p Phase) Prompt() string {
	switch p {
	case PhaseNotStarted:
		return "PRESS ENTER TO START"
	case PhaseGameOver:
		return "GAME OVER - PRESS R TO RESTART"
	default:
		return ""
	}
}
