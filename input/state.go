package input

// Action is a discrete input the simulation understands
type Action uint8

const (
	ActionNone Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionThrust
	ActionFire
	ActionStart
	ActionRestart
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:      "none",
	ActionTurnLeft:  "turn_left",
	ActionTurnRight: "turn_right",
	ActionThrust:    "thrust",
	ActionFire:      "fire",
	ActionStart:     "start",
	ActionRestart:   "restart",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "none"
}

// Snapshot is the pressed state of every action for one tick
// Passed by value so the input goroutine never shares memory with the simulation
type Snapshot struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    bool
	Fire      bool
	Start     bool
	Restart   bool
	Quit      bool
}

// Pressed reports the state of a single action
func (s Snapshot) Pressed(a Action) bool {
	switch a {
	case ActionTurnLeft:
		return s.TurnLeft
	case ActionTurnRight:
		return s.TurnRight
	case ActionThrust:
		return s.Thrust
	case ActionFire:
		return s.Fire
	case ActionStart:
		return s.Start
	case ActionRestart:
		return s.Restart
	case ActionQuit:
		return s.Quit
	default:
		return false
	}
}

// With returns a copy with action set to pressed
func (s Snapshot) With(a Action) Snapshot {
	switch a {
	case ActionTurnLeft:
		s.TurnLeft = true
	case ActionTurnRight:
		s.TurnRight = true
	case ActionThrust:
		s.Thrust = true
	case ActionFire:
		s.Fire = true
	case ActionStart:
		s.Start = true
	case ActionRestart:
		s.Restart = true
	case ActionQuit:
		s.Quit = true
	}
	return s
}
