package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame driver interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputHoldWindow is how long a terminal key press counts as held
	// Terminals report repeats but never releases, so held state decays after this window
	InputHoldWindow = 120 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Spawn placement
const (
	// SafeSpawnAttempts bounds redraws when a spawn point lands near the player
	SafeSpawnAttempts = 8
)

// TimerEpsilon absorbs float drift when a countdown is decremented by a fixed dt
// e.g. 1.0 - 10*0.1 leaves ~1e-16 which must still count as expired
const TimerEpsilon = 1e-9
