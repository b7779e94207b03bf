package input

import (
	"sync"
	"time"
)

// Latch converts key press events into held state
// Terminals deliver presses and auto-repeats but no releases, so an action counts as
// held until hold has elapsed since its last press. One-shot actions (start, restart,
// quit) are reported once by the next Snapshot and then cleared.
// Press is called from the input goroutine; Snapshot from the frame driver.
type Latch struct {
	mu       sync.Mutex
	hold     time.Duration
	lastSeen [actionCount]time.Time
	oneShot  Snapshot
}

func NewLatch(hold time.Duration) *Latch {
	return &Latch{hold: hold}
}

// Press records an action at time now
func (l *Latch) Press(a Action, now time.Time) {
	if a == ActionNone || a >= actionCount {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	switch a {
	case ActionStart, ActionRestart, ActionQuit:
		l.oneShot = l.oneShot.With(a)
	default:
		l.lastSeen[a] = now
	}
}

// Snapshot returns the state at time now and clears one-shot actions
func (l *Latch) Snapshot(now time.Time) Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.oneShot
	l.oneShot = Snapshot{}

	for a := ActionTurnLeft; a < actionCount; a++ {
		seen := l.lastSeen[a]
		if seen.IsZero() {
			continue
		}
		if now.Sub(seen) <= l.hold {
			s = s.With(a)
		}
	}
	return s
}
