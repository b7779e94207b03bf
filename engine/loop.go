package engine

import (
	"time"

	"github.com/lixenwraith/shoot/input"
)

// Observer receives per-tick measurements from the frame loop
// Called synchronously on the loop goroutine; implementations must not block
type Observer interface {
	ObserveTick(rep *Report, elapsed time.Duration, live int)
}

// Loop derives dt from a clock and drives one World
type Loop struct {
	world    *World
	clock    TimeProvider
	observer Observer
	last     time.Time
}

// NewLoop binds a world to a clock; observer may be nil
func NewLoop(world *World, clock TimeProvider, observer Observer) *Loop {
	if clock == nil {
		clock = NewTimeProvider()
	}
	return &Loop{
		world:    world,
		clock:    clock,
		observer: observer,
	}
}

// World returns the driven world
func (l *Loop) World() *World {
	return l.world
}

// Step ticks the world with the time elapsed since the previous step
// The first step runs with dt = 0
func (l *Loop) Step(in input.Snapshot) (Report, error) {
	now := l.clock.Now()
	var dt float64
	if !l.last.IsZero() {
		dt = now.Sub(l.last).Seconds()
	}
	l.last = now

	start := time.Now()
	rep, err := l.world.Tick(dt, in)
	if l.observer != nil {
		l.observer.ObserveTick(&rep, time.Since(start), l.world.LiveCount())
	}
	return rep, err
}
