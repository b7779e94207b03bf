package audio

import (
	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/engine"
	"github.com/lixenwraith/shoot/event"
)

// Player plays a sound by type
type Player interface {
	Play(st core.SoundType)
}

// Sink maps drained game events to sounds
type Sink struct {
	player Player
}

// NewSink binds a player; a nil player makes the sink a no-op
func NewSink(player Player) *Sink {
	return &Sink{player: player}
}

// SoundFor returns the sound for ev, false when the event is silent
func SoundFor(ev event.GameEvent) (core.SoundType, bool) {
	switch ev.Type {
	case event.EventShotFired:
		return core.SoundShot, true
	case event.EventAsteroidDestroyed:
		return core.SoundExplosion, true
	case event.EventGameOver:
		return core.SoundGameOver, true
	case event.EventPhaseChanged:
		if p, ok := ev.Payload.(*event.PhaseChangePayload); ok && p.To == engine.PhaseRunning.String() {
			return core.SoundStart, true
		}
	}
	return 0, false
}

// Handle plays sounds for events in order
func (s *Sink) Handle(events []event.GameEvent) {
	if s.player == nil {
		return
	}
	for i := range events {
		if st, ok := SoundFor(events[i]); ok {
			s.player.Play(st)
		}
	}
}

// Drain consumes everything pending in q
func (s *Sink) Drain(q *event.Queue) {
	s.Handle(q.Consume())
}
