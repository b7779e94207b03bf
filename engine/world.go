// Package engine owns the simulation: the live entity set, deferred staging, the phase
// machine and the per-tick collision passes. A World is driven by exactly one caller.
package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/shoot/collision"
	"github.com/lixenwraith/shoot/component"
	"github.com/lixenwraith/shoot/config"
	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/event"
	"github.com/lixenwraith/shoot/vmath"
)

// World holds every entity and the transient staging lists
// Updates and collision passes only stage; commit is the single mutation point per tick
type World struct {
	cfg    *config.Config
	arena  component.Arena
	live   *Store[component.Body]
	player core.Entity

	pendingAdd    []core.Entity
	pendingRemove []core.Entity

	phase      Phase
	score      int
	spawnTimer float64
	frame      int64

	rng    *vmath.FastRand
	driver *collision.Driver
	narrow string
	events *event.Queue

	// Per-tick accumulation, reset at the start of Tick
	report    Report
	destroyed map[core.Entity]struct{}

	warnedNegativeDt bool
}

// NewWorld validates cfg and builds a world in the NotStarted phase with its background field staged
// A nil driver gets the default registry; an unknown narrow-phase method fails with *collision.MethodNotFoundError
func NewWorld(cfg *config.Config, driver *collision.Driver) (*World, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if driver == nil {
		driver = collision.NewDriver()
	}
	if method := cfg.Collision.Method; method != "" {
		if _, err := driver.Lookup(method); err != nil {
			return nil, fmt.Errorf("narrow phase: %w", err)
		}
	}

	capacity := cfg.Spawn.MaxAsteroids + cfg.Spawn.Background + 32
	w := &World{
		cfg:       cfg,
		arena:     component.Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height},
		live:      NewStore[component.Body](capacity),
		phase:     PhaseNotStarted,
		rng:       vmath.NewFastRand(cfg.Loop.Seed),
		driver:    driver,
		narrow:    cfg.Collision.Method,
		events:    event.NewQueue(),
		destroyed: make(map[core.Entity]struct{}),
	}

	for i := 0; i < cfg.Spawn.Background; i++ {
		w.stageAdd(component.SpawnAsteroid(w.rng, w.arena, cfg.Asteroid))
	}
	return w, nil
}

// Phase returns the current phase
func (w *World) Phase() Phase {
	return w.phase
}

// Score returns the current score
func (w *World) Score() int {
	return w.score
}

// Frame returns the number of ticks processed
func (w *World) Frame() int64 {
	return w.frame
}

// Arena returns the play field bounds
func (w *World) Arena() component.Arena {
	return w.arena
}

// Events returns the queue collaborators drain after each tick
func (w *World) Events() *event.Queue {
	return w.events
}

// LiveCount returns the number of committed entities
func (w *World) LiveCount() int {
	return w.live.Len()
}

// Entity resolves a handle against the live set; stale handles report false
func (w *World) Entity(e core.Entity) (component.Body, bool) {
	return w.live.Get(e)
}

// Player returns the committed player, if any
func (w *World) Player() (*component.Player, core.Entity, bool) {
	body, ok := w.live.Get(w.player)
	if !ok {
		return nil, core.NoEntity, false
	}
	p, ok := body.(*component.Player)
	return p, w.player, ok
}

// CountKind returns live entities of kind k
func (w *World) CountKind(k core.Kind) int {
	n := 0
	w.live.Each(func(_ core.Entity, b component.Body) bool {
		if b.Kind() == k {
			n++
		}
		return true
	})
	return n
}

// stageAdd reserves a handle for body; it joins the live set at commit
func (w *World) stageAdd(body component.Body) core.Entity {
	e := w.live.Reserve(body)
	w.pendingAdd = append(w.pendingAdd, e)
	return e
}

// stageRemove marks e for removal at commit; duplicates collapse there
func (w *World) stageRemove(e core.Entity) {
	w.pendingRemove = append(w.pendingRemove, e)
}

// commit applies staged removals then staged additions
func (w *World) commit() {
	for _, e := range w.pendingRemove {
		if w.live.Remove(e) {
			w.report.Destroyed = append(w.report.Destroyed, e)
		}
	}
	for _, e := range w.pendingAdd {
		if w.live.Activate(e) {
			w.report.Spawned = append(w.report.Spawned, e)
		}
	}
}

// clearStaging empties both lists and releases reservations that were never committed
func (w *World) clearStaging() {
	for _, e := range w.pendingAdd {
		w.live.Cancel(e)
	}
	w.pendingAdd = w.pendingAdd[:0]
	w.pendingRemove = w.pendingRemove[:0]
	clear(w.destroyed)
}

func (w *World) emit(t event.EventType, payload any) {
	ev := event.GameEvent{Type: t, Payload: payload, Frame: w.frame}
	w.events.Push(ev)
	w.report.Events = append(w.report.Events, ev)
}

func (w *World) setPhase(to Phase) {
	from := w.phase
	if from == to {
		return
	}
	w.phase = to
	log.Printf("[engine] phase %s -> %s (frame %d, score %d)", from, to, w.frame, w.score)
	w.emit(event.EventPhaseChanged, &event.PhaseChangePayload{From: from.String(), To: to.String()})
}
