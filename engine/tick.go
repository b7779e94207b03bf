package engine

import (
	"log"

	"github.com/lixenwraith/shoot/component"
	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/event"
	"github.com/lixenwraith/shoot/input"
	"github.com/lixenwraith/shoot/parameter"
	"github.com/lixenwraith/shoot/vmath"
)

// Report summarizes one tick for the frame driver
type Report struct {
	Frame      int64
	Phase      Phase
	Score      int
	ScoreDelta int
	Spawned    []core.Entity
	Destroyed  []core.Entity
	Events     []event.GameEvent
	Quit       bool
}

// Tick advances the world by dt seconds under the given input
// Negative dt is clamped to zero. Staging lists are cleared on every exit path.
func (w *World) Tick(dt float64, in input.Snapshot) (Report, error) {
	if dt < 0 {
		if !w.warnedNegativeDt {
			log.Printf("[engine] negative dt %g clamped to 0", dt)
			w.warnedNegativeDt = true
		}
		dt = 0
	}

	w.frame++
	w.report = Report{Frame: w.frame}
	defer w.clearStaging()

	scoreBefore := w.score

	switch w.phase {
	case PhaseNotStarted:
		w.updateEntities(dt, input.Snapshot{})
		if in.Start {
			w.beginRun()
		}

	case PhaseRunning:
		w.tickSpawn(dt)
		w.updateEntities(dt, in)
		if err := w.collideBulletsAsteroids(); err != nil {
			return w.finishReport(scoreBefore, in), err
		}
		if err := w.collidePlayerAsteroids(); err != nil {
			return w.finishReport(scoreBefore, in), err
		}

	case PhaseGameOver:
		if in.Restart {
			w.beginRun()
		}
	}

	w.commit()
	return w.finishReport(scoreBefore, in), nil
}

func (w *World) finishReport(scoreBefore int, in input.Snapshot) Report {
	rep := w.report
	rep.Phase = w.phase
	rep.Score = w.score
	rep.ScoreDelta = w.score - scoreBefore
	rep.Quit = in.Quit
	return rep
}

// beginRun clears the live set and stages a fresh player with the initial asteroid population
// Shared by start from NotStarted and restart from GameOver
func (w *World) beginRun() {
	for _, e := range w.pendingAdd {
		w.live.Cancel(e)
	}
	w.pendingAdd = w.pendingAdd[:0]
	w.live.Each(func(e core.Entity, _ component.Body) bool {
		w.stageRemove(e)
		return true
	})

	player := component.NewPlayer(w.cfg.Player)
	w.player = w.stageAdd(player)

	if w.score != 0 {
		delta := -w.score
		w.score = 0
		w.emit(event.EventScoreChanged, &event.ScorePayload{Delta: delta, Total: 0})
	}
	w.spawnTimer = w.cfg.Spawn.Interval

	for i := 0; i < w.cfg.Spawn.Initial; i++ {
		w.stageAsteroid(player.Position)
	}
	w.setPhase(PhaseRunning)
}

// tickSpawn runs the spawn countdown; a large dt still yields at most one asteroid
func (w *World) tickSpawn(dt float64) {
	w.spawnTimer -= dt
	if w.spawnTimer > parameter.TimerEpsilon {
		return
	}
	w.spawnTimer = w.cfg.Spawn.Interval

	if limit := w.cfg.Spawn.MaxAsteroids; limit > 0 && w.asteroidCount() >= limit {
		return
	}

	center := w.arena.Center()
	if p, _, ok := w.Player(); ok {
		center = p.Position
	}
	e, a := w.stageAsteroid(center)
	w.emit(event.EventAsteroidSpawned, &event.AsteroidSpawnedPayload{Asteroid: e, Position: a.Position})
}

// stageAsteroid spawns an asteroid, redrawing placements that land within the safe radius of avoid
func (w *World) stageAsteroid(avoid vmath.Vec2) (core.Entity, *component.Asteroid) {
	var a *component.Asteroid
	safe := w.cfg.Spawn.SafeRadius
	for attempt := 0; attempt < parameter.SafeSpawnAttempts; attempt++ {
		a = component.SpawnAsteroid(w.rng, w.arena, w.cfg.Asteroid)
		if safe <= 0 || !vmath.CirclesOverlap(a.Position, a.Size, avoid, safe) {
			break
		}
	}
	return w.stageAdd(a), a
}

// asteroidCount counts live asteroids plus those staged this tick
func (w *World) asteroidCount() int {
	n := w.CountKind(core.KindAsteroid)
	for _, e := range w.pendingAdd {
		if body, ok := w.live.Staged(e); ok && body.Kind() == core.KindAsteroid {
			n++
		}
	}
	return n
}

// updateEntities advances every live entity in slot order
// Entities staged during the walk are not visited until the next tick
func (w *World) updateEntities(dt float64, in input.Snapshot) {
	w.live.Each(func(e core.Entity, body component.Body) bool {
		switch b := body.(type) {
		case *component.Player:
			if b.Update(dt, in, w.arena) {
				w.fire(b)
			}
		case *component.Bullet:
			if b.Update(dt) {
				w.stageRemove(e)
				w.emit(event.EventBulletExpired, &event.BulletExpiredPayload{Bullet: e})
			}
		case *component.Asteroid:
			b.Update(dt, w.arena)
		}
		return true
	})
}

func (w *World) fire(p *component.Player) {
	b := component.NewBullet(p.Position, p.Heading(), w.cfg.Bullet)
	e := w.stageAdd(b)
	w.emit(event.EventShotFired, &event.ShotFiredPayload{
		Bullet:    e,
		Position:  b.Position,
		Direction: b.Direction,
	})
}
