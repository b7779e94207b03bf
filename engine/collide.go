package engine

import (
	"github.com/lixenwraith/shoot/component"
	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/event"
	"github.com/lixenwraith/shoot/vmath"
)

type bulletRef struct {
	e core.Entity
	b *component.Bullet
}

type asteroidRef struct {
	e core.Entity
	a *component.Asteroid
}

// partition splits the live set into the two collision participants
// Bullets that expired during this tick's update are still live and still collide
func (w *World) partition() ([]bulletRef, []asteroidRef) {
	var bullets []bulletRef
	var asteroids []asteroidRef
	w.live.Each(func(e core.Entity, body component.Body) bool {
		switch b := body.(type) {
		case *component.Bullet:
			bullets = append(bullets, bulletRef{e, b})
		case *component.Asteroid:
			asteroids = append(asteroids, asteroidRef{e, b})
		}
		return true
	})
	return bullets, asteroids
}

// hit confirms a circle overlap with the configured narrow phase, if any
func (w *World) hit(a, b component.Body) (bool, error) {
	if !vmath.CirclesOverlap(a.Pos(), a.Radius(), b.Pos(), b.Radius()) {
		return false, nil
	}
	if w.narrow == "" {
		return true, nil
	}
	return w.driver.Test(w.narrow, a.Shape(), b.Shape())
}

// collideBulletsAsteroids tests every bullet against every asteroid
// Both sides of a hit are staged for removal; an asteroid scores once however many bullets hit it
func (w *World) collideBulletsAsteroids() error {
	bullets, asteroids := w.partition()
	if len(bullets) == 0 || len(asteroids) == 0 {
		return nil
	}

	points := w.cfg.Score.Asteroid
	delta := 0
	for _, br := range bullets {
		for _, ar := range asteroids {
			ok, err := w.hit(br.b, ar.a)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			w.stageRemove(br.e)
			w.stageRemove(ar.e)
			if _, done := w.destroyed[ar.e]; done {
				continue
			}
			w.destroyed[ar.e] = struct{}{}
			delta += points
			w.emit(event.EventAsteroidDestroyed, &event.AsteroidDestroyedPayload{
				Asteroid: ar.e,
				Bullet:   br.e,
				Position: ar.a.Position,
				Points:   points,
			})
		}
	}

	if delta != 0 {
		w.score += delta
		w.emit(event.EventScoreChanged, &event.ScorePayload{Delta: delta, Total: w.score})
	}
	return nil
}

// collidePlayerAsteroids ends the run on the first asteroid touching the player
func (w *World) collidePlayerAsteroids() error {
	player, _, ok := w.Player()
	if !ok || w.phase != PhaseRunning {
		return nil
	}

	var hitBy core.Entity
	var err error
	w.live.Each(func(e core.Entity, body component.Body) bool {
		a, isAsteroid := body.(*component.Asteroid)
		if !isAsteroid {
			return true
		}
		var ok bool
		ok, err = w.hit(player, a)
		if err != nil {
			return false
		}
		if ok {
			hitBy = e
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	if hitBy.IsZero() {
		return nil
	}

	w.emit(event.EventGameOver, &event.GameOverPayload{Asteroid: hitBy, Score: w.score})
	w.setPhase(PhaseGameOver)
	return nil
}
