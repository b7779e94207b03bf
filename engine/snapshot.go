package engine

import (
	"github.com/lixenwraith/shoot/component"
	"github.com/lixenwraith/shoot/core"
	"github.com/lixenwraith/shoot/vmath"
)

// Drawable is one entity's presentation state in world space
type Drawable struct {
	Entity   core.Entity  `json:"entity"`
	Kind     core.Kind    `json:"kind"`
	Position vmath.Vec2   `json:"position"`
	Angle    float64      `json:"angle"`
	Points   []vmath.Vec2 `json:"points"`
}

// Snapshot is an immutable copy of the drawable world, safe to hand to other goroutines
type Snapshot struct {
	Frame     int64           `json:"frame"`
	Phase     Phase           `json:"phase"`
	Score     int             `json:"score"`
	Arena     component.Arena `json:"arena"`
	Prompt    string          `json:"prompt,omitempty"`
	Drawables []Drawable      `json:"drawables"`
}

// Snapshot copies the committed state for presentation
func (w *World) Snapshot() *Snapshot {
	snap := &Snapshot{
		Frame:     w.frame,
		Phase:     w.phase,
		Score:     w.score,
		Arena:     w.arena,
		Prompt:    w.phase.Prompt(),
		Drawables: make([]Drawable, 0, w.live.Len()),
	}
	w.live.Each(func(e core.Entity, body component.Body) bool {
		d := Drawable{
			Entity:   e,
			Kind:     body.Kind(),
			Position: body.Pos(),
			Points:   body.Shape(),
		}
		switch b := body.(type) {
		case *component.Player:
			d.Angle = b.Angle
		case *component.Asteroid:
			d.Angle = b.Angle
		case *component.Bullet:
			d.Angle = vmath.RadToDeg(b.Direction.Angle())
		}
		snap.Drawables = append(snap.Drawables, d)
		return true
	})
	return snap
}

// Count returns the drawables of kind k
func (s *Snapshot) Count(k core.Kind) int {
	n := 0
	for i := range s.Drawables {
		if s.Drawables[i].Kind == k {
			n++
		}
	}
	return n
}
