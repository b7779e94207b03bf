// Package render draws world snapshots onto a terminal cell grid
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shoot/engine"
	"github.com/lixenwraith/shoot/vmath"
)

// hudRows is reserved at the top for score and phase
const hudRows = 1

// Canvas is the subset of tcell.Screen the presenter draws through
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
	Show()
}

// Presenter maps arena coordinates onto the canvas and draws each frame
type Presenter struct {
	canvas Canvas
	base   tcell.Style
}

// NewPresenter creates a presenter for canvas, usually a tcell.Screen
func NewPresenter(canvas Canvas) *Presenter {
	return &Presenter{
		canvas: canvas,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// viewport converts arena units to cells for the current canvas size
type viewport struct {
	cols, rows     int // Playfield size in cells
	scaleX, scaleY float64
}

func (p *Presenter) viewport(arena vmath.Vec2) (viewport, bool) {
	w, h := p.canvas.Size()
	rows := h - hudRows
	if w < 2 || rows < 2 || arena.X <= 0 || arena.Y <= 0 {
		return viewport{}, false
	}
	return viewport{
		cols:   w,
		rows:   rows,
		scaleX: float64(w-1) / arena.X,
		scaleY: float64(rows-1) / arena.Y,
	}, true
}

func (v viewport) cell(pt vmath.Vec2) (int, int) {
	return int(math.Round(pt.X * v.scaleX)), int(math.Round(pt.Y*v.scaleY)) + hudRows
}

func (v viewport) inside(x, y int) bool {
	return x >= 0 && x < v.cols && y >= hudRows && y < v.rows+hudRows
}

// Render draws snap and shows the frame; a nil snapshot only clears
func (p *Presenter) Render(snap *engine.Snapshot) {
	p.fill()
	if snap == nil {
		p.canvas.Show()
		return
	}

	vp, ok := p.viewport(vmath.V2(snap.Arena.Width, snap.Arena.Height))
	if ok {
		p.drawEntities(snap, vp)
	}
	p.drawHUD(snap)
	if snap.Prompt != "" {
		p.drawPrompt(snap)
	}
	p.canvas.Show()
}

func (p *Presenter) fill() {
	w, h := p.canvas.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.canvas.SetContent(x, y, ' ', nil, p.base)
		}
	}
}

func (p *Presenter) drawEntities(snap *engine.Snapshot, vp viewport) {
	for i := range snap.Drawables {
		d := &snap.Drawables[i]
		style := p.base.Foreground(kindColor(d.Kind))
		glyph, ok := kindGlyph[d.Kind]
		if !ok {
			glyph = '?'
		}
		plot := func(x, y int) {
			if vp.inside(x, y) {
				p.canvas.SetContent(x, y, glyph, nil, style)
			}
		}

		if len(d.Points) == 0 {
			plot(vp.cell(d.Position))
			continue
		}
		cells := make([][2]int, len(d.Points))
		for j, pt := range d.Points {
			x, y := vp.cell(pt)
			cells[j] = [2]int{x, y}
		}
		Polygon(cells, plot)
	}
}

func (p *Presenter) drawHUD(snap *engine.Snapshot) {
	w, _ := p.canvas.Size()
	scoreStyle := p.base.Foreground(RgbScore).Bold(true)
	p.text(0, 0, fmt.Sprintf("SCORE %05d", snap.Score), scoreStyle)

	phase := snap.Phase.String()
	p.text(w-len(phase), 0, phase, p.base.Foreground(RgbBorder))
}

func (p *Presenter) drawPrompt(snap *engine.Snapshot) {
	w, h := p.canvas.Size()
	color := RgbPrompt
	if snap.Phase == engine.PhaseGameOver {
		color = RgbGameOver
	}
	x := (w - len(snap.Prompt)) / 2
	p.text(x, hudRows+(h-hudRows)/2, snap.Prompt, p.base.Foreground(color).Bold(true))
}

// text writes s left to right, clipping at the canvas edge
func (p *Presenter) text(x, y int, s string, style tcell.Style) {
	w, h := p.canvas.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			p.canvas.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
