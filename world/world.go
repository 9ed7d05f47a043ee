// Package world holds the mutable board of one round and the rules acting on it
package world

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/ghost-chase/agent"
	"github.com/lixenwraith/ghost-chase/geom"
	"github.com/lixenwraith/ghost-chase/maze"
	"github.com/lixenwraith/ghost-chase/status"
)

// Outcome is the result of a finished round
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// seekerMark remembers the last painted seeker so a departing hunter can restore it
type seekerMark struct {
	pos   geom.Position
	face  rune
	state agent.PowerState
	shown bool
}

// World is the board of one round
// All methods run on the tick goroutine; metrics are published through the registry
type World struct {
	layout  *maze.Layout
	cells   [][]maze.Cell
	pellets int
	outcome Outcome

	render Renderer
	seeker seekerMark

	stats        *status.Registry
	score        *atomic.Int64
	pelletsLeft  *atomic.Int64
	huntersEaten *atomic.Int64
}

// New creates a fresh round on layout; stats carries the score between rounds
func New(layout *maze.Layout, render Renderer, stats *status.Registry) *World {
	w := &World{
		layout:       layout,
		cells:        layout.Cells(),
		render:       render,
		stats:        stats,
		score:        stats.Ints.Get(status.Score),
		pelletsLeft:  stats.Ints.Get(status.PelletsLeft),
		huntersEaten: stats.Ints.Get(status.HuntersEaten),
	}
	for _, row := range w.cells {
		for _, c := range row {
			if c == maze.Pellet || c == maze.PowerPellet {
				w.pellets++
			}
		}
	}
	w.score.Store(0)
	w.huntersEaten.Store(0)
	w.pelletsLeft.Store(int64(w.pellets))
	return w
}

// Layout returns the static board
func (w *World) Layout() *maze.Layout { return w.layout }

// Outcome returns the round result, OutcomeNone while running or after a quit
func (w *World) Outcome() Outcome { return w.outcome }

// PelletsLeft returns the number of uneaten pellets
func (w *World) PelletsLeft() int { return w.pellets }

// Cell returns the current content at p
func (w *World) Cell(p geom.Position) maze.Cell {
	if !w.layout.InBounds(p) {
		return maze.Wall
	}
	return w.cells[p.Row][p.Col]
}

func (w *World) IsMovable(pos geom.Position, dir geom.Direction) bool {
	if dir == geom.None {
		return true
	}
	return w.layout.Walkable(pos.Add(dir))
}

// GetPosition panics when the destination is off the graph: agents only step after IsMovable
func (w *World) GetPosition(pos geom.Position, dir geom.Direction) geom.Position {
	next := pos.Add(dir)
	if !w.layout.Walkable(next) {
		panic(fmt.Sprintf("world: step %s from %v lands on a wall", dir, pos))
	}
	return next
}

func (w *World) ClearSeeker(pos geom.Position) {
	w.render.DrawCell(pos, w.Cell(pos))
	w.seeker.shown = false
}

func (w *World) DrawSeeker(s *agent.Seeker, pos geom.Position, _ geom.Direction) {
	w.seeker = seekerMark{pos: pos, face: s.Face(), state: s.PowerState(), shown: true}
	w.render.DrawSeeker(pos, w.seeker.face, w.seeker.state)
}

func (w *World) ClearHunter(h *agent.Hunter) {
	pos := h.Position()
	if w.seeker.shown && w.seeker.pos == pos {
		w.render.DrawSeeker(pos, w.seeker.face, w.seeker.state)
		return
	}
	w.render.DrawCell(pos, w.Cell(pos))
}

func (w *World) DrawHunter(h *agent.Hunter) {
	look := LookChasing
	if h.Weak() {
		look = LookWeak
		if w.seeker.state == agent.PowerFading {
			look = LookFlashing
		}
	}
	w.render.DrawHunter(h.Position(), h.Index(), look)
}

// ShowWorld paints the whole board with both parties at their current cells
func (w *World) ShowWorld(s *agent.Seeker, f *agent.Fleet) {
	w.render.Reset(w.layout.Rows(), w.layout.Cols())
	for r := 0; r < w.layout.Rows(); r++ {
		for c := 0; c < w.layout.Cols(); c++ {
			p := geom.Position{Row: r, Col: c}
			w.render.DrawCell(p, w.Cell(p))
		}
	}
	w.DrawSeeker(s, s.Position(), s.Direction())
	for _, h := range f.Hunters() {
		w.DrawHunter(h)
	}
	w.ShowStatus()
	w.render.Show()
}

// ShowStatus repaints the score line
func (w *World) ShowStatus() {
	w.render.DrawStatus(fmt.Sprintf("SCORE %6d   HIGH %6d   PELLETS %4d",
		w.score.Load(), w.stats.Int(status.HighScore), w.pellets))
}

// ShowReady draws the start prompt
func (w *World) ShowReady() {
	w.render.DrawBanner("READY!", "Enter: start   Esc: quit")
	w.render.Show()
}

// HideReady removes the start prompt
func (w *World) HideReady() {
	w.render.DrawBanner("", "")
	w.render.Show()
}

// ShowGameOver draws the end-of-round banner
func (w *World) ShowGameOver() {
	title := "GAME OVER"
	switch w.outcome {
	case OutcomeWon:
		title = "YOU WIN!"
	case OutcomeNone:
		title = "ROUND ABORTED"
	}
	w.ShowStatus()
	w.render.DrawBanner(title, fmt.Sprintf("score %d   Enter: play again   Esc: quit", w.score.Load()))
	w.render.Show()
}

// Present flushes one tick of drawing
func (w *World) Present() {
	w.ShowStatus()
	w.render.Show()
}
