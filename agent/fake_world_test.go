package agent

import (
	"fmt"

	"github.com/lixenwraith/ghost-chase/geom"
)

// fakeWorld is an in-memory grid world recording render calls
type fakeWorld struct {
	open map[geom.Position]bool

	seekerDraws  int
	seekerClears int
	hunterDraws  map[int]int
	hunterClears map[int]int
}

// newFakeWorld builds a world from rows of '#' walls and walkable cells
func newFakeWorld(rows ...string) *fakeWorld {
	w := &fakeWorld{
		open:         make(map[geom.Position]bool),
		hunterDraws:  make(map[int]int),
		hunterClears: make(map[int]int),
	}
	for r, line := range rows {
		for c, ch := range line {
			if ch != '#' {
				w.open[geom.Position{Row: r, Col: c}] = true
			}
		}
	}
	return w
}

func (w *fakeWorld) IsMovable(pos geom.Position, dir geom.Direction) bool {
	if dir == geom.None {
		return true
	}
	return w.open[pos.Add(dir)]
}

func (w *fakeWorld) GetPosition(pos geom.Position, dir geom.Direction) geom.Position {
	next := pos.Add(dir)
	if !w.open[next] {
		panic(fmt.Sprintf("fake world: step %s from %v leaves the maze", dir, pos))
	}
	return next
}

func (w *fakeWorld) ClearSeeker(geom.Position)                         { w.seekerClears++ }
func (w *fakeWorld) DrawSeeker(*Seeker, geom.Position, geom.Direction) { w.seekerDraws++ }
func (w *fakeWorld) ClearHunter(h *Hunter)                             { w.hunterClears[h.Index()]++ }
func (w *fakeWorld) DrawHunter(h *Hunter)                              { w.hunterDraws[h.Index()]++ }

// edges enumerates 4-neighbour edges of the open cells
func (w *fakeWorld) edges() []geom.Edge {
	var out []geom.Edge
	for p := range w.open {
		for _, d := range geom.Directions {
			if n := p.Add(d); w.open[n] {
				out = append(out, geom.Edge{From: p, To: n})
			}
		}
	}
	return out
}

// countingPolicy records every decision and always stays put
type countingPolicy struct {
	calls int
}

func (p *countingPolicy) Direction(geom.Position, geom.Position) geom.Direction {
	p.calls++
	return geom.None
}

// gridStepper is a Stepper backed by a breadth-first flood over a fake world
type gridStepper struct {
	w *fakeWorld
}

func (s gridStepper) NextStep(start, end geom.Position) geom.Position {
	prev := map[geom.Position]geom.Position{start: start}
	queue := []geom.Position{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == end {
			for prev[curr] != start && curr != start {
				curr = prev[curr]
			}
			return curr
		}
		for _, d := range geom.Directions {
			n := curr.Add(d)
			if _, seen := prev[n]; !seen && s.w.open[n] {
				prev[n] = curr
				queue = append(queue, n)
			}
		}
	}
	return start
}
