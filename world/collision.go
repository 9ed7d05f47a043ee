package world

import (
	"github.com/lixenwraith/ghost-chase/agent"
	"github.com/lixenwraith/ghost-chase/geom"
	"github.com/lixenwraith/ghost-chase/maze"
)

// Points awarded by the collision rule
const (
	PelletPoints      = 10
	PowerPelletPoints = 50
	HunterPoints      = 200
)

// UpdateBySeeker applies the rule after the seeker moved and reports game over
// Order: consume the cell, expire power, resolve hunter contact, then check for a cleared board
// Only eating the last pellet wins; a board that starts without pellets is played until a catch
func (w *World) UpdateBySeeker(s *agent.Seeker, f *agent.Fleet) bool {
	pos := s.Position()

	var cleared bool
	switch w.Cell(pos) {
	case maze.Pellet:
		cleared = w.consume(pos, PelletPoints)
	case maze.PowerPellet:
		cleared = w.consume(pos, PowerPelletPoints)
		s.Empower()
		f.SetWeak(true)
	}

	if s.Power() == 0 {
		f.SetWeak(false)
	}
	w.seeker.state = s.PowerState()

	if w.contact(s, f) {
		return true
	}

	if cleared {
		w.outcome = OutcomeWon
		return true
	}
	return false
}

// UpdateByHunters applies the rule after the hunters moved and reports game over
func (w *World) UpdateByHunters(f *agent.Fleet, s *agent.Seeker) bool {
	return w.contact(s, f)
}

// contact resolves every hunter sharing the seeker's cell
// A weak hunter is eaten and reborn, any other one ends the round
func (w *World) contact(s *agent.Seeker, f *agent.Fleet) bool {
	pos := s.Position()
	for i := 0; i < f.Len(); i++ {
		h := f.Hunter(i)
		if h.Position() != pos {
			continue
		}
		if !h.Weak() {
			w.outcome = OutcomeLost
			return true
		}

		w.score.Add(HunterPoints)
		w.huntersEaten.Add(1)
		reborn := f.Reborn(h.Index())
		w.DrawHunter(reborn)
		w.render.DrawSeeker(pos, w.seeker.face, w.seeker.state)
	}
	return false
}

// consume eats the pellet at pos and reports whether it was the last one
func (w *World) consume(pos geom.Position, points int64) bool {
	w.cells[pos.Row][pos.Col] = maze.Empty
	w.pellets--
	w.pelletsLeft.Store(int64(w.pellets))
	w.score.Add(points)
	return w.pellets == 0
}
