package agent

import "github.com/lixenwraith/ghost-chase/geom"

// HunterPeriod lets a hunter decide on every fourth tick
const HunterPeriod = 4

// Spawn is the fixed start data for one hunter index
type Spawn struct {
	Start geom.Position
	// FirstDestination is an optional waypoint visited before chasing, nil for none
	FirstDestination *geom.Position
}

// Hunter is a pursuer agent; Index is its identity for the fleet's lifetime
type Hunter struct {
	index     int
	position  geom.Position
	direction geom.Direction
	stepFrame int
	weak      bool

	firstDestination *geom.Position
}

// NewHunter builds a fresh hunter at its spawn
func NewHunter(index int, spawn Spawn) *Hunter {
	h := &Hunter{
		index:     index,
		position:  spawn.Start,
		direction: geom.None,
	}
	if spawn.FirstDestination != nil {
		dest := *spawn.FirstDestination
		h.firstDestination = &dest
	}
	return h
}

func (h *Hunter) Index() int                { return h.index }
func (h *Hunter) Position() geom.Position   { return h.position }
func (h *Hunter) Direction() geom.Direction { return h.direction }
func (h *Hunter) StepFrame() int            { return h.stepFrame }
func (h *Hunter) Weak() bool                { return h.weak }

// FirstDestination returns the pending waypoint, ok is false once reached or when absent
func (h *Hunter) FirstDestination() (geom.Position, bool) {
	if h.firstDestination == nil {
		return geom.Position{}, false
	}
	return *h.firstDestination, true
}

// stepDue advances the step timer and reports whether a decision is due
func (h *Hunter) stepDue() bool {
	h.stepFrame = (h.stepFrame + 1) % HunterPeriod
	return h.stepFrame == 0
}

// target resolves the navigation goal, consuming the first destination once reached
func (h *Hunter) target(seeker geom.Position) geom.Position {
	if h.firstDestination == nil {
		return seeker
	}
	if h.position == *h.firstDestination {
		h.firstDestination = nil
		return seeker
	}
	return *h.firstDestination
}
