package agent

import (
	"fmt"

	"github.com/lixenwraith/ghost-chase/geom"
)

// Fleet owns the hunters, indexed by their stable identity
type Fleet struct {
	world   HunterWorld
	policy  Policy
	spawns  []Spawn
	members []*Hunter
}

// NewFleet creates count hunters from the spawn table; count is capped at len(spawns)
func NewFleet(world HunterWorld, policy Policy, spawns []Spawn, count int) *Fleet {
	if count > len(spawns) || count < 0 {
		count = len(spawns)
	}
	f := &Fleet{
		world:   world,
		policy:  policy,
		spawns:  spawns,
		members: make([]*Hunter, count),
	}
	for i := range f.members {
		f.members[i] = NewHunter(i, spawns[i])
	}
	return f
}

// Len returns the number of hunters
func (f *Fleet) Len() int { return len(f.members) }

// Hunter returns the hunter at index i
func (f *Fleet) Hunter(i int) *Hunter { return f.members[i] }

// Hunters returns the members in index order; the slice must not be modified
func (f *Fleet) Hunters() []*Hunter { return f.members }

// Reborn replaces the hunter at index i with a fresh one at its spawn
func (f *Fleet) Reborn(i int) *Hunter {
	if i < 0 || i >= len(f.members) {
		panic(fmt.Sprintf("agent: reborn of unknown hunter %d", i))
	}
	h := NewHunter(i, f.spawns[i])
	f.members[i] = h
	return h
}

// SetWeak sets the weakened flag on every hunter
func (f *Fleet) SetWeak(weak bool) {
	for _, h := range f.members {
		h.weak = weak
	}
}

// Advance runs one tick for every hunter against the seeker position
func (f *Fleet) Advance(seeker geom.Position) {
	for _, h := range f.members {
		f.world.DrawHunter(h)

		if !h.stepDue() {
			continue
		}

		// Weakened hunters hold still until power runs out or they are eaten
		if h.weak {
			continue
		}

		dir := f.policy.Direction(h.position, h.target(seeker))
		next := f.world.GetPosition(h.position, dir)

		f.world.ClearHunter(h)
		h.position = next
		h.direction = dir
		f.world.DrawHunter(h)
	}
}
