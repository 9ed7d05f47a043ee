package agent

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/ghost-chase/geom"
)

// Policy picks a hunter's next direction toward a target cell
type Policy interface {
	Direction(from, target geom.Position) geom.Direction
}

// Stepper yields the first hop of a shortest path
type Stepper interface {
	NextStep(start, end geom.Position) geom.Position
}

// ChasePolicy follows shortest paths
type ChasePolicy struct {
	steps Stepper
}

// NewChasePolicy returns a policy walking the first hop from steps
func NewChasePolicy(steps Stepper) *ChasePolicy {
	return &ChasePolicy{steps: steps}
}

func (p *ChasePolicy) Direction(from, target geom.Position) geom.Direction {
	next := p.steps.NextStep(from, target)
	dir := geom.Between(from, next)
	if dir == geom.None && next != from {
		panic(fmt.Sprintf("agent: path hop %v -> %v is not a single step", from, next))
	}
	return dir
}

// RandomPolicy wanders: a uniformly random legal direction, ignoring the target
type RandomPolicy struct {
	world Mover
	rng   *rand.Rand
}

// NewRandomPolicy returns a wandering policy driven by seed
func NewRandomPolicy(world Mover, seed int64) *RandomPolicy {
	return &RandomPolicy{world: world, rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPolicy) Direction(from, _ geom.Position) geom.Direction {
	legal := make([]geom.Direction, 0, len(geom.Directions))
	for _, d := range geom.Directions {
		if p.world.IsMovable(from, d) {
			legal = append(legal, d)
		}
	}
	if len(legal) == 0 {
		return geom.None
	}
	return legal[p.rng.Intn(len(legal))]
}
