package game

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ghost-chase/agent"
	"github.com/lixenwraith/ghost-chase/config"
	"github.com/lixenwraith/ghost-chase/maze"
	"github.com/lixenwraith/ghost-chase/pathfind"
	"github.com/lixenwraith/ghost-chase/world"
)

// round is the state of one play-through; it is owned by the tick goroutine while running
type round struct {
	id     uuid.UUID
	world  *world.World
	seeker *agent.Seeker
	fleet  *agent.Fleet
	log    *logrus.Entry
}

// newRound builds fresh agents on layout; every round gets its own command queue
func (s *Session) newRound(layout *maze.Layout) *round {
	id := uuid.New()
	w := world.New(layout, s.render, s.stats)

	var policy agent.Policy
	switch s.cfg.Policy {
	case config.PolicyRandom:
		policy = agent.NewRandomPolicy(w, s.cfg.Seed+int64(s.rounds))
	default:
		policy = agent.NewChasePolicy(pathfind.New(layout.Edges()))
	}

	return &round{
		id:     id,
		world:  w,
		seeker: agent.NewSeeker(w, agent.NewCommandQueue(), layout.SeekerStart),
		fleet:  agent.NewFleet(w, policy, layout.Hunters, s.cfg.Hunters),
		log: s.log.WithFields(logrus.Fields{
			"round": id.String(),
			"index": s.rounds,
		}),
	}
}

// step runs one tick: seeker half, rule, hunter half, rule
func (r *round) step() (over bool) {
	r.seeker.Advance()
	over = r.world.UpdateBySeeker(r.seeker, r.fleet)
	if !over {
		r.fleet.Advance(r.seeker.Position())
		over = r.world.UpdateByHunters(r.fleet, r.seeker)
	}
	r.world.Present()
	return over
}

func (r *round) show() {
	r.world.ShowWorld(r.seeker, r.fleet)
}
