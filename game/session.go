// Package game runs the chase: the session state machine and the two-goroutine round loop
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ghost-chase/agent"
	"github.com/lixenwraith/ghost-chase/config"
	"github.com/lixenwraith/ghost-chase/core"
	"github.com/lixenwraith/ghost-chase/input"
	"github.com/lixenwraith/ghost-chase/maze"
	"github.com/lixenwraith/ghost-chase/status"
	"github.com/lixenwraith/ghost-chase/world"
)

// LayoutSource yields the board of the n-th round, counting from zero
type LayoutSource func(n int) (*maze.Layout, error)

// Session drives rounds until the player declines a replay or the context ends
type Session struct {
	cfg     config.Config
	layouts LayoutSource
	render  world.Renderer
	keys    input.Source
	stats   *status.Registry
	log     *logrus.Entry

	state  stateCell
	rounds int
}

func NewSession(cfg config.Config, layouts LayoutSource, render world.Renderer, keys input.Source, stats *status.Registry, log *logrus.Logger) *Session {
	return &Session{
		cfg:     cfg,
		layouts: layouts,
		render:  render,
		keys:    keys,
		stats:   stats,
		log:     log.WithField("component", "session"),
	}
}

// State reports the current phase; safe from any goroutine
func (s *Session) State() State { return s.state.load() }

func (s *Session) setState(st State) {
	s.state.store(st)
	s.log.WithField("state", st).Debug("state change")
}

// Run blocks for the whole session
// Quitting and context cancellation are normal exits; only board construction errors are returned
func (s *Session) Run(ctx context.Context) error {
	defer s.setState(StateIdle)

	r, err := s.prepare()
	if err != nil {
		return err
	}
	r.show()
	r.world.ShowReady()

	for {
		s.setState(StateAwaitingStart)
		if !s.awaitConfirm(ctx) {
			return nil
		}

		// A replay prompt sits on top of the previous board
		if r == nil {
			if r, err = s.prepare(); err != nil {
				return err
			}
			r.show()
		}
		r.world.HideReady()

		s.setState(StateRunning)
		started := time.Now()
		r.log.Info("round started")
		if err := s.play(ctx, r); err != nil {
			return err
		}

		s.setState(StateEnded)
		s.finish(r, time.Since(started))
		if ctx.Err() != nil {
			return nil
		}
		r = nil
	}
}

func (s *Session) prepare() (*round, error) {
	layout, err := s.layouts(s.rounds)
	if err != nil {
		return nil, fmt.Errorf("layout for round %d: %w", s.rounds, err)
	}
	return s.newRound(layout), nil
}

// awaitConfirm blocks until confirm (true), quit, closed input or cancellation (false)
func (s *Session) awaitConfirm(ctx context.Context) bool {
	stop := context.AfterFunc(ctx, s.keys.Interrupt)
	defer stop()

	for {
		in, ok := s.keys.Next()
		if !ok || ctx.Err() != nil {
			return false
		}
		switch in.Type {
		case input.IntentConfirm:
			return true
		case input.IntentQuit:
			return false
		}
	}
}

// play runs input capture and the ticker under one cancellable context
// Whichever side ends first cancels the other
func (s *Session) play(parent context.Context, r *round) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(core.Guard(func() error {
		return s.capture(ctx, cancel, r.seeker.Commands())
	}))
	g.Go(core.Guard(func() error {
		defer s.keys.Interrupt()
		defer cancel()
		return s.tick(ctx, r)
	}))
	return g.Wait()
}

// capture is the only writer of the command queue
func (s *Session) capture(ctx context.Context, cancel context.CancelFunc, commands *agent.CommandQueue) error {
	for {
		in, ok := s.keys.Next()
		if !ok {
			cancel()
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		switch in.Type {
		case input.IntentMove:
			commands.Push(in.Direction)
		case input.IntentQuit:
			s.log.Debug("quit during round")
			cancel()
			return nil
		}
	}
}

// tick is the only mutator of agents and the world while the round runs
func (s *Session) tick(ctx context.Context, r *round) error {
	ticker := time.NewTicker(s.cfg.Tick)
	defer ticker.Stop()

	ticks := s.stats.Ints.Get(status.Ticks)
	ticks.Store(0)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		// The ticker and cancellation may race in select
		if ctx.Err() != nil {
			return nil
		}
		ticks.Add(1)
		if r.step() {
			return nil
		}
	}
}

// finish draws the end banner and publishes the round result
func (s *Session) finish(r *round, elapsed time.Duration) {
	s.rounds++
	score := s.stats.Int(status.Score)
	if high := s.stats.Ints.Get(status.HighScore); score > high.Load() {
		high.Store(score)
	}
	r.world.ShowGameOver()

	s.stats.Ints.Get(status.Rounds).Store(int64(s.rounds))
	s.stats.Strings.Get(status.Outcome).Store(r.world.Outcome().String())

	r.log.WithFields(s.stats.Fields()).WithField("elapsed", elapsed).Info("round ended")
}
