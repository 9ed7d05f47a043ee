package game

import "sync/atomic"

// State is the session phase
type State uint32

const (
	StateIdle State = iota
	StateAwaitingStart
	StateRunning
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingStart:
		return "awaiting_start"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// stateCell publishes the phase to readers outside the session goroutine
type stateCell struct {
	v atomic.Uint32
}

func (c *stateCell) load() State   { return State(c.v.Load()) }
func (c *stateCell) store(s State) { c.v.Store(uint32(s)) }
