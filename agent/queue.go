package agent

import (
	"sync"

	"github.com/lixenwraith/ghost-chase/geom"
)

// CommandQueue is an unbounded FIFO of movement commands
// Input capture pushes, the tick loop pops; both may run on different goroutines
type CommandQueue struct {
	mu    sync.Mutex
	items []geom.Direction
}

// NewCommandQueue returns an empty queue
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Push appends d; None is dropped since it carries no intent
func (q *CommandQueue) Push(d geom.Direction) {
	if d == geom.None {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, d)
	q.mu.Unlock()
}

// Pop removes the oldest command, ok is false when the queue is empty
func (q *CommandQueue) Pop() (d geom.Direction, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return geom.None, false
	}
	d = q.items[0]
	q.items[0] = geom.None
	q.items = q.items[1:]
	return d, true
}

// Len returns the number of pending commands
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
