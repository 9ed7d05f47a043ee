package status

import "sync/atomic"

// Metric keys published by the world and the game loop
const (
	Score        = "score"
	HighScore    = "score.high"
	PelletsLeft  = "pellets.left"
	HuntersEaten = "hunters.eaten"
	Ticks        = "ticks"
	Rounds       = "rounds"
	Outcome      = "round.outcome"
)

// Registry is the central metrics facade
// The tick loop writes, the renderer and the session read after the round
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Int returns the current value of an integer metric
func (r *Registry) Int(key string) int64 {
	return r.Ints.Get(key).Load()
}

// Fields flattens every metric into a map, suitable for structured log fields
func (r *Registry) Fields() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}
