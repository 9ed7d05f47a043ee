package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ghost-chase/geom"
)

func spawnsAt(positions ...geom.Position) []Spawn {
	spawns := make([]Spawn, len(positions))
	for i, p := range positions {
		spawns[i] = Spawn{Start: p}
	}
	return spawns
}

func manhattan(a, b geom.Position) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

func TestFleet_DecidesEveryFourthTick(t *testing.T) {
	w := newFakeWorld(openBoard...)
	policy := &countingPolicy{}
	f := NewFleet(w, policy, spawnsAt(geom.Position{Row: 2, Col: 3}), 1)

	for tick := 1; tick <= 12; tick++ {
		f.Advance(geom.Position{Row: 1, Col: 1})
		assert.Equal(t, tick/HunterPeriod, policy.calls, "after tick %d", tick)
		assert.Equal(t, tick%HunterPeriod, f.Hunter(0).StepFrame(), "after tick %d", tick)
	}

	// Redrawn every tick, moved only on decisions
	assert.Equal(t, 12+3, w.hunterDraws[0])
	assert.Equal(t, 3, w.hunterClears[0])
}

func TestFleet_WeakHuntersHoldStill(t *testing.T) {
	w := newFakeWorld(openBoard...)
	policy := &countingPolicy{}
	start := geom.Position{Row: 2, Col: 3}
	f := NewFleet(w, policy, spawnsAt(start, geom.Position{Row: 1, Col: 1}), 2)

	f.SetWeak(true)
	for i := 0; i < 3*HunterPeriod; i++ {
		f.Advance(geom.Position{Row: 3, Col: 5})
	}

	assert.Zero(t, policy.calls)
	assert.Equal(t, start, f.Hunter(0).Position())
	assert.Zero(t, f.Hunter(0).StepFrame(), "timer keeps cycling while weak")

	f.SetWeak(false)
	for i := 0; i < HunterPeriod; i++ {
		f.Advance(geom.Position{Row: 3, Col: 5})
	}
	assert.Equal(t, 2, policy.calls)
}

func TestFleet_ChasesSeeker(t *testing.T) {
	w := newFakeWorld(openBoard...)
	f := NewFleet(w, NewChasePolicy(gridStepper{w}), spawnsAt(geom.Position{Row: 1, Col: 1}), 1)
	seeker := geom.Position{Row: 3, Col: 5}

	dist := manhattan(f.Hunter(0).Position(), seeker)
	for dist > 0 {
		for i := 0; i < HunterPeriod; i++ {
			f.Advance(seeker)
		}
		next := manhattan(f.Hunter(0).Position(), seeker)
		require.Equal(t, dist-1, next, "each decision closes one step")
		dist = next
	}
	assert.Equal(t, seeker, f.Hunter(0).Position())

	// On the seeker's cell the hop degenerates to staying put
	for i := 0; i < HunterPeriod; i++ {
		f.Advance(seeker)
	}
	assert.Equal(t, seeker, f.Hunter(0).Position())
	assert.Equal(t, geom.None, f.Hunter(0).Direction())
}

func TestFleet_VisitsFirstDestination(t *testing.T) {
	w := newFakeWorld(openBoard...)
	dest := geom.Position{Row: 1, Col: 5}
	spawns := []Spawn{{Start: geom.Position{Row: 3, Col: 3}, FirstDestination: &dest}}
	f := NewFleet(w, NewChasePolicy(gridStepper{w}), spawns, 1)
	seeker := geom.Position{Row: 3, Col: 1}

	for i := 0; i < 4*HunterPeriod; i++ {
		f.Advance(seeker)
	}
	require.Equal(t, dest, f.Hunter(0).Position())

	// One more decision clears the waypoint and turns toward the seeker
	for i := 0; i < HunterPeriod; i++ {
		f.Advance(seeker)
	}
	_, pending := f.Hunter(0).FirstDestination()
	assert.False(t, pending)
	assert.Equal(t, manhattan(dest, seeker)-1, manhattan(f.Hunter(0).Position(), seeker))
}

func TestFleet_RebornResetsStateKeepsIndex(t *testing.T) {
	w := newFakeWorld(openBoard...)
	dest := geom.Position{Row: 1, Col: 3}
	spawns := []Spawn{
		{Start: geom.Position{Row: 1, Col: 1}},
		{Start: geom.Position{Row: 1, Col: 2}},
		{Start: geom.Position{Row: 2, Col: 3}, FirstDestination: &dest},
	}
	f := NewFleet(w, NewChasePolicy(gridStepper{w}), spawns, 3)

	for i := 0; i < HunterPeriod+1; i++ {
		f.Advance(geom.Position{Row: 3, Col: 5})
	}
	f.SetWeak(true)
	require.NotEqual(t, spawns[2].Start, f.Hunter(2).Position())
	require.NotZero(t, f.Hunter(2).StepFrame())

	other := f.Hunter(0)
	h := f.Reborn(2)

	assert.Same(t, h, f.Hunter(2))
	assert.Equal(t, 2, h.Index())
	assert.Equal(t, spawns[2].Start, h.Position())
	assert.Zero(t, h.StepFrame())
	assert.False(t, h.Weak())
	assert.Equal(t, geom.None, h.Direction())
	got, ok := h.FirstDestination()
	assert.True(t, ok)
	assert.Equal(t, dest, got)

	assert.Same(t, other, f.Hunter(0), "other hunters are untouched")
	assert.True(t, f.Hunter(0).Weak())
	assert.Equal(t, 3, f.Len())
}

func TestFleet_RebornUnknownIndexPanics(t *testing.T) {
	w := newFakeWorld(openBoard...)
	f := NewFleet(w, &countingPolicy{}, spawnsAt(geom.Position{Row: 1, Col: 1}), 1)
	assert.Panics(t, func() { f.Reborn(4) })
}

func TestNewFleet_CountCappedBySpawns(t *testing.T) {
	w := newFakeWorld(openBoard...)
	f := NewFleet(w, &countingPolicy{}, spawnsAt(geom.Position{Row: 1, Col: 1}, geom.Position{Row: 1, Col: 2}), 8)
	assert.Equal(t, 2, f.Len())
	for i, h := range f.Hunters() {
		assert.Equal(t, i, h.Index())
	}
}

func TestRandomPolicy_PicksLegalDirections(t *testing.T) {
	w := newFakeWorld(
		"#####",
		"#   #",
		"#####",
	)
	p := NewRandomPolicy(w, 7)
	from := geom.Position{Row: 1, Col: 2}

	seen := make(map[geom.Direction]bool)
	for i := 0; i < 200; i++ {
		d := p.Direction(from, geom.Position{})
		require.Contains(t, []geom.Direction{geom.Left, geom.Right}, d)
		seen[d] = true
	}
	assert.Len(t, seen, 2, "both corridor directions are used")
}

func TestRandomPolicy_TrappedStaysPut(t *testing.T) {
	w := newFakeWorld(
		"###",
		"# #",
		"###",
	)
	p := NewRandomPolicy(w, 1)
	assert.Equal(t, geom.None, p.Direction(geom.Position{Row: 1, Col: 1}, geom.Position{}))
}

type teleportStepper struct{}

func (teleportStepper) NextStep(start, _ geom.Position) geom.Position {
	return geom.Position{Row: start.Row + 2, Col: start.Col}
}

func TestChasePolicy_NonAdjacentHopPanics(t *testing.T) {
	p := NewChasePolicy(teleportStepper{})
	assert.Panics(t, func() { p.Direction(geom.Position{Row: 1, Col: 1}, geom.Position{Row: 3, Col: 1}) })
}
