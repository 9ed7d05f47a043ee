package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ghost-chase/geom"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := GenConfig{Rows: 21, Cols: 31, Braiding: 0.6, Hunters: 4, Seed: 1234}

	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Cells(), b.Cells())
	assert.Equal(t, a.SeekerStart, b.SeekerStart)
	assert.Equal(t, a.Hunters, b.Hunters)
}

func TestGenerate_Playable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		l, err := Generate(GenConfig{Rows: 20, Cols: 30, Braiding: 0.5, Hunters: 3, Seed: seed})
		require.NoError(t, err, "seed %d", seed)

		// Even sizes round down
		assert.Equal(t, 19, l.Rows())
		assert.Equal(t, 29, l.Cols())

		require.Len(t, l.Hunters, 3)
		assert.NoError(t, l.checkConnected(), "seed %d", seed)

		for _, h := range l.Hunters {
			assert.NotEqual(t, l.SeekerStart, h.Start)
			assert.Equal(t, Empty, l.Cell(h.Start))
		}
		assert.Equal(t, Empty, l.Cell(l.SeekerStart))
		assert.Positive(t, countCells(l, PowerPellet), "seed %d", seed)

		// Outer ring stays solid
		for c := 0; c < l.Cols(); c++ {
			assert.Equal(t, Wall, l.Cell(geom.Position{Row: 0, Col: c}))
			assert.Equal(t, Wall, l.Cell(geom.Position{Row: l.Rows() - 1, Col: c}))
		}
	}
}

func TestGenerate_AllPassagesReachable(t *testing.T) {
	l, err := Generate(GenConfig{Rows: 15, Cols: 15, Braiding: 1, Hunters: 2, Seed: 99})
	require.NoError(t, err)

	reach := floodOrder(l, l.SeekerStart)
	open := 0
	for r := 0; r < l.Rows(); r++ {
		for c := 0; c < l.Cols(); c++ {
			if l.Walkable(geom.Position{Row: r, Col: c}) {
				open++
			}
		}
	}
	assert.Len(t, reach, open)
}

func TestGenerate_BraidingAddsCycles(t *testing.T) {
	perfect, err := Generate(GenConfig{Rows: 21, Cols: 21, Braiding: 0, Hunters: 1, Seed: 5})
	require.NoError(t, err)
	braided, err := Generate(GenConfig{Rows: 21, Cols: 21, Braiding: 1, Hunters: 1, Seed: 5})
	require.NoError(t, err)

	// A spanning tree over V nodes has V-1 undirected edges
	nodes := len(floodOrder(perfect, perfect.SeekerStart))
	assert.Equal(t, 2*(nodes-1), len(perfect.Edges()))
	assert.Greater(t, len(braided.Edges()), len(perfect.Edges()))
}

func TestGenerate_ClampsTinyBoards(t *testing.T) {
	l, err := Generate(GenConfig{Rows: 1, Cols: 2, Hunters: 1, Seed: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, l.Rows())
	assert.Equal(t, 5, l.Cols())

	_, err = Generate(GenConfig{Rows: 5, Cols: 5, Hunters: 9, Seed: 3})
	assert.ErrorIs(t, err, ErrBoardTooSmall)
}
