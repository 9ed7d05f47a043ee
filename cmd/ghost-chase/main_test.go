package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ghost-chase/config"
	"github.com/lixenwraith/ghost-chase/maze"
)

func TestLayoutSource(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		cfg := config.Default()
		src, err := layoutSource(cfg)
		require.NoError(t, err)
		l, err := src(3)
		require.NoError(t, err)
		assert.Equal(t, maze.Default().Cells(), l.Cells())
	})

	t.Run("random reseeds per round", func(t *testing.T) {
		cfg := config.Default()
		cfg.Layout = config.LayoutRandom
		cfg.Seed = 7
		src, err := layoutSource(cfg)
		require.NoError(t, err)

		a, err := src(0)
		require.NoError(t, err)
		again, err := src(0)
		require.NoError(t, err)
		b, err := src(1)
		require.NoError(t, err)

		assert.Equal(t, a.Cells(), again.Cells())
		assert.NotEqual(t, a.Cells(), b.Cells())
		assert.Len(t, a.Hunters, cfg.Hunters)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "board.txt")
		require.NoError(t, os.WriteFile(path, []byte("#####\n#P.0#\n#####\n"), 0644))

		cfg := config.Default()
		cfg.Layout = path
		src, err := layoutSource(cfg)
		require.NoError(t, err)
		l, err := src(0)
		require.NoError(t, err)
		assert.Equal(t, 3, l.Rows())
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.Default()
		cfg.Layout = filepath.Join(t.TempDir(), "absent.txt")
		_, err := layoutSource(cfg)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
