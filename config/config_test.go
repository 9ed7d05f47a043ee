package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 100*time.Millisecond, cfg.Tick)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("GHOST_CHASE_TICK_MS", "50")
	t.Setenv("GHOST_CHASE_HUNTERS", "2")
	t.Setenv("GHOST_CHASE_LAYOUT", "random")
	t.Setenv("GHOST_CHASE_POLICY", "random")
	t.Setenv("GHOST_CHASE_SEED", "42")
	t.Setenv("GHOST_CHASE_DEBUG", "true")
	t.Setenv("GHOST_CHASE_MONO", "1")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.Tick)
	assert.Equal(t, 2, cfg.Hunters)
	assert.Equal(t, LayoutRandom, cfg.Layout)
	assert.Equal(t, PolicyRandom, cfg.Policy)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Mono)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("GHOST_CHASE_HUNTERS", "2")
	t.Setenv("GHOST_CHASE_LAYOUT", "random")

	cfg, err := Load([]string{"-hunters", "3", "-layout", "boards/small.txt", "-tick", "250ms"})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Hunters)
	assert.Equal(t, "boards/small.txt", cfg.Layout)
	assert.Equal(t, 250*time.Millisecond, cfg.Tick)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad env int", map[string]string{"GHOST_CHASE_HUNTERS": "many"}, nil},
		{"bad env bool", map[string]string{"GHOST_CHASE_DEBUG": "maybe"}, nil},
		{"zero tick", nil, []string{"-tick", "0s"}},
		{"negative hunters", nil, []string{"-hunters", "-1"}},
		{"unknown policy", nil, []string{"-policy", "ambush"}},
		{"braid out of range", nil, []string{"-braid", "1.5"}},
		{"unknown flag", nil, []string{"-speed", "9"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.args)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}
