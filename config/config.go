// Package config resolves run settings from .env, GHOST_CHASE_* variables and flags, in rising precedence
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "GHOST_CHASE_"

// Layout and policy selectors
const (
	LayoutDefault = "default"
	LayoutRandom  = "random"

	PolicyChase  = "chase"
	PolicyRandom = "random"
)

var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the settings of one run
type Config struct {
	Tick    time.Duration // Game loop period
	Hunters int           // Hunters per round, capped by the board's spawn points

	// Layout is LayoutDefault, LayoutRandom or a path to a board file
	Layout string
	Rows   int     // Random board height
	Cols   int     // Random board width
	Braid  float64 // Random board dead-end removal ratio, 0..1

	Policy string
	Seed   int64 // 0 derives a seed from the clock

	Debug bool // Write logs/ghost-chase.log
	Mono  bool // Attribute-only palette
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Tick:    100 * time.Millisecond,
		Hunters: 4,
		Layout:  LayoutDefault,
		Rows:    21,
		Cols:    31,
		Braid:   0.5,
		Policy:  PolicyChase,
	}
}

// Load reads an optional .env file, applies GHOST_CHASE_* variables over the defaults,
// then parses args as flags over the result
func Load(args []string) (Config, error) {
	// A missing .env is the normal case
	_ = godotenv.Load()

	cfg, err := fromEnv(Default())
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("ghost-chase", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "game loop period")
	fs.IntVar(&cfg.Hunters, "hunters", cfg.Hunters, "number of hunters")
	fs.StringVar(&cfg.Layout, "layout", cfg.Layout, "board: default, random or a file path")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "random board height")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "random board width")
	fs.Float64Var(&cfg.Braid, "braid", cfg.Braid, "random board dead-end removal ratio")
	fs.StringVar(&cfg.Policy, "policy", cfg.Policy, "hunter policy: chase or random")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for clock")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable file logging")
	fs.BoolVar(&cfg.Mono, "mono", cfg.Mono, "monochrome palette")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick %v must be positive", ErrInvalidValue, c.Tick)
	case c.Hunters < 0:
		return fmt.Errorf("%w: hunters %d must not be negative", ErrInvalidValue, c.Hunters)
	case c.Layout == "":
		return fmt.Errorf("%w: empty layout", ErrInvalidValue)
	case c.Braid < 0 || c.Braid > 1:
		return fmt.Errorf("%w: braid %v outside 0..1", ErrInvalidValue, c.Braid)
	case c.Policy != PolicyChase && c.Policy != PolicyRandom:
		return fmt.Errorf("%w: policy %q", ErrInvalidValue, c.Policy)
	}
	return nil
}

func fromEnv(cfg Config) (Config, error) {
	var err error
	if cfg.Tick, err = envDuration("TICK_MS", cfg.Tick); err != nil {
		return Config{}, err
	}
	if cfg.Hunters, err = envInt("HUNTERS", cfg.Hunters); err != nil {
		return Config{}, err
	}
	if cfg.Rows, err = envInt("ROWS", cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = envInt("COLS", cfg.Cols); err != nil {
		return Config{}, err
	}
	if cfg.Braid, err = envFloat("BRAID", cfg.Braid); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = envInt64("SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.Debug, err = envBool("DEBUG", cfg.Debug); err != nil {
		return Config{}, err
	}
	if cfg.Mono, err = envBool("MONO", cfg.Mono); err != nil {
		return Config{}, err
	}
	cfg.Layout = envString("LAYOUT", cfg.Layout)
	cfg.Policy = envString("POLICY", cfg.Policy)
	return cfg, nil
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v, err := envInt64(key, int64(def))
	return int(v), err
}

func envInt64(key string, def int64) (int64, error) {
	s, ok := os.LookupEnv(envPrefix + key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s=%q", ErrInvalidValue, envPrefix, key, s)
	}
	return v, nil
}

func envFloat(key string, def float64) (float64, error) {
	s, ok := os.LookupEnv(envPrefix + key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s=%q", ErrInvalidValue, envPrefix, key, s)
	}
	return v, nil
}

func envBool(key string, def bool) (bool, error) {
	s, ok := os.LookupEnv(envPrefix + key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %s%s=%q", ErrInvalidValue, envPrefix, key, s)
	}
	return v, nil
}

// envDuration reads a millisecond count
func envDuration(key string, def time.Duration) (time.Duration, error) {
	ms, err := envInt64(key, def.Milliseconds())
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
