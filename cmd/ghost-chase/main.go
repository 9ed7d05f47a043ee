package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ghost-chase/config"
	"github.com/lixenwraith/ghost-chase/core"
	"github.com/lixenwraith/ghost-chase/game"
	"github.com/lixenwraith/ghost-chase/maze"
	"github.com/lixenwraith/ghost-chase/status"
	"github.com/lixenwraith/ghost-chase/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghost-chase: %v\n", err)
		return 2
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log := logrus.StandardLogger()

	layouts, err := layoutSource(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghost-chase: %v\n", err)
		return 1
	}

	screen, err := terminal.New(cfg.Mono)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ghost-chase: %v\n", err)
		return 1
	}
	core.SetCleanup(screen.Fini)
	defer func() {
		core.SetCleanup(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"layout":  cfg.Layout,
		"policy":  cfg.Policy,
		"hunters": cfg.Hunters,
		"tick":    cfg.Tick,
		"seed":    cfg.Seed,
	}).Info("session starting")

	stats := status.NewRegistry()
	session := game.NewSession(cfg, layouts, screen, screen, stats, log)
	if err := session.Run(ctx); err != nil {
		log.WithError(err).Error("session failed")
		screen.Fini()
		fmt.Fprintf(os.Stderr, "ghost-chase: %v\n", err)
		return 1
	}

	log.WithFields(stats.Fields()).Info("session ended")
	return 0
}

// layoutSource resolves the layout setting to a per-round board supplier
// File boards are read once; random boards are reseeded every round
func layoutSource(cfg config.Config) (game.LayoutSource, error) {
	switch cfg.Layout {
	case config.LayoutDefault:
		l := maze.Default()
		return func(int) (*maze.Layout, error) { return l, nil }, nil

	case config.LayoutRandom:
		return func(n int) (*maze.Layout, error) {
			return maze.Generate(maze.GenConfig{
				Rows:     cfg.Rows,
				Cols:     cfg.Cols,
				Braiding: cfg.Braid,
				Hunters:  max(cfg.Hunters, 1),
				Seed:     cfg.Seed + int64(n),
			})
		}, nil

	default:
		l, err := maze.Load(cfg.Layout)
		if err != nil {
			return nil, err
		}
		return func(int) (*maze.Layout, error) { return l, nil }, nil
	}
}
