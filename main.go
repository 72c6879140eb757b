package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/golang/glog"

	"the-snake/config"
	"the-snake/game"
	"the-snake/game/types"
	"the-snake/input"
	"the-snake/ui"
	"the-snake/ui/term"
	"the-snake/ui/window"
)

// display is what a backend hands to the loop: a surface plus its events
type display interface {
	ui.Surface
	input.Source
}

func openDisplay(cfg config.Config) (display, error) {
	switch cfg.Backend {
	case config.BackendTerminal:
		return term.Open(cfg.Grid())
	default:
		return window.Open(cfg.Grid(), cfg.Title), nil
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	glog.Infof("Starting %s backend, seed %d, %d ticks/s", cfg.Backend, seed, cfg.TickRate)

	d, err := openDisplay(cfg)
	if err != nil {
		return fmt.Errorf("open %s display: %w", cfg.Backend, err)
	}
	// the display is torn down before the process exits
	defer d.Close()

	g := game.NewGame(cfg.Grid(), cfg.Origin(), types.NewRNG(seed))
	loop := game.NewLoop(g, d, ui.NewRenderer(d), game.NewClock(cfg.TickRate))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return loop.Run(ctx)
}

func main() {
	cfg := config.Default()
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	defer glog.Flush()

	if err := run(cfg); err != nil {
		glog.Errorf("snake: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}
