package config

import (
	"errors"
	"flag"
	"fmt"

	"the-snake/game/types"
)

// Backends
const (
	BackendWindow   = "window"
	BackendTerminal = "term"
)

// Defaults match the classic 640x480 board of 20 pixel cells
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	GridSize     = 20
	Speed        = 20 // ticks per second
	StartCell    = 5  // snake starts at (StartCell, StartCell)
	Title        = "Змейка"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	ScreenWidth  int
	ScreenHeight int
	CellSize     int
	TickRate     int
	OriginX      int
	OriginY      int
	Seed         uint64 // 0 picks a time based seed
	Backend      string
	Title        string
}

func Default() Config {
	return Config{
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,
		CellSize:     GridSize,
		TickRate:     Speed,
		OriginX:      StartCell,
		OriginY:      StartCell,
		Backend:      BackendWindow,
		Title:        Title,
	}
}

// BindFlags registers every field on fs, using the current values as defaults
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.ScreenWidth, "width", c.ScreenWidth, "Screen width in pixels")
	fs.IntVar(&c.ScreenHeight, "height", c.ScreenHeight, "Screen height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "Cell size in pixels")
	fs.IntVar(&c.TickRate, "rate", c.TickRate, "Game speed in ticks per second")
	fs.IntVar(&c.OriginX, "origin-x", c.OriginX, "Starting column of the snake")
	fs.IntVar(&c.OriginY, "origin-y", c.OriginY, "Starting row of the snake")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed (0 = time based)")
	fs.StringVar(&c.Backend, "backend", c.Backend, "Display backend: window or term")
	fs.StringVar(&c.Title, "title", c.Title, "Window title")
}

func (c Config) Grid() types.Grid {
	return types.GridFromScreen(c.ScreenWidth, c.ScreenHeight, c.CellSize)
}

func (c Config) Origin() types.Point {
	return types.Point{X: c.OriginX, Y: c.OriginY}
}

func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	if c.ScreenWidth < c.CellSize || c.ScreenHeight < c.CellSize {
		return fmt.Errorf("%w: screen %dx%d smaller than one cell", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0 {
		return fmt.Errorf("%w: screen %dx%d not divisible by cell size %d",
			ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight, c.CellSize)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalidConfig, c.TickRate)
	}
	if !c.Grid().Contains(c.Origin()) {
		return fmt.Errorf("%w: origin %v outside the grid", ErrInvalidConfig, c.Origin())
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	return nil
}
