package game

import (
	"context"

	"github.com/golang/glog"

	"the-snake/input"
)

// Renderer draws the state just computed by a tick
type Renderer interface {
	Render(g *Game)
}

// Loop drives the game: wait for the clock, route input, tick, render.
// Everything runs on the caller's goroutine.
type Loop struct {
	game     *Game
	source   input.Source
	router   *input.Router
	renderer Renderer
	clock    *Clock
}

func NewLoop(g *Game, source input.Source, renderer Renderer, clock *Clock) *Loop {
	return &Loop{
		game:     g,
		source:   source,
		router:   input.NewRouter(),
		renderer: renderer,
		clock:    clock,
	}
}

// Step runs one iteration without pacing. It returns true when a quit event
// was polled, in which case the game is left untouched.
func (l *Loop) Step() (quit bool) {
	if l.router.Route(l.source.Poll(), l.game.GetSnake()) {
		return true
	}
	l.game.Tick()
	l.renderer.Render(l.game)
	return false
}

// Run loops until a quit event arrives or ctx is cancelled. Cancellation is
// only noticed between ticks. Both end the loop normally with a nil error.
func (l *Loop) Run(ctx context.Context) error {
	l.renderer.Render(l.game)
	for {
		l.clock.Wait()

		select {
		case <-ctx.Done():
			glog.Infof("Session %s: interrupted", l.game.UUID)
			return nil
		default:
		}

		if l.Step() {
			s := l.game.Stats
			glog.Infof("Session %s: quit after %d ticks, %d food, %d resets, best length %d",
				l.game.UUID, s.Ticks, s.FoodEaten, s.Resets, s.BestLength)
			return nil
		}
	}
}
