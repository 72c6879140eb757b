// Package input turns backend key events into heading requests.
package input

import (
	"github.com/golang/glog"

	"the-snake/game/types"
)

// Kind distinguishes quit requests from key presses
type Kind int

const (
	KindKey Kind = iota
	KindQuit
)

// Key is a backend-neutral key code
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Event is one raw input event, already translated by a backend
type Event struct {
	Kind Kind
	Key  Key
}

// Quit is the event backends emit on window close or quit keys
var Quit = Event{Kind: KindQuit}

// Press builds a key event
func Press(k Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// Source is polled once per tick; Poll never blocks
type Source interface {
	Poll() []Event
}

// Steerer receives heading requests. The snake decides whether to keep them.
type Steerer interface {
	RequestHeadingChange(dir types.Direction)
}

// Direction maps a key to a heading, None for anything else
func (k Key) Direction() types.Direction {
	switch k {
	case KeyUp:
		return types.Up
	case KeyDown:
		return types.Down
	case KeyLeft:
		return types.Left
	case KeyRight:
		return types.Right
	default:
		return types.None
	}
}

// Router forwards polled events to the snake
type Router struct {
	Forwarded int
	Ignored   int
}

func NewRouter() *Router {
	return &Router{}
}

// Route handles events in arrival order and reports whether a quit was seen.
// Events after a quit are not looked at.
func (r *Router) Route(events []Event, target Steerer) (quit bool) {
	for _, ev := range events {
		if ev.Kind == KindQuit {
			glog.V(1).Info("Quit event received")
			return true
		}

		dir := ev.Key.Direction()
		if dir == types.None {
			r.Ignored++
			continue
		}
		glog.V(2).Infof("Key: %v", dir)
		target.RequestHeadingChange(dir)
		r.Forwarded++
	}
	return false
}
