// Package term draws the board on a terminal through tcell. Every grid cell
// is two columns wide so the board keeps roughly square cells.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"the-snake/game/entity"
	"the-snake/game/types"
	"the-snake/input"
)

// CellColumns is the terminal width of one grid cell
const CellColumns = 2

// eventBuffer bounds how many terminal events may queue between two ticks
const eventBuffer = 32

type Screen struct {
	screen tcell.Screen
	grid   types.Grid
	bg     entity.Color
	events chan tcell.Event
}

// Open takes over the controlling terminal
func Open(grid types.Grid) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("problem creating screen: %w", err)
	}
	return New(s, grid)
}

// New wraps an existing tcell screen and initialises it
func New(s tcell.Screen, grid types.Grid) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init problem: %w", err)
	}
	s.HideCursor()
	s.Clear()

	scr := &Screen{
		screen: s,
		grid:   grid,
		events: make(chan tcell.Event, eventBuffer),
	}
	go scr.readEvents()
	return scr, nil
}

// readEvents only forwards events; the game loop consumes them in Poll.
// PollEvent returns nil once the screen is finalised.
func (s *Screen) readEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		s.events <- ev
	}
}

func toTcell(c entity.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *Screen) BeginFrame(bg entity.Color) {
	s.bg = bg
	style := tcell.StyleDefault.Background(toTcell(bg))
	w, h := s.grid.Width*CellColumns, s.grid.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (s *Screen) EndFrame() {
	s.screen.Show()
}

func (s *Screen) Background() entity.Color {
	return s.bg
}

func (s *Screen) FillCell(p types.Point, c entity.Color) {
	style := tcell.StyleDefault.Background(toTcell(c))
	for i := 0; i < CellColumns; i++ {
		s.screen.SetContent(p.X*CellColumns+i, p.Y, ' ', nil, style)
	}
}

// OutlineCell draws the border as brackets over the current cell colour
func (s *Screen) OutlineCell(p types.Point, c entity.Color) {
	for i, r := range []rune{'[', ']'} {
		x := p.X*CellColumns + i
		_, _, style, _ := s.screen.GetContent(x, p.Y)
		s.screen.SetContent(x, p.Y, r, nil, style.Foreground(toTcell(c)))
	}
}

func (s *Screen) Close() {
	s.screen.Fini()
}

// Poll returns every event queued since the last call without blocking
func (s *Screen) Poll() []input.Event {
	var events []input.Event
	for {
		select {
		case ev, open := <-s.events:
			if !open {
				return append(events, input.Quit)
			}
			if e, ok := Translate(ev); ok {
				events = append(events, e)
			}
		default:
			return events
		}
	}
}

// Translate maps a tcell event to an input event. Resizes and mouse events
// are not input for the game.
func Translate(ev tcell.Event) (input.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return input.Event{}, false
	}

	switch key.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return input.Quit, true
	case tcell.KeyUp:
		return input.Press(input.KeyUp), true
	case tcell.KeyDown:
		return input.Press(input.KeyDown), true
	case tcell.KeyLeft:
		return input.Press(input.KeyLeft), true
	case tcell.KeyRight:
		return input.Press(input.KeyRight), true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			return input.Quit, true
		case 'w', 'W':
			return input.Press(input.KeyUp), true
		case 's', 'S':
			return input.Press(input.KeyDown), true
		case 'a', 'A':
			return input.Press(input.KeyLeft), true
		case 'd', 'D':
			return input.Press(input.KeyRight), true
		}
	}
	return input.Press(input.KeyUnknown), true
}
