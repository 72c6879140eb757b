package entity

import "the-snake/game/types"

type Snake struct {
	grid         types.Grid
	rng          types.RNG
	origin       types.Point
	segments     []types.Point // head first
	heading      types.Direction
	pending      types.Direction // None when empty
	targetLength int
	lastVacated  types.Point
	vacated      bool // last Advance dropped its tail
	color        Color
}

// NewSnake creates a one-segment snake at origin with a random heading
func NewSnake(grid types.Grid, origin types.Point, rng types.RNG, color Color) *Snake {
	s := &Snake{
		grid:   grid,
		rng:    rng,
		origin: grid.Wrap(origin),
		color:  color,
	}
	s.Reset()
	return s
}

// Reset rebuilds the snake at its origin. The segment slice is replaced, not
// truncated, and the heading is drawn again.
func (s *Snake) Reset() {
	s.segments = []types.Point{s.origin}
	s.targetLength = 1
	s.heading = types.RandomDirection(s.rng)
	s.pending = types.None
	s.lastVacated = types.Point{}
	s.vacated = false
}

// RequestHeadingChange buffers dir unless it reverses the live heading.
// A later request overwrites an earlier one.
func (s *Snake) RequestHeadingChange(dir types.Direction) {
	if dir == types.None || dir == s.heading.Inverse() {
		return
	}
	s.pending = dir
}

// ApplyPendingHeading commits the buffered heading, at most once per tick
func (s *Snake) ApplyPendingHeading() {
	if s.pending == types.None {
		return
	}
	s.heading = s.pending
	s.pending = types.None
}

// Advance moves the head one cell along the heading, wrapping at the edges,
// and drops the tail unless the snake is still growing.
func (s *Snake) Advance() {
	s.lastVacated = s.segments[len(s.segments)-1]
	s.vacated = false

	newHead := s.grid.Wrap(s.HeadPosition().Add(s.heading.Vector()))

	s.segments = append(s.segments, types.Point{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = newHead

	if len(s.segments) > s.targetLength {
		s.segments = s.segments[:len(s.segments)-1]
		s.vacated = true
	}
}

// Grow lengthens the snake by one segment on the next Advance
func (s *Snake) Grow() {
	s.targetLength++
}

func (s *Snake) HeadPosition() types.Point {
	return s.segments[0]
}

// CollidesWithSelf reports whether the head overlaps any body segment
func (s *Snake) CollidesWithSelf() bool {
	head := s.HeadPosition()
	for _, p := range s.segments[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment, head included, is on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, sp := range s.segments {
		if sp == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.segments))
	copy(body, s.segments)
	return body
}

func (s *Snake) Len() int {
	return len(s.segments)
}

func (s *Snake) TargetLength() int {
	return s.targetLength
}

func (s *Snake) Heading() types.Direction {
	return s.heading
}

func (s *Snake) Pending() types.Direction {
	return s.pending
}

func (s *Snake) Origin() types.Point {
	return s.origin
}

// LastVacated returns the cell freed by the last Advance, if any
func (s *Snake) LastVacated() (types.Point, bool) {
	return s.lastVacated, s.vacated
}

func (s *Snake) Color() Color {
	return s.color
}

// Draw paints every segment and blanks the tail cell left behind on the last
// move.
func (s *Snake) Draw(surface Surface) {
	for _, p := range s.segments {
		drawBordered(surface, p, s.color)
	}
	if last, ok := s.LastVacated(); ok && !s.Occupies(last) {
		surface.FillCell(last, surface.Background())
	}
}
