package entity

import "the-snake/game/types"

// Food is the single item the snake eats. It is moved in place, never
// replaced.
type Food struct {
	grid     types.Grid
	rng      types.RNG
	position types.Point
	color    Color
}

func NewFood(grid types.Grid, rng types.RNG, color Color) *Food {
	f := &Food{
		grid:  grid,
		rng:   rng,
		color: color,
	}
	f.Reposition()
	return f
}

// Reposition moves the food to a uniformly random cell. The snake's body is
// not excluded, so food may land underneath it.
func (f *Food) Reposition() {
	f.position = f.grid.RandomCell(f.rng)
}

func (f *Food) Position() types.Point {
	return f.position
}

// PlaceAt puts the food on an exact cell
func (f *Food) PlaceAt(p types.Point) {
	f.position = f.grid.Wrap(p)
}

func (f *Food) Color() Color {
	return f.color
}

func (f *Food) Draw(s Surface) {
	drawBordered(s, f.position, f.color)
}
