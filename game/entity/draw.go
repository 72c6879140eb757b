package entity

import "the-snake/game/types"

type Color struct {
	R, G, B uint8
}

// Surface is what entities draw themselves onto. Coordinates are grid cells;
// backends map them to pixels or terminal columns.
type Surface interface {
	FillCell(p types.Point, c Color)
	OutlineCell(p types.Point, c Color)
	Background() Color
}

// Drawable is implemented by every entity that appears on screen
type Drawable interface {
	Draw(s Surface)
}

// BorderColor outlines every drawn cell
var BorderColor = Color{R: 93, G: 216, B: 228}

func drawBordered(s Surface, p types.Point, c Color) {
	s.FillCell(p, c)
	s.OutlineCell(p, BorderColor)
}
