package types

import "golang.org/x/exp/rand"

// Grid represents the game grid dimensions
type Grid struct {
	Width    int
	Height   int
	CellSize int // Pixels per cell side
}

// Point is a single cell on the grid
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// RNG is the source of randomness for headings and food placement.
// *rand.Rand satisfies it; tests supply fixed sequences.
type RNG interface {
	Intn(n int) int
}

// NewRNG returns a seeded generator
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// GridFromScreen derives the grid from a pixel surface and cell size
func GridFromScreen(width, height, cellSize int) Grid {
	return Grid{
		Width:    width / cellSize,
		Height:   height / cellSize,
		CellSize: cellSize,
	}
}

// Wrap maps coordinate onto [0, axisLength), so stepping off one edge
// re-enters on the opposite one.
func Wrap(coordinate, axisLength int) int {
	c := coordinate % axisLength
	if c < 0 {
		c += axisLength
	}
	return c
}

// Wrap applies toroidal wrap on both axes
func (g Grid) Wrap(p Point) Point {
	return Point{X: Wrap(p.X, g.Width), Y: Wrap(p.Y, g.Height)}
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// RandomCell draws each coordinate uniformly from its range. Nothing is
// excluded, occupied cells included.
func (g Grid) RandomCell(rng RNG) Point {
	return Point{
		X: rng.Intn(g.Width),
		Y: rng.Intn(g.Height),
	}
}

// ToPixel returns the top-left pixel of a cell
func (g Grid) ToPixel(p Point) (x, y int) {
	return p.X * g.CellSize, p.Y * g.CellSize
}

// FromPixel returns the cell containing pixel (x, y)
func (g Grid) FromPixel(x, y int) Point {
	return Point{X: x / g.CellSize, Y: y / g.CellSize}
}

// PixelSize returns the surface size covered by the grid
func (g Grid) PixelSize() (width, height int) {
	return g.Width * g.CellSize, g.Height * g.CellSize
}
