package types

// Direction represents a cardinal heading
type Direction int

const (
	None  Direction = iota // no heading, empty buffer
	Up                     // 1
	Right                  // 2
	Down                   // 3
	Left                   // 4
)

// Directions lists the four real headings
var Directions = [...]Direction{Up, Right, Down, Left}

// Vector converts a Direction into a one-cell displacement
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1} // screen Y grows downwards
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Inverse returns the opposite heading
func (d Direction) Inverse() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// RandomDirection picks one of the four headings uniformly
func RandomDirection(rng RNG) Direction {
	return Directions[rng.Intn(len(Directions))]
}
