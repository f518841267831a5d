package sim

import "fmt"

// Position is a grid coordinate. Row grows downward, Col grows to the right.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Translate returns the position one step away in direction d.
func (p Position) Translate(d Direction) Position {
	return Position{Row: p.Row + d.dr, Col: p.Col + d.dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four unit moves Up, Down, Left and Right.
// The offsets are unexported, so those four values are the only non-zero
// directions that exist.
type Direction struct {
	dr, dc int
}

var (
	Up    = Direction{dr: -1}
	Down  = Direction{dr: 1}
	Left  = Direction{dc: -1}
	Right = Direction{dc: 1}
)

// Directions lists the four directions in a fixed order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Opposite negates both offsets.
func (d Direction) Opposite() Direction {
	return Direction{dr: -d.dr, dc: -d.dc}
}

// IsZero reports whether d is the zero value, which is not a valid move.
func (d Direction) IsZero() bool {
	return d.dr == 0 && d.dc == 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
