// Package sim implements the snake simulation core: a fixed rectangular grid,
// a snake path stored in a ring buffer, and the per-tick step resolver.
// It has no dependencies outside the standard library so the platform layer
// can drive it from any loop.
package sim

// Cell classifies a single grid square.
type Cell uint8

const (
	Empty Cell = iota
	Snake
	Food
	// Outside is produced by Classify for targets beyond the grid. It is never
	// stored in a Grid.
	Outside
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Snake:
		return "snake"
	case Food:
		return "food"
	case Outside:
		return "outside"
	default:
		return "unknown"
	}
}
