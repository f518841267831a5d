package sim

import "iter"

// Grid is a fixed rows×cols matrix of cells stored in row-major order.
// It is allocated once per game and never resized.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates a grid with every cell Empty.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies in [0,rows)×[0,cols).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// At returns the cell stored at p. The caller must check InBounds first;
// an out-of-range position panics.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		panic("sim: grid position " + p.String() + " out of range")
	}
	return g.cells[g.index(p)]
}

// Set overwrites the cell at p. Same bounds contract as At.
func (g *Grid) Set(p Position, c Cell) {
	if !g.InBounds(p) {
		panic("sim: grid position " + p.String() + " out of range")
	}
	g.cells[g.index(p)] = c
}

// EmptyPositions yields every Empty cell in row-major order. The sequence
// reads the grid lazily and can be ranged over again.
func (g *Grid) EmptyPositions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for i, c := range g.cells {
			if c != Empty {
				continue
			}
			if !yield(Position{Row: i / g.cols, Col: i % g.cols}) {
				return
			}
		}
	}
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Cells returns a copy of the row-major cell slice.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
