package sim

import "slices"

// Snapshot is a value copy of the observable game state.
type Snapshot struct {
	Rows      int
	Cols      int
	Cells     []Cell
	Snake     []Position
	Direction Direction
	Score     int
	GameOver  bool
	Food      Position
	HasFood   bool
}

// Snapshot captures the current state. The result shares nothing with s.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Rows:      s.grid.Rows(),
		Cols:      s.grid.Cols(),
		Cells:     s.grid.Cells(),
		Snake:     s.path.Positions(),
		Direction: s.dir,
		Score:     s.score,
		GameOver:  s.gameOver,
		Food:      s.food,
		HasFood:   s.hasFood,
	}
}

// Equal reports whether two snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols || a.Direction != b.Direction ||
		a.Score != b.Score || a.GameOver != b.GameOver ||
		a.Food != b.Food || a.HasFood != b.HasFood {
		return false
	}
	return slices.Equal(a.Cells, b.Cells) && slices.Equal(a.Snake, b.Snake)
}
