package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

// ErrInvalidSize is returned by New when the grid cannot hold the starting
// snake, which occupies columns 1 to 3 of the middle row.
var ErrInvalidSize = errors.New("sim: grid too small")

// MinRows and MinCols are the smallest board New accepts.
const (
	MinRows = 1
	MinCols = 4
)

// Rand is the random source used for food placement. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Outcome describes what a single Step did.
type Outcome int

const (
	// OutcomeNone means the game was already over and nothing changed.
	OutcomeNone Outcome = iota
	OutcomeMoved
	OutcomeAte
	OutcomeCrashedWall
	OutcomeCrashedSelf
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCrashedWall:
		return "crashed_wall"
	case OutcomeCrashedSelf:
		return "crashed_self"
	default:
		return "unknown"
	}
}

// Crashed reports whether the outcome ended the game.
func (o Outcome) Crashed() bool {
	return o == OutcomeCrashedWall || o == OutcomeCrashedSelf
}

// State is the game aggregate: grid, snake path, pending direction, score and
// the terminal game-over flag. It is not safe for concurrent use; the caller
// drives ChangeDirection and Step from a single goroutine.
type State struct {
	grid     *Grid
	path     *Path
	dir      Direction
	score    int
	gameOver bool
	food     Position
	hasFood  bool
	rnd      Rand
}

// New creates a game on a rows×cols grid with a three-cell snake in the middle
// row (columns 1-3, head at column 3) heading right, and one food cell chosen
// with rnd.
func New(rows, cols int, rnd Rand) (*State, error) {
	if rows < MinRows || cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d (need at least %dx%d)", ErrInvalidSize, rows, cols, MinRows, MinCols)
	}
	if rnd == nil {
		return nil, errors.New("sim: nil random source")
	}

	s := &State{
		grid: NewGrid(rows, cols),
		path: NewPath(rows * cols),
		dir:  Right,
		rnd:  rnd,
	}

	r := rows / 2
	for c := 1; c <= 3; c++ {
		s.growHead(Position{Row: r, Col: c})
	}
	s.placeFood()

	return s, nil
}

// NewSeeded is New with a math/rand source seeded from seed.
func NewSeeded(rows, cols int, seed int64) (*State, error) {
	return New(rows, cols, rand.New(rand.NewSource(seed)))
}

// Rows returns the grid height.
func (s *State) Rows() int { return s.grid.Rows() }

// Cols returns the grid width.
func (s *State) Cols() int { return s.grid.Cols() }

// CellAt returns the stored classification of an in-bounds position.
func (s *State) CellAt(p Position) Cell { return s.grid.At(p) }

// InBounds reports whether p is on the grid.
func (s *State) InBounds(p Position) bool { return s.grid.InBounds(p) }

// Head returns the snake's head position.
func (s *State) Head() Position { return s.path.Head() }

// Tail returns the snake's tail position.
func (s *State) Tail() Position { return s.path.Tail() }

// Snake returns the occupied positions from head to tail.
func (s *State) Snake() []Position { return s.path.Positions() }

// SnakeLen returns the number of cells the snake occupies.
func (s *State) SnakeLen() int { return s.path.Len() }

// Direction returns the direction the next step will take.
func (s *State) Direction() Direction { return s.dir }

// Score returns the number of food items eaten.
func (s *State) Score() int { return s.score }

// GameOver reports whether the snake has crashed.
func (s *State) GameOver() bool { return s.gameOver }

// Food returns the current food position. ok is false when the board had no
// empty cell left at the last placement.
func (s *State) Food() (pos Position, ok bool) { return s.food, s.hasFood }

// Grid exposes the grid for read-only iteration by renderers.
func (s *State) Grid() *Grid { return s.grid }

// ChangeDirection sets the direction used by the next Step. Reversing into the
// body is accepted; the crash is detected on the following step. The zero
// Direction is ignored, as is any call after game over.
func (s *State) ChangeDirection(d Direction) {
	if s.gameOver || d.IsZero() {
		return
	}
	s.dir = d
}

// Classify returns what the head would hit at p: Outside beyond the grid,
// Empty for the current tail (it moves away this same tick), otherwise the
// stored cell.
func (s *State) Classify(p Position) Cell {
	if !s.grid.InBounds(p) {
		return Outside
	}
	if p == s.path.Tail() {
		return Empty
	}
	return s.grid.At(p)
}

// Peek classifies the cell one step from the head in direction d.
func (s *State) Peek(d Direction) Cell {
	return s.Classify(s.path.Head().Translate(d))
}

// Step advances the simulation by one tick in the current direction.
func (s *State) Step() Outcome {
	if s.gameOver {
		return OutcomeNone
	}

	next := s.path.Head().Translate(s.dir)

	switch s.Classify(next) {
	case Outside:
		s.gameOver = true
		return OutcomeCrashedWall
	case Snake:
		s.gameOver = true
		return OutcomeCrashedSelf
	case Food:
		s.growHead(next)
		s.score++
		s.placeFood()
		return OutcomeAte
	default:
		s.shrinkTail()
		s.growHead(next)
		return OutcomeMoved
	}
}

// growHead pushes p onto the path and marks it on the grid.
func (s *State) growHead(p Position) {
	s.path.PushHead(p)
	s.grid.Set(p, Snake)
}

// shrinkTail pops the tail and clears its cell.
func (s *State) shrinkTail() {
	s.grid.Set(s.path.PopTail(), Empty)
}

// placeFood puts food on a uniformly chosen empty cell. A full board leaves
// the game without food.
func (s *State) placeFood() {
	empty := slices.Collect(s.grid.EmptyPositions())
	if len(empty) == 0 {
		s.hasFood = false
		return
	}
	s.food = empty[s.rnd.Intn(len(empty))]
	s.hasFood = true
	s.grid.Set(s.food, Food)
}
