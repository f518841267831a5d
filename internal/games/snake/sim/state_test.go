package sim

import (
	"errors"
	"math/rand"
	"testing"
)

// firstRand always picks the first candidate, which places food on the first
// empty cell in row-major order.
type firstRand struct{}

func (firstRand) Intn(int) int { return 0 }

// newCustom builds a state with an explicit snake (head first) and no food.
func newCustom(t *testing.T, rows, cols int, snake []Position, dir Direction) *State {
	t.Helper()
	s := &State{
		grid: NewGrid(rows, cols),
		path: NewPath(rows * cols),
		dir:  dir,
		rnd:  firstRand{},
	}
	for i := len(snake) - 1; i >= 0; i-- {
		s.growHead(snake[i])
	}
	return s
}

// putFood moves the food to p.
func putFood(s *State, p Position) {
	if s.hasFood {
		s.grid.Set(s.food, Empty)
	}
	s.food = p
	s.hasFood = true
	s.grid.Set(p, Food)
}

// checkInvariants verifies the grid/path bijection and food bookkeeping.
func checkInvariants(t *testing.T, s *State) {
	t.Helper()
	seen := make(map[Position]bool)
	for i, p := range s.path.All() {
		if seen[p] {
			t.Fatalf("position %v appears twice in path (index %d)", p, i)
		}
		seen[p] = true
		if !s.grid.InBounds(p) {
			t.Fatalf("path position %v is off the grid", p)
		}
		if got := s.grid.At(p); got != Snake {
			t.Fatalf("path position %v has cell %v, want snake", p, got)
		}
	}
	if n := s.grid.Count(Snake); n != s.path.Len() {
		t.Fatalf("grid has %d snake cells, path has %d", n, s.path.Len())
	}
	foods := s.grid.Count(Food)
	switch {
	case s.hasFood && foods != 1:
		t.Fatalf("expected exactly one food cell, got %d", foods)
	case s.hasFood && s.grid.At(s.food) != Food:
		t.Fatalf("food position %v is not tagged food", s.food)
	case !s.hasFood && foods != 0:
		t.Fatalf("expected no food cells, got %d", foods)
	}
}

func TestNewInitialLayout(t *testing.T) {
	s, err := NewSeeded(5, 5, 42)
	if err != nil {
		t.Fatalf("NewSeeded() failed: %v", err)
	}

	if s.Head() != P(2, 3) {
		t.Errorf("head = %v, want (2,3)", s.Head())
	}
	if s.Tail() != P(2, 1) {
		t.Errorf("tail = %v, want (2,1)", s.Tail())
	}
	want := []Position{P(2, 3), P(2, 2), P(2, 1)}
	got := s.Snake()
	if len(got) != len(want) {
		t.Fatalf("snake = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("snake[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if s.Direction() != Right {
		t.Errorf("direction = %v, want right", s.Direction())
	}
	if s.Score() != 0 || s.GameOver() {
		t.Errorf("score=%d gameOver=%v, want 0/false", s.Score(), s.GameOver())
	}
	if _, ok := s.Food(); !ok {
		t.Error("expected food to be placed")
	}
	checkInvariants(t, s)
}

func TestNewEvenRowsSeedsUpperMiddle(t *testing.T) {
	s, err := New(4, 6, firstRand{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if s.Head() != P(2, 3) {
		t.Errorf("head = %v, want (2,3)", s.Head())
	}
	if food, _ := s.Food(); food != P(0, 0) {
		t.Errorf("food = %v, want first empty cell (0,0)", food)
	}
}

func TestNewRejectsSmallGrid(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 10},
		{"negative rows", -1, 10},
		{"three cols", 5, 3},
		{"zero cols", 5, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSeeded(tc.rows, tc.cols, 1)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("NewSeeded(%d, %d) error = %v, want ErrInvalidSize", tc.rows, tc.cols, err)
			}
		})
	}

	if _, err := New(5, 5, nil); err == nil {
		t.Error("New() with nil source should fail")
	}
}

func TestStepIntoWall(t *testing.T) {
	s, err := New(5, 5, firstRand{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if out := s.Step(); out != OutcomeMoved {
		t.Fatalf("first step = %v, want moved", out)
	}
	if s.Head() != P(2, 4) {
		t.Fatalf("head = %v, want (2,4)", s.Head())
	}
	if s.GameOver() {
		t.Fatal("game should still be running at the right edge")
	}

	if out := s.Step(); out != OutcomeCrashedWall {
		t.Errorf("step off the edge = %v, want crashed_wall", out)
	}
	if !s.GameOver() {
		t.Error("game should be over after leaving the grid")
	}
	if s.Head() != P(2, 4) {
		t.Errorf("fatal step must not move the snake, head = %v", s.Head())
	}
	checkInvariants(t, s)
}

func TestSelfCollision(t *testing.T) {
	s := newCustom(t, 6, 6, []Position{P(2, 4), P(2, 3), P(2, 2), P(2, 1), P(2, 0)}, Right)

	for _, d := range []Direction{Up, Left} {
		s.ChangeDirection(d)
		if out := s.Step(); out != OutcomeMoved {
			t.Fatalf("turn %v = %v, want moved", d, out)
		}
	}

	// Head at (1,3); below it is body, and the tail sits at (2,2).
	s.ChangeDirection(Down)
	if out := s.Step(); out != OutcomeCrashedSelf {
		t.Errorf("step into body = %v, want crashed_self", out)
	}
	if !s.GameOver() {
		t.Error("game should be over after self collision")
	}
	checkInvariants(t, s)
}

func TestReversalIsNotRejected(t *testing.T) {
	s, err := New(7, 7, firstRand{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	s.ChangeDirection(Left)
	if s.Direction() != Left {
		t.Fatalf("direction = %v, reversal should be accepted", s.Direction())
	}
	if s.GameOver() {
		t.Fatal("changing direction must not end the game")
	}
	if out := s.Step(); out != OutcomeCrashedSelf {
		t.Errorf("step after reversal = %v, want crashed_self", out)
	}
}

func TestTailVacate(t *testing.T) {
	// A 2x2 loop: the head's next cell is exactly the tail.
	s := newCustom(t, 4, 4, []Position{P(1, 1), P(1, 2), P(2, 2), P(2, 1)}, Down)

	if got := s.Peek(Down); got != Empty {
		t.Fatalf("Peek(down) = %v, tail cell should classify as empty", got)
	}
	if out := s.Step(); out != OutcomeMoved {
		t.Fatalf("step into tail = %v, want moved", out)
	}
	if s.GameOver() {
		t.Fatal("moving into the vacating tail must not end the game")
	}
	if s.Head() != P(2, 1) || s.Tail() != P(2, 2) {
		t.Errorf("head=%v tail=%v, want (2,1)/(2,2)", s.Head(), s.Tail())
	}
	if s.SnakeLen() != 4 {
		t.Errorf("length = %d, want 4", s.SnakeLen())
	}
	checkInvariants(t, s)
}

func TestEatFood(t *testing.T) {
	s, err := NewSeeded(5, 5, 7)
	if err != nil {
		t.Fatalf("NewSeeded() failed: %v", err)
	}
	putFood(s, P(2, 4))
	tail := s.Tail()

	if out := s.Step(); out != OutcomeAte {
		t.Fatalf("step onto food = %v, want ate", out)
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
	if s.SnakeLen() != 4 {
		t.Errorf("length = %d, want 4", s.SnakeLen())
	}
	if s.Tail() != tail {
		t.Errorf("tail moved to %v, want %v", s.Tail(), tail)
	}
	if s.Head() != P(2, 4) {
		t.Errorf("head = %v, want (2,4)", s.Head())
	}
	food, ok := s.Food()
	if !ok {
		t.Fatal("new food should be placed while empty cells remain")
	}
	if food == P(2, 4) || s.CellAt(food) != Food {
		t.Errorf("new food at %v is not a fresh food cell", food)
	}
	checkInvariants(t, s)
}

func TestFullBoardSkipsFood(t *testing.T) {
	s := newCustom(t, 2, 2, []Position{P(0, 0), P(0, 1), P(1, 1)}, Down)
	putFood(s, P(1, 0))

	if out := s.Step(); out != OutcomeAte {
		t.Fatalf("step = %v, want ate", out)
	}
	if _, ok := s.Food(); ok {
		t.Error("no food should be placed on a full board")
	}
	if s.GameOver() {
		t.Fatal("filling the board is not a crash")
	}
	checkInvariants(t, s)

	// The only legal move is chasing the tail.
	s.ChangeDirection(Right)
	if out := s.Step(); out != OutcomeMoved {
		t.Fatalf("tail chase = %v, want moved", out)
	}
	if s.Score() != 1 || s.SnakeLen() != 4 {
		t.Errorf("score=%d len=%d, want 1/4", s.Score(), s.SnakeLen())
	}
	checkInvariants(t, s)
}

func TestNoOpAfterGameOver(t *testing.T) {
	s, err := New(5, 5, firstRand{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for !s.GameOver() {
		s.Step()
	}
	before := s.Snapshot()

	if out := s.Step(); out != OutcomeNone {
		t.Errorf("Step() after game over = %v, want none", out)
	}
	s.ChangeDirection(Up)
	s.Step()

	if !before.Equal(s.Snapshot()) {
		t.Error("state changed after game over")
	}
}

func TestChangeDirectionLastWins(t *testing.T) {
	s, err := New(9, 9, firstRand{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	start := s.Head()

	s.ChangeDirection(Up)
	s.ChangeDirection(Down)
	s.ChangeDirection(Direction{})
	s.Step()

	if s.Head() != start.Translate(Down) {
		t.Errorf("head = %v, want %v", s.Head(), start.Translate(Down))
	}
}

func TestDeterminism(t *testing.T) {
	script := []Direction{Up, Up, Right, Down, Down, Down, Left, Up, Right, Right}

	run := func() []Snapshot {
		s, err := NewSeeded(15, 15, 12345)
		if err != nil {
			t.Fatalf("NewSeeded() failed: %v", err)
		}
		var out []Snapshot
		for i := range 200 {
			if i%3 == 0 {
				s.ChangeDirection(script[(i/3)%len(script)])
			}
			s.Step()
			out = append(out, s.Snapshot())
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("snapshots diverge at step %d", i)
		}
	}
}

func TestRandomWalkInvariants(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		s, err := NewSeeded(8, 10, seed)
		if err != nil {
			t.Fatalf("NewSeeded() failed: %v", err)
		}
		moves := rand.New(rand.NewSource(seed * 31))

		for step := 0; step < 500 && !s.GameOver(); step++ {
			s.ChangeDirection(Directions[moves.Intn(len(Directions))])
			before := s.SnakeLen()
			score := s.Score()

			out := s.Step()

			switch out {
			case OutcomeAte:
				if s.SnakeLen() != before+1 || s.Score() != score+1 {
					t.Fatalf("seed %d step %d: ate but len %d->%d score %d->%d",
						seed, step, before, s.SnakeLen(), score, s.Score())
				}
			default:
				if s.SnakeLen() != before || s.Score() != score {
					t.Fatalf("seed %d step %d: %v changed len %d->%d", seed, step, out, before, s.SnakeLen())
				}
			}
			checkInvariants(t, s)
		}
	}
}
