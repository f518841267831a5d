package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/sim"
)

// Autopilot picks the next direction for s. It never chooses a move that
// crashes this tick when a safe one exists, prefers moves that leave at least
// as much reachable space as the snake is long, and among those heads for the
// food.
func Autopilot(s *sim.State) sim.Direction {
	food, hasFood := s.Food()
	head := s.Head()

	best := s.Direction()
	found := false
	var bestSafe bool
	var bestDist, bestArea int

	for _, d := range sim.Directions {
		switch s.Peek(d) {
		case sim.Outside, sim.Snake:
			continue
		}

		next := head.Translate(d)
		area := reachable(s, next)
		safe := area >= s.SnakeLen()
		dist := 0
		if hasFood {
			dist = core.Abs(next.Row-food.Row) + core.Abs(next.Col-food.Col)
		}

		better := !found ||
			(safe && !bestSafe) ||
			(safe == bestSafe && dist < bestDist) ||
			(safe == bestSafe && dist == bestDist && area > bestArea)
		if better {
			best, found = d, true
			bestSafe, bestDist, bestArea = safe, dist, area
		}
	}

	return best
}

// reachable counts the cells connected to from that the snake could enter.
// The current tail counts as free because it moves away on the next step.
func reachable(s *sim.State, from sim.Position) int {
	cols := s.Cols()
	seen := make([]bool, s.Rows()*cols)
	tail := s.Tail()

	seen[from.Row*cols+from.Col] = true
	stack := []sim.Position{from}
	n := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++

		for _, d := range sim.Directions {
			q := p.Translate(d)
			if !s.InBounds(q) || seen[q.Row*cols+q.Col] {
				continue
			}
			if s.CellAt(q) == sim.Snake && q != tail {
				continue
			}
			seen[q.Row*cols+q.Col] = true
			stack = append(stack, q)
		}
	}
	return n
}
