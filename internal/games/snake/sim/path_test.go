package sim_test

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/games/snake/sim"
)

func TestPathPushPop(t *testing.T) {
	p := sim.NewPath(3)
	p.PushHead(sim.P(0, 0))
	p.PushHead(sim.P(0, 1))
	p.PushHead(sim.P(0, 2))

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if p.Head() != sim.P(0, 2) || p.Tail() != sim.P(0, 0) {
		t.Errorf("head=%v tail=%v", p.Head(), p.Tail())
	}

	if got := p.PopTail(); got != sim.P(0, 0) {
		t.Errorf("PopTail() = %v, want (0,0)", got)
	}
	p.PushHead(sim.P(0, 3))

	want := []sim.Position{sim.P(0, 3), sim.P(0, 2), sim.P(0, 1)}
	if got := p.Positions(); !slices.Equal(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
}

func TestPathWrapsManyTimes(t *testing.T) {
	p := sim.NewPath(4)
	for i := range 4 {
		p.PushHead(sim.P(0, i))
	}
	for i := 4; i < 50; i++ {
		p.PopTail()
		p.PushHead(sim.P(0, i))
	}

	want := []sim.Position{sim.P(0, 49), sim.P(0, 48), sim.P(0, 47), sim.P(0, 46)}
	if got := p.Positions(); !slices.Equal(got, want) {
		t.Errorf("Positions() = %v, want %v", got, want)
	}
	for i, pos := range p.All() {
		if pos != want[i] {
			t.Errorf("All()[%d] = %v, want %v", i, pos, want[i])
		}
	}
}

func TestPathFullPanics(t *testing.T) {
	p := sim.NewPath(1)
	p.PushHead(sim.P(0, 0))
	defer func() {
		if recover() == nil {
			t.Error("PushHead() on a full path should panic")
		}
	}()
	p.PushHead(sim.P(0, 1))
}
