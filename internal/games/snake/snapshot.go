package snake

import "github.com/vovakirdan/tui-snake/internal/games/snake/sim"

// Snapshot captures the adapter state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Phase     Phase
	Paused    bool
	Autopilot bool
	MoveTicks int
	Sim       sim.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Variant:   g.variant.ID,
		Phase:     g.phase,
		Paused:    g.paused,
		Autopilot: g.autopilot,
		MoveTicks: g.moveTicks(),
		Sim:       g.state.Snapshot(),
	}
}

// Equal reports whether two snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	return a.Tick == b.Tick && a.Variant == b.Variant && a.Phase == b.Phase &&
		a.Paused == b.Paused && a.Autopilot == b.Autopilot &&
		a.MoveTicks == b.MoveTicks && a.Sim.Equal(b.Sim)
}
