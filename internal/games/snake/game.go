// Package snake adapts the snake simulation to the arcade platform: it paces
// moves against the platform tick, runs the start countdown and the death
// animation, and renders the board into a core.Screen.
package snake

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/sim"
)

// Phase is the lifecycle stage of a round.
type Phase string

const (
	PhaseWaiting   Phase = "waiting"
	PhaseCountdown Phase = "countdown"
	PhaseRunning   Phase = "running"
	PhaseDying     Phase = "dying"
	PhaseOver      Phase = "game_over"
)

// Event kinds reported in core.StepResult.
const (
	EventAte   = "ate"
	EventCrash = "crash"
)

var (
	// loadedConfig, when set, replaces loading the config files on Reset.
	loadedConfig *config.SnakeConfig

	logger = log.New(io.Discard)
)

// SetLogger sets the logger used for configuration problems found on Reset.
// Pass nil to discard them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetConfig installs an already loaded configuration. Pass nil to go back to
// the config search path.
func SetConfig(cfg *config.SnakeConfig) {
	loadedConfig = cfg
}

// currentConfig resolves the configuration for a new game.
func currentConfig() config.SnakeConfig {
	if loadedConfig != nil {
		return *loadedConfig
	}
	cfg, err := config.LoadSnake("")
	if err != nil {
		return config.DefaultSnakeConfig()
	}
	return cfg
}

// Game implements registry.Game for one board variant.
type Game struct {
	variant Variant
	rows    int
	cols    int

	runtime    core.RuntimeConfig
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	state      *sim.State
	tick       uint64
	roundTicks int // running ticks in the current round

	phase      Phase
	phaseTicks int // ticks spent on the current countdown number / death frame
	countdown  int // remaining countdown number
	moveTicker int // ticks since the last move
	deadShown  int // segments already drawn dead, head first
	delayTicks int // ticks waited after the death animation

	paused    bool
	tooSmall  bool
	autopilot bool
	outcome   sim.Outcome
}

// New creates a game for the given variant. Call Reset before stepping.
func New(v Variant) *Game {
	return &Game{variant: v, rows: v.Rows, cols: v.Cols}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description summarizes the board for listings.
func (g *Game) Description() string {
	return g.variant.String()
}

// Reset loads configuration and starts a fresh round. With wait_for_key set
// the round waits on a start screen until the first key press.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.cfg = currentConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(rc.Seed))

	g.rows, g.cols = g.variant.Rows, g.variant.Cols
	if g.cfg.Board.Rows > 0 || g.cfg.Board.Cols > 0 {
		g.rows, g.cols = g.cfg.Board.Rows, g.cfg.Board.Cols
	}

	g.tick = 0
	g.autopilot = false
	g.checkScreen()
	if err := g.newRound(); err != nil {
		logger.Warn("board rejected, using the variant board",
			"variant", g.variant.ID, "rows", g.rows, "cols", g.cols, "err", err)
		g.rows, g.cols = g.variant.Rows, g.variant.Cols
		g.checkScreen()
		if err := g.newRound(); err != nil {
			panic(fmt.Sprintf("snake: variant %s: %v", g.variant.ID, err))
		}
	}

	if g.cfg.Timing.WaitForKey {
		g.phase = PhaseWaiting
	}
}

// newRound replaces the simulation and restarts the countdown.
func (g *Game) newRound() error {
	st, err := sim.New(g.rows, g.cols, g.rng)
	if err != nil {
		return err
	}
	g.state = st

	g.paused = false
	g.roundTicks = 0
	g.moveTicker = 0
	g.phaseTicks = 0
	g.deadShown = 0
	g.delayTicks = 0
	g.outcome = sim.OutcomeNone
	g.countdown = g.cfg.Timing.CountdownSteps
	g.startCountdown()
	return nil
}

// startCountdown enters the countdown, or running when there is none.
func (g *Game) startCountdown() {
	g.phase = PhaseRunning
	if g.countdown > 0 {
		g.phase = PhaseCountdown
	}
}

// checkScreen flags screens too small for the board plus HUD and border.
func (g *Game) checkScreen() {
	w, h := boardSize(g.rows, g.cols)
	g.tooSmall = g.runtime.ScreenW < w || g.runtime.ScreenH < h+hudHeight+footerHeight
}

// Resize adapts to a new terminal size without restarting the round.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkScreen()
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.phase == PhaseOver {
		// Same board as the round that just ended, so this cannot fail.
		if err := g.newRound(); err != nil {
			panic(fmt.Sprintf("snake: restart: %v", err))
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionAutopilot) {
		g.autopilot = !g.autopilot
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase == PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	switch g.phase {
	case PhaseWaiting:
		if !in.Empty() {
			g.startCountdown()
		}
	case PhaseCountdown:
		g.stepCountdown()
	case PhaseRunning:
		g.processInput(in)
		events = g.stepRunning()
	case PhaseDying:
		g.stepDying()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// processInput forwards the most recent direction key to the simulation.
func (g *Game) processInput(in core.InputFrame) {
	if g.autopilot {
		return
	}
	a, ok := in.LastOf(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight)
	if !ok {
		return
	}
	g.state.ChangeDirection(directionFor(a))
}

func directionFor(a core.Action) sim.Direction {
	switch a {
	case core.ActionUp:
		return sim.Up
	case core.ActionDown:
		return sim.Down
	case core.ActionLeft:
		return sim.Left
	default:
		return sim.Right
	}
}

func (g *Game) stepCountdown() {
	g.phaseTicks++
	if g.phaseTicks < g.runtime.TicksFor(g.cfg.Timing.CountdownInterval()) {
		return
	}
	g.phaseTicks = 0
	g.countdown--
	if g.countdown <= 0 {
		g.phase = PhaseRunning
	}
}

// stepRunning moves the snake once every move interval.
func (g *Game) stepRunning() []core.Event {
	g.roundTicks++
	g.moveTicker++
	if g.moveTicker < g.moveTicks() {
		return nil
	}
	g.moveTicker = 0

	if g.autopilot {
		g.state.ChangeDirection(Autopilot(g.state))
	}

	g.outcome = g.state.Step()
	switch {
	case g.outcome == sim.OutcomeAte:
		return []core.Event{g.event(EventAte)}
	case g.outcome.Crashed():
		g.phase = PhaseDying
		g.phaseTicks = 0
		return []core.Event{g.event(EventCrash)}
	}
	return nil
}

func (g *Game) event(kind string) core.Event {
	return core.Event{
		Kind:   kind,
		Detail: g.outcome.String(),
		Score:  g.state.Score(),
		Len:    g.state.SnakeLen(),
	}
}

// stepDying reveals the dead snake one segment per frame, then waits before
// showing the game over overlay.
func (g *Game) stepDying() {
	if g.deadShown < g.state.SnakeLen() {
		g.phaseTicks++
		if g.phaseTicks >= g.runtime.TicksFor(g.cfg.Timing.DeathFrame()) {
			g.phaseTicks = 0
			g.deadShown++
		}
		return
	}

	g.delayTicks++
	if g.delayTicks >= g.runtime.TicksFor(g.cfg.Timing.GameOverDelay()) {
		g.phase = PhaseOver
	}
}

// moveTicks is the current move interval in platform ticks.
func (g *Game) moveTicks() int {
	interval := g.difficulty.MoveInterval(g.cfg.Timing.MoveInterval(), g.state.Score(), g.roundTicks)
	return g.runtime.TicksFor(interval)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
	}
}

// Phase returns the current lifecycle stage.
func (g *Game) Phase() Phase {
	return g.phase
}

// Sim exposes the underlying simulation for read-only inspection.
func (g *Game) Sim() *sim.State {
	return g.state
}

// Autopiloting reports whether the autopilot steers the snake.
func (g *Game) Autopiloting() bool {
	return g.autopilot
}

// Outcome returns the result of the last move.
func (g *Game) Outcome() sim.Outcome {
	return g.outcome
}
