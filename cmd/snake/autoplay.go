package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/games/snake/sim"
)

var (
	flagMaxSteps int
	flagFrames   bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay [variant]",
	Short: "Let the autopilot play a game without the TUI",
	Long: `Runs the simulation under the autopilot until the snake crashes, the board
is full or --max-steps is reached, then prints the final board and stats.
The same --seed always produces the same game.

Examples:
  snake autoplay
  snake autoplay snake_mini --seed 7
  snake autoplay --rows 6 --cols 8 --frames`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAutoplay,
}

func init() {
	addBoardFlags(autoplayCmd)
	autoplayCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 10000, "Stop after this many moves")
	autoplayCmd.Flags().BoolVar(&flagFrames, "frames", false, "Print the board after every move")
}

func runAutoplay(cmd *cobra.Command, args []string) error {
	gameID := snake.Classic.ID
	if len(args) == 1 {
		gameID = args[0]
	}
	variant, ok := snake.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}

	cfg, err := loadConfig(variant)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	rows, cols := boardFor(variant, cfg)
	seed := resolveSeed()
	st, err := sim.NewSeeded(rows, cols, seed)
	if err != nil {
		return fmt.Errorf("board %dx%d: %w", rows, cols, err)
	}
	logger.Info("autoplay", "variant", gameID, "rows", rows, "cols", cols, "seed", seed)

	out := cmd.OutOrStdout()
	steps := 0
	outcome := sim.OutcomeNone
	for !st.GameOver() && steps < flagMaxSteps {
		if _, ok := st.Food(); !ok {
			logger.Info("board full")
			break
		}

		st.ChangeDirection(snake.Autopilot(st))
		outcome = st.Step()
		steps++

		if outcome == sim.OutcomeAte {
			logger.Debug("food eaten", "step", steps, "score", st.Score(), "length", st.SnakeLen())
		}
		if flagFrames {
			fmt.Fprintf(out, "step %d\n%s\n", steps, snake.BoardText(st))
		}
	}

	if st.GameOver() {
		logger.Info("game over", "outcome", outcome, "score", st.Score(), "length", st.SnakeLen())
	}

	if !flagFrames {
		fmt.Fprint(out, snake.BoardText(st))
	}
	fmt.Fprintf(out, "score: %d  length: %d  steps: %d  outcome: %s\n",
		st.Score(), st.SnakeLen(), steps, outcome)
	return nil
}
