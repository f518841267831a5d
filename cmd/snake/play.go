package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing the given variant. Without an argument a picker lists the
variants when the output is a terminal; otherwise the classic board is used.

Controls:
  Any key          - Start
  Arrows/WASD/HJKL - Turn
  P/Space/Esc      - Pause
  R/Enter          - Restart (after game over)
  Tab              - Toggle autopilot
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at normal speed, speed up with the score
  normal - Start 30% into the speed curve
  hard   - Start 70% into the speed curve
  fixed  - No progression, keep the configured interval

Examples:
  snake play
  snake play snake_mini
  snake play --difficulty hard
  snake play --rows 12 --cols 24 --interval 200ms
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addBoardFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.TickRate = flagFPS
	rc.Seed = resolveSeed()

	gameID := snake.Classic.ID
	switch {
	case len(args) == 1:
		gameID = args[0]
	case term.IsTerminal(int(os.Stdout.Fd())):
		picked, err := tui.RunPicker(rc)
		if err != nil {
			return fmt.Errorf("variant picker: %w", err)
		}
		if picked == "" {
			return nil
		}
		gameID = picked
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}
	variant, _ := snake.Lookup(gameID)

	cfg, err := loadConfig(variant)
	if err != nil {
		return err
	}
	snake.SetConfig(&cfg)

	w, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(w)
	if err != nil {
		return err
	}
	snake.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	rows, cols := boardFor(variant, cfg)
	logger.Info("starting", "variant", gameID, "rows", rows, "cols", cols,
		"interval", cfg.Timing.MoveInterval(), "difficulty", flagDifficulty)

	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
