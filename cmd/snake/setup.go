package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Board and pacing overrides shared by play and autoplay.
var (
	flagRows     int
	flagCols     int
	flagInterval time.Duration
)

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (0 = variant default)")
	cmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (0 = variant default)")
	cmd.Flags().DurationVar(&flagInterval, "interval", 0, "Time between moves, e.g. 150ms (0 = config)")
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, nil
}

// openLogFile returns the --log-file writer, or io.Discard when unset.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// loadConfig resolves the snake config for variant v from the config files,
// the difficulty preset and the board/interval flags.
func loadConfig(v snake.Variant) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)

	if flagRows != 0 || flagCols != 0 {
		cfg.Board = config.BoardConfig{Rows: v.Rows, Cols: v.Cols}
		if flagRows != 0 {
			cfg.Board.Rows = flagRows
		}
		if flagCols != 0 {
			cfg.Board.Cols = flagCols
		}
	}
	if flagInterval > 0 {
		cfg.Timing.MoveIntervalMs = int(flagInterval.Milliseconds())
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// boardFor returns the board size a game of variant v will use under cfg.
func boardFor(v snake.Variant, cfg config.SnakeConfig) (rows, cols int) {
	if cfg.Board.Rows > 0 && cfg.Board.Cols > 0 {
		return cfg.Board.Rows, cfg.Board.Cols
	}
	return v.Rows, v.Cols
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
