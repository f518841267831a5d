// Package config provides YAML-based game configuration loading and
// difficulty management for the snake platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig overrides the board size. Zero keeps the variant's default.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the pacing of a round, in milliseconds.
type TimingConfig struct {
	WaitForKey          bool `yaml:"wait_for_key"`          // Show a start screen until a key is pressed
	MoveIntervalMs      int  `yaml:"move_interval_ms"`      // Time between snake moves
	CountdownSteps      int  `yaml:"countdown_steps"`       // 3-2-1 before the first move
	CountdownIntervalMs int  `yaml:"countdown_interval_ms"` // Time per countdown number
	DeathFrameMs        int  `yaml:"death_frame_ms"`        // Time per segment of the death animation
	GameOverDelayMs     int  `yaml:"game_over_delay_ms"`    // Pause between animation and overlay
}

// MoveInterval returns the base move interval as a duration.
func (t TimingConfig) MoveInterval() time.Duration {
	return time.Duration(t.MoveIntervalMs) * time.Millisecond
}

// CountdownInterval returns the countdown step as a duration.
func (t TimingConfig) CountdownInterval() time.Duration {
	return time.Duration(t.CountdownIntervalMs) * time.Millisecond
}

// DeathFrame returns the death animation step as a duration.
func (t TimingConfig) DeathFrame() time.Duration {
	return time.Duration(t.DeathFrameMs) * time.Millisecond
}

// GameOverDelay returns the post-animation delay as a duration.
func (t TimingConfig) GameOverDelay() time.Duration {
	return time.Duration(t.GameOverDelayMs) * time.Millisecond
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Speed added at max difficulty (1.0 = twice as fast)
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid snake config")

// Validate checks that timings are positive and any board override fits the
// starting snake.
func (c SnakeConfig) Validate() error {
	t := c.Timing
	switch {
	case t.MoveIntervalMs <= 0:
		return fmt.Errorf("%w: move_interval_ms must be positive, got %d", ErrInvalidConfig, t.MoveIntervalMs)
	case t.CountdownSteps < 0:
		return fmt.Errorf("%w: countdown_steps must not be negative, got %d", ErrInvalidConfig, t.CountdownSteps)
	case t.CountdownSteps > 0 && t.CountdownIntervalMs <= 0:
		return fmt.Errorf("%w: countdown_interval_ms must be positive, got %d", ErrInvalidConfig, t.CountdownIntervalMs)
	case t.DeathFrameMs < 0 || t.GameOverDelayMs < 0:
		return fmt.Errorf("%w: animation timings must not be negative", ErrInvalidConfig)
	}

	b := c.Board
	if b.Rows < 0 || b.Cols < 0 {
		return fmt.Errorf("%w: board size must not be negative", ErrInvalidConfig)
	}
	if (b.Rows != 0 || b.Cols != 0) && (b.Rows < 1 || b.Cols < 4) {
		return fmt.Errorf("%w: board %dx%d is smaller than 1x4", ErrInvalidConfig, b.Rows, b.Cols)
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. Empty input yields an
// empty preset, meaning "use the config file as is".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
