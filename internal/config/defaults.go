package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration. It mirrors
// defaults/snake.yaml and is used when that file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Timing: TimingConfig{
			WaitForKey:          true,
			MoveIntervalMs:      500,
			CountdownSteps:      3,
			CountdownIntervalMs: 500,
			DeathFrameMs:        50,
			GameOverDelayMs:     1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
			},
		},
	}
}
