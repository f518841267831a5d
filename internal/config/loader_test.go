package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &embedded); err != nil {
		t.Fatalf("embedded snake.yaml does not parse: %v", err)
	}
	if embedded != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultSnakeConfig() %+v", embedded, DefaultSnakeConfig())
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("embedded defaults are invalid: %v", err)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  rows: 20\n  cols: 30\ntiming:\n  move_interval_ms: 120\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Rows != 20 || cfg.Board.Cols != 30 {
		t.Errorf("board = %dx%d, want 20x30", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Timing.MoveIntervalMs != 120 {
		t.Errorf("move_interval_ms = %d, want 120", cfg.Timing.MoveIntervalMs)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Timing.CountdownSteps != 3 || cfg.Timing.DeathFrameMs != 50 {
		t.Errorf("unset timings should default, got %+v", cfg.Timing)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSnake() with a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("LoadSnake() with malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  move_interval_ms: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadSnake(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadSnake() error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr bool
	}{
		{"defaults", func(*SnakeConfig) {}, false},
		{"board override", func(c *SnakeConfig) { c.Board = BoardConfig{Rows: 1, Cols: 4} }, false},
		{"board too narrow", func(c *SnakeConfig) { c.Board = BoardConfig{Rows: 10, Cols: 3} }, true},
		{"rows without cols", func(c *SnakeConfig) { c.Board = BoardConfig{Rows: 10} }, true},
		{"negative board", func(c *SnakeConfig) { c.Board = BoardConfig{Rows: -1, Cols: -1} }, true},
		{"zero interval", func(c *SnakeConfig) { c.Timing.MoveIntervalMs = 0 }, true},
		{"no countdown", func(c *SnakeConfig) { c.Timing.CountdownSteps = 0; c.Timing.CountdownIntervalMs = 0 }, false},
		{"countdown without interval", func(c *SnakeConfig) { c.Timing.CountdownIntervalMs = 0 }, true},
		{"negative death frame", func(c *SnakeConfig) { c.Timing.DeathFrameMs = -1 }, true},
		{"bad progression", func(c *SnakeConfig) { c.Difficulty.Progression.Type = "level" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tc.wantLevel {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tc.wantLevel)
			}
		})
	}

	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, "")
	if cfg != DefaultSnakeConfig() {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseDifficultyPreset(s); err != nil {
			t.Errorf("ParseDifficultyPreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseDifficultyPreset("insane"); err == nil {
		t.Error("ParseDifficultyPreset(insane) should fail")
	}
}
