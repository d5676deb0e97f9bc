// Package config provides YAML-based game configuration loading and
// difficulty management for Cat Catcher.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("invalid configuration")

// CatcherConfig contains all configuration for the Cat Catcher game.
type CatcherConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Cats       CatsConfig       `yaml:"cats"`
	Rules      RulesConfig      `yaml:"rules"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Credits    []string         `yaml:"credits"`
}

// WorldConfig defines the play area. Units are canvas pixels.
type WorldConfig struct {
	Width       float64 `yaml:"width"`        // Fixed canvas width
	Height      float64 `yaml:"height"`       // Fixed canvas height
	FloorMargin float64 `yaml:"floor_margin"` // Space below the world bounds
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration, units/s^2
	CellWidth   float64 `yaml:"cell_width"`   // Units per terminal column (responsive canvas)
	CellHeight  float64 `yaml:"cell_height"`  // Units per terminal row (responsive canvas)
}

// PlayerConfig defines the catcher sprite.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Horizontal speed, units/s
}

// CatsConfig defines falling cats and their spawn policy.
type CatsConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnMargin  int     `yaml:"spawn_margin"`   // Horizontal distance kept from the walls
	MinFallSpeed int     `yaml:"min_fall_speed"` // Inclusive, units/s
	MaxFallSpeed int     `yaml:"max_fall_speed"` // Inclusive, units/s
	SpawnChance  int     `yaml:"spawn_chance"`   // Spawn when roll < chance
	SpawnRollMax int     `yaml:"spawn_roll_max"` // Roll is uniform in [0, max]
}

// RulesConfig defines scoring rules.
type RulesConfig struct {
	WinScore     int  `yaml:"win_score"`
	SpawnOnStart bool `yaml:"spawn_on_start"` // Drop one cat when the scene starts
}

// InputConfig defines platform input tuning.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a terminal direction key press counts as held
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
	SpawnChanceBonus int `yaml:"spawn_chance_bonus"` // Added to spawn chance at max difficulty
	FallSpeedBonus   int `yaml:"fall_speed_bonus"`   // Added to both fall speed bounds at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q: %w", s, ErrInvalid)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset
// that turns pacing on.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that the configuration describes a playable game.
func (c CatcherConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return invalid("world size must be positive")
	case c.World.FloorMargin < 0 || c.World.FloorMargin >= c.World.Height:
		return invalid("world.floor_margin must be in [0, height)")
	case c.World.CellWidth <= 0 || c.World.CellHeight <= 0:
		return invalid("world cell size must be positive")
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return invalid("player size must be positive")
	case c.Player.Speed < 0:
		return invalid("player.speed must not be negative")
	case c.Cats.Width <= 0 || c.Cats.Height <= 0:
		return invalid("cat size must be positive")
	case c.Cats.SpawnMargin < 0:
		return invalid("cats.spawn_margin must not be negative")
	case c.Cats.MinFallSpeed < 0 || c.Cats.MinFallSpeed > c.Cats.MaxFallSpeed:
		return invalid("cats fall speeds must satisfy 0 <= min <= max")
	case c.Cats.SpawnRollMax < 0:
		return invalid("cats.spawn_roll_max must not be negative")
	case c.Cats.SpawnChance < 0 || c.Cats.SpawnChance > c.Cats.SpawnRollMax+1:
		return invalid("cats.spawn_chance must be in [0, spawn_roll_max+1]")
	case c.Rules.WinScore < 1:
		return invalid("rules.win_score must be at least 1")
	case c.Input.HoldMS < 0:
		return invalid("input.hold_ms must not be negative")
	}
	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("config: %s: %w", msg, ErrInvalid)
}
