package config

import "math"

// DifficultyManager calculates dynamic spawn parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnChance returns the per-tick spawn threshold at the current level.
func (d *DifficultyManager) SpawnChance(base int, score int, ticks int) int {
	level := d.Level(score, ticks)
	return base + int(math.Round(level*float64(d.cfg.Scaling.SpawnChanceBonus)))
}

// FallSpeedRange returns the fall speed bounds at the current level.
// Both bounds are raised by the same amount so the range width is preserved.
func (d *DifficultyManager) FallSpeedRange(minSpeed, maxSpeed int, score int, ticks int) (int, int) {
	level := d.Level(score, ticks)
	bonus := int(math.Round(level * float64(d.cfg.Scaling.FallSpeedBonus)))
	return minSpeed + bonus, maxSpeed + bonus
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
