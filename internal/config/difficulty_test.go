package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyDisabledKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(DefaultCatcherConfig().Difficulty)

	assert.False(t, d.IsEnabled())
	for _, score := range []int{0, 5, 10, 100} {
		assert.Equal(t, 2, d.SpawnChance(2, score, score*60))
		lo, hi := d.FallSpeedRange(100, 200, score, score*60)
		assert.Equal(t, 100, lo)
		assert.Equal(t, 200, hi)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DefaultCatcherConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	assert.InDelta(t, 0.0, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.5, d.Level(5, 0), 1e-9)
	assert.InDelta(t, 1.0, d.Level(10, 0), 1e-9)
	assert.InDelta(t, 1.0, d.Level(50, 0), 1e-9, "level is clamped")

	assert.Equal(t, 5, d.SpawnChance(2, 10, 0))
	lo, hi := d.FallSpeedRange(100, 200, 10, 0)
	assert.Equal(t, 200, lo)
	assert.Equal(t, 300, hi)
}

func TestDifficultyTimeProgressionFromInitialLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 600},
		Scaling:      ScalingConfig{SpawnChanceBonus: 4},
	}
	d := NewDifficultyManager(cfg)

	assert.InDelta(t, 0.5, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.75, d.Level(0, 300), 1e-9)
	assert.Equal(t, 6, d.SpawnChance(2, 0, 600))
}

func TestDifficultyInitialLevelClamped(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		InitialLevel: 2.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	assert.False(t, d.IsEnabled())
	assert.InDelta(t, 1.0, d.Level(0, 0), 1e-9)
}
