package config

import (
	_ "embed"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultCatcherConfig returns the default Cat Catcher configuration.
// It mirrors defaults/catcher.yaml and is used if the embedded file is unreadable.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		World: WorldConfig{
			Width:       800,
			Height:      600,
			FloorMargin: 50,
			Gravity:     300,
			CellWidth:   10,
			CellHeight:  25,
		},
		Player: PlayerConfig{
			Width:  32,
			Height: 48,
			Speed:  300,
		},
		Cats: CatsConfig{
			Width:        30,
			Height:       30,
			SpawnMargin:  50,
			MinFallSpeed: 100,
			MaxFallSpeed: 200,
			SpawnChance:  2,
			SpawnRollMax: 100,
		},
		Rules: RulesConfig{
			WinScore:     10,
			SpawnOnStart: true,
		},
		Input: InputConfig{
			HoldMS: 200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpawnChanceBonus: 3,
				FallSpeedBonus:   100,
			},
		},
		Credits: []string{
			"Made by Jericho Cid Pascua.",
			"A224",
			"EMC",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultCatcherYAML
}
