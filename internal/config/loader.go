package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "catcher.yaml"

// LoadCatcher loads the Cat Catcher configuration.
// Search order: customPath -> ~/.catcher/configs/catcher.yaml -> ./configs/catcher.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets. A custom path that cannot be read or parsed is an error;
// unreadable files on the search path are skipped.
func LoadCatcher(customPath string) (CatcherConfig, error) {
	cfg, err := decodeDefault()
	if err != nil {
		return cfg, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() != nil {
			continue
		}
		return candidate, nil
	}

	return cfg, nil
}

// decodeDefault decodes the embedded default YAML.
func decodeDefault() (CatcherConfig, error) {
	var cfg CatcherConfig
	if err := yaml.Unmarshal(defaultCatcherYAML, &cfg); err != nil {
		return DefaultCatcherConfig(), nil // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return DefaultCatcherConfig(), fmt.Errorf("config: embedded default: %w", err)
	}
	return cfg, nil
}

// searchPaths lists the config files tried when no custom path is given.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catcher", "configs", filename)
}

// ApplyCatcherPreset modifies the config based on a difficulty preset.
// The normal preset keeps the reference rules untouched.
func ApplyCatcherPreset(cfg *CatcherConfig, preset DifficultyPreset) {
	if preset == "" || preset == DifficultyNormal {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Rules.WinScore = 5
		cfg.Player.Speed *= 1.2
	case DifficultyHard:
		cfg.Rules.WinScore = 15
		cfg.Cats.Width *= 0.8
		cfg.Cats.Height *= 0.8
	}
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg CatcherConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
