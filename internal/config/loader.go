package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "arcade.yaml"

// Load loads the arcade configuration.
// Search order: customPath -> ~/.arcade/configs/arcade.yaml -> ./configs/arcade.yaml -> embedded default.
// Files are layered over the embedded defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	cfg := embedded()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", FileName)}
	if p := userConfigPath(FileName); p != "" {
		candidates = append([]string{p}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		layered := cfg
		if err := yaml.Unmarshal(data, &layered); err != nil {
			continue
		}
		if err := layered.Validate(); err != nil {
			continue
		}
		return layered, nil
	}

	return cfg, nil
}

// embedded parses the embedded default YAML, falling back to Default.
func embedded() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultArcadeYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports every setting that cannot run a game.
func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Runtime.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("runtime.tick_rate must be positive, got %d", c.Runtime.TickRate))
	}
	if c.Runtime.KeyRelease <= 0 {
		errs = append(errs, errors.New("runtime.key_release must be positive"))
	}

	g := c.Games
	if g.Math1.Tick <= 0 || g.Math1.StartSeconds <= 0 {
		errs = append(errs, errors.New("games.math1: tick and start_seconds must be positive"))
	}
	if g.Math1.MaxOperand < 1 {
		errs = append(errs, errors.New("games.math1.max_operand must be at least 1"))
	}
	if g.Math2.Numbers < 3 || g.Math2.Columns < 1 || g.Math2.MaxValue < 1 {
		errs = append(errs, errors.New("games.math2: need at least 3 numbers, 1 column and max_value >= 1"))
	}
	if g.Math2.PairChance < 0 || g.Math2.PairChance > 1 {
		errs = append(errs, fmt.Errorf("games.math2.pair_chance must be within [0, 1], got %v", g.Math2.PairChance))
	}
	if g.Action1.EnemyHealth < 1 {
		errs = append(errs, errors.New("games.action1.enemy_health must be at least 1"))
	}
	if len(g.Puzzle1.Icons) == 0 || g.Puzzle1.Columns < 1 {
		errs = append(errs, errors.New("games.puzzle1: need icons and at least 1 column"))
	}
	if g.Puzzle1.MatchDelay <= 0 || g.Math2.NextPuzzle <= 0 {
		errs = append(errs, errors.New("games: deferred delays must be positive"))
	}
	for name, p := range map[string]float64{
		"racing1.spawn_chance": g.Racing1.SpawnChance,
		"racing2.spawn_chance": g.Racing2.SpawnChance,
		"action1.spawn_chance": g.Action1.SpawnChance,
	} {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("games.%s must be within [0, 1], got %v", name, p))
		}
	}
	return errors.Join(errs...)
}
