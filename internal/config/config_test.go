package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	assert.Equal(t, Default(), embedded())
	assert.NoError(t, Default().Validate())
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Runtime.TickRate)
	assert.Equal(t, 800*time.Millisecond, cfg.Games.Puzzle1.MatchDelay)
	assert.Len(t, cfg.Games.Puzzle1.Icons, 8)
}

func TestLoadUserConfigIsLayered(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("runtime:\n  tick_rate: 30\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Runtime.TickRate)
	// Untouched keys keep their defaults
	assert.Equal(t, 250*time.Millisecond, cfg.Runtime.KeyRelease)
	assert.Equal(t, 5.0, cfg.Games.Racing1.CarSpeed)
}

func TestLoadInvalidUserConfigIsSkipped(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("runtime:\n  tick_rate: -1\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Runtime.TickRate)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := "games:\n  math1:\n    start_seconds: 45\n  puzzle1:\n    match_delay: 1s\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.Games.Math1.StartSeconds)
	assert.Equal(t, time.Second, cfg.Games.Puzzle1.MatchDelay)
	assert.Equal(t, 10, cfg.Games.Math1.CorrectPoints)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "config: read")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("canvas: [not, a, map"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "config: parse")

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("canvas:\n  width: 0\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "canvas size must be positive")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero tick rate", func(c *Config) { c.Runtime.TickRate = 0 }, "tick_rate"},
		{"no key release", func(c *Config) { c.Runtime.KeyRelease = 0 }, "key_release"},
		{"too few numbers", func(c *Config) { c.Games.Math2.Numbers = 2 }, "games.math2"},
		{"pair chance out of range", func(c *Config) { c.Games.Math2.PairChance = 1.5 }, "pair_chance"},
		{"no icons", func(c *Config) { c.Games.Puzzle1.Icons = nil }, "games.puzzle1"},
		{"spawn chance out of range", func(c *Config) { c.Games.Racing2.SpawnChance = -0.1 }, "racing2.spawn_chance"},
		{"dead enemies", func(c *Config) { c.Games.Action1.EnemyHealth = 0 }, "enemy_health"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.errMsg)
		})
	}
}
