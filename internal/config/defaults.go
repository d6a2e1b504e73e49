package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArcadeYAML
}

// Default returns the built-in arcade configuration. It matches the
// embedded defaults/arcade.yaml and is used if that fails to parse.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Runtime: RuntimeConfig{
			TickRate:   60,
			Seed:       0,
			KeyRelease: 250 * time.Millisecond,
		},
		Games: DefaultGames(),
	}
}

// DefaultGames returns the built-in tuning of every game.
func DefaultGames() Games {
	return Games{
		Racing1: Racing1Config{
			CarWidth:        40,
			CarHeight:       60,
			CarSpeed:        5,
			CarBottomOffset: 100,
			ObstacleWidth:   40,
			ObstacleHeight:  60,
			ObstacleSpeed:   3,
			SpawnChance:     0.02,
		},
		Racing2: Racing2Config{
			CarRadius:       30,
			CarBottomOffset: 80,
			MoveSpeed:       5,
			EdgeMargin:      30,
			CoinSize:        30,
			InitialSpeed:    3,
			SpeedStep:       0.1,
			SpawnChance:     0.03,
			PickupRadius:    40,
			CoinValue:       10,
		},
		Math1: Math1Config{
			StartSeconds:  30,
			Tick:          time.Second,
			MaxOperand:    20,
			CorrectPoints: 10,
			BonusSeconds:  2,
			WrongPenalty:  5,
		},
		Math2: Math2Config{
			Numbers:    6,
			Columns:    3,
			MaxValue:   20,
			OriginX:    150,
			OriginY:    150,
			SpacingX:   200,
			SpacingY:   150,
			HitRadius:  40,
			BasePoints: 10,
			NextPuzzle: 500 * time.Millisecond,
			PairChance: 0.5,
		},
		Action1: Action1Config{
			PlayerSize:  30,
			EnemySize:   25,
			EnemyHealth: 2,
			MinSpeed:    1,
			SpeedRange:  2,
			SpawnChance: 0.02,
			SpawnMargin: 30,
			KillPoints:  10,
		},
		Puzzle1: Puzzle1Config{
			Icons:      []string{"🎮", "🏆", "⭐", "🎯", "🎨", "🎪", "🎭", "🎸"},
			Columns:    4,
			OriginX:    150,
			OriginY:    50,
			SpacingX:   150,
			SpacingY:   110,
			CardWidth:  120,
			CardHeight: 100,
			MatchDelay: 800 * time.Millisecond,
		},
	}
}
