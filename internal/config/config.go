// Package config provides YAML-based configuration loading for the arcade:
// canvas size, runtime pacing and every gameplay constant of each game.
package config

import "time"

// Config is the top-level arcade configuration.
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Runtime RuntimeConfig `yaml:"runtime"`
	Games   Games         `yaml:"games"`
}

// CanvasConfig is the logical size of the shared drawing surface.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RuntimeConfig controls frame pacing and input emulation.
type RuntimeConfig struct {
	TickRate   int           `yaml:"tick_rate"`
	Seed       int64         `yaml:"seed"`        // 0 = seed from the clock
	KeyRelease time.Duration `yaml:"key_release"` // emulated key-up delay
}

// Games holds per-game tuning.
type Games struct {
	Racing1 Racing1Config `yaml:"racing1"`
	Racing2 Racing2Config `yaml:"racing2"`
	Math1   Math1Config   `yaml:"math1"`
	Math2   Math2Config   `yaml:"math2"`
	Action1 Action1Config `yaml:"action1"`
	Puzzle1 Puzzle1Config `yaml:"puzzle1"`
}

// Racing1Config tunes the obstacle-dodging racer.
type Racing1Config struct {
	CarWidth        float64 `yaml:"car_width"`
	CarHeight       float64 `yaml:"car_height"`
	CarSpeed        float64 `yaml:"car_speed"`
	CarBottomOffset float64 `yaml:"car_bottom_offset"` // car top = canvas height - offset
	ObstacleWidth   float64 `yaml:"obstacle_width"`
	ObstacleHeight  float64 `yaml:"obstacle_height"`
	ObstacleSpeed   float64 `yaml:"obstacle_speed"`
	SpawnChance     float64 `yaml:"spawn_chance"` // per frame
}

// Racing2Config tunes the coin-collecting racer.
type Racing2Config struct {
	CarRadius       float64 `yaml:"car_radius"`
	CarBottomOffset float64 `yaml:"car_bottom_offset"`
	MoveSpeed       float64 `yaml:"move_speed"`
	EdgeMargin      float64 `yaml:"edge_margin"`
	CoinSize        float64 `yaml:"coin_size"`
	InitialSpeed    float64 `yaml:"initial_speed"`
	SpeedStep       float64 `yaml:"speed_step"`
	SpawnChance     float64 `yaml:"spawn_chance"`
	PickupRadius    float64 `yaml:"pickup_radius"`
	CoinValue       int     `yaml:"coin_value"`
}

// Math1Config tunes the timed arithmetic quiz.
type Math1Config struct {
	StartSeconds  int           `yaml:"start_seconds"`
	Tick          time.Duration `yaml:"tick"`
	MaxOperand    int           `yaml:"max_operand"`
	CorrectPoints int           `yaml:"correct_points"`
	BonusSeconds  int           `yaml:"bonus_seconds"`
	WrongPenalty  int           `yaml:"wrong_penalty"`
}

// Math2Config tunes the target-sum puzzle.
type Math2Config struct {
	Numbers     int           `yaml:"numbers"`
	Columns     int           `yaml:"columns"`
	MaxValue    int           `yaml:"max_value"`
	OriginX     float64       `yaml:"origin_x"`
	OriginY     float64       `yaml:"origin_y"`
	SpacingX    float64       `yaml:"spacing_x"`
	SpacingY    float64       `yaml:"spacing_y"`
	HitRadius   float64       `yaml:"hit_radius"`
	BasePoints  int           `yaml:"base_points"`
	NextPuzzle  time.Duration `yaml:"next_puzzle"`
	PairChance  float64       `yaml:"pair_chance"` // probability the target uses 2 numbers instead of 3
}

// Action1Config tunes the click-to-shoot arena.
type Action1Config struct {
	PlayerSize  float64 `yaml:"player_size"`
	EnemySize   float64 `yaml:"enemy_size"`
	EnemyHealth int     `yaml:"enemy_health"`
	MinSpeed    float64 `yaml:"min_speed"`
	SpeedRange  float64 `yaml:"speed_range"`
	SpawnChance float64 `yaml:"spawn_chance"`
	SpawnMargin float64 `yaml:"spawn_margin"` // distance outside the edge where enemies appear
	KillPoints  int     `yaml:"kill_points"`
}

// Puzzle1Config tunes the memory-matching puzzle.
type Puzzle1Config struct {
	Icons      []string      `yaml:"icons"`
	Columns    int           `yaml:"columns"`
	OriginX    float64       `yaml:"origin_x"`
	OriginY    float64       `yaml:"origin_y"`
	SpacingX   float64       `yaml:"spacing_x"`
	SpacingY   float64       `yaml:"spacing_y"`
	CardWidth  float64       `yaml:"card_width"`
	CardHeight float64       `yaml:"card_height"`
	MatchDelay time.Duration `yaml:"match_delay"`
}

// FrameInterval returns the wall-clock duration of one frame.
func (r RuntimeConfig) FrameInterval() time.Duration {
	if r.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(r.TickRate)
}
