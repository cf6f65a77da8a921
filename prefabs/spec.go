package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and decodes a YAML prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// AnimationSpec is a frame count and the delay between frames in seconds.
type AnimationSpec struct {
	Frames int     `yaml:"frames"`
	Delay  float64 `yaml:"delay"`
}

type SizeSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type CameraSpec struct {
	XSmooth float64 `yaml:"x_smooth"`
	YSmooth float64 `yaml:"y_smooth"`
}

type GameSpec struct {
	Name    string     `yaml:"name"`
	ScreenW int        `yaml:"screen_w"`
	ScreenH int        `yaml:"screen_h"`
	MaxFPS  int        `yaml:"max_fps"`
	Camera  CameraSpec `yaml:"camera"`
}

type PlayerSpec struct {
	Name                 string `yaml:"name"`
	SizeSpec             `yaml:",inline"`
	MaxHP                int           `yaml:"max_hp"`
	Speed                float64       `yaml:"speed"`
	Gravity              float64       `yaml:"gravity"`
	JumpPower            float64       `yaml:"jump_power"`
	XPushingDeceleration float64       `yaml:"x_pushing_deceleration"`
	WaterOrLadderFactor  float64       `yaml:"water_or_ladder_factor"`
	FallingDetectionVel  float64       `yaml:"falling_detection_vel"`
	GodModeSeconds       float64       `yaml:"god_mode_seconds"`
	BeWhiteSeconds       float64       `yaml:"be_white_seconds"`
	FlashingSeconds      float64       `yaml:"flashing_seconds"`
	GoAnimation          AnimationSpec `yaml:"go_animation"`
	StandAnimation       AnimationSpec `yaml:"stand_animation"`
}

type PatrolSpec struct {
	SizeSpec  `yaml:",inline"`
	Speed     float64       `yaml:"speed"`
	XPushing  float64       `yaml:"x_pushing"`
	YPushing  float64       `yaml:"y_pushing"`
	Animation AnimationSpec `yaml:"animation"`
}

type SlugSpec struct {
	PatrolSpec         `yaml:",inline"`
	DeathAnimation     AnimationSpec `yaml:"death_animation"`
	PlayerYVelForDeath float64       `yaml:"player_y_vel_for_death"`
	YPushingAfterDeath float64       `yaml:"y_pushing_after_death"`
}

type SkeletonSpec struct {
	PatrolSpec       `yaml:",inline"`
	AttackAnimation  AnimationSpec `yaml:"attack_animation"`
	AttackFrameIndex int           `yaml:"attack_frame_index"`
}

type SpiderSpec struct {
	SizeSpec  `yaml:",inline"`
	Speed     float64       `yaml:"speed"`
	Animation AnimationSpec `yaml:"animation"`
}

type GhostSpec struct {
	PatrolSpec      `yaml:",inline"`
	AttackSpeed     float64 `yaml:"attack_speed"`
	YDeviation      float64 `yaml:"y_deviation"`
	YDeviationSpeed float64 `yaml:"y_deviation_speed"`
	Script          string  `yaml:"script"`
}

type CannonballSpec struct {
	SizeSpec       `yaml:",inline"`
	StartSpeed     float64       `yaml:"start_speed"`
	EndSpeed       float64       `yaml:"end_speed"`
	SpeedDecrease  float64       `yaml:"speed_decrease"`
	DeathAnimation AnimationSpec `yaml:"death_animation"`
}

type CannonSpec struct {
	SizeSpec         `yaml:",inline"`
	ShootAnimation   AnimationSpec  `yaml:"shoot_animation"`
	ShootFrameIndex  int            `yaml:"shoot_frame_index"`
	BallSpawnYIndent int            `yaml:"ball_spawn_y_indent"`
	Ball             CannonballSpec `yaml:"ball"`
}

type EnemiesSpec struct {
	Slug     SlugSpec     `yaml:"slug"`
	Bat      PatrolSpec   `yaml:"bat"`
	Skeleton SkeletonSpec `yaml:"skeleton"`
	Spider   SpiderSpec   `yaml:"spider"`
	Ghost    GhostSpec    `yaml:"ghost"`
	Cannon   CannonSpec   `yaml:"cannon"`
}

type AnimatedItemSpec struct {
	SizeSpec  `yaml:",inline"`
	Animation AnimationSpec `yaml:"animation"`
}

type CoinSpec struct {
	AnimatedItemSpec `yaml:",inline"`
	FlyingSpeed      float64 `yaml:"flying_speed"`
}

type ChestSpec struct {
	SizeSpec     `yaml:",inline"`
	DefaultCount int     `yaml:"default_count"`
	SpawnDelay   float64 `yaml:"spawn_delay"`
}

type SpikeSpec struct {
	SizeSpec         `yaml:",inline"`
	PlayerYVelForHit float64 `yaml:"player_y_vel_for_hit"`
}

type HintSpec struct {
	AnimatedItemSpec `yaml:",inline"`
	TextDelay        float64 `yaml:"text_delay"`
	TextStep         int     `yaml:"text_step"`
}

type ItemsSpec struct {
	Coin   CoinSpec         `yaml:"coin"`
	Chest  ChestSpec        `yaml:"chest"`
	Heart  AnimatedItemSpec `yaml:"heart"`
	Shield AnimatedItemSpec `yaml:"shield"`
	Spike  SpikeSpec        `yaml:"spike"`
	Hint   HintSpec         `yaml:"hint"`
	Finish SizeSpec         `yaml:"finish"`
}

// Specs bundles every prefab the game needs.
type Specs struct {
	Game    GameSpec
	Player  PlayerSpec
	Enemies EnemiesSpec
	Items   ItemsSpec
}

// LoadAll loads every prefab file.
func LoadAll() (*Specs, error) {
	game, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	player, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	enemies, err := LoadSpec[EnemiesSpec]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	items, err := LoadSpec[ItemsSpec]("items.yaml")
	if err != nil {
		return nil, err
	}
	if game.MaxFPS <= 0 {
		return nil, fmt.Errorf("prefabs: game.yaml: max_fps must be positive, got %d", game.MaxFPS)
	}
	if game.ScreenW <= 0 || game.ScreenH <= 0 {
		return nil, fmt.Errorf("prefabs: game.yaml: invalid screen %dx%d", game.ScreenW, game.ScreenH)
	}
	if player.WaterOrLadderFactor <= 0 {
		return nil, fmt.Errorf("prefabs: player.yaml: water_or_ladder_factor must be positive, got %v", player.WaterOrLadderFactor)
	}
	return &Specs{Game: game, Player: player, Enemies: enemies, Items: items}, nil
}
