package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig 农场世界配置
//
// 包含模拟步长、世界边界、各类实体的调参和出生列表。
// 未在 YAML 中出现的字段保留 DefaultWorldConfig 中的默认值。
//
// 配置文件位置: data/world.yaml
type WorldConfig struct {
	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`

	// FixedStep 物理固定步长（秒）
	FixedStep float64 `yaml:"fixedStep"`

	Bounds   BoundsConfig   `yaml:"bounds"`
	Player   PlayerConfig   `yaml:"player"`
	Animal   CreatureConfig `yaml:"animal"`
	NPC      NPCConfig      `yaml:"npc"`
	Skeleton SkeletonConfig `yaml:"skeleton"`
	Monster  MonsterConfig  `yaml:"monster"`
	Crop     CropConfig     `yaml:"crop"`
	Messages MessageConfig  `yaml:"messages"`
	Audio    AudioConfig    `yaml:"audio"`
	Spawns   SpawnConfig    `yaml:"spawns"`
}

// BoundsConfig 世界矩形边界
type BoundsConfig struct {
	MinX float64 `yaml:"minX"`
	MaxX float64 `yaml:"maxX"`
	MinY float64 `yaml:"minY"`
	MaxY float64 `yaml:"maxY"`
}

// Point 二维坐标
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerConfig 玩家调参
type PlayerConfig struct {
	Spawn          Point   `yaml:"spawn"`
	MoveSpeed      float64 `yaml:"moveSpeed"`
	HurtDuration   float64 `yaml:"hurtDuration"`
	AttackDuration float64 `yaml:"attackDuration"`
	ColliderRadius float64 `yaml:"colliderRadius"`
}

// CreatureConfig 动物与村民共用的调参
type CreatureConfig struct {
	RoamRadius     float64 `yaml:"roamRadius"`
	RoamSpeed      float64 `yaml:"roamSpeed"`
	RoamInterval   float64 `yaml:"roamInterval"`
	RoamJitter     float64 `yaml:"roamJitter"`
	ArriveEpsilon  float64 `yaml:"arriveEpsilon"`
	EmoteDuration  float64 `yaml:"emoteDuration"`
	AttackCooldown float64 `yaml:"attackCooldown"`
	RespawnTime    float64 `yaml:"respawnTime"`
	TriggerRadius  float64 `yaml:"triggerRadius"`
	SoundInterval  float64 `yaml:"soundInterval"`
	SoundJitter    float64 `yaml:"soundJitter"`
}

// NPCConfig 村民调参
type NPCConfig struct {
	CreatureConfig   `yaml:",inline"`
	InteractionRange float64 `yaml:"interactionRange"`
}

// SkeletonConfig 骷髅调参
type SkeletonConfig struct {
	DetectionRange float64 `yaml:"detectionRange"`
	AttackRange    float64 `yaml:"attackRange"`
	ChaseSpeed     float64 `yaml:"chaseSpeed"`
	AttackCooldown float64 `yaml:"attackCooldown"`
	AttackForce    float64 `yaml:"attackForce"`
	MaxHealth      int     `yaml:"maxHealth"`
	HurtDuration   float64 `yaml:"hurtDuration"`
	RespawnTime    float64 `yaml:"respawnTime"`
	RecoilForce    float64 `yaml:"recoilForce"`
	TriggerRadius  float64 `yaml:"triggerRadius"`
}

// MonsterConfig 哥布林调参
type MonsterConfig struct {
	KnockbackForce float64 `yaml:"knockbackForce"`
	TriggerRadius  float64 `yaml:"triggerRadius"`
}

// CropConfig 作物调参
type CropConfig struct {
	RespawnTime   float64         `yaml:"respawnTime"`
	TriggerRadius float64         `yaml:"triggerRadius"`
	Field         CropFieldConfig `yaml:"field"`
}

// CropFieldConfig 程序化作物田
// 在网格的每个格子采样 Perlin 噪声，超过阈值的格子种下作物
type CropFieldConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Origin    Point   `yaml:"origin"`
	Cols      int     `yaml:"cols"`
	Rows      int     `yaml:"rows"`
	Spacing   float64 `yaml:"spacing"`
	Threshold float64 `yaml:"threshold"`
	Scale     float64 `yaml:"scale"`
}

// MessageConfig 消息显示
type MessageConfig struct {
	Duration float64 `yaml:"duration"`
}

// AudioConfig 各类声音的音量（0.0-1.0）
type AudioConfig struct {
	SoundDir          string  `yaml:"soundDir"`
	SFXVolume         float64 `yaml:"sfxVolume"`
	NPCVolume         float64 `yaml:"npcVolume"`
	EnvironmentVolume float64 `yaml:"environmentVolume"`
}

// SpawnConfig 出生列表
type SpawnConfig struct {
	Animals   []AnimalSpawn `yaml:"animals"`
	NPCs      []NPCSpawn    `yaml:"npcs"`
	Skeletons []Point       `yaml:"skeletons"`
	Crops     []CropSpawn   `yaml:"crops"`
	Goblins   GoblinRing    `yaml:"goblins"`
}

// AnimalSpawn 一只动物的出生点
type AnimalSpawn struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// NPCSpawn 一个村民的出生点
type NPCSpawn struct {
	Name string  `yaml:"name"`
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// CropSpawn 一株手工摆放的作物
type CropSpawn struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// GoblinRing 在玩家出生点周围随机生成哥布林
type GoblinRing struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	ClampX float64 `yaml:"clampX"`
	ClampY float64 `yaml:"clampY"`
}

// DefaultWorldConfig 返回默认配置
func DefaultWorldConfig() *WorldConfig {
	return &WorldConfig{
		Seed:      0,
		FixedStep: 0.02,
		Bounds:    BoundsConfig{MinX: -20, MaxX: 20, MinY: -20, MaxY: 20},
		Player: PlayerConfig{
			MoveSpeed:      5,
			HurtDuration:   0.5,
			AttackDuration: 0.5,
			ColliderRadius: 0.25,
		},
		Animal: defaultCreatureConfig(),
		NPC: NPCConfig{
			CreatureConfig:   defaultCreatureConfig(),
			InteractionRange: 1.0,
		},
		Skeleton: SkeletonConfig{
			DetectionRange: 5,
			AttackRange:    1,
			ChaseSpeed:     2,
			AttackCooldown: 1,
			AttackForce:    5,
			MaxHealth:      3,
			HurtDuration:   0.5,
			RespawnTime:    10,
			RecoilForce:    5,
			TriggerRadius:  0.5,
		},
		Monster: MonsterConfig{
			KnockbackForce: 5,
			TriggerRadius:  0.5,
		},
		Crop: CropConfig{
			RespawnTime:   15,
			TriggerRadius: 0.4,
		},
		Messages: MessageConfig{Duration: 2},
		Audio: AudioConfig{
			SoundDir:          "assets/sounds",
			SFXVolume:         0.5,
			NPCVolume:         0.4,
			EnvironmentVolume: 0.35,
		},
	}
}

func defaultCreatureConfig() CreatureConfig {
	return CreatureConfig{
		RoamRadius:     1.5,
		RoamSpeed:      0.5,
		RoamInterval:   3,
		RoamJitter:     0.5,
		ArriveEpsilon:  0.05,
		EmoteDuration:  2,
		AttackCooldown: 0.5,
		RespawnTime:    10,
		TriggerRadius:  0.5,
		SoundInterval:  5,
		SoundJitter:    1,
	}
}

// LoadWorldConfig 加载世界配置
//
// 参数:
//   - path: 配置文件路径（如 "data/world.yaml"）
//
// 返回:
//   - *WorldConfig: 加载成功后的配置（默认值 + 文件内容）
//   - error: 读取、解析或验证失败时返回错误
func LoadWorldConfig(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world config: %w", err)
	}
	return ParseWorldConfig(data)
}

// ParseWorldConfig 从 YAML 字节解析世界配置
// 用于内嵌资源（embedded.ReadFile）
func ParseWorldConfig(data []byte) (*WorldConfig, error) {
	config := DefaultWorldConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse world config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *WorldConfig) Validate() error {
	if c.FixedStep <= 0 {
		return fmt.Errorf("fixedStep must be > 0, got %.3f", c.FixedStep)
	}
	if c.Bounds.MinX >= c.Bounds.MaxX || c.Bounds.MinY >= c.Bounds.MaxY {
		return fmt.Errorf("bounds invalid: x[%.1f, %.1f] y[%.1f, %.1f]",
			c.Bounds.MinX, c.Bounds.MaxX, c.Bounds.MinY, c.Bounds.MaxY)
	}
	if c.Player.MoveSpeed <= 0 {
		return fmt.Errorf("player.moveSpeed must be > 0, got %.2f", c.Player.MoveSpeed)
	}
	if c.Player.HurtDuration <= 0 || c.Player.AttackDuration <= 0 {
		return fmt.Errorf("player durations must be > 0 (hurt=%.2f, attack=%.2f)",
			c.Player.HurtDuration, c.Player.AttackDuration)
	}
	if err := c.Animal.validate("animal"); err != nil {
		return err
	}
	if err := c.NPC.validate("npc"); err != nil {
		return err
	}
	if c.NPC.InteractionRange <= 0 {
		return fmt.Errorf("npc.interactionRange must be > 0, got %.2f", c.NPC.InteractionRange)
	}
	if c.Skeleton.MaxHealth <= 0 {
		return fmt.Errorf("skeleton.maxHealth must be > 0, got %d", c.Skeleton.MaxHealth)
	}
	if c.Skeleton.AttackRange <= 0 || c.Skeleton.AttackRange >= c.Skeleton.DetectionRange {
		return fmt.Errorf("skeleton ranges invalid: attackRange(%.2f) must be in (0, detectionRange(%.2f))",
			c.Skeleton.AttackRange, c.Skeleton.DetectionRange)
	}
	if c.Skeleton.HurtDuration <= 0 || c.Skeleton.RespawnTime < 0 {
		return fmt.Errorf("skeleton durations invalid (hurt=%.2f, respawn=%.2f)",
			c.Skeleton.HurtDuration, c.Skeleton.RespawnTime)
	}
	if c.Crop.RespawnTime < 0 || c.Crop.TriggerRadius <= 0 {
		return fmt.Errorf("crop config invalid (respawn=%.2f, triggerRadius=%.2f)",
			c.Crop.RespawnTime, c.Crop.TriggerRadius)
	}
	if f := c.Crop.Field; f.Enabled && (f.Cols <= 0 || f.Rows <= 0 || f.Spacing <= 0) {
		return fmt.Errorf("crop field invalid: %dx%d spacing %.2f", f.Cols, f.Rows, f.Spacing)
	}
	if c.Messages.Duration <= 0 {
		return fmt.Errorf("messages.duration must be > 0, got %.2f", c.Messages.Duration)
	}
	for _, v := range []float64{c.Audio.SFXVolume, c.Audio.NPCVolume, c.Audio.EnvironmentVolume} {
		if v < 0 || v > 1 {
			return fmt.Errorf("audio volume must be in [0, 1], got %.2f", v)
		}
	}
	if c.Spawns.Goblins.Count < 0 {
		return fmt.Errorf("spawns.goblins.count must be >= 0, got %d", c.Spawns.Goblins.Count)
	}
	return nil
}

func (c CreatureConfig) validate(section string) error {
	if c.RoamRadius < 0 || c.RoamSpeed < 0 {
		return fmt.Errorf("%s roam invalid (radius=%.2f, speed=%.2f)", section, c.RoamRadius, c.RoamSpeed)
	}
	if c.RoamInterval <= 0 || c.RoamJitter < 0 || c.RoamJitter >= c.RoamInterval {
		return fmt.Errorf("%s roamInterval(%.2f) must be > roamJitter(%.2f) >= 0", section, c.RoamInterval, c.RoamJitter)
	}
	if c.EmoteDuration <= 0 || c.AttackCooldown <= 0 || c.TriggerRadius <= 0 {
		return fmt.Errorf("%s emoteDuration, attackCooldown and triggerRadius must be > 0", section)
	}
	if c.RespawnTime < 0 {
		return fmt.Errorf("%s respawnTime must be >= 0, got %.2f", section, c.RespawnTime)
	}
	if c.SoundInterval > 0 && c.SoundJitter >= c.SoundInterval {
		return fmt.Errorf("%s soundJitter(%.2f) must be < soundInterval(%.2f)", section, c.SoundJitter, c.SoundInterval)
	}
	return nil
}
