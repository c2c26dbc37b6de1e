package entities

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/config"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/utils"
)

// Perlin 噪声参数
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = int32(3)

	// cropKindOffset 作物种类采样相对于种植采样的偏移，避免两次采样相关
	cropKindOffset = 100.5
)

// World 记录一次填充创建的实体
type World struct {
	Player    ecs.EntityID
	Animals   []ecs.EntityID
	NPCs      []ecs.EntityID
	Skeletons []ecs.EntityID
	Goblins   []ecs.EntityID
	Crops     []ecs.EntityID

	// Kinds 场景中出现的 Clip 类型（去重，按出现顺序）
	Kinds []string
}

// Total 返回创建的实体总数
func (w *World) Total() int {
	n := len(w.Animals) + len(w.NPCs) + len(w.Skeletons) + len(w.Goblins) + len(w.Crops)
	if w.Player != ecs.InvalidEntity {
		n++
	}
	return n
}

func (w *World) addKind(kind string) {
	for _, k := range w.Kinds {
		if k == kind {
			return
		}
	}
	w.Kinds = append(w.Kinds, kind)
}

// WorldPopulator 按配置创建世界中的全部实体
//
// 固定出生点来自 cfg.Spawns；作物田和哥布林位置由随机源和 Perlin 噪声决定，
// 同一种子总是生成相同的世界。
type WorldPopulator struct {
	entityManager *ecs.EntityManager
	clips         animation.ClipProvider
	config        *config.WorldConfig
	rng           *rand.Rand
}

// NewWorldPopulator 创建世界填充器
//
// 参数:
//   - em: 实体管理器
//   - clips: Clip 来源
//   - cfg: 世界配置
//   - rng: 随机源（决定作物田噪声种子、哥布林位置和计时错开）
func NewWorldPopulator(em *ecs.EntityManager, clips animation.ClipProvider, cfg *config.WorldConfig, rng *rand.Rand) *WorldPopulator {
	return &WorldPopulator{
		entityManager: em,
		clips:         clips,
		config:        cfg,
		rng:           rng,
	}
}

// Populate 创建玩家、动物、村民、骷髅、作物和哥布林
//
// 配置中无法识别的种类名记录警告并跳过。
func (p *WorldPopulator) Populate() (*World, error) {
	if p.entityManager == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if p.config == nil {
		return nil, fmt.Errorf("world config cannot be nil")
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(p.config.Seed))
	}

	world := &World{}
	em := p.entityManager
	cfg := p.config

	player, err := NewPlayerEntity(em, p.clips, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	world.Player = player
	world.addKind(KindPlayer)

	for _, spawn := range cfg.Spawns.Animals {
		animalType, ok := components.ParseAnimalType(spawn.Type)
		if !ok {
			log.Printf("[WorldPopulator] Warning: unknown animal type %q, skipped", spawn.Type)
			continue
		}
		id, err := NewAnimalEntity(em, p.clips, cfg, animalType, utils.NewVec2(spawn.X, spawn.Y), p.rng)
		if err != nil {
			return nil, fmt.Errorf("failed to create animal %s: %w", spawn.Type, err)
		}
		world.Animals = append(world.Animals, id)
		world.addKind(AnimalKind(animalType))
	}

	for _, spawn := range cfg.Spawns.NPCs {
		npcType, ok := components.ParseNPCType(spawn.Type)
		if !ok {
			log.Printf("[WorldPopulator] Warning: unknown npc type %q, skipped", spawn.Type)
			continue
		}
		id, err := NewNPCEntity(em, p.clips, cfg, spawn.Name, npcType, utils.NewVec2(spawn.X, spawn.Y), p.rng)
		if err != nil {
			return nil, fmt.Errorf("failed to create npc %s: %w", spawn.Name, err)
		}
		world.NPCs = append(world.NPCs, id)
		world.addKind(NPCKind(npcType))
	}

	for _, spawn := range cfg.Spawns.Skeletons {
		id, err := NewSkeletonEntity(em, p.clips, cfg, utils.NewVec2(spawn.X, spawn.Y))
		if err != nil {
			return nil, fmt.Errorf("failed to create skeleton: %w", err)
		}
		world.Skeletons = append(world.Skeletons, id)
		world.addKind(KindSkeleton)
	}

	for _, spawn := range cfg.Spawns.Crops {
		cropType, ok := components.ParseCropType(spawn.Type)
		if !ok {
			log.Printf("[WorldPopulator] Warning: unknown crop type %q, skipped", spawn.Type)
			continue
		}
		if err := p.plant(world, cropType, utils.NewVec2(spawn.X, spawn.Y)); err != nil {
			return nil, err
		}
	}

	if cfg.Crop.Field.Enabled {
		if err := p.plantField(world); err != nil {
			return nil, err
		}
	}

	if err := p.spawnGoblins(world); err != nil {
		return nil, err
	}

	log.Printf("[WorldPopulator] Populated world: %d animals, %d npcs, %d skeletons, %d goblins, %d crops",
		len(world.Animals), len(world.NPCs), len(world.Skeletons), len(world.Goblins), len(world.Crops))
	return world, nil
}

func (p *WorldPopulator) plant(world *World, cropType components.CropType, pos utils.Vec2) error {
	id, err := NewCropEntity(p.entityManager, p.clips, p.config, cropType, pos)
	if err != nil {
		return fmt.Errorf("failed to create crop %s: %w", cropType, err)
	}
	world.Crops = append(world.Crops, id)
	world.addKind(CropKind(cropType))
	return nil
}

// plantField 在作物田网格上按噪声种植
//
// 每个格子采样一次噪声（映射到 [0, 1]），超过阈值即种植；
// 种类由偏移后的第二次采样决定。
func (p *WorldPopulator) plantField(world *World) error {
	field := p.config.Crop.Field
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, p.rng.Int63())

	for row := 0; row < field.Rows; row++ {
		for col := 0; col < field.Cols; col++ {
			x := float64(col) * field.Scale
			y := float64(row) * field.Scale
			if normalizedNoise(noise, x, y) <= field.Threshold {
				continue
			}

			kindSample := normalizedNoise(noise, x+cropKindOffset, y+cropKindOffset)
			cropType := CropTypeFromSample(kindSample)

			pos := utils.NewVec2(
				field.Origin.X+float64(col)*field.Spacing,
				field.Origin.Y+float64(row)*field.Spacing,
			)
			if err := p.plant(world, cropType, pos); err != nil {
				return err
			}
		}
	}
	return nil
}

// spawnGoblins 在玩家出生点周围的圆盘内随机放置哥布林
func (p *WorldPopulator) spawnGoblins(world *World) error {
	ring := p.config.Spawns.Goblins
	center := utils.NewVec2(p.config.Player.Spawn.X, p.config.Player.Spawn.Y)

	for i := 0; i < ring.Count; i++ {
		pos := utils.RandomInDisc(p.rng, center, ring.Radius)
		if ring.ClampX > 0 {
			pos.X = utils.Clamp(pos.X, -ring.ClampX, ring.ClampX)
		}
		if ring.ClampY > 0 {
			pos.Y = utils.Clamp(pos.Y, -ring.ClampY, ring.ClampY)
		}

		id, err := NewGoblinEntity(p.entityManager, p.clips, p.config, i+1, pos, p.rng)
		if err != nil {
			return fmt.Errorf("failed to create goblin %d: %w", i+1, err)
		}
		world.Goblins = append(world.Goblins, id)
		world.addKind(KindGoblin)
	}
	return nil
}

// normalizedNoise 返回 [0, 1] 范围内的噪声值
func normalizedNoise(noise *perlin.Perlin, x, y float64) float64 {
	return utils.Clamp((noise.Noise2D(x, y)+1.0)/2.0, 0, 1)
}

// CropTypeFromSample 把 [0, 1] 的采样值映射为作物种类
func CropTypeFromSample(sample float64) components.CropType {
	n := len(components.AllCropTypes)
	idx := int(sample * float64(n))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return components.AllCropTypes[idx]
}
