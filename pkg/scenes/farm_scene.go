package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/internal/metrics"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/config"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/entities"
	"github.com/decker502/sunnyside/pkg/game"
	"github.com/decker502/sunnyside/pkg/systems"
	"github.com/decker502/sunnyside/pkg/systems/behavior"
	"github.com/decker502/sunnyside/pkg/utils"
)

// Input 一帧的玩家输入
type Input struct {
	Move     utils.Vec2 // 方向输入，各分量在 [-1, 1]
	Attack   bool
	Dig      bool
	Interact bool
}

// FarmSceneOptions 创建农场场景所需的外部协作者
type FarmSceneOptions struct {
	Config  *config.WorldConfig
	Clips   animation.ClipProvider
	Sound   game.SoundPlayer // 可为 nil（静音）
	Store   game.CropStore   // 可为 nil（仅内存）
	Metrics metrics.Recorder // 可为 nil
	Rand    *rand.Rand       // 可为 nil，使用 Config.Seed

	// ResetCrops 为 true 时启动即清零已保存的收获计数
	ResetCrops bool
}

// FarmScene 农场场景
//
// 持有实体世界和全部系统，并固定系统的执行顺序：
//   - FixedUpdate: 玩家状态机 → 漫游转向 → 物理积分 → 触发区
//   - Update: 行为决策 → 动画推进 → 消息计时 → 清除单帧动作
type FarmScene struct {
	entityManager *ecs.EntityManager
	config        *config.WorldConfig
	world         *entities.World

	playerSystem    *systems.PlayerSystem
	behaviorSystem  *behavior.BehaviorSystem
	physicsSystem   *systems.PhysicsSystem
	triggerSystem   *systems.TriggerSystem
	animationSystem *systems.AnimationSystem

	messages *game.MessageBoard
	crops    *game.CropDataManager
	cropLine string // HUD 收获计数行，记录变更时刷新

	cameraX, cameraY float64
}

// NewFarmScene 创建场景并填充世界
func NewFarmScene(opts FarmSceneOptions) (*FarmScene, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("world config cannot be nil")
	}
	if opts.Clips == nil {
		return nil, fmt.Errorf("clip provider cannot be nil")
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
		log.Printf("[FarmScene] Using seed %d", seed)
	}

	em := ecs.NewEntityManager()
	s := &FarmScene{
		entityManager:   em,
		config:          opts.Config,
		physicsSystem:   systems.NewPhysicsSystem(em),
		triggerSystem:   systems.NewTriggerSystem(em),
		animationSystem: systems.NewAnimationSystem(em),
		messages:        game.NewMessageBoard(opts.Config.Messages.Duration),
		crops:           game.NewCropDataManager(opts.Store),
	}
	s.cropLine = formatCropLine(s.crops.Record())
	s.crops.OnChanged(func(record game.CropSaveRecord) {
		s.cropLine = formatCropLine(record)
	})
	if opts.ResetCrops {
		s.crops.Reset()
		log.Printf("[FarmScene] Crop record reset")
	}
	s.playerSystem = systems.NewPlayerSystem(em, opts.Sound, opts.Metrics)
	s.behaviorSystem = behavior.NewBehaviorSystem(em, s.playerSystem, opts.Sound, s.messages, s.crops, opts.Metrics, rng)

	world, err := entities.NewWorldPopulator(em, opts.Clips, opts.Config, rng).Populate()
	if err != nil {
		return nil, fmt.Errorf("failed to populate farm: %w", err)
	}
	s.world = world

	if checker, ok := opts.Clips.(interface{ CheckKinds([]string) int }); ok {
		if missing := checker.CheckKinds(world.Kinds); missing > 0 {
			log.Printf("[FarmScene] Warning: %d entity kinds have no idle clip", missing)
		}
	}

	log.Printf("[FarmScene] Farm ready: %d entities (%d animals, %d npcs, %d skeletons, %d goblins, %d crops)",
		world.Total(), len(world.Animals), len(world.NPCs), len(world.Skeletons), len(world.Goblins), len(world.Crops))
	return s, nil
}

// SetInput 把一帧的输入交给玩家状态机
// 必须在该帧的 FixedUpdate 之前调用
func (s *FarmScene) SetInput(in Input) {
	player := s.world.Player
	s.playerSystem.SetMoveInput(player, in.Move)
	if in.Attack {
		s.playerSystem.RequestAttack(player)
	}
	if in.Dig {
		s.playerSystem.RequestDig(player)
	}
	if in.Interact {
		s.playerSystem.RequestInteract(player)
	}
}

// FixedUpdate 实现 game.Scene
func (s *FarmScene) FixedUpdate(fixedStep float64) {
	s.playerSystem.FixedUpdate(fixedStep)
	s.behaviorSystem.FixedUpdate(fixedStep)
	s.physicsSystem.FixedUpdate(fixedStep)
	s.triggerSystem.FixedUpdate(fixedStep)
}

// Update 实现 game.Scene
func (s *FarmScene) Update(deltaTime float64) {
	s.behaviorSystem.Update(deltaTime)
	s.animationSystem.Update(deltaTime)
	s.messages.Update(deltaTime)
	s.playerSystem.ClearActions()
	s.entityManager.RemoveMarkedEntities()
}

// SaveOnExit 实现 game.Saveable
func (s *FarmScene) SaveOnExit() bool {
	return s.crops.SaveOnExit()
}

// EntityManager 返回场景的实体管理器
func (s *FarmScene) EntityManager() *ecs.EntityManager { return s.entityManager }

// World 返回填充时创建的实体
func (s *FarmScene) World() *entities.World { return s.world }

// Player 返回玩家实体 ID
func (s *FarmScene) Player() ecs.EntityID { return s.world.Player }

// PlayerSystem 返回玩家状态机
func (s *FarmScene) PlayerSystem() *systems.PlayerSystem { return s.playerSystem }

// Crops 返回收获计数管理器
func (s *FarmScene) Crops() *game.CropDataManager { return s.crops }

// Messages 返回消息板
func (s *FarmScene) Messages() *game.MessageBoard { return s.messages }

// Summary 返回收获计数的文本行（暂停面板）
func (s *FarmScene) Summary() []string {
	record := s.crops.Record()
	lines := make([]string, 0, len(components.AllCropTypes)+1)
	for _, crop := range components.AllCropTypes {
		lines = append(lines, fmt.Sprintf("%-9s %d", crop.Title(), record.Count(crop)))
	}
	return append(lines, fmt.Sprintf("%-9s %d", "Total", record.Total()))
}

// CropLine 返回 HUD 上的收获计数行
func (s *FarmScene) CropLine() string { return s.cropLine }

func formatCropLine(record game.CropSaveRecord) string {
	line := "Crops:"
	for _, crop := range components.AllCropTypes {
		line += fmt.Sprintf(" %s %d", crop.Title(), record.Count(crop))
	}
	return line
}

// FixedStep 返回配置的固定步长
func (s *FarmScene) FixedStep() float64 { return s.config.FixedStep }

var (
	_ game.Scene    = (*FarmScene)(nil)
	_ game.Saveable = (*FarmScene)(nil)
)
