package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/config"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/utils"
)

// NewAnimalEntity 创建动物实体
//
// 动物在出生点附近漫游，玩家靠近时显示友好表情，被攻击一次即死亡，
// 死亡后等待 respawnTime 在出生点复活。
//
// 参数:
//   - em: 实体管理器
//   - clips: Clip 来源
//   - cfg: 世界配置（使用 cfg.Animal 和 cfg.Bounds）
//   - animalType: 动物种类
//   - pos: 出生点
//   - rng: 随机源，用于错开各动物的漫游和叫声计时（可为 nil）
func NewAnimalEntity(em *ecs.EntityManager, clips animation.ClipProvider, cfg *config.WorldConfig,
	animalType components.AnimalType, pos utils.Vec2, rng *rand.Rand) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("world config cannot be nil")
	}

	id := em.CreateEntity()
	attachCreature(em, id, cfg, cfg.Animal, pos, rng)
	attachVisual(em, id, AnimalKind(animalType), clips, false)

	animal := &components.AnimalComponent{
		Type:          animalType,
		SoundInterval: cfg.Animal.SoundInterval,
		SoundJitter:   cfg.Animal.SoundJitter,
	}
	if animal.SoundInterval > 0 {
		animal.SoundTimer.Start(jittered(rng, animal.SoundInterval, animal.SoundJitter))
	}
	em.AddComponent(id, animal)
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorAnimal})

	return id, nil
}

// NewNPCEntity 创建村民实体
//
// 村民的漫游、表情、死亡与动物相同，额外支持在 InteractionRange 内对话。
func NewNPCEntity(em *ecs.EntityManager, clips animation.ClipProvider, cfg *config.WorldConfig,
	name string, npcType components.NPCType, pos utils.Vec2, rng *rand.Rand) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("world config cannot be nil")
	}
	if name == "" {
		name = "NPC"
	}

	id := em.CreateEntity()
	attachCreature(em, id, cfg, cfg.NPC.CreatureConfig, pos, rng)
	attachVisual(em, id, NPCKind(npcType), clips, false)
	em.AddComponent(id, &components.NPCComponent{
		Name:             name,
		Type:             npcType,
		InteractionRange: cfg.NPC.InteractionRange,
	})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorNPC})

	return id, nil
}

// attachCreature 添加动物与村民共用的组件
func attachCreature(em *ecs.EntityManager, id ecs.EntityID, cfg *config.WorldConfig, cc config.CreatureConfig, pos utils.Vec2, rng *rand.Rand) {
	attachBody(em, id, pos, cfg.Bounds)
	attachTrigger(em, id, cc.TriggerRadius)
	attachLife(em, id, pos, cc.RespawnTime)

	roam := &components.RoamComponent{
		Home:          pos,
		Radius:        cc.RoamRadius,
		Speed:         cc.RoamSpeed,
		Interval:      cc.RoamInterval,
		Jitter:        cc.RoamJitter,
		ArriveEpsilon: cc.ArriveEpsilon,
	}
	roam.Timer.Start(jittered(rng, roam.Interval, roam.Jitter))
	em.AddComponent(id, roam)

	em.AddComponent(id, &components.EmoteComponent{Duration: cc.EmoteDuration})
	em.AddComponent(id, &components.AttackableComponent{Cooldown: cc.AttackCooldown})
}

// jittered 返回 base ± spread；rng 为 nil 时返回 base
func jittered(rng *rand.Rand, base, spread float64) float64 {
	if rng == nil {
		return base
	}
	return utils.Jitter(rng, base, spread)
}
