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

// NewSkeletonEntity 创建骷髅实体
//
// 骷髅在检测范围内追击玩家，进入攻击范围后按冷却攻击；
// 生命值耗尽后死亡，等待 respawnTime 后以满血在出生点复活。
func NewSkeletonEntity(em *ecs.EntityManager, clips animation.ClipProvider, cfg *config.WorldConfig, pos utils.Vec2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("world config cannot be nil")
	}

	sc := cfg.Skeleton
	id := em.CreateEntity()
	attachBody(em, id, pos, cfg.Bounds)
	attachTrigger(em, id, sc.TriggerRadius)
	attachLife(em, id, pos, sc.RespawnTime)
	attachVisual(em, id, KindSkeleton, clips, false)

	em.AddComponent(id, &components.HealthComponent{CurrentHealth: sc.MaxHealth, MaxHealth: sc.MaxHealth})
	em.AddComponent(id, &components.SkeletonComponent{
		DetectionRange: sc.DetectionRange,
		AttackRange:    sc.AttackRange,
		ChaseSpeed:     sc.ChaseSpeed,
		AttackCooldown: sc.AttackCooldown,
		AttackForce:    sc.AttackForce,
		HurtDuration:   sc.HurtDuration,
		RecoilForce:    sc.RecoilForce,
	})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorSkeleton})

	return id, nil
}

// NewGoblinEntity 创建哥布林实体
//
// 哥布林像村民一样漫游，玩家接触时把玩家击退。
//
// 参数:
//   - index: 序号（从 1 开始），用于显示名 "Goblin N"
func NewGoblinEntity(em *ecs.EntityManager, clips animation.ClipProvider, cfg *config.WorldConfig,
	index int, pos utils.Vec2, rng *rand.Rand) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("world config cannot be nil")
	}

	id := em.CreateEntity()
	attachBody(em, id, pos, cfg.Bounds)
	attachTrigger(em, id, cfg.Monster.TriggerRadius)
	attachVisual(em, id, KindGoblin, clips, false)

	cc := cfg.NPC.CreatureConfig
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

	em.AddComponent(id, &components.NPCComponent{
		Name:             fmt.Sprintf("Goblin %d", index),
		Type:             components.NPCGoblin,
		InteractionRange: cfg.NPC.InteractionRange,
	})
	em.AddComponent(id, &components.MonsterComponent{KnockbackForce: cfg.Monster.KnockbackForce})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorMonster})

	return id, nil
}
