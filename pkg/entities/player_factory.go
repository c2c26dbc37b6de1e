package entities

import (
	"fmt"

	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/config"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/utils"
)

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - clips: Clip 来源（可为 nil，此时动画请求均为空操作）
//   - cfg: 世界配置（出生点、速度、状态时长、边界）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: em 或 cfg 为 nil 时返回错误
func NewPlayerEntity(em *ecs.EntityManager, clips animation.ClipProvider, cfg *config.WorldConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("world config cannot be nil")
	}

	id := em.CreateEntity()
	spawn := utils.NewVec2(cfg.Player.Spawn.X, cfg.Player.Spawn.Y)

	attachBody(em, id, spawn, cfg.Bounds)
	em.AddComponent(id, &components.CollisionComponent{Radius: cfg.Player.ColliderRadius, Enabled: true})
	attachVisual(em, id, KindPlayer, clips, false)
	em.AddComponent(id, &components.PlayerComponent{
		State:          components.PlayerNormal,
		MoveSpeed:      cfg.Player.MoveSpeed,
		HurtDuration:   cfg.Player.HurtDuration,
		AttackDuration: cfg.Player.AttackDuration,
	})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorPlayer})

	return id, nil
}
