package entities

import (
	"fmt"

	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/config"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/utils"
)

// NewCropEntity 创建作物实体
//
// 作物以 Planted 阶段（着色显示）开始，不移动，没有速度组件。
func NewCropEntity(em *ecs.EntityManager, clips animation.ClipProvider, cfg *config.WorldConfig,
	cropType components.CropType, pos utils.Vec2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("world config cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	attachTrigger(em, id, cfg.Crop.TriggerRadius)
	attachLife(em, id, pos, cfg.Crop.RespawnTime)
	attachVisual(em, id, CropKind(cropType), clips, true)
	em.AddComponent(id, &components.CropComponent{Type: cropType, Stage: components.CropPlanted})
	em.AddComponent(id, &components.BehaviorComponent{Type: components.BehaviorCrop})

	return id, nil
}
