package entities

import (
	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/config"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/utils"
)

// 实体类型（Clip 查找键）
const (
	KindPlayer   = "player"
	KindSkeleton = "skeleton"
	KindGoblin   = "goblin"
)

// AnimalKind 返回动物的 Clip 类型名，如 "animal_cow"
func AnimalKind(t components.AnimalType) string {
	return "animal_" + t.String()
}

// NPCKind 返回村民的 Clip 类型名，如 "npc_human"
func NPCKind(t components.NPCType) string {
	return "npc_" + t.String()
}

// CropKind 返回作物的 Clip 类型名，如 "crop_carrot"
func CropKind(t components.CropType) string {
	return "crop_" + t.String()
}

// attachVisual 为实体添加独占的 SpriteComponent 和动画控制器，并开始播放 idle
//
// 每个实体拥有自己的 SpriteComponent，控制器之间不共享显示目标。
func attachVisual(em *ecs.EntityManager, id ecs.EntityID, kind string, clips animation.ClipProvider, tinted bool) *animation.Controller {
	sprite := &components.SpriteComponent{Visible: true, Tinted: tinted}
	ctrl := animation.NewController(kind, sprite, clips)
	ctrl.PlayIdle()

	em.AddComponent(id, sprite)
	em.AddComponent(id, &components.AnimationComponent{Controller: ctrl})
	return ctrl
}

// attachBody 添加位置、速度和世界边界
func attachBody(em *ecs.EntityManager, id ecs.EntityID, pos utils.Vec2, bounds config.BoundsConfig) {
	em.AddComponent(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.BoundsComponent{
		MinX: bounds.MinX, MaxX: bounds.MaxX,
		MinY: bounds.MinY, MaxY: bounds.MaxY,
	})
}

// attachTrigger 添加与触发区同半径的碰撞体和触发区
func attachTrigger(em *ecs.EntityManager, id ecs.EntityID, radius float64) {
	em.AddComponent(id, &components.CollisionComponent{Radius: radius, Enabled: true})
	em.AddComponent(id, &components.TriggerComponent{Radius: radius})
}

// attachLife 添加死亡/复活状态，复活位置为出生点
func attachLife(em *ecs.EntityManager, id ecs.EntityID, pos utils.Vec2, respawnTime float64) {
	em.AddComponent(id, &components.LifeComponent{
		Phase:       components.LifeAlive,
		RespawnTime: respawnTime,
		SpawnX:      pos.X,
		SpawnY:      pos.Y,
	})
}
