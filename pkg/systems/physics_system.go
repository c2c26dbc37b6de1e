package systems

import (
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/utils"
)

// PhysicsSystem 在固定步长中积分速度并限制位置
// 必须在所有决策系统（玩家状态机、行为转向）之后执行
type PhysicsSystem struct {
	em *ecs.EntityManager
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{em: em}
}

// FixedUpdate 积分位置：position += velocity × fixedStep，然后限制到边界内
func (ps *PhysicsSystem) FixedUpdate(fixedStep float64) {
	moving := ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](ps.em)
	for _, id := range moving {
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.em, id)
		pos.X += vel.VX * fixedStep
		pos.Y += vel.VY * fixedStep
	}

	bounded := ecs.GetEntitiesWith2[*components.PositionComponent, *components.BoundsComponent](ps.em)
	for _, id := range bounded {
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		bounds, _ := ecs.GetComponent[*components.BoundsComponent](ps.em, id)
		pos.Set(pos.Vec().ClampTo(bounds.MinX, bounds.MaxX, bounds.MinY, bounds.MaxY))
	}
}

// Overlaps 判断两个圆形区域是否重叠（边界相切也算重叠）
func Overlaps(a utils.Vec2, ra float64, b utils.Vec2, rb float64) bool {
	return a.DistanceTo(b) <= ra+rb
}
