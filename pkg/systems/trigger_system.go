package systems

import (
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
)

// TriggerSystem 检测触发区域与玩家碰撞体的重叠
//
// 在每个固定步长的物理积分之后执行。
// 碰撞体被禁用的实体（死亡、采集中）视为不重叠，
// 因此复活后玩家仍在范围内会再次产生进入事件。
type TriggerSystem struct {
	em *ecs.EntityManager
}

// NewTriggerSystem 创建触发系统
func NewTriggerSystem(em *ecs.EntityManager) *TriggerSystem {
	return &TriggerSystem{em: em}
}

// FixedUpdate 刷新所有触发区域的重叠状态
func (ts *TriggerSystem) FixedUpdate(fixedStep float64) {
	playerID, ok := FindPlayer(ts.em)
	if !ok {
		ts.clearAll()
		return
	}
	playerPos, okPos := ecs.GetComponent[*components.PositionComponent](ts.em, playerID)
	playerCol, okCol := ecs.GetComponent[*components.CollisionComponent](ts.em, playerID)
	if !okPos || !okCol {
		ts.clearAll()
		return
	}

	triggers := ecs.GetEntitiesWith3[*components.TriggerComponent, *components.PositionComponent, *components.CollisionComponent](ts.em)
	for _, id := range triggers {
		if id == playerID {
			continue
		}
		trigger, _ := ecs.GetComponent[*components.TriggerComponent](ts.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ts.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](ts.em, id)

		inside := col.Enabled && playerCol.Enabled &&
			Overlaps(pos.Vec(), trigger.Radius, playerPos.Vec(), playerCol.Radius)
		// 进入事件一直保留到行为系统消费，
		// 一帧内多个步长中进入又离开也不会丢失
		if inside && !trigger.PlayerInside {
			trigger.PlayerEntered = true
		}
		trigger.PlayerInside = inside
	}
}

func (ts *TriggerSystem) clearAll() {
	for _, id := range ecs.GetEntitiesWith1[*components.TriggerComponent](ts.em) {
		trigger, _ := ecs.GetComponent[*components.TriggerComponent](ts.em, id)
		trigger.PlayerInside = false
		trigger.PlayerEntered = false
	}
}
