package behavior

import (
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
)

// handleMonsterBehavior 处理哥布林行为
// 玩家进入触发区时把玩家击退，并播放攻击动画
func (s *BehaviorSystem) handleMonsterBehavior(id ecs.EntityID, player playerView) {
	monster, ok := ecs.GetComponent[*components.MonsterComponent](s.entityManager, id)
	if !ok {
		return
	}
	trigger, ok := ecs.GetComponent[*components.TriggerComponent](s.entityManager, id)
	if !ok || !trigger.ConsumeEntered() || !player.ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	if !s.KnockbackPlayer(player.id, pos.Vec(), monster.KnockbackForce, components.BehaviorMonster.String()) {
		return
	}
	if ctrl := s.controller(id); ctrl != nil {
		ctrl.PlayAttack()
	}
	s.showMessage(player.id, MessagePlayerHurt)
}
