package behavior

import (
	"fmt"

	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/game"
)

// handleAnimalBehavior 处理动物行为
//   - 按间隔发出环境叫声
//   - 非攻击状态的玩家进入触发区：显示 "<3" 并播放互动动画（表情显示期间不重复）
//   - 攻击状态的玩家在触发区内：显示 "</3" 并死亡
func (s *BehaviorSystem) handleAnimalBehavior(id ecs.EntityID, deltaTime float64, player playerView) {
	animal, ok := ecs.GetComponent[*components.AnimalComponent](s.entityManager, id)
	if !ok {
		return
	}

	if animal.SoundTimer.Tick(deltaTime) {
		s.playSound(game.SoundEnvironment, animal.Type.String())
		animal.SoundTimer.Start(s.jitter(animal.SoundInterval, animal.SoundJitter))
	}

	s.handleCreatureContact(id, components.BehaviorAnimal, player, func() {
		s.playSound(game.SoundNPC, animal.Type.String())
	})
}

// handleNPCBehavior 处理村民行为
// 与动物相同的接触逻辑，另外响应交互：在 InteractionRange 内按下交互键时对话
func (s *BehaviorSystem) handleNPCBehavior(id ecs.EntityID, deltaTime float64, player playerView) {
	npc, ok := ecs.GetComponent[*components.NPCComponent](s.entityManager, id)
	if !ok {
		return
	}

	if s.handleCreatureContact(id, components.BehaviorNPC, player, nil) {
		return
	}

	if player.action() != components.ActionInteract {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok || pos.Vec().DistanceTo(player.pos) > npc.InteractionRange {
		return
	}

	s.talk(id, npc, player)
}

// talk 与村民对话：停下、面向玩家、播放互动动画并显示对话消息
func (s *BehaviorSystem) talk(id ecs.EntityID, npc *components.NPCComponent, player playerView) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.Stop()
	}
	if roam, ok := ecs.GetComponent[*components.RoamComponent](s.entityManager, id); ok && roam.HasTarget {
		roam.HasTarget = false
		roam.Timer.Start(s.jitter(roam.Interval, roam.Jitter))
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.FlipX = player.pos.X < pos.X
		}
	}
	if ctrl := s.controller(id); ctrl != nil {
		ctrl.PlayInteraction()
	}

	s.playSound(game.SoundNPC, npc.Type.String())
	s.showMessage(id, fmt.Sprintf("Talking with %s", npc.Name))
}

// handleCreatureContact 处理动物与村民共用的玩家接触逻辑
//
// 参数:
//   - friendly: 显示友好表情时的附加动作（可为 nil）
//
// 返回:
//   - bool: 本帧实体被攻击致死
func (s *BehaviorSystem) handleCreatureContact(id ecs.EntityID, kind components.BehaviorType, player playerView, friendly func()) bool {
	trigger, ok := ecs.GetComponent[*components.TriggerComponent](s.entityManager, id)
	if !ok {
		return false
	}
	entered := trigger.ConsumeEntered()
	if !player.ok {
		return false
	}

	attackable, _ := ecs.GetComponent[*components.AttackableComponent](s.entityManager, id)

	if trigger.PlayerInside && player.attacking() {
		if attackable != nil {
			if attackable.BeingAttacked {
				return false
			}
			attackable.BeingAttacked = true
			attackable.Timer.Start(attackable.Cooldown)
		}
		s.ShowEmote(id, components.EmoteBrokenHeart)
		if friendly != nil {
			friendly()
		}
		s.Kill(id, kind)
		return true
	}

	if !entered {
		return false
	}
	if emote, ok := ecs.GetComponent[*components.EmoteComponent](s.entityManager, id); ok && emote.IsShowing() {
		return false
	}
	s.ShowEmote(id, components.EmoteHeart)
	if friendly != nil {
		friendly()
	}
	if ctrl := s.controller(id); ctrl != nil {
		ctrl.PlayInteraction()
	}
	return false
}
