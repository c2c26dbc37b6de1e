package behavior

import (
	"log"

	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/game"
	"github.com/decker502/sunnyside/pkg/utils"
)

// handleSkeletonBehavior 处理骷髅行为
//
// 决策顺序：
//  1. 受伤中：只推进受伤计时，结束后停下并恢复 AI
//  2. 玩家在触发区内且正在攻击：受到一次伤害（同一次攻击只命中一次）
//  3. 攻击范围内：停下，冷却结束时攻击玩家
//  4. 检测范围内：面向玩家追击
//  5. 其他：停下待机
func (s *BehaviorSystem) handleSkeletonBehavior(id ecs.EntityID, deltaTime float64, player playerView) {
	skel, ok := ecs.GetComponent[*components.SkeletonComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	vel, okVel := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	if !okPos || !okVel {
		return
	}

	if skel.IsHurt {
		if skel.HurtTimer.Tick(deltaTime) {
			skel.IsHurt = false
			vel.Stop()
		}
		return
	}

	skel.AttackTimer.Tick(deltaTime)

	if !player.ok {
		vel.Stop()
		s.playLoop(id, animation.ClipIdle)
		return
	}

	if trigger, ok := ecs.GetComponent[*components.TriggerComponent](s.entityManager, id); ok {
		trigger.ConsumeEntered()
		if trigger.PlayerInside && player.attacking() && skel.LastHitSerial != player.player.AttackSerial {
			skel.LastHitSerial = player.player.AttackSerial
			s.HitSkeleton(id, player.pos)
			return
		}
	}

	toPlayer := player.pos.Sub(pos.Vec())
	distance := toPlayer.Length()

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok && distance <= skel.DetectionRange {
		if toPlayer.X < 0 {
			sprite.FlipX = true
		} else if toPlayer.X > 0 {
			sprite.FlipX = false
		}
	}

	switch {
	case distance <= skel.AttackRange:
		vel.Stop()
		if !skel.AttackTimer.Running {
			s.skeletonAttack(id, skel, player)
		} else {
			s.playLoop(id, animation.ClipIdle)
		}
	case distance <= skel.DetectionRange:
		vel.Set(toPlayer.Normalized().Mul(skel.ChaseSpeed))
		s.playLoop(id, animation.ClipWalk)
	default:
		vel.Stop()
		s.playLoop(id, animation.ClipIdle)
	}
}

// skeletonAttack 骷髅攻击玩家并开始冷却
func (s *BehaviorSystem) skeletonAttack(id ecs.EntityID, skel *components.SkeletonComponent, player playerView) {
	skel.AttackTimer.Start(skel.AttackCooldown)
	if ctrl := s.controller(id); ctrl != nil {
		ctrl.PlayAttack()
	}
	s.playSound(game.SoundSFX, SoundSkeletonAttack)

	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	s.KnockbackPlayer(player.id, pos.Vec(), skel.AttackForce, components.BehaviorSkeleton.String())
}

// HitSkeleton 骷髅受到玩家的一次攻击
//
// 受伤或死亡中的骷髅忽略攻击。生命值减一；归零时死亡，
// 否则进入受伤状态并以 RecoilForce 向远离 attacker 的方向后退。
//
// 返回:
//   - bool: 攻击是否生效
func (s *BehaviorSystem) HitSkeleton(id ecs.EntityID, attacker utils.Vec2) bool {
	skel, ok := ecs.GetComponent[*components.SkeletonComponent](s.entityManager, id)
	if !ok || skel.IsHurt {
		return false
	}
	if life, ok := ecs.GetComponent[*components.LifeComponent](s.entityManager, id); ok && !life.IsAlive() {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok {
		return false
	}

	health.CurrentHealth--
	if health.CurrentHealth < 0 {
		health.CurrentHealth = 0
	}
	log.Printf("[BehaviorSystem] Skeleton %d hit, health %d/%d", id, health.CurrentHealth, health.MaxHealth)

	if health.CurrentHealth == 0 {
		s.playSound(game.SoundSFX, SoundSkeletonDeath)
		s.Kill(id, components.BehaviorSkeleton)
		return true
	}

	skel.IsHurt = true
	skel.HurtTimer.Start(skel.HurtDuration)
	if ctrl := s.controller(id); ctrl != nil {
		ctrl.PlayHurt()
	}
	s.playSound(game.SoundSFX, SoundSkeletonHurt)

	pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	vel, okVel := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	if okPos && okVel {
		vel.Set(KnockbackDirection(attacker, pos.Vec()).Mul(skel.RecoilForce))
	}
	return true
}
