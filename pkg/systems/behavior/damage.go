package behavior

import (
	"log"

	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/utils"
)

// KnockbackDirection 返回从 source 指向 target 的单位向量（远离伤害来源）
// 两点重合时返回零向量
func KnockbackDirection(source, target utils.Vec2) utils.Vec2 {
	return target.Sub(source).Normalized()
}

// KnockbackPlayer 对玩家施加击退伤害
//
// 击退速度 = 远离 source 的单位方向 × force，完全覆盖玩家原有速度。
// 玩家不处于 Normal 状态时伤害被忽略。
//
// 返回:
//   - bool: 玩家是否进入 Hurt
func (s *BehaviorSystem) KnockbackPlayer(player ecs.EntityID, source utils.Vec2, force float64, sourceName string) bool {
	if s.players == nil {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, player)
	if !ok {
		return false
	}
	return s.players.TakeDamage(player, KnockbackDirection(source, pos.Vec()), force, sourceName)
}

// Kill 让实体死亡
//
// 立即关闭碰撞、清除速度和漫游目标。实体有死亡动画（作物为收获动画）时
// 先进入 Dying 播放动画，播放完毕后进入 Dead；否则直接进入 Dead。
//
// 返回:
//   - bool: 实体是否从 Alive 进入死亡流程
func (s *BehaviorSystem) Kill(id ecs.EntityID, kind components.BehaviorType) bool {
	life, ok := ecs.GetComponent[*components.LifeComponent](s.entityManager, id)
	if !ok || !life.IsAlive() {
		return false
	}

	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		col.Enabled = false
	}
	if trigger, ok := ecs.GetComponent[*components.TriggerComponent](s.entityManager, id); ok {
		trigger.PlayerInside = false
		trigger.PlayerEntered = false
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.Stop()
	}
	if roam, ok := ecs.GetComponent[*components.RoamComponent](s.entityManager, id); ok {
		roam.HasTarget = false
		roam.Timer.Stop()
	}

	s.metrics.EntityKilled(kind.String())

	played := false
	if ctrl := s.controller(id); ctrl != nil {
		if kind == components.BehaviorCrop {
			played = ctrl.PlayHarvest()
		} else {
			played = ctrl.PlayDeath()
		}
	}
	if played {
		life.Phase = components.LifeDying
		return true
	}
	s.enterDead(id, life)
	return true
}

// enterDead 进入 Dead：隐藏实体并开始复活倒计时
func (s *BehaviorSystem) enterDead(id ecs.EntityID, life *components.LifeComponent) {
	life.Phase = components.LifeDead
	life.RespawnTimer.Start(life.RespawnTime)

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Visible = false
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		col.Enabled = false
	}
	if attackable, ok := ecs.GetComponent[*components.AttackableComponent](s.entityManager, id); ok {
		attackable.BeingAttacked = false
		attackable.Timer.Stop()
	}
	if ctrl := s.controller(id); ctrl != nil {
		ctrl.Cancel()
	}
}

// Respawn 在出生点复活实体
// 位置、碰撞、可见性在同一次调用中恢复
func (s *BehaviorSystem) Respawn(id ecs.EntityID, kind components.BehaviorType) {
	life, ok := ecs.GetComponent[*components.LifeComponent](s.entityManager, id)
	if !ok {
		return
	}

	life.Phase = components.LifeAlive
	life.RespawnTimer.Stop()

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		pos.X = life.SpawnX
		pos.Y = life.SpawnY
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.Stop()
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		col.Enabled = true
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Visible = true
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id); ok {
		health.CurrentHealth = health.MaxHealth
	}
	if skel, ok := ecs.GetComponent[*components.SkeletonComponent](s.entityManager, id); ok {
		skel.IsHurt = false
		skel.HurtTimer.Stop()
		skel.AttackTimer.Stop()
	}
	if crop, ok := ecs.GetComponent[*components.CropComponent](s.entityManager, id); ok {
		crop.Stage = components.CropPlanted
		crop.GuidanceShown = false
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.Tinted = true
		}
	}
	if roam, ok := ecs.GetComponent[*components.RoamComponent](s.entityManager, id); ok {
		roam.HasTarget = false
		roam.Timer.Start(s.jitter(roam.Interval, roam.Jitter))
	}
	if ctrl := s.controller(id); ctrl != nil {
		ctrl.PlayIdle()
	}

	s.metrics.EntityRespawned(kind.String())
	log.Printf("[BehaviorSystem] %s %d respawned at (%.2f, %.2f)", kind, id, life.SpawnX, life.SpawnY)
}

// updateLife 推进死亡/复活流程
//
// 返回:
//   - bool: 实体存活，本帧应执行 AI 逻辑（没有 LifeComponent 的实体总是存活）
func (s *BehaviorSystem) updateLife(id ecs.EntityID, kind components.BehaviorType, deltaTime float64) bool {
	life, ok := ecs.GetComponent[*components.LifeComponent](s.entityManager, id)
	if !ok {
		return true
	}

	switch life.Phase {
	case components.LifeAlive:
		return true
	case components.LifeDying:
		if ctrl := s.controller(id); ctrl == nil || ctrl.Finished() {
			s.enterDead(id, life)
		}
	case components.LifeDead:
		if life.RespawnTimer.Tick(deltaTime) {
			s.Respawn(id, kind)
		}
	}
	return false
}
