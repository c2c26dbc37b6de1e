package systems

import (
	"log"

	"github.com/decker502/sunnyside/internal/metrics"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/game"
	"github.com/decker502/sunnyside/pkg/utils"
)

// 玩家音效名
const (
	SoundAttack = "attack"
	SoundHurt   = "hurt"
	SoundDig    = "dig"
)

// PlayerSystem 驱动玩家状态机
//
// 状态转换：
//   - Normal → Attacking: RequestAttack
//   - Normal → Hurt: TakeDamage（速度设为击退速度）
//   - Hurt/Attacking → Normal: 状态时长耗尽
//
// Hurt 和 Attacking 期间不接受新的伤害或攻击请求，移动输入被丢弃。
// 进入这两个状态时清空已记录的移动输入，回到 Normal 后等待新的输入。
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	sound         game.SoundPlayer
	metrics       metrics.Recorder
}

// NewPlayerSystem 创建玩家系统
//
// 参数:
//   - em: 实体管理器
//   - sound: 音效触发器，可为 nil
//   - rec: 指标记录器，可为 nil
func NewPlayerSystem(em *ecs.EntityManager, sound game.SoundPlayer, rec metrics.Recorder) *PlayerSystem {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &PlayerSystem{
		entityManager: em,
		sound:         sound,
		metrics:       rec,
	}
}

// FindPlayer 返回场景中的玩家实体
func FindPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](em)
	if len(players) == 0 {
		return ecs.InvalidEntity, false
	}
	return players[0], true
}

// State 返回玩家当前状态；实体不存在时返回 Normal
func (s *PlayerSystem) State(id ecs.EntityID) components.PlayerState {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok {
		return components.PlayerNormal
	}
	return player.State
}

// SetMoveInput 记录移动输入
// 输入长度超过 1 时归一化（对角线不加速）
//
// 返回:
//   - bool: 输入是否被接受（仅 Normal 状态）
func (s *PlayerSystem) SetMoveInput(id ecs.EntityID, input utils.Vec2) bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || player.State != components.PlayerNormal {
		return false
	}
	if input.Length() > 1 {
		input = input.Normalized()
	}
	player.MoveInput = input
	if input.X < 0 {
		player.FacingLeft = true
	} else if input.X > 0 {
		player.FacingLeft = false
	}
	return true
}

// RequestAttack 请求攻击
//
// 返回:
//   - bool: 仅在 Normal 状态下进入 Attacking 并返回 true
func (s *PlayerSystem) RequestAttack(id ecs.EntityID) bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || player.State != components.PlayerNormal {
		return false
	}

	s.enter(id, player, components.PlayerAttacking, player.AttackDuration)
	player.AttackSerial++
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.Stop()
	}
	if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
		anim.Controller.PlayAttack()
	}
	s.playSound(SoundAttack)
	return true
}

// RequestDig 挖掘
// 播放挖掘动画并标记本帧的挖掘动作，不改变状态
func (s *PlayerSystem) RequestDig(id ecs.EntityID) bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || player.State != components.PlayerNormal {
		return false
	}
	player.Action = components.ActionDig
	if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
		anim.Controller.PlayDig()
	}
	s.playSound(SoundDig)
	return true
}

// RequestInteract 标记本帧的交互动作
func (s *PlayerSystem) RequestInteract(id ecs.EntityID) bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || player.State != components.PlayerNormal {
		return false
	}
	player.Action = components.ActionInteract
	return true
}

// TakeDamage 玩家受到伤害
//
// 参数:
//   - id: 玩家实体
//   - direction: 击退方向（自动归一化）
//   - force: 击退力度，击退速度 = 方向 × 力度
//   - source: 伤害来源（用于日志和指标）
//
// 返回:
//   - bool: 仅在 Normal 状态下进入 Hurt 并返回 true；Hurt/Attacking 中忽略
func (s *PlayerSystem) TakeDamage(id ecs.EntityID, direction utils.Vec2, force float64, source string) bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	if !ok || player.State != components.PlayerNormal {
		return false
	}

	s.enter(id, player, components.PlayerHurt, player.HurtDuration)
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.Set(direction.Normalized().Mul(force))
	}
	if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
		anim.Controller.PlayHurt()
	}
	s.playSound(SoundHurt)
	s.metrics.PlayerHurt(source)
	log.Printf("[PlayerSystem] Player %d hurt by %s", id, source)
	return true
}

// FixedUpdate 固定步长更新
// 推进状态计时，并按当前状态设置速度
func (s *PlayerSystem) FixedUpdate(fixedStep float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		if player.State != components.PlayerNormal && player.StateTimer.Tick(fixedStep) {
			s.exit(id, player)
		}

		switch player.State {
		case components.PlayerNormal:
			vel.Set(player.MoveInput.Mul(player.MoveSpeed))
			if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
				anim.Controller.PlayMovement(!player.MoveInput.IsZero())
			}
		case components.PlayerAttacking:
			vel.Stop()
		case components.PlayerHurt:
			// 保持击退速度直到受伤结束
		}

		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.FlipX = player.FacingLeft
		}
	}
}

// ClearActions 清除本帧的一次性动作
func (s *PlayerSystem) ClearActions() {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		player.Action = components.ActionNone
	}
}

// enter 进入打断型状态
func (s *PlayerSystem) enter(id ecs.EntityID, player *components.PlayerComponent, state components.PlayerState, duration float64) {
	player.State = state
	player.StateTimer.Start(duration)
	player.MoveInput = utils.Zero
	player.Action = components.ActionNone
}

// exit 打断型状态结束，回到 Normal
func (s *PlayerSystem) exit(id ecs.EntityID, player *components.PlayerComponent) {
	player.State = components.PlayerNormal
	player.StateTimer.Stop()
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
		vel.Stop()
	}
	if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
		anim.Controller.Stop()
	}
}

func (s *PlayerSystem) playSound(name string) {
	if s.sound != nil {
		s.sound.PlaySound(game.SoundSFX, name)
	}
}
