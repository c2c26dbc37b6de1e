package behavior

import (
	"log"
	"math/rand"

	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/internal/metrics"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/game"
	"github.com/decker502/sunnyside/pkg/systems"
	"github.com/decker502/sunnyside/pkg/utils"
)

// 日志输出间隔常量
const LogOutputFrameInterval = 300 // 日志输出间隔（每N帧输出一次）

// 消息与音效
const (
	MessagePlayerHurt   = "Player is hurt"
	MessageDigFirst     = "Dig this crop first"
	SoundSkeletonHurt   = "hurt"
	SoundSkeletonDeath  = "death"
	SoundSkeletonAttack = "attack"
	SoundHarvest        = "harvest"
)

// BehaviorSystem 处理非玩家实体的行为逻辑
// 根据实体的 BehaviorComponent 类型分发到动物、村民、骷髅、哥布林、作物的处理函数
//
// Update 在渲染帧执行：生死流程、表情、攻击检测、AI 决策。
// FixedUpdate 在物理步长执行：漫游转向（在 PhysicsSystem 积分之前）。
type BehaviorSystem struct {
	entityManager *ecs.EntityManager
	players       *systems.PlayerSystem
	sound         game.SoundPlayer
	messages      game.MessageSink
	crops         *game.CropDataManager
	metrics       metrics.Recorder
	rng           *rand.Rand

	logFrameCounter int // 日志输出计数器
}

// NewBehaviorSystem 创建行为系统
//
// 参数:
//   - em: 实体管理器
//   - ps: 玩家系统（用于对玩家施加伤害）
//   - sound: 音效触发器，可为 nil
//   - messages: 消息显示，可为 nil
//   - crops: 作物计数，可为 nil（收获不计数）
//   - rec: 指标记录器，可为 nil
//   - rng: 随机源（漫游选点、计时错开），nil 时使用固定种子
func NewBehaviorSystem(em *ecs.EntityManager, ps *systems.PlayerSystem, sound game.SoundPlayer,
	messages game.MessageSink, crops *game.CropDataManager, rec metrics.Recorder, rng *rand.Rand) *BehaviorSystem {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &BehaviorSystem{
		entityManager: em,
		players:       ps,
		sound:         sound,
		messages:      messages,
		crops:         crops,
		metrics:       rec,
		rng:           rng,
	}
}

// playerView 是本帧玩家状态的快照
type playerView struct {
	id     ecs.EntityID
	player *components.PlayerComponent
	pos    utils.Vec2
	ok     bool
}

func (p playerView) attacking() bool {
	return p.ok && p.player.IsAttacking()
}

func (p playerView) action() components.PlayerAction {
	if !p.ok {
		return components.ActionNone
	}
	return p.player.Action
}

func (s *BehaviorSystem) findPlayer() playerView {
	id, ok := systems.FindPlayer(s.entityManager)
	if !ok {
		return playerView{}
	}
	player, okPlayer := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !okPlayer || !okPos {
		return playerView{}
	}
	return playerView{id: id, player: player, pos: pos.Vec(), ok: true}
}

// Update 更新所有拥有行为组件的实体
func (s *BehaviorSystem) Update(deltaTime float64) {
	player := s.findPlayer()
	entities := ecs.GetEntitiesWith1[*components.BehaviorComponent](s.entityManager)

	counts := make(map[components.BehaviorType]int)
	for _, id := range entities {
		behaviorComp, _ := ecs.GetComponent[*components.BehaviorComponent](s.entityManager, id)
		if behaviorComp.Type == components.BehaviorPlayer {
			continue
		}
		counts[behaviorComp.Type]++

		// 表情和受击冷却是独立的叠加计时，生死阶段不影响它们
		s.updateEmote(id, deltaTime)
		s.updateAttackCooldown(id, deltaTime)

		if !s.updateLife(id, behaviorComp.Type, deltaTime) {
			continue
		}

		switch behaviorComp.Type {
		case components.BehaviorAnimal:
			s.handleAnimalBehavior(id, deltaTime, player)
		case components.BehaviorNPC:
			s.handleNPCBehavior(id, deltaTime, player)
		case components.BehaviorSkeleton:
			s.handleSkeletonBehavior(id, deltaTime, player)
		case components.BehaviorMonster:
			s.handleMonsterBehavior(id, player)
		case components.BehaviorCrop:
			s.handleCropBehavior(id, player)
		default:
			log.Printf("[BehaviorSystem] Warning: entity %d has unknown behavior type %d", id, behaviorComp.Type)
		}
	}

	s.metrics.FrameProcessed(len(entities))

	s.logFrameCounter++
	if s.logFrameCounter%LogOutputFrameInterval == 1 {
		log.Printf("[BehaviorSystem] 更新 %d 个行为实体 (动物: %d, 村民: %d, 骷髅: %d, 哥布林: %d, 作物: %d)",
			len(entities), counts[components.BehaviorAnimal], counts[components.BehaviorNPC],
			counts[components.BehaviorSkeleton], counts[components.BehaviorMonster], counts[components.BehaviorCrop])
	}
}

// FixedUpdate 固定步长更新：漫游转向
// 必须在 PlayerSystem 之后、PhysicsSystem 之前调用
func (s *BehaviorSystem) FixedUpdate(fixedStep float64) {
	roamers := ecs.GetEntitiesWith3[*components.RoamComponent, *components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range roamers {
		s.steerRoam(id, fixedStep)
	}
}

// ShowEmote 在实体头顶显示表情并发送消息
func (s *BehaviorSystem) ShowEmote(id ecs.EntityID, emote string) {
	if comp, ok := ecs.GetComponent[*components.EmoteComponent](s.entityManager, id); ok {
		comp.Current = emote
		comp.Timer.Start(comp.Duration)
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Emote = emote
	}
	s.showMessage(id, emote)
}

func (s *BehaviorSystem) updateEmote(id ecs.EntityID, deltaTime float64) {
	emote, ok := ecs.GetComponent[*components.EmoteComponent](s.entityManager, id)
	if !ok || !emote.Timer.Tick(deltaTime) {
		return
	}
	emote.Current = ""
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Emote = ""
	}
}

func (s *BehaviorSystem) updateAttackCooldown(id ecs.EntityID, deltaTime float64) {
	attackable, ok := ecs.GetComponent[*components.AttackableComponent](s.entityManager, id)
	if !ok {
		return
	}
	if attackable.Timer.Tick(deltaTime) {
		attackable.BeingAttacked = false
	}
}

func (s *BehaviorSystem) controller(id ecs.EntityID) *animation.Controller {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
	if !ok {
		return nil
	}
	return anim.Controller
}

// playLoop 在没有打断型动画播放时切换 walk/idle
func (s *BehaviorSystem) playLoop(id ecs.EntityID, name string) {
	if ctrl := s.controller(id); ctrl != nil {
		ctrl.PlayMovement(name == animation.ClipWalk)
	}
}

func (s *BehaviorSystem) showMessage(id ecs.EntityID, text string) {
	if s.messages != nil {
		s.messages.ShowMessage(id, text)
	}
}

func (s *BehaviorSystem) playSound(kind game.SoundKind, name string) {
	if s.sound != nil {
		s.sound.PlaySound(kind, name)
	}
}

// jitter 返回 base ± spread 的随机时长
func (s *BehaviorSystem) jitter(base, spread float64) float64 {
	return utils.Jitter(s.rng, base, spread)
}
