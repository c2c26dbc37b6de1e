package behavior

import (
	"math"

	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/utils"
)

// steerRoam 设置漫游实体本步长的速度
//
// 无目标时推进等待计时，到期后在 Home 半径 Radius 内选点；
// 有目标时以 Speed 朝目标移动，最后一步缩短为恰好到达，不会越过目标。
func (s *BehaviorSystem) steerRoam(id ecs.EntityID, fixedStep float64) {
	roam, _ := ecs.GetComponent[*components.RoamComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

	if life, ok := ecs.GetComponent[*components.LifeComponent](s.entityManager, id); ok && !life.IsAlive() {
		vel.Stop()
		return
	}

	if !roam.HasTarget {
		if roam.Timer.Tick(fixedStep) {
			roam.Target = utils.RandomInDisc(s.rng, roam.Home, roam.Radius)
			roam.HasTarget = true
		} else {
			return
		}
	}

	delta := roam.Target.Sub(pos.Vec())
	distance := delta.Length()
	if distance <= roam.ArriveEpsilon || roam.Speed <= 0 {
		s.arrive(id, roam, vel)
		return
	}

	speed := math.Min(roam.Speed, distance/fixedStep)
	vel.Set(delta.Normalized().Mul(speed))
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok && delta.X != 0 {
		sprite.FlipX = delta.X < 0
	}
	s.playLoop(id, animation.ClipWalk)
}

// arrive 到达目标：停下并开始等待下一次选点
func (s *BehaviorSystem) arrive(id ecs.EntityID, roam *components.RoamComponent, vel *components.VelocityComponent) {
	vel.Stop()
	roam.HasTarget = false
	roam.Timer.Start(s.jitter(roam.Interval, roam.Jitter))
	s.playLoop(id, animation.ClipIdle)
}
