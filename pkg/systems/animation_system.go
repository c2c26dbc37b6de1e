package systems

import (
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
)

// AnimationSystem 在每个渲染帧推进所有实体的动画控制器
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有动画
func (s *AnimationSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.AnimationComponent](s.entityManager) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		if anim.Controller == nil {
			continue
		}
		anim.Controller.Update(deltaTime)
	}
}
