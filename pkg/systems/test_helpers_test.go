package systems

import (
	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/game"
)

// recordingSound 记录触发的音效
type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(kind game.SoundKind, name string) bool {
	r.played = append(r.played, name)
	return true
}

// testClips 测试用 Clip 来源
type testClips map[string]animation.Clip

func (c testClips) GetClip(kind, name string) (animation.Clip, bool) {
	clip, ok := c[kind+"/"+name]
	return clip, ok
}

func playerClips() testClips {
	return testClips{
		"player/idle":   {Frames: []animation.FrameID{"idle#0", "idle#1"}, FrameDelay: 0.1},
		"player/walk":   {Frames: []animation.FrameID{"walk#0", "walk#1"}, FrameDelay: 0.1},
		"player/attack": {Frames: []animation.FrameID{"atk#0", "atk#1"}, FrameDelay: 0.1},
		"player/hurt":   {Frames: []animation.FrameID{"hurt#0"}, FrameDelay: 0.1},
		"player/dig":    {Frames: []animation.FrameID{"dig#0"}, FrameDelay: 0.1},
	}
}

// newTestPlayer 创建位于 (x, y) 的玩家实体，边界 ±20
func newTestPlayer(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	sprite := &components.SpriteComponent{Visible: true}
	ctrl := animation.NewController("player", sprite, playerClips())
	ctrl.PlayIdle()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.BoundsComponent{MinX: -20, MaxX: 20, MinY: -20, MaxY: 20})
	em.AddComponent(id, &components.CollisionComponent{Radius: 0.25, Enabled: true})
	em.AddComponent(id, sprite)
	em.AddComponent(id, &components.AnimationComponent{Controller: ctrl})
	em.AddComponent(id, &components.PlayerComponent{
		MoveSpeed:      5,
		HurtDuration:   0.5,
		AttackDuration: 0.5,
	})
	return id
}
