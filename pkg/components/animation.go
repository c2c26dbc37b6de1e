package components

import "github.com/decker502/sunnyside/internal/animation"

// AnimationComponent 持有实体的动画控制器
// AnimationSystem 在每个渲染帧推进它
type AnimationComponent struct {
	Controller *animation.Controller
}
