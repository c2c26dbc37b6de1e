package components

import "github.com/decker502/sunnyside/internal/animation"

// SpriteComponent 存储实体的视觉表现
//
// 它是动画 Controller 的显示目标：策略通过 SetFrame 写入当前帧。
// 每个实体独占一个 SpriteComponent。
type SpriteComponent struct {
	Frame   animation.FrameID // 当前显示的帧
	Visible bool              // 是否渲染
	FlipX   bool              // 水平翻转（面向左侧）
	Tinted  bool              // 是否着色显示（如未挖掘的作物）
	Emote   string            // 头顶表情文本，空串表示不显示
}

// SetFrame 实现 animation.Display
func (s *SpriteComponent) SetFrame(frame animation.FrameID) {
	s.Frame = frame
}
