// Package animation 实现基于帧序列的精灵动画播放
//
// 一个 Clip 是有序的帧标识序列加上固定的帧间隔。
// 播放策略（Loop / Once / Reverse）决定帧的推进方式，
// Controller 为每个实体持有唯一的活动策略并驱动它。
package animation

import "strconv"

// 帧间隔常量（秒）
const (
	DefaultFrameDelay = 0.1
	FastFrameDelay    = 0.05
	SlowFrameDelay    = 0.15
)

// frameEpsilon 用于吸收浮点累加误差，避免 0.1+0.1+... 少推进一帧
const frameEpsilon = 1e-9

// FrameID 是单帧图像的不透明标识
// 格式约定为 "<strip>#<index>"，也可以是任意显式名称
type FrameID string

// StripFrame 返回精灵条中第 index 帧的标识
func StripFrame(strip string, index int) FrameID {
	return FrameID(strip + "#" + strconv.Itoa(index))
}

// StripFrames 返回精灵条的前 count 帧
func StripFrames(strip string, count int) []FrameID {
	if count <= 0 {
		return nil
	}
	frames := make([]FrameID, count)
	for i := range frames {
		frames[i] = StripFrame(strip, i)
	}
	return frames
}

// Clip 是一段动画：有序帧序列 + 每帧持续时间
// 空 Clip 合法，播放时不产生任何帧
type Clip struct {
	Name       string
	Frames     []FrameID
	FrameDelay float64
}

// Len 返回帧数
func (c Clip) Len() int {
	return len(c.Frames)
}

// IsEmpty 判断 Clip 是否没有帧
func (c Clip) IsEmpty() bool {
	return len(c.Frames) == 0
}

// Duration 返回完整播放一遍所需的时间（帧数 × 帧间隔）
func (c Clip) Duration() float64 {
	return float64(len(c.Frames)) * c.FrameDelay
}

// delay 返回有效帧间隔，非正值回退到默认值
func (c Clip) delay() float64 {
	if c.FrameDelay <= 0 {
		return DefaultFrameDelay
	}
	return c.FrameDelay
}

// Display 是动画的显示目标
// 策略只通过它写入当前帧，不关心具体渲染方式
type Display interface {
	SetFrame(frame FrameID)
}

// ClipProvider 按实体类型和动画名查找 Clip
// 找不到时返回 false
type ClipProvider interface {
	GetClip(kind, name string) (Clip, bool)
}
