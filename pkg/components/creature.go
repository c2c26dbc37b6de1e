package components

import "github.com/decker502/sunnyside/pkg/utils"

// RoamComponent 在出生点附近随机漫游
//
// 每隔 Interval（加减 Jitter）在出生点半径 Radius 的圆内选一个新目标，
// 以 Speed 匀速移动，到达 ArriveEpsilon 范围内后停下，再等待一个间隔才选下一个点。
// Timer 只在没有目标时计时。
type RoamComponent struct {
	Home          utils.Vec2 // 漫游中心（出生点）
	Radius        float64
	Speed         float64
	Interval      float64
	Jitter        float64
	ArriveEpsilon float64

	Timer     Timer
	Target    utils.Vec2
	HasTarget bool
}

// EmoteComponent 头顶表情
// 表情独立于其他状态计时，死亡不会中断正在显示的表情
type EmoteComponent struct {
	Duration float64
	Current  string
	Timer    Timer
}

// IsShowing 判断是否正在显示表情
func (e *EmoteComponent) IsShowing() bool {
	return e.Timer.Running
}

// AttackableComponent 可被玩家攻击的实体
// BeingAttacked 期间不会再次响应攻击
type AttackableComponent struct {
	BeingAttacked bool
	Cooldown      float64
	Timer         Timer
}

// 表情文本
const (
	EmoteHeart       = "<3"
	EmoteBrokenHeart = "</3"
)
