package animation

import "log"

// 标准动画名
const (
	ClipIdle     = "idle"
	ClipWalk     = "walk"
	ClipInteract = "interact"
	ClipAttack   = "attack"
	ClipHurt     = "hurt"
	ClipDeath    = "death"
	ClipDig      = "dig"
	ClipHarvest  = "harvest"
)

// Controller 管理单个实体的动画播放
//
// 不变式：
//   - 任意时刻最多只有一个活动策略；开始新的播放会先丢弃旧策略
//   - 只有活动策略会写入 Display，被取消的策略不会再推进
//   - 打断型动画（interact/attack/hurt/dig）播放完毕后自动回到 idle
//   - 请求的 Clip 不存在或为空时，播放请求是记录日志的空操作
type Controller struct {
	kind    string
	display Display
	clips   ClipProvider

	current     Strategy
	currentName string
	thenIdle    bool
}

// NewController 创建动画控制器
//
// 参数:
//   - kind: 实体类型（用于查找 Clip，如 "skeleton"、"animal_cow"）
//   - display: 显示目标，必须为该实体独占
//   - clips: Clip 来源，可以为 nil（所有播放请求都成为空操作）
func NewController(kind string, display Display, clips ClipProvider) *Controller {
	return &Controller{
		kind:    kind,
		display: display,
		clips:   clips,
	}
}

// Kind 返回实体类型
func (c *Controller) Kind() string { return c.kind }

// Display 返回绑定的显示目标
func (c *Controller) Display() Display { return c.display }

// Current 返回当前活动动画名，没有活动动画时返回空串
func (c *Controller) Current() string { return c.currentName }

// Strategy 返回当前活动策略（可能为 nil）
func (c *Controller) Strategy() Strategy { return c.current }

// IsPlaying 判断指定动画是否为当前活动动画
func (c *Controller) IsPlaying(name string) bool {
	return c.current != nil && c.currentName == name
}

// Finished 判断当前动画是否已播放完毕
// Loop 永不结束；没有活动动画时返回 true
func (c *Controller) Finished() bool {
	if c.current == nil {
		return true
	}
	return c.current.Finished()
}

// HasClip 判断是否存在指定的非空 Clip
func (c *Controller) HasClip(name string) bool {
	clip, ok := c.lookup(name)
	return ok && !clip.IsEmpty()
}

// PlayIdle 循环播放 idle；已在播放 idle 时不重新开始
func (c *Controller) PlayIdle() bool {
	return c.PlayLoop(ClipIdle)
}

// PlayWalk 循环播放 walk；已在播放 walk 时不重新开始
func (c *Controller) PlayWalk() bool {
	return c.PlayLoop(ClipWalk)
}

// PlayMovement 根据是否移动切换 walk/idle
//
// 正在播放的单次动画（interact/attack/hurt/dig）不会被打断；
// 没有 walk Clip 时移动也播放 idle。
//
// 返回:
//   - bool: 是否切换到（或保持在）目标循环动画
func (c *Controller) PlayMovement(moving bool) bool {
	if !c.Finished() && !c.IsPlaying(ClipIdle) && !c.IsPlaying(ClipWalk) {
		return false
	}
	if moving && c.HasClip(ClipWalk) {
		return c.PlayWalk()
	}
	return c.PlayIdle()
}

// PlayInteraction 单次播放 interact，结束后回到 idle
func (c *Controller) PlayInteraction() bool {
	return c.Play(ClipInteract, ModeOnce, true)
}

// PlayAttack 单次播放 attack，结束后回到 idle
func (c *Controller) PlayAttack() bool {
	return c.Play(ClipAttack, ModeOnce, true)
}

// PlayHurt 单次播放 hurt，结束后回到 idle
func (c *Controller) PlayHurt() bool {
	return c.Play(ClipHurt, ModeOnce, true)
}

// PlayDig 单次播放 dig，结束后回到 idle
func (c *Controller) PlayDig() bool {
	return c.Play(ClipDig, ModeOnce, true)
}

// PlayDeath 单次播放 death，停留在最后一帧
func (c *Controller) PlayDeath() bool {
	return c.Play(ClipDeath, ModeOnce, false)
}

// PlayHarvest 反向播放 harvest，停留在第一帧
func (c *Controller) PlayHarvest() bool {
	return c.Play(ClipHarvest, ModeReverse, false)
}

// PlayLoop 循环播放指定动画；同名循环已在播放时为空操作
func (c *Controller) PlayLoop(name string) bool {
	if c.IsPlaying(name) && c.current.Mode() == ModeLoop {
		return true
	}
	return c.Play(name, ModeLoop, false)
}

// Play 以指定模式播放动画，取消当前活动的播放
//
// 参数:
//   - name: 动画名
//   - mode: 播放模式
//   - thenIdle: 播放完毕后是否自动切回 idle（仅对 Once/Reverse 有效）
//
// 返回:
//   - bool: Clip 不存在或为空时返回 false，此时当前播放保持不变
func (c *Controller) Play(name string, mode PlaybackMode, thenIdle bool) bool {
	clip, ok := c.lookup(name)
	if !ok || clip.IsEmpty() {
		log.Printf("[AnimationController] Warning: clip '%s' missing or empty for kind '%s', ignoring", name, c.kind)
		return false
	}

	strategy := NewStrategy(mode, clip)
	c.current = strategy
	c.currentName = name
	c.thenIdle = thenIdle && mode != ModeLoop
	strategy.Start(c.display)
	return true
}

// Stop 取消当前播放并回到 idle
// 用于打断型状态提前结束（如受伤状态退出）
func (c *Controller) Stop() {
	if c.IsPlaying(ClipIdle) {
		return
	}
	c.current = nil
	c.currentName = ""
	c.thenIdle = false
	c.PlayIdle()
}

// Cancel 取消当前播放，不启动任何新的播放
func (c *Controller) Cancel() {
	c.current = nil
	c.currentName = ""
	c.thenIdle = false
}

// Update 推进当前活动策略
// 打断型动画结束时在同一次调用中切回 idle
func (c *Controller) Update(deltaTime float64) {
	if c.current == nil {
		return
	}
	c.current.Update(c.display, deltaTime)
	if c.thenIdle && c.current.Finished() {
		c.thenIdle = false
		c.current = nil
		c.currentName = ""
		c.PlayIdle()
	}
}

func (c *Controller) lookup(name string) (Clip, bool) {
	if c.clips == nil {
		return Clip{}, false
	}
	return c.clips.GetClip(c.kind, name)
}
