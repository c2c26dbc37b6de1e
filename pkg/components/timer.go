package components

// Timer 是倒计时器
// 用于处理需要时间延迟的行为（如表情显示时长、攻击冷却、复活等待）
type Timer struct {
	Remaining float64 // 剩余时间（秒）
	Running   bool
}

// Start 以给定时长开始倒计时
func (t *Timer) Start(duration float64) {
	t.Remaining = duration
	t.Running = true
}

// Stop 停止倒计时
func (t *Timer) Stop() {
	t.Remaining = 0
	t.Running = false
}

// Tick 推进倒计时
// 返回: 本次调用中到期时返回 true（只返回一次）
func (t *Timer) Tick(deltaTime float64) bool {
	if !t.Running {
		return false
	}
	t.Remaining -= deltaTime
	if t.Remaining <= 1e-9 {
		t.Remaining = 0
		t.Running = false
		return true
	}
	return false
}
