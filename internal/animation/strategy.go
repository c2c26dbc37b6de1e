package animation

// PlaybackMode 定义动画的播放方式
type PlaybackMode int

const (
	// ModeLoop 从第一帧播放到最后一帧后回到第一帧，永不结束
	ModeLoop PlaybackMode = iota
	// ModeOnce 从第一帧播放到最后一帧，停留在最后一帧并结束
	ModeOnce
	// ModeReverse 从最后一帧播放到第一帧，停留在第一帧并结束
	ModeReverse
)

// String 返回播放模式的字符串表示（用于日志）
func (m PlaybackMode) String() string {
	switch m {
	case ModeLoop:
		return "Loop"
	case ModeOnce:
		return "Once"
	case ModeReverse:
		return "Reverse"
	default:
		return "Unknown"
	}
}

// Strategy 是一次动画播放的状态
//
// 一个 Strategy 只服务一次播放：Start 写入首帧，之后每次 Update
// 按经过的时间推进帧。Finished 在 Once/Reverse 播放完毕后返回 true，
// Loop 永远返回 false。
type Strategy interface {
	Mode() PlaybackMode
	Clip() Clip
	Start(d Display)
	Update(d Display, deltaTime float64)
	Finished() bool
	Cursor() int
}

// NewStrategy 按播放模式创建策略
func NewStrategy(mode PlaybackMode, clip Clip) Strategy {
	switch mode {
	case ModeOnce:
		return NewOnce(clip)
	case ModeReverse:
		return NewReverse(clip)
	default:
		return NewLoop(clip)
	}
}

// cursor 是三种策略共享的计时与游标
type cursor struct {
	clip     Clip
	index    int
	elapsed  float64
	finished bool
}

func (c *cursor) Clip() Clip     { return c.clip }
func (c *cursor) Cursor() int    { return c.index }
func (c *cursor) Finished() bool { return c.finished }

// step 累加时间并返回需要推进的帧数
func (c *cursor) step(deltaTime float64) int {
	if deltaTime <= 0 {
		return 0
	}
	c.elapsed += deltaTime
	delay := c.clip.delay()
	steps := 0
	for c.elapsed+frameEpsilon >= delay {
		c.elapsed -= delay
		steps++
	}
	if c.elapsed < 0 {
		c.elapsed = 0
	}
	return steps
}

// Loop 循环播放
type Loop struct {
	cursor
}

// NewLoop 创建循环播放策略
func NewLoop(clip Clip) *Loop {
	return &Loop{cursor{clip: clip}}
}

// Mode 返回 ModeLoop
func (l *Loop) Mode() PlaybackMode { return ModeLoop }

// Start 写入第一帧；空 Clip 不写入任何帧
func (l *Loop) Start(d Display) {
	l.index = 0
	l.elapsed = 0
	if l.clip.IsEmpty() {
		return
	}
	d.SetFrame(l.clip.Frames[0])
}

// Update 推进帧，到达末尾后回到第一帧
func (l *Loop) Update(d Display, deltaTime float64) {
	n := l.clip.Len()
	if n == 0 {
		return
	}
	steps := l.step(deltaTime)
	if steps == 0 {
		return
	}
	l.index = (l.index + steps) % n
	d.SetFrame(l.clip.Frames[l.index])
}

// Once 单次正向播放
type Once struct {
	cursor
}

// NewOnce 创建单次播放策略
func NewOnce(clip Clip) *Once {
	return &Once{cursor{clip: clip}}
}

// Mode 返回 ModeOnce
func (o *Once) Mode() PlaybackMode { return ModeOnce }

// Start 写入第一帧；空 Clip 立即结束
func (o *Once) Start(d Display) {
	o.index = 0
	o.elapsed = 0
	o.finished = false
	if o.clip.IsEmpty() {
		o.finished = true
		return
	}
	d.SetFrame(o.clip.Frames[0])
}

// Update 推进帧；最后一帧显示满一个帧间隔后结束，并停留在最后一帧
func (o *Once) Update(d Display, deltaTime float64) {
	if o.finished {
		return
	}
	last := o.clip.Len() - 1
	for steps := o.step(deltaTime); steps > 0; steps-- {
		if o.index >= last {
			o.finished = true
			return
		}
		o.index++
		d.SetFrame(o.clip.Frames[o.index])
	}
}

// Reverse 单次反向播放
type Reverse struct {
	cursor
}

// NewReverse 创建反向播放策略
func NewReverse(clip Clip) *Reverse {
	return &Reverse{cursor{clip: clip}}
}

// Mode 返回 ModeReverse
func (r *Reverse) Mode() PlaybackMode { return ModeReverse }

// Start 写入最后一帧；空 Clip 立即结束
func (r *Reverse) Start(d Display) {
	r.elapsed = 0
	r.finished = false
	if r.clip.IsEmpty() {
		r.index = 0
		r.finished = true
		return
	}
	r.index = r.clip.Len() - 1
	d.SetFrame(r.clip.Frames[r.index])
}

// Update 向前回退帧；第一帧显示满一个帧间隔后结束，并停留在第一帧
func (r *Reverse) Update(d Display, deltaTime float64) {
	if r.finished {
		return
	}
	for steps := r.step(deltaTime); steps > 0; steps-- {
		if r.index <= 0 {
			r.finished = true
			return
		}
		r.index--
		d.SetFrame(r.clip.Frames[r.index])
	}
}
