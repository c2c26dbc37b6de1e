package components

// CollisionComponent 定义实体的圆形碰撞体
// Enabled 为 false 时实体不参与任何接触检测（死亡实体）
type CollisionComponent struct {
	Radius  float64 // 碰撞半径（世界单位）
	Enabled bool
}

// TriggerComponent 是检测玩家接近的触发区域
//
// TriggerSystem 在每个固定步长结束时刷新重叠状态：
//   - PlayerInside: 当前与玩家重叠
//   - PlayerEntered: 自上次消费以来发生过进入（上一步长不重叠）
//
// PlayerEntered 会保持到行为系统下一次消费它为止，
// 即使玩家随后已经离开（此时 PlayerInside 为 false）。
type TriggerComponent struct {
	Radius        float64
	PlayerInside  bool
	PlayerEntered bool
}

// ConsumeEntered 返回并清除进入事件
func (t *TriggerComponent) ConsumeEntered() bool {
	entered := t.PlayerEntered
	t.PlayerEntered = false
	return entered
}
