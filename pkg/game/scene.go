package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 表示一个可运行的游戏场景
//
// 场景的时间推进分为两种：
//   - FixedUpdate: 固定步长（物理积分、状态机、位置限制）
//   - Update: 渲染帧（行为决策、动画推进、消息计时）
type Scene interface {
	FixedUpdate(fixedStep float64)
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 游戏窗口关闭
//   - 窗口失去焦点（暂停）
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
