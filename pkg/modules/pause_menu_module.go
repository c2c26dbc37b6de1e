// Package modules 提供可被场景宿主组合使用的界面模块
package modules

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 面板布局（像素）
const (
	pauseMenuLineHeight = 16
	pauseMenuPadding    = 12
)

var pauseMenuOverlayColor = color.RGBA{A: 170}

// PauseMenuModule 暂停菜单模块
// 封装暂停状态的控制和暂停遮罩的渲染：
//   - Show/Hide/Toggle 切换暂停状态并触发回调（回调中完成存档、静音）
//   - Draw 绘制半透明遮罩、标题、按键提示和由 Summary 提供的状态行
//
// 暂停期间宿主不推进场景。
type PauseMenuModule struct {
	active bool

	onPause  func()
	onResume func()
	summary  func() []string

	windowWidth  int
	windowHeight int
}

// PauseMenuCallbacks 暂停菜单回调函数集合
type PauseMenuCallbacks struct {
	OnPause  func()          // 进入暂停时调用（可为 nil）
	OnResume func()          // 恢复时调用（可为 nil）
	Summary  func() []string // 面板中显示的状态行（可为 nil）
}

// NewPauseMenuModule 创建暂停菜单模块
//
// 参数:
//   - windowWidth, windowHeight: 逻辑屏幕尺寸
//   - callbacks: 暂停菜单回调函数集合
func NewPauseMenuModule(windowWidth, windowHeight int, callbacks PauseMenuCallbacks) *PauseMenuModule {
	return &PauseMenuModule{
		onPause:      callbacks.OnPause,
		onResume:     callbacks.OnResume,
		summary:      callbacks.Summary,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
}

// Show 进入暂停；已暂停时不重复触发回调
func (m *PauseMenuModule) Show() {
	if m.active {
		return
	}
	m.active = true
	if m.onPause != nil {
		m.onPause()
	}
	log.Printf("[PauseMenuModule] Pause menu shown")
}

// Hide 恢复游戏；未暂停时不触发回调
func (m *PauseMenuModule) Hide() {
	if !m.active {
		return
	}
	m.active = false
	if m.onResume != nil {
		m.onResume()
	}
	log.Printf("[PauseMenuModule] Pause menu hidden")
}

// Toggle 切换暂停菜单显示/隐藏（ESC 键）
func (m *PauseMenuModule) Toggle() {
	if m.active {
		m.Hide()
	} else {
		m.Show()
	}
}

// IsActive 检查暂停菜单是否激活
func (m *PauseMenuModule) IsActive() bool {
	return m.active
}

// Lines 返回面板中显示的全部文本行
func (m *PauseMenuModule) Lines() []string {
	lines := []string{
		"PAUSED",
		"",
		"ESC resume   WASD/arrows move",
		"J/Space attack   K dig   E interact",
	}
	if m.summary != nil {
		lines = append(lines, "")
		lines = append(lines, m.summary()...)
	}
	return lines
}

// Draw 渲染暂停菜单到屏幕；未激活时不绘制
func (m *PauseMenuModule) Draw(screen *ebiten.Image) {
	if !m.active {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(m.windowWidth), float32(m.windowHeight), pauseMenuOverlayColor, false)

	lines := m.Lines()
	top := (m.windowHeight - len(lines)*pauseMenuLineHeight) / 2
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, pauseMenuPadding*4, top+i*pauseMenuLineHeight)
	}
}
