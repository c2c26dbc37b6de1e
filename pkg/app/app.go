// Package app 提供游戏应用的核心包装器
//
// 该包把 ebiten 的帧循环翻译为场景的固定步长和渲染帧，
// 并负责键盘输入、全屏切换和存档时机。桌面端通过 main.go 调用 NewApp()。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/sunnyside/pkg/modules"
	"github.com/decker502/sunnyside/pkg/scenes"
	"github.com/decker502/sunnyside/pkg/utils"
)

// FrameDelta 每个 ebiten tick 的渲染帧时长（秒）
const FrameDelta = 1.0 / 60.0

// maxStepsPerFrame 单帧最多执行的固定步长数
const maxStepsPerFrame = 8

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
}

// Host 是 App 驱动的场景
type Host interface {
	scenes.Scene
	SetInput(in scenes.Input)
	FixedStep() float64
	SaveOnExit() bool
	Summary() []string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene     Host
	stepper   *Stepper
	pauseMenu *modules.PauseMenuModule
	verbose   bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建游戏应用
//
// 调用此函数前，场景必须已创建完成（配置和资源已加载）。
func NewApp(cfg Config, scene Host) *App {
	ConfigureLogging(cfg.Verbose)
	a := &App{
		scene:   scene,
		stepper: NewStepper(scene.FixedStep()),
		verbose: cfg.Verbose,
	}
	a.pauseMenu = modules.NewPauseMenuModule(scenes.ScreenWidth, scenes.ScreenHeight, modules.PauseMenuCallbacks{
		OnPause: func() {
			// 暂停即存档
			if !scene.SaveOnExit() {
				log.Printf("[App] Warning: save on pause failed")
			}
		},
		Summary: scene.Summary,
	})
	return a
}

// ConfigureLogging 配置日志输出；非 verbose 时丢弃所有日志
func ConfigureLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(scenes.ScreenWidth*2, scenes.ScreenHeight*2)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// ESC 切换暂停；失去焦点时自动暂停
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.pauseMenu.Toggle()
	}
	if !ebiten.IsFocused() {
		a.pauseMenu.Show()
	}
	if a.pauseMenu.IsActive() {
		return nil
	}

	a.scene.SetInput(ReadInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
	a.stepper.Advance(FrameDelta, a.scene.FixedUpdate)
	a.scene.Update(FrameDelta)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
	a.pauseMenu.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest // 像素风格保持锐利
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scenes.ScreenWidth, scenes.ScreenHeight
}

// Close 在窗口关闭后保存
func (a *App) Close() bool {
	log.Printf("[App] Saving on exit")
	return a.scene.SaveOnExit()
}

// IsPaused 返回是否处于暂停
func (a *App) IsPaused() bool {
	return a.pauseMenu.IsActive()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// ReadInput 把键盘状态映射为一帧的输入
//
// 移动: WASD / 方向键；攻击: J / 空格；挖掘: K；交互: E
// 移动每帧读取按住状态，动作只在按下的那一帧触发。
func ReadInput(pressed, justPressed func(ebiten.Key) bool) scenes.Input {
	var move utils.Vec2
	if pressed(ebiten.KeyA) || pressed(ebiten.KeyArrowLeft) {
		move.X--
	}
	if pressed(ebiten.KeyD) || pressed(ebiten.KeyArrowRight) {
		move.X++
	}
	if pressed(ebiten.KeyW) || pressed(ebiten.KeyArrowUp) {
		move.Y++
	}
	if pressed(ebiten.KeyS) || pressed(ebiten.KeyArrowDown) {
		move.Y--
	}
	return scenes.Input{
		Move:     move,
		Attack:   justPressed(ebiten.KeyJ) || justPressed(ebiten.KeySpace),
		Dig:      justPressed(ebiten.KeyK),
		Interact: justPressed(ebiten.KeyE),
	}
}

// Stepper 把可变的帧时长累积为固定步长
type Stepper struct {
	step        float64
	accumulator float64
}

// NewStepper 创建累积器；非正步长使用 0.02 秒
func NewStepper(step float64) *Stepper {
	if step <= 0 {
		step = 0.02
	}
	return &Stepper{step: step}
}

// Advance 累积 deltaTime 并执行所有到期的固定步长
//
// 返回:
//   - int: 本次执行的步数（最多 maxStepsPerFrame，超出部分丢弃）
func (s *Stepper) Advance(deltaTime float64, fixedUpdate func(float64)) int {
	s.accumulator += deltaTime
	steps := 0
	for s.accumulator >= s.step {
		if steps == maxStepsPerFrame {
			s.accumulator = utils.Clamp(s.accumulator, 0, s.step)
			break
		}
		fixedUpdate(s.step)
		s.accumulator -= s.step
		steps++
	}
	return steps
}

// Pending 返回累积但尚未执行的时间
func (s *Stepper) Pending() float64 {
	return s.accumulator
}
