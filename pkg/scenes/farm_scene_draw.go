package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
)

// 逻辑屏幕尺寸与世界单位到像素的缩放
const (
	ScreenWidth   = 640
	ScreenHeight  = 360
	PixelsPerUnit = 16.0
)

var (
	backgroundColor = color.RGBA{R: 112, G: 170, B: 92, A: 255}
	boundsColor     = color.RGBA{R: 60, G: 96, B: 48, A: 255}
	triggerColor    = color.RGBA{R: 255, G: 255, B: 255, A: 48}
	hudColor        = color.RGBA{A: 160}

	behaviorColors = map[components.BehaviorType]color.RGBA{
		components.BehaviorPlayer:   {R: 66, G: 135, B: 245, A: 255},
		components.BehaviorAnimal:   {R: 240, G: 220, B: 190, A: 255},
		components.BehaviorNPC:      {R: 230, G: 160, B: 60, A: 255},
		components.BehaviorSkeleton: {R: 220, G: 220, B: 220, A: 255},
		components.BehaviorMonster:  {R: 90, G: 140, B: 60, A: 255},
		components.BehaviorCrop:     {R: 250, G: 140, B: 40, A: 255},
	}
)

// Draw 实现 game.Scene
//
// 这是调试视图：实体绘制为圆形，触发区为半透明圆，
// 表情和消息显示在实体上方，HUD 显示收获计数。
func (s *FarmScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.world.Player); ok {
		s.cameraX, s.cameraY = pos.X, pos.Y
	}

	s.drawBounds(screen)
	s.drawEntities(screen)
	s.drawMessages(screen)
	s.drawHUD(screen)
}

// worldToScreen 把世界坐标转换为以玩家为中心的屏幕坐标（Y 轴向上）
func (s *FarmScene) worldToScreen(x, y float64) (float32, float32) {
	sx := (x-s.cameraX)*PixelsPerUnit + ScreenWidth/2
	sy := -(y-s.cameraY)*PixelsPerUnit + ScreenHeight/2
	return float32(sx), float32(sy)
}

func (s *FarmScene) drawBounds(screen *ebiten.Image) {
	b := s.config.Bounds
	x0, y0 := s.worldToScreen(b.MinX, b.MaxY)
	x1, y1 := s.worldToScreen(b.MaxX, b.MinY)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, boundsColor, false)
}

func (s *FarmScene) drawEntities(screen *ebiten.Image) {
	em := s.entityManager
	ids := ecs.GetEntitiesWith3[*components.PositionComponent, *components.SpriteComponent, *components.BehaviorComponent](em)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
		beh, _ := ecs.GetComponent[*components.BehaviorComponent](em, id)
		if !sprite.Visible {
			continue
		}

		x, y := s.worldToScreen(pos.X, pos.Y)

		if trigger, ok := ecs.GetComponent[*components.TriggerComponent](em, id); ok {
			vector.DrawFilledCircle(screen, x, y, float32(trigger.Radius*PixelsPerUnit), triggerColor, true)
		}

		radius := float32(0.3 * PixelsPerUnit)
		if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok && col.Radius > 0 {
			radius = float32(col.Radius * PixelsPerUnit)
		}

		clr := behaviorColors[beh.Type]
		if sprite.Tinted {
			clr = color.RGBA{R: clr.R / 2, G: clr.G / 2, B: clr.B / 2, A: 255}
		}
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)

		// 面向标记
		dir := float32(1)
		if sprite.FlipX {
			dir = -1
		}
		vector.StrokeLine(screen, x, y, x+dir*radius, y, 1, color.Black, false)

		ebitenutil.DebugPrintAt(screen, string(sprite.Frame), int(x)+int(radius)+2, int(y)-6)
		if sprite.Emote != "" {
			ebitenutil.DebugPrintAt(screen, sprite.Emote, int(x)-6, int(y)-int(radius)-16)
		}
	}
}

func (s *FarmScene) drawMessages(screen *ebiten.Image) {
	for _, msg := range s.messages.Active() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, msg.Target)
		if !ok {
			continue
		}
		x, y := s.worldToScreen(pos.X, pos.Y)
		ebitenutil.DebugPrintAt(screen, msg.Text, int(x)-len(msg.Text)*3, int(y)-32)
	}
}

func (s *FarmScene) drawHUD(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, 36, hudColor, false)

	ebitenutil.DebugPrintAt(screen, s.cropLine, 4, 2)

	state := s.playerSystem.State(s.world.Player)
	status := fmt.Sprintf("Player: %s", state)
	if latest, ok := s.messages.Latest(); ok {
		status += "  |  " + latest
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 18)
}
