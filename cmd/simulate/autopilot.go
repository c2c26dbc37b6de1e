package main

import (
	"math"

	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/scenes"
	"github.com/decker502/sunnyside/pkg/utils"
)

// reachDistance 脚本玩家认为已到达作物的距离
const reachDistance = 0.15

// Autopilot 脚本化的玩家输入
//
// 每帧走向最近的存活作物：到达后挖掘 Planted 作物，采集 Dug 作物。
// 每隔 attackEvery 秒攻击一次（沿途的动物和骷髅会被击中）。
type Autopilot struct {
	scene       *scenes.FarmScene
	attackEvery float64
	sinceAttack float64
}

// NewAutopilot 创建脚本玩家；attackEvery <= 0 表示从不攻击
func NewAutopilot(scene *scenes.FarmScene, attackEvery float64) *Autopilot {
	return &Autopilot{scene: scene, attackEvery: attackEvery}
}

// Next 返回下一帧的输入
func (a *Autopilot) Next(deltaTime float64) scenes.Input {
	var in scenes.Input

	if a.attackEvery > 0 {
		a.sinceAttack += deltaTime
		if a.sinceAttack >= a.attackEvery {
			a.sinceAttack = 0
			in.Attack = true
		}
	}

	em := a.scene.EntityManager()
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](em, a.scene.Player())
	if !ok {
		return in
	}

	target, crop, found := a.nearestCrop(playerPos.Vec())
	if !found {
		return in
	}

	delta := target.Sub(playerPos.Vec())
	if delta.Length() > reachDistance {
		in.Move = delta.Normalized()
		return in
	}

	switch crop.Stage {
	case components.CropPlanted:
		in.Dig = true
	case components.CropDug:
		in.Interact = true
	}
	return in
}

// nearestCrop 返回距离最近、仍存活的作物
func (a *Autopilot) nearestCrop(from utils.Vec2) (utils.Vec2, *components.CropComponent, bool) {
	em := a.scene.EntityManager()
	best := math.Inf(1)
	var (
		bestPos  utils.Vec2
		bestCrop *components.CropComponent
	)
	for _, id := range a.scene.World().Crops {
		life, ok := ecs.GetComponent[*components.LifeComponent](em, id)
		if !ok || !life.IsAlive() {
			continue
		}
		crop, ok := ecs.GetComponent[*components.CropComponent](em, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		if d := pos.Vec().DistanceTo(from); d < best {
			best = d
			bestPos = pos.Vec()
			bestCrop = crop
		}
	}
	return bestPos, bestCrop, bestCrop != nil
}
