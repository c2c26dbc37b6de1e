package components

import "github.com/decker502/sunnyside/pkg/utils"

// PositionComponent 存储实体在世界坐标系中的位置（世界单位）
type PositionComponent struct {
	X float64
	Y float64
}

// Vec 返回位置向量
func (p *PositionComponent) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// Set 设置位置
func (p *PositionComponent) Set(v utils.Vec2) {
	p.X = v.X
	p.Y = v.Y
}

// VelocityComponent 存储实体的速度（世界单位/秒）
// 由 PhysicsSystem 在固定步长中积分到位置
type VelocityComponent struct {
	VX float64
	VY float64
}

// Vec 返回速度向量
func (v *VelocityComponent) Vec() utils.Vec2 {
	return utils.Vec2{X: v.VX, Y: v.VY}
}

// Set 设置速度
func (v *VelocityComponent) Set(vel utils.Vec2) {
	v.VX = vel.X
	v.VY = vel.Y
}

// Stop 速度清零
func (v *VelocityComponent) Stop() {
	v.VX = 0
	v.VY = 0
}

// BoundsComponent 把实体位置限制在矩形区域内
// PhysicsSystem 在积分之后每个固定步长执行一次限制
type BoundsComponent struct {
	MinX, MaxX float64
	MinY, MaxY float64
}
