package utils

import (
	"math"
	"math/rand"
)

// Vec2 是世界坐标系中的二维向量（单位：世界单位）
type Vec2 struct {
	X, Y float64
}

// Zero 零向量
var Zero = Vec2{}

// NewVec2 创建向量
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 向量加法
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub 向量减法
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul 数乘
func (v Vec2) Mul(scalar float64) Vec2 {
	return Vec2{X: v.X * scalar, Y: v.Y * scalar}
}

// Length 返回向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero 判断是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized 返回单位向量；零向量返回零向量
func (v Vec2) Normalized() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// DistanceTo 计算到另一点的距离
func (v Vec2) DistanceTo(other Vec2) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// ClampTo 把向量分量限制在矩形区域内
func (v Vec2) ClampTo(minX, maxX, minY, maxY float64) Vec2 {
	return Vec2{X: Clamp(v.X, minX, maxX), Y: Clamp(v.Y, minY, maxY)}
}

// Clamp 把 value 限制在 [min, max] 区间
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RandomInDisc 返回以 center 为圆心、半径 radius 的圆盘内均匀分布的随机点
// 点不会落在圆周之外
func RandomInDisc(rng *rand.Rand, center Vec2, radius float64) Vec2 {
	if radius <= 0 {
		return center
	}
	r := radius * math.Sqrt(rng.Float64())
	theta := rng.Float64() * 2 * math.Pi
	return Vec2{X: center.X + r*math.Cos(theta), Y: center.Y + r*math.Sin(theta)}
}

// Jitter 返回 base ± spread 范围内的随机值
func Jitter(rng *rand.Rand, base, spread float64) float64 {
	if spread <= 0 {
		return base
	}
	return base + (rng.Float64()*2-1)*spread
}
