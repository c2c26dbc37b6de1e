package components

import "github.com/decker502/sunnyside/pkg/utils"

// PlayerState 玩家状态机的状态
type PlayerState int

const (
	// PlayerNormal 正常：接受移动输入
	PlayerNormal PlayerState = iota
	// PlayerHurt 受伤：保持击退速度，忽略移动输入
	PlayerHurt
	// PlayerAttacking 攻击：速度为零，忽略移动输入
	PlayerAttacking
)

// String 返回状态名称
func (s PlayerState) String() string {
	switch s {
	case PlayerNormal:
		return "Normal"
	case PlayerHurt:
		return "Hurt"
	case PlayerAttacking:
		return "Attacking"
	default:
		return "Unknown"
	}
}

// PlayerAction 是玩家在一个渲染帧内触发的一次性动作
type PlayerAction int

const (
	ActionNone PlayerAction = iota
	// ActionDig 挖掘：把种植状态的作物变为已挖掘
	ActionDig
	// ActionInteract 交互：与村民对话、采集已挖掘的作物
	ActionInteract
)

// PlayerComponent 存储玩家状态机数据
type PlayerComponent struct {
	State      PlayerState
	StateTimer Timer // Hurt/Attacking 的剩余时长

	MoveInput utils.Vec2 // 当前移动输入（仅 Normal 状态下记录）
	MoveSpeed float64

	HurtDuration   float64
	AttackDuration float64

	// Action 是本帧触发的动作，帧末清空
	Action PlayerAction
	// AttackSerial 每次进入 Attacking 加一，目标据此保证一次攻击只命中一次
	AttackSerial int
	// FacingLeft 最近一次水平输入的方向
	FacingLeft bool
}

// IsAttacking 判断玩家是否处于攻击状态
func (p *PlayerComponent) IsAttacking() bool {
	return p.State == PlayerAttacking
}
