package components

import "strings"

// NPCType 村民种类
type NPCType int

const (
	NPCHuman NPCType = iota
	NPCGoblin
	NPCSkeleton
)

// String 返回村民种类名
func (n NPCType) String() string {
	switch n {
	case NPCHuman:
		return "human"
	case NPCGoblin:
		return "goblin"
	case NPCSkeleton:
		return "skeleton"
	default:
		return "unknown"
	}
}

// ParseNPCType 解析村民种类名（不区分大小写）
func ParseNPCType(name string) (NPCType, bool) {
	for _, n := range []NPCType{NPCHuman, NPCGoblin, NPCSkeleton} {
		if strings.EqualFold(n.String(), name) {
			return n, true
		}
	}
	return 0, false
}

// NPCComponent 村民数据
type NPCComponent struct {
	Name             string
	Type             NPCType
	InteractionRange float64
}
