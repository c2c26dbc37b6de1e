package components

// BehaviorType 定义实体的行为类型
// 用于 BehaviorSystem 决定如何处理该实体
type BehaviorType int

const (
	// BehaviorPlayer 玩家：由 PlayerSystem 驱动，BehaviorSystem 不处理
	BehaviorPlayer BehaviorType = iota
	// BehaviorAnimal 动物：漫游、友好表情、被攻击即死亡
	BehaviorAnimal
	// BehaviorNPC 村民：与动物相同，额外支持对话
	BehaviorNPC
	// BehaviorSkeleton 骷髅：检测、追击、攻击玩家，有生命值
	BehaviorSkeleton
	// BehaviorMonster 哥布林：接触玩家时击退玩家
	BehaviorMonster
	// BehaviorCrop 作物：种植 → 挖掘 → 收获 → 重新种植
	BehaviorCrop
)

// String 返回行为类型名称（用于日志和指标标签）
func (b BehaviorType) String() string {
	switch b {
	case BehaviorPlayer:
		return "player"
	case BehaviorAnimal:
		return "animal"
	case BehaviorNPC:
		return "npc"
	case BehaviorSkeleton:
		return "skeleton"
	case BehaviorMonster:
		return "monster"
	case BehaviorCrop:
		return "crop"
	default:
		return "unknown"
	}
}

// BehaviorComponent 标记实体的行为类型
type BehaviorComponent struct {
	Type BehaviorType
}
