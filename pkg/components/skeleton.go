package components

// SkeletonComponent 骷髅敌人数据
type SkeletonComponent struct {
	DetectionRange float64
	AttackRange    float64
	ChaseSpeed     float64

	AttackCooldown float64
	AttackTimer    Timer // 冷却中时 Running 为 true
	AttackForce    float64

	HurtDuration float64
	HurtTimer    Timer
	IsHurt       bool
	RecoilForce  float64

	// LastHitSerial 最近一次命中自己的玩家攻击序号
	LastHitSerial int
}

// MonsterComponent 接触伤害型怪物（哥布林）
type MonsterComponent struct {
	KnockbackForce float64
}
