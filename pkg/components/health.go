package components

// LifePhase 实体的生死阶段
type LifePhase int

const (
	// LifeAlive 存活，正常参与逻辑
	LifeAlive LifePhase = iota
	// LifeDying 正在播放死亡动画：碰撞已关闭，仍可见，逻辑暂停
	LifeDying
	// LifeDead 已死亡：碰撞与渲染都关闭，等待复活
	LifeDead
)

// String 返回阶段名称
func (p LifePhase) String() string {
	switch p {
	case LifeAlive:
		return "Alive"
	case LifeDying:
		return "Dying"
	case LifeDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// LifeComponent 存储死亡与复活相关状态
// 所有可死亡实体（动物、村民、骷髅、作物）共用同一套死亡/复活流程
type LifeComponent struct {
	Phase        LifePhase
	RespawnTime  float64 // 死亡后等待复活的时长（秒）
	RespawnTimer Timer
	SpawnX       float64 // 复活位置
	SpawnY       float64
}

// IsDead 判断是否处于 Dead 阶段
func (l *LifeComponent) IsDead() bool {
	return l.Phase == LifeDead
}

// IsAlive 判断是否存活
func (l *LifeComponent) IsAlive() bool {
	return l.Phase == LifeAlive
}

// HealthComponent 存储实体的生命值信息
type HealthComponent struct {
	CurrentHealth int
	MaxHealth     int
}
