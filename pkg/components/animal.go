package components

import "strings"

// AnimalType 动物种类
type AnimalType int

const (
	AnimalCow AnimalType = iota
	AnimalChicken
	AnimalPig
	AnimalSheep
	AnimalDuck
	AnimalBird
)

// AllAnimalTypes 所有动物种类
var AllAnimalTypes = []AnimalType{AnimalCow, AnimalChicken, AnimalPig, AnimalSheep, AnimalDuck, AnimalBird}

// String 返回动物种类名（小写，用于配置和 Clip 查找）
func (a AnimalType) String() string {
	switch a {
	case AnimalCow:
		return "cow"
	case AnimalChicken:
		return "chicken"
	case AnimalPig:
		return "pig"
	case AnimalSheep:
		return "sheep"
	case AnimalDuck:
		return "duck"
	case AnimalBird:
		return "bird"
	default:
		return "unknown"
	}
}

// Sound 返回动物叫声文本
func (a AnimalType) Sound() string {
	switch a {
	case AnimalCow:
		return "MOO"
	case AnimalChicken:
		return "CLUCK CLUCK"
	case AnimalPig:
		return "OINK"
	case AnimalSheep:
		return "BAA"
	case AnimalDuck:
		return "QUACK"
	case AnimalBird:
		return "CHIRP"
	default:
		return ""
	}
}

// ParseAnimalType 解析动物种类名（不区分大小写）
func ParseAnimalType(name string) (AnimalType, bool) {
	for _, a := range AllAnimalTypes {
		if strings.EqualFold(a.String(), name) {
			return a, true
		}
	}
	return 0, false
}

// AnimalComponent 动物数据
type AnimalComponent struct {
	Type          AnimalType
	SoundInterval float64 // 环境叫声间隔（秒）
	SoundJitter   float64
	SoundTimer    Timer
}
