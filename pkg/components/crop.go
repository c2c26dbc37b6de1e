package components

import "strings"

// CropType 作物种类
type CropType int

const (
	CropCarrot CropType = iota
	CropPotato
	CropWheat
	CropPumpkin
	CropCabbage
	CropBeetroot
)

// AllCropTypes 所有作物种类（顺序与存档字段顺序一致）
var AllCropTypes = []CropType{CropCarrot, CropPotato, CropWheat, CropPumpkin, CropCabbage, CropBeetroot}

// String 返回作物种类名（小写）
func (c CropType) String() string {
	switch c {
	case CropCarrot:
		return "carrot"
	case CropPotato:
		return "potato"
	case CropWheat:
		return "wheat"
	case CropPumpkin:
		return "pumpkin"
	case CropCabbage:
		return "cabbage"
	case CropBeetroot:
		return "beetroot"
	default:
		return "unknown"
	}
}

// Title 返回首字母大写的显示名
func (c CropType) Title() string {
	name := c.String()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseCropType 解析作物种类名（不区分大小写）
func ParseCropType(name string) (CropType, bool) {
	for _, c := range AllCropTypes {
		if strings.EqualFold(c.String(), name) {
			return c, true
		}
	}
	return 0, false
}

// CropStage 作物收获流程的阶段
type CropStage int

const (
	// CropPlanted 已种植：着色显示，只响应挖掘
	CropPlanted CropStage = iota
	// CropDug 已挖掘：正常显示，接近或交互即采集
	CropDug
	// CropCollected 已采集：播放收获动画后隐藏，等待重新种植
	CropCollected
)

// String 返回阶段名称
func (s CropStage) String() string {
	switch s {
	case CropPlanted:
		return "Planted"
	case CropDug:
		return "Dug"
	case CropCollected:
		return "Collected"
	default:
		return "Unknown"
	}
}

// CropComponent 作物数据
type CropComponent struct {
	Type  CropType
	Stage CropStage
	// GuidanceShown 本次接近已提示过"先挖掘"，离开触发区后重置
	GuidanceShown bool
}
