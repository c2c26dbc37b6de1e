package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ClipCatalog 动画 Clip 目录
//
// 按实体类型（如 "player"、"animal_cow"、"crop_carrot"）组织，
// 每个类型下按动画名（idle/walk/attack/...）给出帧序列定义。
//
// 配置文件位置: data/clips.yaml
type ClipCatalog struct {
	// DefaultDelay 未指定 delay 的 Clip 使用的帧间隔（秒）
	DefaultDelay float64 `yaml:"defaultDelay"`

	// Kinds 实体类型 -> 动画名 -> Clip 定义
	Kinds map[string]map[string]ClipSpec `yaml:"kinds"`
}

// ClipSpec 单个 Clip 的定义
//
// 帧序列有两种写法（二选一）：
//   - strip + count: 生成 "<strip>#0" ... "<strip>#<count-1>"
//   - frames: 显式帧名列表
//
// repeat > 1 时把帧序列重复拼接（例如交互动画连续播放两遍）。
type ClipSpec struct {
	Strip  string   `yaml:"strip"`
	Count  int      `yaml:"count"`
	Frames []string `yaml:"frames"`
	Delay  float64  `yaml:"delay"`
	Repeat int      `yaml:"repeat"`
}

// FrameNames 展开为帧名列表
func (s ClipSpec) FrameNames() []string {
	var base []string
	if len(s.Frames) > 0 {
		base = append(base, s.Frames...)
	} else {
		for i := 0; i < s.Count; i++ {
			base = append(base, s.Strip+"#"+strconv.Itoa(i))
		}
	}

	repeat := s.Repeat
	if repeat < 1 {
		repeat = 1
	}
	frames := make([]string, 0, len(base)*repeat)
	for i := 0; i < repeat; i++ {
		frames = append(frames, base...)
	}
	return frames
}

// LoadClipCatalog 加载 Clip 目录
//
// 参数:
//   - path: 配置文件路径（如 "data/clips.yaml"）
//
// 返回:
//   - *ClipCatalog: 加载成功后的目录
//   - error: 读取、解析或验证失败时返回错误
func LoadClipCatalog(path string) (*ClipCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clip catalog: %w", err)
	}
	return ParseClipCatalog(data)
}

// ParseClipCatalog 从 YAML 字节解析 Clip 目录
func ParseClipCatalog(data []byte) (*ClipCatalog, error) {
	var catalog ClipCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse clip catalog: %w", err)
	}
	if catalog.DefaultDelay == 0 {
		catalog.DefaultDelay = 0.1
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid clip catalog: %w", err)
	}
	return &catalog, nil
}

// Validate 验证目录有效性
// 允许空帧序列（播放时视为缺失资源），但不允许负数计数、负数间隔，
// 也不允许同时给出 strip 和 frames。
func (c *ClipCatalog) Validate() error {
	if c.DefaultDelay < 0 {
		return fmt.Errorf("defaultDelay must be >= 0, got %.3f", c.DefaultDelay)
	}
	for kind, clips := range c.Kinds {
		for name, spec := range clips {
			if spec.Count < 0 || spec.Repeat < 0 {
				return fmt.Errorf("clip %s/%s: count(%d) and repeat(%d) must be >= 0", kind, name, spec.Count, spec.Repeat)
			}
			if spec.Delay < 0 {
				return fmt.Errorf("clip %s/%s: delay must be >= 0, got %.3f", kind, name, spec.Delay)
			}
			if spec.Strip != "" && len(spec.Frames) > 0 {
				return fmt.Errorf("clip %s/%s: strip and frames are mutually exclusive", kind, name)
			}
			if spec.Count > 0 && spec.Strip == "" {
				return fmt.Errorf("clip %s/%s: count requires strip", kind, name)
			}
		}
	}
	return nil
}

// Get 查找 Clip 定义
func (c *ClipCatalog) Get(kind, name string) (ClipSpec, bool) {
	clips, ok := c.Kinds[kind]
	if !ok {
		return ClipSpec{}, false
	}
	spec, ok := clips[name]
	return spec, ok
}

// DelayOf 返回 Clip 的有效帧间隔
func (c *ClipCatalog) DelayOf(spec ClipSpec) float64 {
	if spec.Delay > 0 {
		return spec.Delay
	}
	return c.DefaultDelay
}
