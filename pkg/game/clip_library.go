package game

import (
	"log"
	"sort"

	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/pkg/config"
)

// ClipLibrary 是动画 Clip 的资源提供者
//
// 职责：
//   - 把 ClipCatalog 中的定义展开为 animation.Clip
//   - 缓存已展开的 Clip
//   - 实现 animation.ClipProvider，供每个实体的动画控制器查询
//
// 缺失的 Clip 返回 false，由控制器作为空操作处理。
type ClipLibrary struct {
	catalog *config.ClipCatalog
	cache   map[string]animation.Clip
}

// NewClipLibrary 创建 Clip 资源库
//
// 参数：
//   - catalog: Clip 目录，可为 nil（所有查询都返回缺失）
func NewClipLibrary(catalog *config.ClipCatalog) *ClipLibrary {
	return &ClipLibrary{
		catalog: catalog,
		cache:   make(map[string]animation.Clip),
	}
}

// GetClip 实现 animation.ClipProvider
func (l *ClipLibrary) GetClip(kind, name string) (animation.Clip, bool) {
	key := kind + "/" + name
	if clip, ok := l.cache[key]; ok {
		return clip, true
	}
	if l.catalog == nil {
		return animation.Clip{}, false
	}

	spec, ok := l.catalog.Get(kind, name)
	if !ok {
		return animation.Clip{}, false
	}

	names := spec.FrameNames()
	frames := make([]animation.FrameID, len(names))
	for i, n := range names {
		frames[i] = animation.FrameID(n)
	}
	clip := animation.Clip{
		Name:       name,
		Frames:     frames,
		FrameDelay: l.catalog.DelayOf(spec),
	}
	l.cache[key] = clip
	return clip, true
}

// Kinds 返回目录中的所有实体类型（排序后）
func (l *ClipLibrary) Kinds() []string {
	if l.catalog == nil {
		return nil
	}
	kinds := make([]string, 0, len(l.catalog.Kinds))
	for kind := range l.catalog.Kinds {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// CheckKinds 检查每个实体类型都有非空的 idle Clip
// 缺失只记录警告，不阻止启动
//
// 返回：
//   - int: 缺少 idle 的类型数量
func (l *ClipLibrary) CheckKinds(kinds []string) int {
	missing := 0
	for _, kind := range kinds {
		clip, ok := l.GetClip(kind, animation.ClipIdle)
		if !ok || clip.IsEmpty() {
			log.Printf("[ClipLibrary] Warning: kind '%s' has no idle clip", kind)
			missing++
		}
	}
	return missing
}
