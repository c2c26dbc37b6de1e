package game

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/sunnyside/pkg/components"
)

// CropSaveRecord 持久化的作物收获计数
// 序列化为扁平 JSON 对象，字段名与存档文件保持兼容
type CropSaveRecord struct {
	CarrotCount   int `json:"carrotCount"`
	PotatoCount   int `json:"potatoCount"`
	WheatCount    int `json:"wheatCount"`
	PumpkinCount  int `json:"pumpkinCount"`
	CabbageCount  int `json:"cabbageCount"`
	BeetrootCount int `json:"beetrootCount"`
}

// field 返回作物种类对应的计数字段
func (r *CropSaveRecord) field(crop components.CropType) *int {
	switch crop {
	case components.CropCarrot:
		return &r.CarrotCount
	case components.CropPotato:
		return &r.PotatoCount
	case components.CropWheat:
		return &r.WheatCount
	case components.CropPumpkin:
		return &r.PumpkinCount
	case components.CropCabbage:
		return &r.CabbageCount
	case components.CropBeetroot:
		return &r.BeetrootCount
	default:
		return nil
	}
}

// Count 返回某种作物的计数
func (r CropSaveRecord) Count(crop components.CropType) int {
	if f := r.field(crop); f != nil {
		return *f
	}
	return 0
}

// clampNegative 把负数计数归零
//
// 返回:
//   - int: 被归零的字段数
func (r *CropSaveRecord) clampNegative() int {
	clamped := 0
	for _, crop := range components.AllCropTypes {
		if f := r.field(crop); *f < 0 {
			*f = 0
			clamped++
		}
	}
	return clamped
}

// Total 返回所有作物计数之和
func (r CropSaveRecord) Total() int {
	return r.CarrotCount + r.PotatoCount + r.WheatCount + r.PumpkinCount + r.CabbageCount + r.BeetrootCount
}

// MarshalRecord 把记录序列化为 JSON
func MarshalRecord(r CropSaveRecord) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal crop record: %w", err)
	}
	return data, nil
}

// UnmarshalRecord 从 JSON 解析记录，缺失字段为 0
func UnmarshalRecord(data []byte) (CropSaveRecord, error) {
	var r CropSaveRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return CropSaveRecord{}, fmt.Errorf("failed to unmarshal crop record: %w", err)
	}
	return r, nil
}

// CropStore 是作物记录的持久化后端
type CropStore interface {
	// Load 读取记录；没有存档时返回零值记录和 nil
	Load() (CropSaveRecord, error)
	// Save 整体写入记录
	Save(record CropSaveRecord) error
}

// 存储路径常量
const (
	cropObject   = "save"
	cropProperty = "cropdata.json"
)

// GdataCropStore 使用 gdata 跨平台存储保存作物记录
// manager 为 nil 时处于降级模式：Load 返回零值记录，Save 不做任何事
type GdataCropStore struct {
	manager *gdata.Manager
}

// NewGdataCropStore 创建 gdata 存储
func NewGdataCropStore(manager *gdata.Manager) *GdataCropStore {
	return &GdataCropStore{manager: manager}
}

// Load 实现 CropStore
func (s *GdataCropStore) Load() (CropSaveRecord, error) {
	if s.manager == nil {
		return CropSaveRecord{}, nil
	}
	if !s.manager.ObjectPropExists(cropObject, cropProperty) {
		return CropSaveRecord{}, nil
	}

	data, err := s.manager.LoadObjectProp(cropObject, cropProperty)
	if err != nil {
		return CropSaveRecord{}, fmt.Errorf("failed to load crop data: %w", err)
	}
	return UnmarshalRecord(data)
}

// Save 实现 CropStore
func (s *GdataCropStore) Save(record CropSaveRecord) error {
	if s.manager == nil {
		return nil
	}
	data, err := MarshalRecord(record)
	if err != nil {
		return err
	}
	if err := s.manager.SaveObjectProp(cropObject, cropProperty, data); err != nil {
		return fmt.Errorf("failed to save crop data: %w", err)
	}
	return nil
}

// MemoryCropStore 内存存储（无头模拟与测试）
// 保存的是序列化后的字节，与真实存储走同一条编解码路径
type MemoryCropStore struct {
	data  []byte
	Saves int
}

// NewMemoryCropStore 创建内存存储
func NewMemoryCropStore() *MemoryCropStore {
	return &MemoryCropStore{}
}

// Load 实现 CropStore
func (s *MemoryCropStore) Load() (CropSaveRecord, error) {
	if s.data == nil {
		return CropSaveRecord{}, nil
	}
	return UnmarshalRecord(s.data)
}

// Save 实现 CropStore
func (s *MemoryCropStore) Save(record CropSaveRecord) error {
	data, err := MarshalRecord(record)
	if err != nil {
		return err
	}
	s.data = data
	s.Saves++
	return nil
}

// CropDataManager 作物收获计数管理器
// 负责记录的加载、修改后立即保存，以及变更通知
//
// 存储失败时保留内存中的记录并记录日志，游戏继续运行。
type CropDataManager struct {
	store     CropStore
	record    CropSaveRecord
	listeners []func(CropSaveRecord)
}

// NewCropDataManager 创建管理器并加载已有记录
//
// 参数：
//   - store: 持久化后端，可为 nil（仅内存）
//
// 返回：
//   - *CropDataManager: 管理器实例；加载失败时从零值记录开始
func NewCropDataManager(store CropStore) *CropDataManager {
	m := &CropDataManager{store: store}
	if err := m.Load(); err != nil {
		log.Printf("[CropDataManager] Warning: Failed to load crop data: %v (starting from zero)", err)
	}
	return m
}

// Load 从存储重新加载记录
func (m *CropDataManager) Load() error {
	if m.store == nil {
		m.record = CropSaveRecord{}
		return nil
	}
	record, err := m.store.Load()
	if err != nil {
		m.record = CropSaveRecord{}
		return err
	}
	if n := record.clampNegative(); n > 0 {
		log.Printf("[CropDataManager] Warning: %d negative crop counts in saved record reset to 0", n)
	}
	m.record = record
	log.Printf("[CropDataManager] Crop data loaded (total: %d)", m.record.Total())
	return nil
}

// Save 把当前记录写入存储
func (m *CropDataManager) Save() error {
	if m.store == nil {
		return nil
	}
	return m.store.Save(m.record)
}

// AddCrop 某种作物计数加一并立即保存
//
// 返回：
//   - int: 该作物的新计数
func (m *CropDataManager) AddCrop(crop components.CropType) int {
	f := m.record.field(crop)
	if f == nil {
		log.Printf("[CropDataManager] Warning: unknown crop type %d", crop)
		return 0
	}
	*f++
	m.persist()
	m.notify()
	return *f
}

// Reset 清零所有计数并保存
func (m *CropDataManager) Reset() {
	m.record = CropSaveRecord{}
	m.persist()
	m.notify()
}

// Count 返回某种作物的计数
func (m *CropDataManager) Count(crop components.CropType) int {
	return m.record.Count(crop)
}

// Total 返回总计数
func (m *CropDataManager) Total() int {
	return m.record.Total()
}

// Record 返回当前记录的副本
func (m *CropDataManager) Record() CropSaveRecord {
	return m.record
}

// OnChanged 注册记录变更监听
func (m *CropDataManager) OnChanged(fn func(CropSaveRecord)) {
	m.listeners = append(m.listeners, fn)
}

// SaveOnExit 实现 Saveable
func (m *CropDataManager) SaveOnExit() bool {
	if err := m.Save(); err != nil {
		log.Printf("[CropDataManager] Warning: Failed to save crop data on exit: %v", err)
		return false
	}
	return true
}

func (m *CropDataManager) persist() {
	if err := m.Save(); err != nil {
		log.Printf("[CropDataManager] Warning: %v (keeping in-memory record)", err)
	}
}

func (m *CropDataManager) notify() {
	for _, fn := range m.listeners {
		fn(m.record)
	}
}
