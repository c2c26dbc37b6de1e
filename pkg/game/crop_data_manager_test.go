package game

import (
	"errors"
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/sunnyside/pkg/components"
)

// failingStore 模拟写入失败的存储
type failingStore struct {
	loadErr error
	saveErr error
	saves   int
}

func (s *failingStore) Load() (CropSaveRecord, error) { return CropSaveRecord{}, s.loadErr }
func (s *failingStore) Save(CropSaveRecord) error {
	s.saves++
	return s.saveErr
}

func TestCropSaveRecord_JSONFieldNames(t *testing.T) {
	data, err := MarshalRecord(CropSaveRecord{CarrotCount: 2, BeetrootCount: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"carrotCount":2,"potatoCount":0,"wheatCount":0,"pumpkinCount":0,"cabbageCount":0,"beetrootCount":1}`, string(data))
}

func TestUnmarshalRecord_MissingFieldsAreZero(t *testing.T) {
	record, err := UnmarshalRecord([]byte(`{"wheatCount": 4}`))
	require.NoError(t, err)
	assert.Equal(t, 4, record.WheatCount)
	assert.Equal(t, 4, record.Total())

	_, err = UnmarshalRecord([]byte(`{not json`))
	assert.Error(t, err)
}

func TestCropDataManager_AddCropSavesEveryMutation(t *testing.T) {
	store := NewMemoryCropStore()
	m := NewCropDataManager(store)

	assert.Equal(t, 1, m.AddCrop(components.CropCarrot))
	assert.Equal(t, 2, m.AddCrop(components.CropCarrot))
	assert.Equal(t, 1, m.AddCrop(components.CropPumpkin))

	assert.Equal(t, 3, store.Saves)
	assert.Equal(t, 3, m.Total())

	// 新管理器从同一存储加载
	reloaded := NewCropDataManager(store)
	assert.Equal(t, 2, reloaded.Count(components.CropCarrot))
	assert.Equal(t, 1, reloaded.Count(components.CropPumpkin))
}

func TestCropDataManager_TotalIsSumOfCounts(t *testing.T) {
	m := NewCropDataManager(NewMemoryCropStore())
	for i, crop := range components.AllCropTypes {
		for n := 0; n <= i; n++ {
			m.AddCrop(crop)
		}
	}

	sum := 0
	for _, crop := range components.AllCropTypes {
		sum += m.Count(crop)
	}
	assert.Equal(t, sum, m.Total())
	assert.Equal(t, 21, m.Total())
}

func TestCropDataManager_ResetAndListeners(t *testing.T) {
	m := NewCropDataManager(NewMemoryCropStore())
	var seen []int
	m.OnChanged(func(r CropSaveRecord) { seen = append(seen, r.Total()) })

	m.AddCrop(components.CropWheat)
	m.AddCrop(components.CropCabbage)
	m.Reset()

	assert.Equal(t, []int{1, 2, 0}, seen)
	assert.Equal(t, 0, m.Total())
}

func TestCropDataManager_LoadFailureStartsFromZero(t *testing.T) {
	m := NewCropDataManager(&failingStore{loadErr: errors.New("corrupt")})
	assert.Equal(t, CropSaveRecord{}, m.Record())
}

func TestCropDataManager_NegativeCountsClampedOnLoad(t *testing.T) {
	record, err := UnmarshalRecord([]byte(`{"carrotCount":-4,"wheatCount":3,"beetrootCount":-1}`))
	require.NoError(t, err)
	store := NewMemoryCropStore()
	require.NoError(t, store.Save(record))

	m := NewCropDataManager(store)
	assert.Equal(t, 0, m.Count(components.CropCarrot))
	assert.Equal(t, 0, m.Count(components.CropBeetroot))
	assert.Equal(t, 3, m.Count(components.CropWheat))
	assert.Equal(t, 3, m.Total())
}

func TestCropDataManager_SaveFailureKeepsMemory(t *testing.T) {
	store := &failingStore{saveErr: errors.New("disk full")}
	m := NewCropDataManager(store)

	assert.Equal(t, 1, m.AddCrop(components.CropPotato))
	assert.Equal(t, 1, m.Count(components.CropPotato), "in-memory count survives a failed save")
	assert.False(t, m.SaveOnExit())
	assert.Equal(t, 2, store.saves)
}

func TestCropDataManager_NilStore(t *testing.T) {
	m := NewCropDataManager(nil)
	m.AddCrop(components.CropBeetroot)
	assert.Equal(t, 1, m.Total())
	assert.True(t, m.SaveOnExit())
}

func TestGdataCropStore_RoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", originalHome)

	manager, err := gdata.Open(gdata.Config{AppName: "test_sunnyside_crops"})
	require.NoError(t, err)

	store := NewGdataCropStore(manager)
	record, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, CropSaveRecord{}, record, "no save yet")

	m := NewCropDataManager(store)
	m.AddCrop(components.CropCarrot)
	m.AddCrop(components.CropWheat)

	reloaded := NewCropDataManager(NewGdataCropStore(manager))
	assert.Equal(t, 1, reloaded.Count(components.CropCarrot))
	assert.Equal(t, 1, reloaded.Count(components.CropWheat))
	assert.Equal(t, 2, reloaded.Total())
}

func TestGdataCropStore_NilManager(t *testing.T) {
	store := NewGdataCropStore(nil)
	record, err := store.Load()
	assert.NoError(t, err)
	assert.Zero(t, record.Total())
	assert.NoError(t, store.Save(CropSaveRecord{CarrotCount: 1}))
}
