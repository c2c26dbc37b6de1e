package app

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/sunnyside/pkg/config"
	"github.com/decker502/sunnyside/pkg/embedded"
	"github.com/decker502/sunnyside/pkg/game"
	"github.com/decker502/sunnyside/pkg/scenes"
)

// 内嵌数据文件路径
const (
	WorldConfigPath = "data/world.yaml"
	ClipCatalogPath = "data/clips.yaml"
)

// AppName 存档目录名（gdata）
const AppName = "sunnyside"

// LoadData 加载世界配置和 Clip 目录
//
// 参数:
//   - configPath: 世界配置文件路径，为空时读取内嵌的 data/world.yaml
//   - clipsPath: Clip 目录文件路径，为空时读取内嵌的 data/clips.yaml
//
// 使用内嵌资源前必须调用 embedded.Init()。
func LoadData(configPath, clipsPath string) (*config.WorldConfig, *config.ClipCatalog, error) {
	var (
		cfg *config.WorldConfig
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadWorldConfig(configPath)
	} else {
		var data []byte
		if data, err = embedded.ReadFile(WorldConfigPath); err == nil {
			cfg, err = config.ParseWorldConfig(data)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("世界配置加载失败: %w", err)
	}

	var catalog *config.ClipCatalog
	if clipsPath != "" {
		catalog, err = config.LoadClipCatalog(clipsPath)
	} else {
		var data []byte
		if data, err = embedded.ReadFile(ClipCatalogPath); err == nil {
			catalog, err = config.ParseClipCatalog(data)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("Clip 目录加载失败: %w", err)
	}

	log.Printf("[Config] 加载世界配置: %d animals, %d npcs, %d skeletons, %d crops, %d clip kinds",
		len(cfg.Spawns.Animals), len(cfg.Spawns.NPCs), len(cfg.Spawns.Skeletons), len(cfg.Spawns.Crops), len(catalog.Kinds))
	return cfg, catalog, nil
}

// OpenCropStore 打开 gdata 存档
//
// 打开失败时返回 nil 存储和错误；调用方可以继续以仅内存模式运行。
func OpenCropStore(appName string) (game.CropStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open save data: %w", err)
	}
	return game.NewGdataCropStore(manager), nil
}

// FarmOptions 桌面端和移动端共用的启动参数
type FarmOptions struct {
	ConfigPath string         // 为空使用内嵌配置
	ClipsPath  string         // 为空使用内嵌 Clip 目录
	Audio      *audio.Context // 为 nil 时静音
	Sounds     fs.FS          // 声音文件所在的文件系统
	Muted      bool
	ResetCrops bool // 启动时清零收获计数
}

// NewFarm 加载数据、打开存档并创建农场场景
//
// 存档打不开时记录警告并以仅内存模式继续。
func NewFarm(opts FarmOptions) (*scenes.FarmScene, error) {
	cfg, catalog, err := LoadData(opts.ConfigPath, opts.ClipsPath)
	if err != nil {
		return nil, err
	}

	store, err := OpenCropStore(AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (harvest counts will not persist)", err)
	}

	sceneOpts := scenes.FarmSceneOptions{
		Config:     cfg,
		Clips:      game.NewClipLibrary(catalog),
		Store:      store,
		ResetCrops: opts.ResetCrops,
	}
	if opts.Audio != nil {
		audioManager := game.NewAudioManager(opts.Audio, opts.Sounds, cfg.Audio)
		audioManager.SetMuted(opts.Muted)
		sceneOpts.Sound = audioManager
		log.Printf("[App] AudioManager initialized")
	}

	scene, err := scenes.NewFarmScene(sceneOpts)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	return scene, nil
}
