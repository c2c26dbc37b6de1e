package game

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/decker502/sunnyside/pkg/config"
)

// SoundKind 声音类别，决定使用哪一路音量
type SoundKind int

const (
	// SoundSFX 动作音效（攻击、受伤、挖掘、收获）
	SoundSFX SoundKind = iota
	// SoundNPC 角色声音（动物叫声、村民）
	SoundNPC
	// SoundEnvironment 环境声音
	SoundEnvironment
)

// String 返回类别名称
func (k SoundKind) String() string {
	switch k {
	case SoundSFX:
		return "sfx"
	case SoundNPC:
		return "npc"
	case SoundEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

// SoundPlayer 是"发出即忘"的音效触发接口
// 找不到声音时返回 false，调用方无需处理
type SoundPlayer interface {
	PlaySound(kind SoundKind, name string) bool
}

// soundExtensions 按顺序尝试的音频扩展名
var soundExtensions = []string{".wav", ".ogg", ".mp3"}

// AudioManager 音频管理器
// 职责：
//   - 按名称从声音目录加载并缓存音效播放器
//   - 按类别应用音量
//   - 缺失的声音只记录一次警告，之后静默忽略
//
// context 为 nil 时处于静音模式（无头模拟、测试）。
type AudioManager struct {
	context  *audio.Context
	fsys     fs.FS
	soundDir string
	volumes  map[SoundKind]float64
	players  map[string]*audio.Player
	missing  map[string]bool
	muted    bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（静音模式）
//   - fsys: 声音文件所在的文件系统（通常为 os.DirFS(".")）
//   - cfg: 音频配置（声音目录和各类别音量）
func NewAudioManager(ctx *audio.Context, fsys fs.FS, cfg config.AudioConfig) *AudioManager {
	return &AudioManager{
		context:  ctx,
		fsys:     fsys,
		soundDir: cfg.SoundDir,
		volumes: map[SoundKind]float64{
			SoundSFX:         cfg.SFXVolume,
			SoundNPC:         cfg.NPCVolume,
			SoundEnvironment: cfg.EnvironmentVolume,
		},
		players: make(map[string]*audio.Player),
		missing: make(map[string]bool),
	}
}

// PlaySound 播放音效
//
// 参数：
//   - kind: 声音类别
//   - name: 声音名（不含扩展名，如 "hurt"、"cow"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(kind SoundKind, name string) bool {
	if am.context == nil || am.muted || name == "" {
		return false
	}

	player := am.getPlayer(name)
	if player == nil {
		return false
	}

	player.SetVolume(am.Volume(kind))
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", name, err)
	}
	player.Play()
	return true
}

// SetMuted 设置静音
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
}

// Volume 返回类别音量
func (am *AudioManager) Volume(kind SoundKind) float64 {
	if v, ok := am.volumes[kind]; ok {
		return v
	}
	return 0.5
}

// SetVolume 设置类别音量（限制在 0.0 ~ 1.0）
func (am *AudioManager) SetVolume(kind SoundKind, volume float64) {
	am.volumes[kind] = clampVolume(volume)
}

// getPlayer 获取或加载音效播放器
func (am *AudioManager) getPlayer(name string) *audio.Player {
	if player, ok := am.players[name]; ok {
		return player
	}
	if am.missing[name] {
		return nil
	}

	player, err := am.load(name)
	if err != nil {
		log.Printf("[AudioManager] Warning: Sound not available: %s (%v)", name, err)
		am.missing[name] = true
		return nil
	}
	am.players[name] = player
	return player
}

// load 按扩展名顺序查找并解码声音文件
func (am *AudioManager) load(name string) (*audio.Player, error) {
	if am.fsys == nil {
		return nil, fmt.Errorf("no sound filesystem")
	}

	for _, ext := range soundExtensions {
		file := SoundPath(am.soundDir, name, ext)
		data, err := fs.ReadFile(am.fsys, file)
		if err != nil {
			continue
		}

		stream, err := decodeSound(ext, data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", file, err)
		}
		player, err := am.context.NewPlayer(stream)
		if err != nil {
			return nil, fmt.Errorf("failed to create audio player for %s: %w", file, err)
		}
		return player, nil
	}
	return nil, fmt.Errorf("no %v file for sound '%s' in %s", soundExtensions, name, am.soundDir)
}

// SoundPath 拼接声音文件路径
func SoundPath(dir, name, ext string) string {
	return path.Join(dir, name+ext)
}

func decodeSound(ext string, data []byte) (io.ReadSeeker, error) {
	reader := bytes.NewReader(data)
	switch ext {
	case ".wav":
		return wav.DecodeWithoutResampling(reader)
	case ".ogg":
		return vorbis.DecodeWithoutResampling(reader)
	case ".mp3":
		return mp3.DecodeWithoutResampling(reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
