//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.sunnyside -o build/android/sunnyside.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Sunnyside.xcframework -v ./mobile
//
// 移动端没有键盘输入时玩家保持静止；存档在应用失去焦点时写入。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/sunnyside/pkg/app"
	"github.com/decker502/sunnyside/pkg/embedded"
)

func init() {
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	scene, err := app.NewFarm(app.FarmOptions{
		Audio:  audio.NewContext(44100),
		Sounds: assetsFS,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(app.NewApp(app.Config{Verbose: true}, scene))
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
