package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/sunnyside/pkg/app"
	"github.com/decker502/sunnyside/pkg/embedded"
	"github.com/decker502/sunnyside/pkg/scenes"
)

// audioSampleRate 音频上下文采样率
const audioSampleRate = 44100

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "世界配置文件路径（默认使用内嵌的 data/world.yaml）")
	clipsPath  = flag.String("clips", "", "Clip 目录文件路径（默认使用内嵌的 data/clips.yaml）")
	muted      = flag.Bool("mute", false, "关闭声音")
	resetCrops = flag.Bool("reset-crops", false, "启动时清零已保存的收获计数")
)

func main() {
	flag.Parse()
	app.ConfigureLogging(*verbose)

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	scene, err := app.NewFarm(app.FarmOptions{
		ConfigPath: *configPath,
		ClipsPath:  *clipsPath,
		Audio:      audio.NewContext(audioSampleRate),
		Sounds:     os.DirFS("."),
		Muted:      *muted,
		ResetCrops: *resetCrops,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	gameApp := app.NewApp(app.Config{Verbose: *verbose}, scene)

	ebiten.SetWindowSize(scenes.ScreenWidth*2, scenes.ScreenHeight*2)
	ebiten.SetWindowTitle("Sunnyside Farm")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)
	if !gameApp.Close() {
		fmt.Fprintln(os.Stderr, "警告: 存档保存失败")
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "游戏运行错误: %v\n", runErr)
		os.Exit(1)
	}
}
