// simulate 无头运行农场模拟
//
// 使用脚本化的玩家输入（走向最近的作物、挖掘、采集，并定期攻击），
// 运行指定时长后打印收获记录。可选地在 -metrics 地址上导出 Prometheus 指标。
//
// 用法:
//
//	go run ./cmd/simulate -seconds 120 -seed 42 -metrics :2112
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/decker502/sunnyside/internal/metrics"
	"github.com/decker502/sunnyside/pkg/app"
	"github.com/decker502/sunnyside/pkg/game"
	"github.com/decker502/sunnyside/pkg/scenes"
)

var (
	seconds     = flag.Float64("seconds", 60, "模拟时长（秒，模拟时间）")
	seed        = flag.Int64("seed", 0, "随机种子（0 使用配置中的种子）")
	metricsAddr = flag.String("metrics", "", "Prometheus 指标监听地址（如 :2112），为空则不导出")
	configPath  = flag.String("config", "data/world.yaml", "世界配置文件路径")
	clipsPath   = flag.String("clips", "data/clips.yaml", "Clip 目录文件路径")
	attackEvery = flag.Float64("attack-every", 3, "脚本玩家的攻击间隔（秒）")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()
	app.ConfigureLogging(*verbose)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	record, err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}

	data, err := game.MarshalRecord(record)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func run(ctx context.Context) (game.CropSaveRecord, error) {
	cfg, catalog, err := app.LoadData(*configPath, *clipsPath)
	if err != nil {
		return game.CropSaveRecord{}, err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}

	var recorder metrics.Recorder = metrics.Nop{}
	var prom *metrics.Prometheus
	if *metricsAddr != "" {
		if prom, err = metrics.NewPrometheus(); err != nil {
			return game.CropSaveRecord{}, err
		}
		recorder = prom
	}

	store := game.NewMemoryCropStore()
	scene, err := scenes.NewFarmScene(scenes.FarmSceneOptions{
		Config:  cfg,
		Clips:   game.NewClipLibrary(catalog),
		Store:   store,
		Metrics: recorder,
		Rand:    rand.New(rand.NewSource(cfg.Seed)),
	})
	if err != nil {
		return game.CropSaveRecord{}, fmt.Errorf("creating farm: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if prom != nil {
		g.Go(func() error {
			return metrics.Serve(gctx, *metricsAddr, prom.Registry())
		})
	}

	g.Go(func() error {
		// 模拟结束后关闭指标服务
		defer cancel()
		frames := Simulate(gctx, scene, NewAutopilot(scene, *attackEvery), *seconds)
		log.Printf("[Simulate] %d frames simulated", frames)
		return nil
	})

	if err := g.Wait(); err != nil {
		return game.CropSaveRecord{}, fmt.Errorf("simulation error: %w", err)
	}

	scene.SaveOnExit()
	log.Printf("[Simulate] %d saves written", store.Saves)
	return scene.Crops().Record(), nil
}

// Simulate 以固定步长运行场景，每帧一个固定步长
//
// 返回:
//   - int: 实际运行的帧数（ctx 取消时提前结束）
func Simulate(ctx context.Context, scene *scenes.FarmScene, pilot *Autopilot, seconds float64) int {
	step := scene.FixedStep()
	total := int(seconds/step + 0.5)
	for frame := 0; frame < total; frame++ {
		if ctx.Err() != nil {
			return frame
		}
		scene.SetInput(pilot.Next(step))
		scene.FixedUpdate(step)
		scene.Update(step)
	}
	return total
}
