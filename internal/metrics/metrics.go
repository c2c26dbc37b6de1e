// Package metrics 记录农场模拟的运行指标并通过 Prometheus 导出
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder 是模拟事件的指标接口
// 所有方法都在模拟线程中调用，实现不得阻塞
type Recorder interface {
	CropHarvested(crop string)
	EntityKilled(kind string)
	EntityRespawned(kind string)
	PlayerHurt(source string)
	FrameProcessed(entities int)
}

// Nop 丢弃所有指标
type Nop struct{}

func (Nop) CropHarvested(string)   {}
func (Nop) EntityKilled(string)    {}
func (Nop) EntityRespawned(string) {}
func (Nop) PlayerHurt(string)      {}
func (Nop) FrameProcessed(int)     {}

// Prometheus 基于 client_golang 的 Recorder 实现
type Prometheus struct {
	registry *prometheus.Registry

	harvested *prometheus.CounterVec
	killed    *prometheus.CounterVec
	respawned *prometheus.CounterVec
	hurt      *prometheus.CounterVec
	frames    prometheus.Counter
	entities  prometheus.Gauge
}

// NewPrometheus 创建指标并注册到独立的 Registry
func NewPrometheus() (*Prometheus, error) {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		harvested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm",
			Name:      "crops_harvested_total",
			Help:      "Crops collected by the player, by crop type.",
		}, []string{"crop"}),
		killed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm",
			Name:      "entities_killed_total",
			Help:      "Entities that entered the dead state, by kind.",
		}, []string{"kind"}),
		respawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm",
			Name:      "entities_respawned_total",
			Help:      "Entities restored at their spawn point, by kind.",
		}, []string{"kind"}),
		hurt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "farm",
			Name:      "player_hurt_total",
			Help:      "Times the player entered the hurt state, by damage source.",
		}, []string{"source"}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "farm",
			Name:      "frames_total",
			Help:      "Render frames simulated.",
		}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "farm",
			Name:      "entities",
			Help:      "Entities processed in the last frame.",
		}),
	}

	for _, c := range []prometheus.Collector{p.harvested, p.killed, p.respawned, p.hurt, p.frames, p.entities} {
		if err := p.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return p, nil
}

// Registry 返回指标所在的 Registry
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

func (p *Prometheus) CropHarvested(crop string)   { p.harvested.WithLabelValues(crop).Inc() }
func (p *Prometheus) EntityKilled(kind string)    { p.killed.WithLabelValues(kind).Inc() }
func (p *Prometheus) EntityRespawned(kind string) { p.respawned.WithLabelValues(kind).Inc() }
func (p *Prometheus) PlayerHurt(source string)    { p.hurt.WithLabelValues(source).Inc() }

// FrameProcessed 记录一帧
func (p *Prometheus) FrameProcessed(entities int) {
	p.frames.Inc()
	p.entities.Set(float64(entities))
}

// Serve 在 addr 上提供 /metrics，直到 ctx 取消
// 返回 nil 表示正常关闭
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Metrics] Serving /metrics on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down metrics server: %w", err)
		}
		return nil
	}
}
