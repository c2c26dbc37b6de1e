package main

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/config"
	"github.com/decker502/sunnyside/pkg/game"
	"github.com/decker502/sunnyside/pkg/scenes"
)

func newSimScene(t *testing.T) (*scenes.FarmScene, *game.MemoryCropStore) {
	t.Helper()
	cfg := config.DefaultWorldConfig()
	cfg.Spawns.Crops = []config.CropSpawn{
		{Type: "carrot", X: 1, Y: 0},
		{Type: "pumpkin", X: -1, Y: 0},
	}
	store := game.NewMemoryCropStore()
	scene, err := scenes.NewFarmScene(scenes.FarmSceneOptions{
		Config: cfg,
		Clips:  game.NewClipLibrary(nil),
		Store:  store,
		Rand:   rand.New(rand.NewSource(5)),
	})
	require.NoError(t, err)
	return scene, store
}

func TestSimulate_AutopilotHarvestsEveryCrop(t *testing.T) {
	scene, store := newSimScene(t)

	frames := Simulate(context.Background(), scene, NewAutopilot(scene, 0), 5)
	assert.Equal(t, 250, frames)

	crops := scene.Crops()
	assert.Equal(t, 1, crops.Count(components.CropCarrot))
	assert.Equal(t, 1, crops.Count(components.CropPumpkin))
	assert.Equal(t, 2, store.Saves, "each harvest is saved immediately")
}

func TestSimulate_StopsWhenCanceled(t *testing.T) {
	scene, _ := newSimScene(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, 0, Simulate(ctx, scene, NewAutopilot(scene, 0), 5))
	assert.Equal(t, 0, scene.Crops().Total())
}

func TestAutopilot_AttacksOnInterval(t *testing.T) {
	scene, _ := newSimScene(t)
	pilot := NewAutopilot(scene, 1)

	assert.False(t, pilot.Next(0.5).Attack)
	assert.True(t, pilot.Next(0.5).Attack)
	assert.False(t, pilot.Next(0.5).Attack)
}

func TestAutopilot_WalksTowardNearestCrop(t *testing.T) {
	scene, _ := newSimScene(t)

	in := NewAutopilot(scene, 0).Next(0.02)
	assert.InDelta(t, 1.0, in.Move.Length(), 1e-9)
	assert.False(t, in.Dig)
}
