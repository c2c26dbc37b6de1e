package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/decker502/sunnyside/pkg/scenes"
	"github.com/decker502/sunnyside/pkg/utils"
)

func keys(down ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(down))
	for _, k := range down {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name        string
		pressed     []ebiten.Key
		justPressed []ebiten.Key
		want        scenes.Input
	}{
		{"idle", nil, nil, scenes.Input{}},
		{"wasd diagonal", []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, nil, scenes.Input{Move: utils.NewVec2(1, 1)}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowDown}, nil, scenes.Input{Move: utils.NewVec2(-1, -1)}},
		{"opposite keys cancel", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, nil, scenes.Input{}},
		{"attack with space", nil, []ebiten.Key{ebiten.KeySpace}, scenes.Input{Attack: true}},
		{"dig and interact", nil, []ebiten.Key{ebiten.KeyK, ebiten.KeyE}, scenes.Input{Dig: true, Interact: true}},
		{"held attack key does not repeat", []ebiten.Key{ebiten.KeyJ}, nil, scenes.Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadInput(keys(tt.pressed...), keys(tt.justPressed...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStepper_AccumulatesFrames(t *testing.T) {
	s := NewStepper(0.25)
	var steps []float64
	record := func(dt float64) { steps = append(steps, dt) }

	assert.Equal(t, 0, s.Advance(0.125, record))
	assert.Equal(t, 1, s.Advance(0.125, record))
	assert.Equal(t, 2, s.Advance(0.625, record))
	assert.Equal(t, []float64{0.25, 0.25, 0.25}, steps)
	assert.InDelta(t, 0.125, s.Pending(), 1e-12)
}

func TestStepper_CapsCatchUp(t *testing.T) {
	s := NewStepper(0.02)
	n := 0
	assert.Equal(t, maxStepsPerFrame, s.Advance(10, func(float64) { n++ }))
	assert.Equal(t, maxStepsPerFrame, n)
	assert.LessOrEqual(t, s.Pending(), 0.02)
}

func TestNewStepper_DefaultStep(t *testing.T) {
	s := NewStepper(0)
	assert.Equal(t, 1, s.Advance(0.02, func(float64) {}))
}
