package utils

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2_Normalized(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"unit x", Vec2{3, 0}, Vec2{1, 0}},
		{"diagonal", Vec2{3, 4}, Vec2{0.6, 0.8}},
		{"zero stays zero", Vec2{}, Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestVec2_DistanceAndClamp(t *testing.T) {
	assert.InDelta(t, 5.0, Vec2{0, 0}.DistanceTo(Vec2{3, 4}), 1e-9)
	assert.Equal(t, Vec2{20, -20}, Vec2{25, -30}.ClampTo(-20, 20, -20, 20))
	assert.Equal(t, 1.5, Clamp(1.5, 0, 2))
}

func TestRandomInDisc_StaysInsideRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	center := Vec2{2, -1}
	for i := 0; i < 1000; i++ {
		p := RandomInDisc(rng, center, 1.5)
		assert.LessOrEqual(t, p.DistanceTo(center), 1.5+1e-9)
	}
	assert.Equal(t, center, RandomInDisc(rng, center, 0))
}

func TestJitter_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		v := Jitter(rng, 5, 1)
		assert.True(t, v >= 4 && v <= 6, "got %f", v)
	}
	assert.Equal(t, 3.0, Jitter(rng, 3, 0))
	assert.False(t, math.IsNaN(Jitter(rng, 0, 0.5)))
}
