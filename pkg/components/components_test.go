package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimer_TickFiresOnce(t *testing.T) {
	var timer Timer
	assert.False(t, timer.Tick(1), "stopped timer never fires")

	timer.Start(0.5)
	assert.False(t, timer.Tick(0.25))
	assert.True(t, timer.Tick(0.25))
	assert.False(t, timer.Running)
	assert.False(t, timer.Tick(0.25), "expired timer fires only once")
}

func TestTimer_Stop(t *testing.T) {
	var timer Timer
	timer.Start(2)
	timer.Stop()
	assert.False(t, timer.Tick(5))
	assert.Zero(t, timer.Remaining)
}

func TestParseTypes(t *testing.T) {
	crop, ok := ParseCropType("Pumpkin")
	assert.True(t, ok)
	assert.Equal(t, CropPumpkin, crop)
	assert.Equal(t, "Pumpkin", crop.Title())

	animal, ok := ParseAnimalType("duck")
	assert.True(t, ok)
	assert.Equal(t, "QUACK", animal.Sound())

	npc, ok := ParseNPCType("GOBLIN")
	assert.True(t, ok)
	assert.Equal(t, NPCGoblin, npc)

	_, ok = ParseCropType("turnip")
	assert.False(t, ok)
}

func TestTriggerComponent_ConsumeEntered(t *testing.T) {
	trigger := &TriggerComponent{PlayerEntered: true}
	assert.True(t, trigger.ConsumeEntered())
	assert.False(t, trigger.ConsumeEntered())
}

func TestSpriteComponent_IsDisplay(t *testing.T) {
	sprite := &SpriteComponent{}
	sprite.SetFrame("cow#3")
	assert.Equal(t, "cow#3", string(sprite.Frame))
}
