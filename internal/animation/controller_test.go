package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// mapClips 是测试用的 ClipProvider
type mapClips map[string]Clip

func (m mapClips) GetClip(kind, name string) (Clip, bool) {
	clip, ok := m[kind+"/"+name]
	return clip, ok
}

func testClips() mapClips {
	return mapClips{
		"skeleton/idle":   {Name: "idle", Frames: []FrameID{"i0", "i1"}, FrameDelay: 0.5},
		"skeleton/walk":   {Name: "walk", Frames: []FrameID{"w0", "w1", "w2"}, FrameDelay: 0.5},
		"skeleton/attack": {Name: "attack", Frames: []FrameID{"a0", "a1"}, FrameDelay: 0.25},
		"skeleton/hurt":   {Name: "hurt", Frames: []FrameID{"h0"}, FrameDelay: 0.25},
		"skeleton/death":  {Name: "death", Frames: []FrameID{"d0", "d1"}, FrameDelay: 0.25},
		"skeleton/empty":  {Name: "empty", FrameDelay: 0.25},
		"crop/harvest":    {Name: "harvest", Frames: []FrameID{"c0", "c1", "c2"}, FrameDelay: 0.05},
	}
}

func TestController_PlayIdleLoops(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController("skeleton", d, testClips())

	assert.True(t, c.PlayIdle())
	c.Update(0.5)
	c.Update(0.5)

	assert.Equal(t, []FrameID{"i0", "i1", "i0"}, d.frames)
	assert.True(t, c.IsPlaying(ClipIdle))
	assert.False(t, c.Finished())
}

func TestController_RepeatedLoopRequestDoesNotRestart(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController("skeleton", d, testClips())

	c.PlayWalk()
	c.Update(0.5)
	c.PlayWalk()
	c.Update(0.5)

	assert.Equal(t, []FrameID{"w0", "w1", "w2"}, d.frames)
}

func TestController_PlayMovement(t *testing.T) {
	c := NewController("skeleton", &recordingDisplay{}, testClips())

	assert.True(t, c.PlayMovement(true))
	assert.True(t, c.IsPlaying(ClipWalk))
	assert.True(t, c.PlayMovement(false))
	assert.True(t, c.IsPlaying(ClipIdle))

	c.PlayAttack()
	assert.False(t, c.PlayMovement(true), "attack is not interrupted")
	assert.True(t, c.IsPlaying(ClipAttack))

	// 没有 walk Clip 时移动播放 idle
	crop := NewController("crop", &recordingDisplay{}, mapClips{
		"crop/idle": {Name: "idle", Frames: []FrameID{"c0"}, FrameDelay: 0.3},
	})
	assert.True(t, crop.PlayMovement(true))
	assert.True(t, crop.IsPlaying(ClipIdle))
}

func TestController_NewPlaybackCancelsPrevious(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController("skeleton", d, testClips())

	c.PlayIdle()
	c.PlayAttack()

	c.Update(0.25)
	// 被取消的 idle 不得再写入帧
	for _, f := range d.frames[2:] {
		assert.NotContains(t, []FrameID{"i0", "i1"}, f)
	}
	assert.Equal(t, FrameID("a1"), d.last())
}

func TestController_InterruptReturnsToIdle(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController("skeleton", d, testClips())

	c.PlayIdle()
	c.PlayAttack()
	c.Update(0.25)
	c.Update(0.25)

	assert.True(t, c.IsPlaying(ClipIdle), "attack should hand back to idle")
	assert.Equal(t, FrameID("i0"), d.last())
}

func TestController_DeathHoldsLastFrame(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController("skeleton", d, testClips())

	c.PlayDeath()
	c.Update(0.25)
	c.Update(0.25)
	c.Update(1.0)

	assert.True(t, c.Finished())
	assert.True(t, c.IsPlaying(ClipDeath))
	assert.Equal(t, FrameID("d1"), d.last())
}

func TestController_HarvestPlaysReverse(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController("crop", d, testClips())

	assert.True(t, c.PlayHarvest())
	c.Update(0.05)
	c.Update(0.05)
	c.Update(0.05)

	assert.Equal(t, []FrameID{"c2", "c1", "c0"}, d.frames)
	assert.True(t, c.Finished())
}

func TestController_MissingClipIsNoOp(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController("skeleton", d, testClips())
	c.PlayIdle()

	assert.False(t, c.PlayInteraction(), "no interact clip for skeleton")
	assert.False(t, c.Play("empty", ModeOnce, true), "empty clip must be ignored")
	assert.True(t, c.IsPlaying(ClipIdle), "current playback must survive a missing clip")
	assert.Equal(t, []FrameID{"i0"}, d.frames)
}

func TestController_NilProvider(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController("ghost", d, nil)

	assert.False(t, c.PlayIdle())
	c.Update(1.0)
	assert.Empty(t, d.frames)
	assert.True(t, c.Finished())
}

func TestController_StopReturnsToIdle(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController("skeleton", d, testClips())

	c.PlayHurt()
	c.Stop()
	assert.True(t, c.IsPlaying(ClipIdle))

	// idle 已在播放时 Stop 不重置进度
	c.Update(0.5)
	c.Stop()
	assert.Equal(t, 1, c.Strategy().Cursor())
}

func TestController_Cancel(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController("skeleton", d, testClips())
	c.PlayWalk()
	c.Cancel()
	c.Update(1.0)

	assert.Equal(t, "", c.Current())
	assert.Equal(t, []FrameID{"w0"}, d.frames)
}
