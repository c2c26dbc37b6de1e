package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/pkg/config"
)

func testCatalog(t *testing.T) *config.ClipCatalog {
	t.Helper()
	catalog, err := config.ParseClipCatalog([]byte(`
defaultDelay: 0.1
kinds:
  skeleton:
    idle: {strip: skeleton_idle_strip6, count: 6}
    attack: {strip: skeleton_attack_strip7, count: 7, delay: 0.05}
  goblin:
    attack: {strip: spr_attack_strip10, count: 10}
`))
	require.NoError(t, err)
	return catalog
}

func TestClipLibrary_GetClip(t *testing.T) {
	lib := NewClipLibrary(testCatalog(t))

	clip, ok := lib.GetClip("skeleton", animation.ClipAttack)
	require.True(t, ok)
	assert.Equal(t, 7, clip.Len())
	assert.Equal(t, 0.05, clip.FrameDelay)
	assert.Equal(t, animation.StripFrame("skeleton_attack_strip7", 0), clip.Frames[0])

	idle, ok := lib.GetClip("skeleton", animation.ClipIdle)
	require.True(t, ok)
	assert.Equal(t, 0.1, idle.FrameDelay)

	_, ok = lib.GetClip("skeleton", animation.ClipDeath)
	assert.False(t, ok)
}

func TestClipLibrary_NilCatalog(t *testing.T) {
	lib := NewClipLibrary(nil)
	_, ok := lib.GetClip("player", animation.ClipIdle)
	assert.False(t, ok)
	assert.Nil(t, lib.Kinds())
}

func TestClipLibrary_CheckKinds(t *testing.T) {
	lib := NewClipLibrary(testCatalog(t))
	assert.Equal(t, []string{"goblin", "skeleton"}, lib.Kinds())
	assert.Equal(t, 1, lib.CheckKinds(lib.Kinds()), "goblin has no idle clip")
}

func TestClipLibrary_DrivesController(t *testing.T) {
	lib := NewClipLibrary(testCatalog(t))
	display := &frameRecorder{}
	ctrl := animation.NewController("skeleton", display, lib)

	require.True(t, ctrl.PlayAttack())
	for i := 0; i < 7; i++ {
		ctrl.Update(0.05)
	}
	assert.True(t, ctrl.IsPlaying(animation.ClipIdle))
	assert.Equal(t, animation.StripFrame("skeleton_idle_strip6", 0), display.frame)
}

type frameRecorder struct {
	frame animation.FrameID
}

func (r *frameRecorder) SetFrame(frame animation.FrameID) { r.frame = frame }
