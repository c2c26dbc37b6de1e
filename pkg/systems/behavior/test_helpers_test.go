package behavior

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/sunnyside/internal/animation"
	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/config"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/entities"
	"github.com/decker502/sunnyside/pkg/game"
	"github.com/decker502/sunnyside/pkg/systems"
	"github.com/decker502/sunnyside/pkg/utils"
)

const testStep = 0.02

type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(kind game.SoundKind, name string) bool {
	r.played = append(r.played, kind.String()+":"+name)
	return true
}

type testClips map[string]animation.Clip

func (c testClips) GetClip(kind, name string) (animation.Clip, bool) {
	clip, ok := c[kind+"/"+name]
	return clip, ok
}

func clip(delay float64, frames ...animation.FrameID) animation.Clip {
	return animation.Clip{Frames: frames, FrameDelay: delay}
}

func worldClips() testClips {
	return testClips{
		"player/idle":          clip(0.1, "p_idle#0", "p_idle#1"),
		"player/attack":        clip(0.05, "p_atk#0", "p_atk#1"),
		"player/hurt":          clip(0.05, "p_hurt#0"),
		"skeleton/idle":        clip(0.1, "s_idle#0", "s_idle#1"),
		"skeleton/walk":        clip(0.1, "s_walk#0", "s_walk#1"),
		"skeleton/attack":      clip(0.1, "s_atk#0", "s_atk#1"),
		"skeleton/hurt":        clip(0.1, "s_hurt#0"),
		"skeleton/death":       clip(0.1, "s_death#0", "s_death#1"),
		"goblin/idle":          clip(0.1, "g_idle#0"),
		"goblin/attack":        clip(0.05, "g_atk#0", "g_atk#1"),
		"animal_cow/idle":      clip(0.15, "cow#0", "cow#1"),
		"animal_cow/interact":  clip(0.08, "cow#0", "cow#1", "cow#0", "cow#1"),
		"npc_human/idle":       clip(0.1, "h_idle#0"),
		"crop_carrot/idle":     clip(0.3, "carrot_05", "carrot_04"),
		"crop_carrot/harvest":  clip(0.05, "carrot_00", "carrot_01", "carrot_02"),
		"crop_pumpkin/idle":    clip(0.3, "pumpkin_05", "pumpkin_04"),
		"crop_pumpkin/harvest": clip(0.05, "pumpkin_00", "pumpkin_01"),
	}
}

// testWorld 按场景的固定顺序驱动全部系统
type testWorld struct {
	t        *testing.T
	em       *ecs.EntityManager
	cfg      *config.WorldConfig
	players  *systems.PlayerSystem
	physics  *systems.PhysicsSystem
	triggers *systems.TriggerSystem
	anims    *systems.AnimationSystem
	behavior *BehaviorSystem
	messages *game.MessageBoard
	store    *game.MemoryCropStore
	crops    *game.CropDataManager
	sound    *recordingSound
	clips    testClips
	player   ecs.EntityID
}

// newTestWorld 创建只有玩家的世界，玩家位于 (px, py)
func newTestWorld(t *testing.T, px, py float64) *testWorld {
	t.Helper()
	em := ecs.NewEntityManager()
	cfg := config.DefaultWorldConfig()
	cfg.Player.Spawn = config.Point{X: px, Y: py}

	w := &testWorld{
		t:        t,
		em:       em,
		cfg:      cfg,
		physics:  systems.NewPhysicsSystem(em),
		triggers: systems.NewTriggerSystem(em),
		anims:    systems.NewAnimationSystem(em),
		messages: game.NewMessageBoard(cfg.Messages.Duration),
		store:    game.NewMemoryCropStore(),
		sound:    &recordingSound{},
		clips:    worldClips(),
	}
	w.crops = game.NewCropDataManager(w.store)
	w.players = systems.NewPlayerSystem(em, w.sound, nil)
	w.behavior = NewBehaviorSystem(em, w.players, w.sound, w.messages, w.crops, nil, rand.New(rand.NewSource(11)))

	player, err := entities.NewPlayerEntity(em, w.clips, cfg)
	require.NoError(t, err)
	w.player = player
	return w
}

// step 执行一个固定步长和一个同长度的渲染帧
func (w *testWorld) step() {
	w.players.FixedUpdate(testStep)
	w.behavior.FixedUpdate(testStep)
	w.physics.FixedUpdate(testStep)
	w.triggers.FixedUpdate(testStep)

	w.behavior.Update(testStep)
	w.anims.Update(testStep)
	w.messages.Update(testStep)
	w.players.ClearActions()
}

func (w *testWorld) run(seconds float64) {
	steps := int(seconds/testStep + 0.5)
	for i := 0; i < steps; i++ {
		w.step()
	}
}

func (w *testWorld) position(id ecs.EntityID) utils.Vec2 {
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, id)
	require.True(w.t, ok)
	return pos.Vec()
}

func (w *testWorld) velocity(id ecs.EntityID) utils.Vec2 {
	vel, ok := ecs.GetComponent[*components.VelocityComponent](w.em, id)
	require.True(w.t, ok)
	return vel.Vec()
}

func (w *testWorld) movePlayer(x, y float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.player)
	pos.X, pos.Y = x, y
}

func (w *testWorld) life(id ecs.EntityID) *components.LifeComponent {
	life, ok := ecs.GetComponent[*components.LifeComponent](w.em, id)
	require.True(w.t, ok)
	return life
}

// assertLifeInvariant Dead 时碰撞和渲染都关闭；Alive 时都开启
func (w *testWorld) assertLifeInvariant(id ecs.EntityID) {
	life := w.life(id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](w.em, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](w.em, id)
	switch life.Phase {
	case components.LifeDead:
		assert.False(w.t, col.Enabled, "dead entity must not collide")
		assert.False(w.t, sprite.Visible, "dead entity must not render")
	case components.LifeAlive:
		assert.True(w.t, col.Enabled)
		assert.True(w.t, sprite.Visible)
	case components.LifeDying:
		assert.False(w.t, col.Enabled)
	}
}
