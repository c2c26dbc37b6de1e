package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
)

func newTriggerEntity(em *ecs.EntityManager, x, y, radius float64) (ecs.EntityID, *components.TriggerComponent, *components.CollisionComponent) {
	id := em.CreateEntity()
	trigger := &components.TriggerComponent{Radius: radius}
	col := &components.CollisionComponent{Radius: radius, Enabled: true}
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, trigger)
	em.AddComponent(id, col)
	return id, trigger, col
}

func TestTriggerSystem_EnterFiresOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	playerID := newTestPlayer(em, 0, 0)
	_, trigger, _ := newTriggerEntity(em, 0.5, 0, 0.5)
	ts := NewTriggerSystem(em)

	ts.FixedUpdate(step)
	assert.True(t, trigger.PlayerInside)
	assert.True(t, trigger.ConsumeEntered())

	ts.FixedUpdate(step)
	assert.True(t, trigger.PlayerInside)
	assert.False(t, trigger.PlayerEntered, "staying inside is not a new enter")

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
	pos.X = -3
	ts.FixedUpdate(step)
	assert.False(t, trigger.PlayerInside)

	pos.X = 0
	ts.FixedUpdate(step)
	assert.True(t, trigger.PlayerEntered, "re-entering fires again")
}

func TestTriggerSystem_EnterIsKeptUntilConsumed(t *testing.T) {
	em := ecs.NewEntityManager()
	playerID := newTestPlayer(em, 0, 0)
	_, trigger, _ := newTriggerEntity(em, 0.5, 0, 0.5)
	ts := NewTriggerSystem(em)

	// 同一帧的两个步长内进入又离开
	ts.FixedUpdate(step)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
	pos.X = -3
	ts.FixedUpdate(step)

	assert.False(t, trigger.PlayerInside)
	assert.True(t, trigger.ConsumeEntered())
	assert.False(t, trigger.ConsumeEntered())
}

func TestTriggerSystem_DisabledCollisionNeverOverlaps(t *testing.T) {
	em := ecs.NewEntityManager()
	newTestPlayer(em, 0, 0)
	_, trigger, col := newTriggerEntity(em, 0, 0, 0.5)
	ts := NewTriggerSystem(em)

	col.Enabled = false
	ts.FixedUpdate(step)
	assert.False(t, trigger.PlayerInside)
	assert.False(t, trigger.PlayerEntered)

	col.Enabled = true
	ts.FixedUpdate(step)
	assert.True(t, trigger.PlayerEntered, "re-enabled entity sees the player enter")
}

func TestTriggerSystem_NoPlayerClearsState(t *testing.T) {
	em := ecs.NewEntityManager()
	_, trigger, _ := newTriggerEntity(em, 0, 0, 0.5)
	trigger.PlayerInside = true
	trigger.PlayerEntered = true

	NewTriggerSystem(em).FixedUpdate(step)
	assert.False(t, trigger.PlayerInside)
	assert.False(t, trigger.PlayerEntered)
}

func TestOverlaps(t *testing.T) {
	a := components.PositionComponent{X: 0, Y: 0}
	b := components.PositionComponent{X: 1, Y: 0}
	assert.True(t, Overlaps(a.Vec(), 0.5, b.Vec(), 0.5), "touching circles overlap")
	assert.False(t, Overlaps(a.Vec(), 0.4, b.Vec(), 0.5))
}
