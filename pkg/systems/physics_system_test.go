package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
)

func TestPhysicsSystem_Integrates(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	pos := &components.PositionComponent{X: 1, Y: 1}
	em.AddComponent(id, pos)
	em.AddComponent(id, &components.VelocityComponent{VX: 2, VY: -1})

	ps := NewPhysicsSystem(em)
	ps.FixedUpdate(0.5)

	assert.InDelta(t, 2.0, pos.X, 1e-9)
	assert.InDelta(t, 0.5, pos.Y, 1e-9)
}

func TestPhysicsSystem_ClampsAfterIntegration(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	pos := &components.PositionComponent{X: 7.9, Y: -3.9}
	em.AddComponent(id, pos)
	em.AddComponent(id, &components.VelocityComponent{VX: 10, VY: -10})
	em.AddComponent(id, &components.BoundsComponent{MinX: -8, MaxX: 8, MinY: -4, MaxY: 4})

	NewPhysicsSystem(em).FixedUpdate(0.5)
	assert.Equal(t, 8.0, pos.X)
	assert.Equal(t, -4.0, pos.Y)
}

func TestPhysicsSystem_UnboundedEntitiesMoveFreely(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	pos := &components.PositionComponent{X: 100}
	em.AddComponent(id, pos)
	em.AddComponent(id, &components.VelocityComponent{VX: 10})

	NewPhysicsSystem(em).FixedUpdate(1)
	assert.Equal(t, 110.0, pos.X)
}
