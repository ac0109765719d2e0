package motion

import (
	"testing"

	"entity-engine/internal/object"
	"entity-engine/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func patroller() *object.Object {
	o := object.New("Obstacle")
	o.SetPhysicsObject(physics.NewBody(0))
	return o
}

func TestPatrolReturnsAfterTwoLegs(t *testing.T) {
	o := patroller()
	p := NewPatrol(o, rl.NewVector3(2, 0, 0), 2, 1)

	for i := 0; i < 4; i++ {
		p.Update(0.25)
	}
	assert.InDelta(t, 2, o.Transform().Position.X, 1e-4)
	assert.Equal(t, rl.NewVector3(-2, 0, 0), p.Velocity(), "turned around")

	for i := 0; i < 4; i++ {
		p.Update(0.25)
	}
	assert.InDelta(t, 0, o.Transform().Position.X, 1e-4)
	assert.Equal(t, rl.NewVector3(2, 0, 0), p.Velocity())
}

func TestPatrolKeepsBodyVelocity(t *testing.T) {
	o := patroller()
	p := NewPatrol(o, rl.NewVector3(0, 0, 1), 3, 1)
	p.Update(0.25)
	assert.Equal(t, rl.NewVector3(0, 0, 3), o.PhysicsObject().LinearVelocity)
	assert.True(t, o.PhysicsObject().Static(), "still immovable for the solver")
}

func TestPatrolHoldsWhenInactive(t *testing.T) {
	o := patroller()
	p := NewPatrol(o, rl.NewVector3(1, 0, 0), 1, 1)
	p.Update(0.5)
	o.SetActive(false)
	p.Update(0.5)
	assert.InDelta(t, 0.5, o.Transform().Position.X, 1e-6)
	assert.Equal(t, rl.Vector3{}, o.PhysicsObject().LinearVelocity)
	assert.Same(t, o, p.Object())
}

func TestPatrolZeroDirection(t *testing.T) {
	o := patroller()
	p := NewPatrol(o, rl.Vector3{}, 5, 1)
	p.Update(1)
	assert.Equal(t, rl.Vector3{}, o.Transform().Position)
}
