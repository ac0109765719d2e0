package solver

import (
	"testing"

	"entity-engine/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceConstraintPullsDynamicEnd(t *testing.T) {
	w := world.NewSeeded(1)
	anchor := ball("anchor", 0.1, 0, rl.Vector3{})
	bob := ball("bob", 0.1, 1, rl.NewVector3(3, 0, 0))
	bob.PhysicsObject().LinearVelocity = rl.NewVector3(2, 1, 0)
	w.AddGameObject(anchor)
	w.AddGameObject(bob)

	NewDistanceConstraint(anchor, bob, 2).Update(0.1)

	assert.InDelta(t, 2, bob.Transform().Position.X, eps)
	assert.Equal(t, rl.Vector3{}, anchor.Transform().Position)
	v := bob.PhysicsObject().LinearVelocity
	assert.InDelta(t, 0, v.X, eps, "stretching velocity removed")
	assert.InDelta(t, 1, v.Y, eps, "swing velocity kept")
}

func TestDistanceConstraintSplitsByMass(t *testing.T) {
	w := world.NewSeeded(1)
	a := ball("a", 0.1, 1, rl.Vector3{})
	b := ball("b", 0.1, 1, rl.NewVector3(4, 0, 0))
	w.AddGameObject(a)
	w.AddGameObject(b)

	NewDistanceConstraint(a, b, 2).Update(0.1)

	assert.InDelta(t, 1, a.Transform().Position.X, eps)
	assert.InDelta(t, 3, b.Transform().Position.X, eps)
}

func TestDistanceConstraintIsSlack(t *testing.T) {
	w := world.NewSeeded(1)
	a := ball("a", 0.1, 1, rl.Vector3{})
	b := ball("b", 0.1, 1, rl.NewVector3(1.5, 0, 0))
	b.PhysicsObject().LinearVelocity = rl.NewVector3(3, 0, 0)
	w.AddGameObject(a)
	w.AddGameObject(b)

	NewDistanceConstraint(a, b, 2).Update(0.1)

	assert.Equal(t, rl.NewVector3(1.5, 0, 0), b.Transform().Position)
	assert.Equal(t, rl.NewVector3(3, 0, 0), b.PhysicsObject().LinearVelocity)
}

func TestDistanceConstraintIgnoresObjectsOutsideWorld(t *testing.T) {
	a := ball("a", 0.1, 1, rl.Vector3{})
	b := ball("b", 0.1, 1, rl.NewVector3(4, 0, 0))

	NewDistanceConstraint(a, b, 2).Update(0.1)

	assert.Equal(t, rl.NewVector3(4, 0, 0), b.Transform().Position)
}

func TestUpdateRunsConstraintsEachStep(t *testing.T) {
	w := world.NewSeeded(1)
	anchor := ball("anchor", 0.1, 0, rl.Vector3{})
	bob := ball("bob", 0.1, 1, rl.NewVector3(2, 0, 0))
	w.AddGameObject(anchor)
	w.AddGameObject(bob)

	cfg := testConfig()
	cfg.UseGravity = true
	s := New(w, cfg)
	s.AddConstraint(NewDistanceConstraint(anchor, bob, 2))
	require.Len(t, s.Constraints(), 1)

	for i := 0; i < 60; i++ {
		s.Update(1.0 / 60)
		assert.LessOrEqual(t, rl.Vector3Distance(anchor.Transform().Position, bob.Transform().Position), float32(2+eps))
	}
	assert.Less(t, bob.Transform().Position.Y, float32(-1), "bob swings down")
	assert.Less(t, bob.Transform().Position.X, float32(2), "bob swings in")

	s.ClearConstraints()
	assert.Empty(t, s.Constraints())
}
