package solver

import (
	"entity-engine/internal/object"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Constraint corrects object state after contacts are resolved. It runs once per solver iteration.
type Constraint interface {
	Update(dt float32)
}

// DistanceConstraint keeps A and B no further than MaxDistance apart. It is slack below that,
// so a chain of them hangs and swings like rope.
type DistanceConstraint struct {
	A, B        *object.Object
	MaxDistance float32
}

// NewDistanceConstraint links a and b with a maximum separation of maxDistance.
func NewDistanceConstraint(a, b *object.Object, maxDistance float32) *DistanceConstraint {
	return &DistanceConstraint{A: a, B: b, MaxDistance: maxDistance}
}

// Update pulls A and B back to MaxDistance in proportion to their inverse masses and removes the
// part of their relative velocity that would stretch the link further. Objects no longer in a
// world are ignored.
func (c *DistanceConstraint) Update(float32) {
	a, b := c.A, c.B
	if a.WorldID() < 0 || b.WorldID() < 0 {
		return
	}
	d := rl.Vector3Subtract(b.Transform().Position, a.Transform().Position)
	length := rl.Vector3Length(d)
	if length <= c.MaxDistance || length < 1e-6 {
		return
	}
	ia, ib := inverseMass(a), inverseMass(b)
	total := ia + ib
	if total == 0 {
		return
	}

	n := rl.Vector3Scale(d, 1/length)
	offset := length - c.MaxDistance
	a.Transform().Translate(rl.Vector3Scale(n, offset*ia/total))
	b.Transform().Translate(rl.Vector3Scale(n, -offset*ib/total))

	vn := rl.Vector3DotProduct(rl.Vector3Subtract(velocity(b), velocity(a)), n)
	if vn <= 0 {
		return
	}
	impulse := rl.Vector3Scale(n, -vn/total)
	if body := a.PhysicsObject(); body != nil {
		body.ApplyLinearImpulse(rl.Vector3Negate(impulse))
	}
	if body := b.PhysicsObject(); body != nil {
		body.ApplyLinearImpulse(impulse)
	}
}

