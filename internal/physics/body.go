package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultRestitution is the bounce factor new bodies start with.
const DefaultRestitution = 0.6

// Body is the rigid-body handle an object owns. Mass is stored inverted so static bodies
// (walls, floors, trigger pickups) are simply InverseMass == 0: they never integrate and
// push everything else out fully.
type Body struct {
	InverseMass    float32
	LinearVelocity rl.Vector3
	Force          rl.Vector3
	Torque         rl.Vector3
	Restitution    float32

	// Trigger bodies report overlaps but receive and cause no collision response.
	Trigger bool

	// InverseInertia is the diagonal of the inverse inertia tensor. Angular response is not
	// integrated by the solver; torque is accumulated for callers that read it.
	InverseInertia rl.Vector3
}

// NewBody returns a body with the given inverse mass. Negative values are treated as static (0).
func NewBody(inverseMass float32) *Body {
	if inverseMass < 0 {
		inverseMass = 0
	}
	return &Body{
		InverseMass: inverseMass,
		Restitution: DefaultRestitution,
	}
}

// Static reports whether the body has infinite mass.
func (b *Body) Static() bool {
	return b.InverseMass == 0
}

// SetInverseMass sets the inverse mass; 0 makes the body static.
func (b *Body) SetInverseMass(inv float32) {
	if inv < 0 {
		inv = 0
	}
	b.InverseMass = inv
}

// SetTrigger marks the body as a trigger volume.
func (b *Body) SetTrigger(trigger bool) {
	b.Trigger = trigger
}

// AddForce accumulates a force through the centre of mass for the next integration step.
func (b *Body) AddForce(f rl.Vector3) {
	b.Force = rl.Vector3Add(b.Force, f)
}

// AddForceAtPosition accumulates a force applied at a world position. The linear part goes to
// Force; the moment about centre is added to Torque.
func (b *Body) AddForceAtPosition(f, position, centre rl.Vector3) {
	b.AddForce(f)
	arm := rl.Vector3Subtract(position, centre)
	b.Torque = rl.Vector3Add(b.Torque, rl.Vector3CrossProduct(arm, f))
}

// ApplyLinearImpulse changes velocity immediately by impulse * InverseMass.
func (b *Body) ApplyLinearImpulse(impulse rl.Vector3) {
	b.LinearVelocity = rl.Vector3Add(b.LinearVelocity, rl.Vector3Scale(impulse, b.InverseMass))
}

// ClearForces resets the accumulated force and torque. The solver calls it after each step.
func (b *Body) ClearForces() {
	b.Force = rl.Vector3Zero()
	b.Torque = rl.Vector3Zero()
}

// InitSphereInertia sets the inverse inertia of a solid sphere of radius r.
func (b *Body) InitSphereInertia(r float32) {
	i := 2.5 * b.InverseMass / (r * r)
	if r == 0 {
		i = 0
	}
	b.InverseInertia = rl.NewVector3(i, i, i)
}

// InitCubeInertia sets the inverse inertia of a solid box with the given half dimensions.
func (b *Body) InitCubeInertia(half rl.Vector3) {
	d := rl.Vector3Scale(half, 2)
	dx, dy, dz := d.X*d.X, d.Y*d.Y, d.Z*d.Z
	inv := func(a, c float32) float32 {
		if a+c == 0 {
			return 0
		}
		return 12 * b.InverseMass / (a + c)
	}
	b.InverseInertia = rl.NewVector3(inv(dy, dz), inv(dx, dz), inv(dx, dy))
}
