// Package motion drives scripted objects that move on their own every tick.
package motion

import (
	"entity-engine/internal/object"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Patrol moves an object back and forth along one direction at constant speed, reversing after
// each leg. The object is moved directly, not integrated, so it suits static bodies. Its body
// velocity is kept current so contacts push other bodies along with it.
type Patrol struct {
	obj     *object.Object
	dir     rl.Vector3
	speed   float32
	leg     float32
	elapsed float32
	back    bool
}

// NewPatrol returns a patrol for o along dir at speed units per second, legSeconds per leg.
// dir is normalised; a zero dir gives a patrol that never moves.
func NewPatrol(o *object.Object, dir rl.Vector3, speed, legSeconds float32) *Patrol {
	if rl.Vector3LengthSqr(dir) > 0 {
		dir = rl.Vector3Normalize(dir)
	}
	return &Patrol{obj: o, dir: dir, speed: speed, leg: legSeconds}
}

// Object returns the patrolling object.
func (p *Patrol) Object() *object.Object {
	return p.obj
}

// Velocity returns the velocity of the current leg.
func (p *Patrol) Velocity() rl.Vector3 {
	v := rl.Vector3Scale(p.dir, p.speed)
	if p.back {
		v = rl.Vector3Negate(v)
	}
	return v
}

// Update advances the patrol by dt seconds. Inactive objects hold still.
func (p *Patrol) Update(dt float32) {
	body := p.obj.PhysicsObject()
	if dt <= 0 || !p.obj.IsActive() {
		if body != nil {
			body.LinearVelocity = rl.Vector3{}
		}
		return
	}
	v := p.Velocity()
	p.obj.Transform().Translate(rl.Vector3Scale(v, dt))
	if body != nil {
		body.LinearVelocity = v
	}
	p.elapsed += dt
	if p.leg > 0 && p.elapsed >= p.leg {
		p.elapsed -= p.leg
		p.back = !p.back
	}
}
