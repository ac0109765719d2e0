// Package solver advances a world by fixed steps: integrate forces, prune candidate pairs with the
// broad phase, test them exactly and push overlapping bodies apart.
package solver

import (
	"cmp"
	"slices"

	"entity-engine/internal/collision"
	"entity-engine/internal/engineconfig"
	"entity-engine/internal/object"
	"entity-engine/internal/physics"
	"entity-engine/internal/world"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Stats summarises the last Update.
type Stats struct {
	Candidates int // broad-phase pairs
	Contacts   int // pairs the narrow phase confirmed
	Resolved   int // contacts that received a response
}

type pairKey struct {
	a, b object.ID
}

func keyOf(a, b *object.Object) pairKey {
	if a.ID() > b.ID() {
		a, b = b, a
	}
	return pairKey{a: a.ID(), b: b.ID()}
}

// System is the physics step for one world.
type System struct {
	world *world.World
	cfg   engineconfig.Physics

	gravity    rl.Vector3
	useGravity bool
	test       collision.Func

	constraints []Constraint
	contacts    map[pairKey]struct{}
	stats       Stats
}

// New returns a solver for w configured by cfg.
func New(w *world.World, cfg engineconfig.Physics) *System {
	if cfg.Iterations <= 0 {
		cfg.Iterations = 1
	}
	return &System{
		world:      w,
		cfg:        cfg,
		gravity:    rl.NewVector3(cfg.Gravity[0], cfg.Gravity[1], cfg.Gravity[2]),
		useGravity: cfg.UseGravity,
		test:       collision.ObjectIntersection,
		contacts:   make(map[pairKey]struct{}),
	}
}

// UseGravity turns gravity on or off for subsequent updates.
func (s *System) UseGravity(on bool) {
	s.useGravity = on
}

// GravityEnabled reports the gravity toggle.
func (s *System) GravityEnabled() bool {
	return s.useGravity
}

// SetGravity sets the gravity vector (e.g. (0, -9.8, 0) for down in -Y).
func (s *System) SetGravity(g rl.Vector3) {
	s.gravity = g
}

// AddConstraint registers c to run every iteration of every Update.
func (s *System) AddConstraint(c Constraint) {
	s.constraints = append(s.constraints, c)
}

// Constraints returns the registered constraints in the order they run.
func (s *System) Constraints() []Constraint {
	return slices.Clone(s.constraints)
}

// ClearConstraints drops every registered constraint.
func (s *System) ClearConstraints() {
	s.constraints = nil
}

// Stats returns counters from the last Update.
func (s *System) Stats() Stats {
	return s.stats
}

// Clear forgets the contacts remembered between updates. No end events are sent for them.
func (s *System) Clear() {
	clear(s.contacts)
	s.stats = Stats{}
}

// Update advances the world by dt seconds. Dynamic bodies integrate gravity and accumulated force,
// extents are refreshed, candidate pairs are tested and solid contacts are separated over the
// configured number of iterations, each followed by the constraints. Objects are notified when a
// contact begins or ends.
func (s *System) Update(dt float32) {
	if dt <= 0 {
		return
	}
	s.integrate(dt)
	s.world.UpdateBroadphase()
	pairs := s.world.BroadphasePairs()
	s.stats = Stats{Candidates: len(pairs)}

	current := make(map[pairKey]struct{}, len(s.contacts))
	var began []world.Pair
	for iter := 0; iter < s.cfg.Iterations; iter++ {
		for _, p := range pairs {
			info, hit := s.test(p.A, p.B)
			if !hit {
				continue
			}
			if iter == 0 {
				s.stats.Contacts++
				k := keyOf(p.A, p.B)
				current[k] = struct{}{}
				if _, seen := s.contacts[k]; !seen {
					began = append(began, p)
				}
			}
			if s.resolve(p.A, p.B, info) && iter == 0 {
				s.stats.Resolved++
			}
		}
		for _, c := range s.constraints {
			c.Update(dt)
		}
	}

	ended := s.ended(current)
	s.contacts = current
	for _, p := range began {
		p.A.CollisionBegan(p.B)
		p.B.CollisionBegan(p.A)
	}
	for _, p := range ended {
		p.A.CollisionEnded(p.B)
		p.B.CollisionEnded(p.A)
	}
}

// ended returns the remembered contacts missing from current whose objects are both still in the
// world, ordered by ID.
func (s *System) ended(current map[pairKey]struct{}) []world.Pair {
	var keys []pairKey
	for k := range s.contacts {
		if _, ok := current[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(x, y pairKey) int {
		if c := cmp.Compare(x.a, y.a); c != 0 {
			return c
		}
		return cmp.Compare(x.b, y.b)
	})
	out := make([]world.Pair, 0, len(keys))
	for _, k := range keys {
		a, okA := s.world.Object(k.a)
		b, okB := s.world.Object(k.b)
		if okA && okB {
			out = append(out, world.Pair{A: a, B: b})
		}
	}
	return out
}

func (s *System) integrate(dt float32) {
	damping := math32.Pow(s.cfg.Damping, dt)
	for _, o := range s.world.GetAllObjs() {
		b := o.PhysicsObject()
		if !o.IsActive() || b == nil || b.Static() {
			continue
		}
		accel := rl.Vector3Scale(b.Force, b.InverseMass)
		if s.useGravity {
			accel = rl.Vector3Add(accel, s.gravity)
		}
		b.LinearVelocity = rl.Vector3Add(b.LinearVelocity, rl.Vector3Scale(accel, dt))
		b.LinearVelocity = rl.Vector3Scale(b.LinearVelocity, damping)
		o.Transform().Translate(rl.Vector3Scale(b.LinearVelocity, dt))
		b.ClearForces()
	}
}

// inverseMass treats objects without a body as immovable.
func inverseMass(o *object.Object) float32 {
	if b := o.PhysicsObject(); b != nil {
		return b.InverseMass
	}
	return 0
}

func isTrigger(o *object.Object) bool {
	b := o.PhysicsObject()
	return b != nil && b.Trigger
}

// resolve separates a and b along the contact normal in proportion to their inverse masses and
// applies a restitution impulse when they are approaching. Triggers and static pairs are left alone.
func (s *System) resolve(a, b *object.Object, info collision.Info) bool {
	if isTrigger(a) || isTrigger(b) {
		return false
	}
	ia, ib := inverseMass(a), inverseMass(b)
	total := ia + ib
	if total == 0 {
		return false
	}

	if depth := info.Penetration - s.cfg.Slop; depth > 0 {
		a.Transform().Translate(rl.Vector3Scale(info.Normal, -depth*ia/total))
		b.Transform().Translate(rl.Vector3Scale(info.Normal, depth*ib/total))
	}

	va, vb := velocity(a), velocity(b)
	vn := rl.Vector3DotProduct(rl.Vector3Subtract(vb, va), info.Normal)
	if vn > 0 {
		return true
	}
	e := restitution(a) * restitution(b)
	j := -(1 + e) * vn / total
	impulse := rl.Vector3Scale(info.Normal, j)
	if body := a.PhysicsObject(); body != nil {
		body.ApplyLinearImpulse(rl.Vector3Negate(impulse))
	}
	if body := b.PhysicsObject(); body != nil {
		body.ApplyLinearImpulse(impulse)
	}
	return true
}

func velocity(o *object.Object) rl.Vector3 {
	if b := o.PhysicsObject(); b != nil {
		return b.LinearVelocity
	}
	return rl.Vector3{}
}

func restitution(o *object.Object) float32 {
	if b := o.PhysicsObject(); b != nil {
		return b.Restitution
	}
	return physics.DefaultRestitution
}
