// Package object is the spatial entity every simulated thing is built from: a transform,
// an optional bounding volume, optional physics and render handles, a cached broad-phase
// extent and a one-shot record of the last trigger match.
//
// Objects are driven from a single simulation loop. None of the methods synchronise; one
// writer per object per tick is assumed.
package object

import (
	"sync/atomic"

	"entity-engine/internal/physics"
	"entity-engine/internal/render"
	"entity-engine/internal/transform"
	"entity-engine/internal/volume"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultTag marks an object as not gameplay-significant.
const DefaultTag = "Default"

// ID identifies an object for its whole lifetime. IDs are handed out at construction and never
// reused, so a world lookup of a stale ID reports the object as absent once it has been removed.
type ID uint64

// NoID is never assigned to an object.
const NoID ID = 0

var lastID atomic.Uint64

func nextID() ID {
	return ID(lastID.Add(1))
}

// Object is a simulated thing: wall, player, coin, obstacle.
type Object struct {
	name    string
	tag     string
	id      ID
	worldID int
	active  bool

	transform transform.Transform

	boundingVolume *volume.Volume
	physicsObject  *physics.Body
	renderObject   *render.Object

	broadphaseAABB rl.Vector3

	triggerTarget ID

	onCollisionBegin func(other *Object)
	onCollisionEnd   func(other *Object)
}

// New returns an active object with the default tag, an identity transform and no volume,
// physics or render handle.
func New(name string) *Object {
	return &Object{
		name:      name,
		tag:       DefaultTag,
		id:        nextID(),
		worldID:   -1,
		active:    true,
		transform: transform.New(),
	}
}

// Name returns the object's name, the key trigger queries match on.
func (o *Object) Name() string {
	return o.name
}

// Tag returns the gameplay tag.
func (o *Object) Tag() string {
	return o.tag
}

// SetTag sets the gameplay tag.
func (o *Object) SetTag(tag string) {
	o.tag = tag
}

// IsActive reports whether passes that honour liveness should consider the object.
func (o *Object) IsActive() bool {
	return o.active
}

// SetActive sets the liveness flag.
func (o *Object) SetActive(active bool) {
	o.active = active
}

// ID returns the object's permanent identifier.
func (o *Object) ID() ID {
	return o.id
}

// WorldID returns the insertion index the owning world assigned, or -1 outside a world.
func (o *Object) WorldID() int {
	return o.worldID
}

// SetWorldID is called by the world on insertion and removal.
func (o *Object) SetWorldID(id int) {
	o.worldID = id
}

// Transform returns the object's transform for reading and mutation.
func (o *Object) Transform() *transform.Transform {
	return &o.transform
}

// SetBoundingVolume attaches a copy of v, replacing and releasing any previous volume. nil detaches.
// The object owns its copy, so one volume value may be passed to several objects and later
// edits to v do not reach any of them. The cached broad-phase extent is not touched; call
// UpdateBroadphaseAABB.
func (o *Object) SetBoundingVolume(v *volume.Volume) {
	if v == nil {
		o.boundingVolume = nil
		return
	}
	owned := *v
	o.boundingVolume = &owned
}

// BoundingVolume returns the attached volume or nil.
func (o *Object) BoundingVolume() *volume.Volume {
	return o.boundingVolume
}

// SetPhysicsObject attaches a rigid-body handle, releasing the previous one. nil detaches.
func (o *Object) SetPhysicsObject(b *physics.Body) {
	o.physicsObject = b
}

// PhysicsObject returns the rigid-body handle or nil.
func (o *Object) PhysicsObject() *physics.Body {
	return o.physicsObject
}

// SetRenderObject attaches a renderable handle, releasing the previous one. nil detaches.
func (o *Object) SetRenderObject(r *render.Object) {
	o.renderObject = r
}

// RenderObject returns the renderable handle or nil.
func (o *Object) RenderObject() *render.Object {
	return o.renderObject
}

// OnCollisionBegin sets the callback run when the solver first sees this object touching another.
func (o *Object) OnCollisionBegin(fn func(other *Object)) {
	o.onCollisionBegin = fn
}

// OnCollisionEnd sets the callback run when a previously touching pair separates.
func (o *Object) OnCollisionEnd(fn func(other *Object)) {
	o.onCollisionEnd = fn
}

// CollisionBegan notifies the object that it started touching other.
func (o *Object) CollisionBegan(other *Object) {
	if o.onCollisionBegin != nil {
		o.onCollisionBegin(other)
	}
}

// CollisionEnded notifies the object that it stopped touching other.
func (o *Object) CollisionEnded(other *Object) {
	if o.onCollisionEnd != nil {
		o.onCollisionEnd(other)
	}
}

// Release drops every handle the object owns: volume, physics and render. The trigger target is
// a reference, not ownership, and is left for the world to resolve.
func (o *Object) Release() {
	o.boundingVolume = nil
	o.physicsObject = nil
	o.renderObject = nil
	o.onCollisionBegin = nil
	o.onCollisionEnd = nil
}
