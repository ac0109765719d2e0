package object

import (
	"entity-engine/internal/volume"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BroadphaseAABB returns the world-aligned half extent cached by the last UpdateBroadphaseAABB.
// ok is false when no volume is attached. The value is whatever the last recompute produced;
// it is not invalidated when the transform changes.
func (o *Object) BroadphaseAABB() (extent rl.Vector3, ok bool) {
	if o.boundingVolume == nil {
		return rl.Vector3{}, false
	}
	return o.broadphaseAABB, true
}

// UpdateBroadphaseAABB recomputes the cached extent from the volume and current orientation.
// Objects without a volume are left alone. Panics on an unknown volume kind.
func (o *Object) UpdateBroadphaseAABB() {
	if o.boundingVolume == nil {
		return
	}
	o.broadphaseAABB = volume.Extent(o.boundingVolume, o.transform.Orientation)
}

// BroadphaseBounds returns the cached extent as a world box centred on the object's position.
func (o *Object) BroadphaseBounds() (rl.BoundingBox, bool) {
	ext, ok := o.BroadphaseAABB()
	if !ok {
		return rl.BoundingBox{}, false
	}
	p := o.transform.Position
	return rl.NewBoundingBox(rl.Vector3Subtract(p, ext), rl.Vector3Add(p, ext)), true
}
