package object

import (
	"fmt"

	"entity-engine/internal/physics"
	"entity-engine/internal/render"
	"entity-engine/internal/volume"

	"github.com/jinzhu/copier"
)

// Clone returns a new object named name carrying deep copies of o's transform, volume and
// handles, so no mutable state is shared with o. The clone gets its own ID, is outside any
// world and has no trigger target or collision callbacks.
func (o *Object) Clone(name string) (*Object, error) {
	c := New(name)
	c.tag = o.tag
	c.active = o.active
	c.transform = o.transform
	c.broadphaseAABB = o.broadphaseAABB

	deep := copier.Option{DeepCopy: true}
	if o.boundingVolume != nil {
		c.boundingVolume = new(volume.Volume)
		if err := copier.CopyWithOption(c.boundingVolume, o.boundingVolume, deep); err != nil {
			return nil, fmt.Errorf("clone %q volume: %w", o.name, err)
		}
	}
	if o.physicsObject != nil {
		c.physicsObject = new(physics.Body)
		if err := copier.CopyWithOption(c.physicsObject, o.physicsObject, deep); err != nil {
			return nil, fmt.Errorf("clone %q physics: %w", o.name, err)
		}
	}
	if o.renderObject != nil {
		c.renderObject = new(render.Object)
		if err := copier.CopyWithOption(c.renderObject, o.renderObject, deep); err != nil {
			return nil, fmt.Errorf("clone %q render: %w", o.name, err)
		}
	}
	return c, nil
}
