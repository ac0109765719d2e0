// Package volume defines the bounding volumes an object can carry and the conservative
// world-aligned half extents the broad phase prunes with.
package volume

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind tags which shape a Volume holds. The set is closed; Extent panics on anything else.
type Kind uint8

const (
	// AABB is a box that never rotates with its object.
	AABB Kind = iota + 1
	// OBB is a box that follows its object's orientation.
	OBB
	// Sphere is defined by a radius only.
	Sphere
	// Capsule is a cylinder capped by hemispheres along the local Y axis.
	Capsule
)

func (k Kind) String() string {
	switch k {
	case AABB:
		return "AABB"
	case OBB:
		return "OBB"
	case Sphere:
		return "Sphere"
	case Capsule:
		return "Capsule"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Volume is a tagged shape. Only the fields that belong to Kind are meaningful:
// HalfSize for AABB and OBB, Radius for Sphere, Radius and HalfHeight for Capsule.
// A Volume is owned by exactly one object; build a new one per object rather than sharing.
type Volume struct {
	Kind Kind

	// HalfSize holds the box half dimensions along the local axes.
	HalfSize rl.Vector3

	Radius float32

	// HalfHeight is half the total capsule length, caps included. It is never smaller than Radius.
	HalfHeight float32
}

// NewAABB returns an axis-aligned box with the given half dimensions.
func NewAABB(halfSize rl.Vector3) *Volume {
	return &Volume{Kind: AABB, HalfSize: halfSize}
}

// NewOBB returns an oriented box with the given half dimensions.
func NewOBB(halfSize rl.Vector3) *Volume {
	return &Volume{Kind: OBB, HalfSize: halfSize}
}

// NewSphere returns a sphere of radius r.
func NewSphere(r float32) *Volume {
	return &Volume{Kind: Sphere, Radius: r}
}

// NewCapsule returns a capsule of the given half height (caps included) and radius.
// halfHeight is raised to radius when smaller, which degenerates to a sphere.
func NewCapsule(halfHeight, radius float32) *Volume {
	if halfHeight < radius {
		halfHeight = radius
	}
	return &Volume{Kind: Capsule, HalfHeight: halfHeight, Radius: radius}
}

// SegmentHalfLength is the half length of the capsule's inner line segment.
func (v *Volume) SegmentHalfLength() float32 {
	return v.HalfHeight - v.Radius
}

func (v *Volume) String() string {
	switch v.Kind {
	case AABB, OBB:
		return fmt.Sprintf("%s{half=(%g, %g, %g)}", v.Kind, v.HalfSize.X, v.HalfSize.Y, v.HalfSize.Z)
	case Sphere:
		return fmt.Sprintf("Sphere{r=%g}", v.Radius)
	case Capsule:
		return fmt.Sprintf("Capsule{halfHeight=%g, r=%g}", v.HalfHeight, v.Radius)
	}
	return v.Kind.String()
}
