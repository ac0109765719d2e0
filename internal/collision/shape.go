package collision

import (
	"fmt"

	"entity-engine/internal/volume"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// shape is a volume resolved into world space for one test.
type shape struct {
	kind   volume.Kind
	center rl.Vector3
	orient rl.Quaternion
	axes   [3]rl.Vector3
	half   rl.Vector3
	radius float32
	segA   rl.Vector3
	segB   rl.Vector3
}

func shapeOf(c Collider) (shape, bool) {
	v := c.BoundingVolume()
	if v == nil {
		return shape{}, false
	}
	t := c.Transform()
	s := shape{
		kind:   v.Kind,
		center: t.Position,
		orient: rl.QuaternionIdentity(),
		half:   v.HalfSize,
		radius: v.Radius,
	}
	switch v.Kind {
	case volume.AABB:
		s.axes = [3]rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}}
	case volume.OBB:
		s.orient = t.Orientation
		s.axes = [3]rl.Vector3{
			rl.Vector3RotateByQuaternion(rl.NewVector3(1, 0, 0), t.Orientation),
			rl.Vector3RotateByQuaternion(rl.NewVector3(0, 1, 0), t.Orientation),
			rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0, 1), t.Orientation),
		}
	case volume.Sphere:
	case volume.Capsule:
		s.orient = t.Orientation
		up := rl.Vector3RotateByQuaternion(rl.NewVector3(0, v.SegmentHalfLength(), 0), t.Orientation)
		s.segA = rl.Vector3Subtract(t.Position, up)
		s.segB = rl.Vector3Add(t.Position, up)
	default:
		panic(fmt.Sprintf("collision: unknown volume kind %v", v.Kind))
	}
	return s, true
}

func (s shape) isBox() bool {
	return s.kind == volume.AABB || s.kind == volume.OBB
}

func (s shape) bounds() rl.BoundingBox {
	return rl.NewBoundingBox(rl.Vector3Subtract(s.center, s.half), rl.Vector3Add(s.center, s.half))
}

// project returns the box's half length along a unit axis.
func (s shape) project(axis rl.Vector3) float32 {
	return s.half.X*math32.Abs(rl.Vector3DotProduct(s.axes[0], axis)) +
		s.half.Y*math32.Abs(rl.Vector3DotProduct(s.axes[1], axis)) +
		s.half.Z*math32.Abs(rl.Vector3DotProduct(s.axes[2], axis))
}

// support returns the box vertex furthest along dir.
func (s shape) support(dir rl.Vector3) rl.Vector3 {
	p := s.center
	h := [3]float32{s.half.X, s.half.Y, s.half.Z}
	for i, ax := range s.axes {
		p = rl.Vector3Add(p, rl.Vector3Scale(ax, sign(rl.Vector3DotProduct(ax, dir))*h[i]))
	}
	return p
}

func (s shape) toLocal(p rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3Subtract(p, s.center), rl.QuaternionInvert(s.orient))
}

func (s shape) toWorld(p rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(rl.Vector3RotateByQuaternion(p, s.orient), s.center)
}
