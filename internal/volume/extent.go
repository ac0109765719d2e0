package volume

import (
	"fmt"

	"entity-engine/internal/transform"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Extent returns the world-aligned half extent of v under the given orientation.
// AABB ignores orientation, a sphere is bounded by the cube (r, r, r), an OBB by |R|·half,
// and a capsule by the exact bound of its swept sphere. The result goes stale as soon as the
// orientation changes; callers recompute every tick.
//
// Extent panics on an unknown Kind.
func Extent(v *Volume, orientation rl.Quaternion) rl.Vector3 {
	switch v.Kind {
	case AABB:
		return v.HalfSize
	case Sphere:
		return rl.NewVector3(v.Radius, v.Radius, v.Radius)
	case OBB:
		return AbsRotate(transform.RotationMatrix(orientation), v.HalfSize)
	case Capsule:
		axis := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 1, 0), orientation)
		h := v.SegmentHalfLength()
		return rl.NewVector3(
			math32.Abs(axis.X)*h+v.Radius,
			math32.Abs(axis.Y)*h+v.Radius,
			math32.Abs(axis.Z)*h+v.Radius,
		)
	}
	panic(fmt.Sprintf("volume: extent of unknown kind %v", v.Kind))
}

// AbsRotate multiplies the element-wise absolute value of the rotation block of m by half.
// m is in rl.Vector3Transform layout. Each world axis gets the summed absolute projections
// of the three local half axes.
func AbsRotate(m rl.Matrix, half rl.Vector3) rl.Vector3 {
	return rl.NewVector3(
		math32.Abs(m.M0)*half.X+math32.Abs(m.M4)*half.Y+math32.Abs(m.M8)*half.Z,
		math32.Abs(m.M1)*half.X+math32.Abs(m.M5)*half.Y+math32.Abs(m.M9)*half.Z,
		math32.Abs(m.M2)*half.X+math32.Abs(m.M6)*half.Y+math32.Abs(m.M10)*half.Z,
	)
}
