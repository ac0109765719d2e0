package transform

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform is the spatial state owned by one object: world position, orientation and scale.
// Setters return the transform so construction code can chain them, e.g.
// t.SetPosition(p).SetScale(s).
type Transform struct {
	Position    rl.Vector3
	Orientation rl.Quaternion
	Scale       rl.Vector3
}

// New returns a transform at the origin with identity orientation and unit scale.
func New() Transform {
	return Transform{
		Position:    rl.Vector3Zero(),
		Orientation: rl.QuaternionIdentity(),
		Scale:       rl.Vector3One(),
	}
}

// SetPosition sets the world position.
func (t *Transform) SetPosition(p rl.Vector3) *Transform {
	t.Position = p
	return t
}

// SetOrientation sets the orientation. The quaternion is normalized so rotation matrices
// derived from it stay orthonormal.
func (t *Transform) SetOrientation(q rl.Quaternion) *Transform {
	t.Orientation = rl.QuaternionNormalize(q)
	return t
}

// SetScale sets the render/visual scale. Bounding volumes carry their own dimensions and do not read it.
func (t *Transform) SetScale(s rl.Vector3) *Transform {
	t.Scale = s
	return t
}

// SetAxisAngle sets the orientation to a rotation of degrees about axis.
func (t *Transform) SetAxisAngle(axis rl.Vector3, degrees float32) *Transform {
	t.Orientation = AxisAngle(axis, degrees)
	return t
}

// Translate moves the position by delta.
func (t *Transform) Translate(delta rl.Vector3) *Transform {
	t.Position = rl.Vector3Add(t.Position, delta)
	return t
}

// Rotation returns the rotation matrix of the current orientation in the layout rl.Vector3Transform
// reads, so Vector3Transform(p, Rotation()) equals rl.Vector3RotateByQuaternion(p, Orientation).
// rl.QuaternionToMatrix builds the inverse rotation in that layout, hence the transpose.
// Only the upper 3x3 block is non-trivial.
func (t *Transform) Rotation() rl.Matrix {
	return RotationMatrix(t.Orientation)
}

// RotationMatrix is the matrix of q in rl.Vector3Transform layout.
func RotationMatrix(q rl.Quaternion) rl.Matrix {
	return rl.MatrixTranspose(rl.QuaternionToMatrix(q))
}

// Matrix returns the full model matrix: scale, then rotate, then translate.
func (t *Transform) Matrix() rl.Matrix {
	s := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	tr := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(s, t.Rotation()), tr)
}

// ToLocal maps a world-space point into the object's unscaled local frame.
func (t *Transform) ToLocal(p rl.Vector3) rl.Vector3 {
	rel := rl.Vector3Subtract(p, t.Position)
	return rl.Vector3RotateByQuaternion(rel, rl.QuaternionInvert(t.Orientation))
}

// ToWorld maps a point in the object's unscaled local frame into world space.
func (t *Transform) ToWorld(p rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(rl.Vector3RotateByQuaternion(p, t.Orientation), t.Position)
}

// AxisAngle builds a unit quaternion rotating degrees about axis. A zero axis yields identity.
func AxisAngle(axis rl.Vector3, degrees float32) rl.Quaternion {
	if rl.Vector3LengthSqr(axis) == 0 {
		return rl.QuaternionIdentity()
	}
	return rl.QuaternionFromAxisAngle(rl.Vector3Normalize(axis), degrees*rl.Deg2rad)
}
