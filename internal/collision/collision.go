// Package collision is the narrow phase: exact pairwise intersection between the
// bounding volumes of two colliders, with contact data for the response step.
package collision

import (
	"entity-engine/internal/transform"
	"entity-engine/internal/volume"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// epsilon guards divisions by near-zero lengths.
const epsilon = 1e-6

// Collider is anything carrying a transform and an optional bounding volume.
type Collider interface {
	Transform() *transform.Transform
	BoundingVolume() *volume.Volume
}

// Info describes one contact. Normal is a unit vector pointing from the first collider
// towards the second; moving the second collider by Normal*Penetration separates the pair.
type Info struct {
	Normal      rl.Vector3
	Penetration float32
	Point       rl.Vector3
}

// Func is a pairwise precise-intersection predicate.
type Func func(a, b Collider) (Info, bool)

// ObjectIntersection reports whether the volumes of a and b intersect. A collider without
// a volume never intersects anything. Every pair of volume kinds is handled; capsule-box
// contacts are found by iterating closest points, which is exact for convex inputs to within
// a small tolerance.
func ObjectIntersection(a, b Collider) (Info, bool) {
	sa, ok := shapeOf(a)
	if !ok {
		return Info{}, false
	}
	sb, ok := shapeOf(b)
	if !ok {
		return Info{}, false
	}
	return intersect(sa, sb)
}

func intersect(a, b shape) (Info, bool) {
	if a.kind > b.kind {
		info, ok := intersect(b, a)
		info.Normal = rl.Vector3Negate(info.Normal)
		return info, ok
	}
	switch {
	case a.kind == volume.AABB && b.kind == volume.AABB:
		return aabbAABB(a, b)
	case a.isBox() && b.isBox():
		return boxBox(a, b)
	case a.isBox() && b.kind == volume.Sphere:
		return boxSphere(a, b.center, b.radius)
	case a.isBox() && b.kind == volume.Capsule:
		return boxCapsule(a, b)
	case a.kind == volume.Sphere && b.kind == volume.Sphere:
		return sphereSphere(a.center, a.radius, b.center, b.radius)
	case a.kind == volume.Sphere && b.kind == volume.Capsule:
		p := closestOnSegment(b.segA, b.segB, a.center)
		return sphereSphere(a.center, a.radius, p, b.radius)
	default:
		p, q := closestBetweenSegments(a.segA, a.segB, b.segA, b.segB)
		return sphereSphere(p, a.radius, q, b.radius)
	}
}

func sphereSphere(ca rl.Vector3, ra float32, cb rl.Vector3, rb float32) (Info, bool) {
	if !rl.CheckCollisionSpheres(ca, ra, cb, rb) {
		return Info{}, false
	}
	d := rl.Vector3Subtract(cb, ca)
	dist := rl.Vector3Length(d)
	n := rl.NewVector3(0, 1, 0)
	if dist > epsilon {
		n = rl.Vector3Scale(d, 1/dist)
	}
	return Info{
		Normal:      n,
		Penetration: ra + rb - dist,
		Point:       rl.Vector3Add(ca, rl.Vector3Scale(n, ra)),
	}, true
}

// aabbAABB resolves along the axis of least overlap.
func aabbAABB(a, b shape) (Info, bool) {
	ba, bb := a.bounds(), b.bounds()
	if !rl.CheckCollisionBoxes(ba, bb) {
		return Info{}, false
	}
	depth, axis := penetrationAxis(ba, bb)
	if axis < 0 {
		return Info{}, false
	}
	d := rl.Vector3Subtract(b.center, a.center)
	var n rl.Vector3
	switch axis {
	case 0:
		n.X = sign(d.X)
	case 1:
		n.Y = sign(d.Y)
	case 2:
		n.Z = sign(d.Z)
	}
	lo := rl.Vector3Max(ba.Min, bb.Min)
	hi := rl.Vector3Min(ba.Max, bb.Max)
	return Info{Normal: n, Penetration: depth, Point: rl.Vector3Lerp(lo, hi, 0.5)}, true
}

// penetrationAxis returns the overlap amount and axis index (0=X, 1=Y, 2=Z) of minimum penetration,
// or (0, -1) when the boxes only touch or are apart.
func penetrationAxis(a, b rl.BoundingBox) (depth float32, axis int) {
	overlapX := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	overlapY := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	overlapZ := min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z)
	if overlapX < 0 || overlapY < 0 || overlapZ < 0 {
		return 0, -1
	}
	depth, axis = overlapX, 0
	if overlapY < depth {
		depth, axis = overlapY, 1
	}
	if overlapZ < depth {
		depth, axis = overlapZ, 2
	}
	return depth, axis
}

// boxBox is a separating axis test over the 15 candidate axes of two boxes.
func boxBox(a, b shape) (Info, bool) {
	d := rl.Vector3Subtract(b.center, a.center)
	best := math32.Inf(1)
	var normal rl.Vector3

	test := func(axis rl.Vector3) bool {
		l := rl.Vector3LengthSqr(axis)
		if l < epsilon {
			// parallel edge pair, already covered by a face axis
			return true
		}
		axis = rl.Vector3Scale(axis, 1/math32.Sqrt(l))
		dist := rl.Vector3DotProduct(d, axis)
		overlap := a.project(axis) + b.project(axis) - math32.Abs(dist)
		if overlap < 0 {
			return false
		}
		if overlap < best {
			best = overlap
			if dist < 0 {
				axis = rl.Vector3Negate(axis)
			}
			normal = axis
		}
		return true
	}

	for i := 0; i < 3; i++ {
		if !test(a.axes[i]) || !test(b.axes[i]) {
			return Info{}, false
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !test(rl.Vector3CrossProduct(a.axes[i], b.axes[j])) {
				return Info{}, false
			}
		}
	}
	return Info{
		Normal:      normal,
		Penetration: best,
		Point:       b.support(rl.Vector3Negate(normal)),
	}, true
}

func boxSphere(box shape, c rl.Vector3, r float32) (Info, bool) {
	if box.kind == volume.AABB && !rl.CheckCollisionBoxSphere(box.bounds(), c, r) {
		return Info{}, false
	}
	n, depth, p, ok := boxSphereLocal(box.half, box.toLocal(c), r)
	if !ok {
		return Info{}, false
	}
	return Info{
		Normal:      rl.Vector3RotateByQuaternion(n, box.orient),
		Penetration: depth,
		Point:       box.toWorld(p),
	}, true
}

func boxCapsule(box shape, cp shape) (Info, bool) {
	a, b := box.toLocal(cp.segA), box.toLocal(cp.segB)
	p := closestOnSegment(a, b, rl.Vector3Zero())
	for i := 0; i < 3; i++ {
		p = closestOnSegment(a, b, clampToBox(p, box.half))
	}
	n, depth, q, ok := boxSphereLocal(box.half, p, cp.radius)
	if !ok {
		return Info{}, false
	}
	return Info{
		Normal:      rl.Vector3RotateByQuaternion(n, box.orient),
		Penetration: depth,
		Point:       box.toWorld(q),
	}, true
}

// boxSphereLocal tests a sphere against the box [-half, half], both expressed in the box frame.
// The normal points from the box towards the sphere; point is on the box surface.
func boxSphereLocal(half, c rl.Vector3, r float32) (normal rl.Vector3, depth float32, point rl.Vector3, ok bool) {
	closest := clampToBox(c, half)
	d := rl.Vector3Subtract(c, closest)
	distSq := rl.Vector3LengthSqr(d)
	if distSq > r*r {
		return normal, 0, point, false
	}
	if distSq > epsilon*epsilon {
		dist := math32.Sqrt(distSq)
		return rl.Vector3Scale(d, 1/dist), r - dist, closest, true
	}

	// centre inside the box: leave through the nearest face
	faces := [3]float32{half.X - math32.Abs(c.X), half.Y - math32.Abs(c.Y), half.Z - math32.Abs(c.Z)}
	axis := 0
	for i := 1; i < 3; i++ {
		if faces[i] < faces[axis] {
			axis = i
		}
	}
	point = c
	switch axis {
	case 0:
		normal.X = sign(c.X)
		point.X = normal.X * half.X
	case 1:
		normal.Y = sign(c.Y)
		point.Y = normal.Y * half.Y
	case 2:
		normal.Z = sign(c.Z)
		point.Z = normal.Z * half.Z
	}
	return normal, faces[axis] + r, point, true
}

func clampToBox(p, half rl.Vector3) rl.Vector3 {
	return rl.NewVector3(
		rl.Clamp(p.X, -half.X, half.X),
		rl.Clamp(p.Y, -half.Y, half.Y),
		rl.Clamp(p.Z, -half.Z, half.Z),
	)
}

func closestOnSegment(a, b, p rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	l := rl.Vector3LengthSqr(ab)
	if l < epsilon {
		return a
	}
	t := rl.Clamp(rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab)/l, 0, 1)
	return rl.Vector3Add(a, rl.Vector3Scale(ab, t))
}

// closestBetweenSegments returns the closest points on segments p1q1 and p2q2.
func closestBetweenSegments(p1, q1, p2, q2 rl.Vector3) (c1, c2 rl.Vector3) {
	d1 := rl.Vector3Subtract(q1, p1)
	d2 := rl.Vector3Subtract(q2, p2)
	r := rl.Vector3Subtract(p1, p2)
	a := rl.Vector3DotProduct(d1, d1)
	e := rl.Vector3DotProduct(d2, d2)
	f := rl.Vector3DotProduct(d2, r)

	var s, t float32
	switch {
	case a <= epsilon && e <= epsilon:
		return p1, p2
	case a <= epsilon:
		t = rl.Clamp(f/e, 0, 1)
	default:
		c := rl.Vector3DotProduct(d1, r)
		if e <= epsilon {
			s = rl.Clamp(-c/a, 0, 1)
			break
		}
		b := rl.Vector3DotProduct(d1, d2)
		if denom := a*e - b*b; denom != 0 {
			s = rl.Clamp((b*f-c*e)/denom, 0, 1)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = rl.Clamp(-c/a, 0, 1)
		} else if t > 1 {
			t = 1
			s = rl.Clamp((b-c)/a, 0, 1)
		}
	}
	return rl.Vector3Add(p1, rl.Vector3Scale(d1, s)), rl.Vector3Add(p2, rl.Vector3Scale(d2, t))
}

func sign(f float32) float32 {
	if f < 0 {
		return -1
	}
	return 1
}
