package render

import (
	"entity-engine/internal/transform"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Drawable is what the registry needs from a scene object.
type Drawable interface {
	Transform() *transform.Transform
	RenderObject() *Object
}

// Bounded is implemented by drawables that can also show their broad-phase box.
type Bounded interface {
	BroadphaseAABB() (rl.Vector3, bool)
}

const defaultSphereRings = 16
const defaultSphereSlices = 16
const defaultCylinderSlices = 16

// boundsColour is used for broad-phase debug boxes.
var boundsColour = rl.NewColor(80, 220, 80, 255)

// cached holds mesh and material for a primitive, created on first draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// offset recentres meshes whose origin is not their centre (raylib cylinders sit on Y=0).
	offset rl.Vector3
}

// Registry maps primitive names to GPU meshes. Meshes are created lazily so GPU resources
// are only allocated after the window/OpenGL context exists.
type Registry struct {
	cache      map[string]cached
	ShowBounds bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[string]cached)}
}

func (r *Registry) ensure(primitive string) (cached, bool) {
	if c, ok := r.cache[primitive]; ok {
		return c, true
	}
	var c cached
	switch primitive {
	case Cube:
		c.mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		c.mesh = rl.GenMeshSphere(1, defaultSphereRings, defaultSphereSlices)
	case Cylinder:
		c.mesh = rl.GenMeshCylinder(0.5, 1, defaultCylinderSlices)
		c.offset = rl.NewVector3(0, -0.5, 0)
	default:
		return c, false
	}
	c.mtl = rl.LoadMaterialDefault()
	r.cache[primitive] = c
	return c, true
}

// Draw draws one object. Must be called between BeginMode3D and EndMode3D.
// Objects without a render handle, hidden ones and unknown primitives are skipped.
func (r *Registry) Draw(d Drawable) {
	ro := d.RenderObject()
	if ro == nil || !ro.Visible {
		return
	}
	c, ok := r.ensure(ro.Primitive)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = ro.Colour
	}
	m := d.Transform().Matrix()
	if c.offset != rl.Vector3Zero() {
		m = rl.MatrixMultiply(rl.MatrixTranslate(c.offset.X, c.offset.Y, c.offset.Z), m)
	}
	rl.DrawMesh(c.mesh, c.mtl, m)

	if !r.ShowBounds {
		return
	}
	if b, ok := d.(Bounded); ok {
		if ext, ok := b.BroadphaseAABB(); ok {
			p := d.Transform().Position
			rl.DrawBoundingBox(rl.NewBoundingBox(rl.Vector3Subtract(p, ext), rl.Vector3Add(p, ext)), boundsColour)
		}
	}
}

// Unload releases every cached mesh and material.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, k)
	}
}
