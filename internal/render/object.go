// Package render holds the renderable handle objects own and draws them with raylib.
// Nothing in the collision core depends on it; a headless run never opens a window.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Primitive names understood by the Registry.
const (
	Cube     = "cube"
	Sphere   = "sphere"
	Cylinder = "cylinder"
)

// Object is the renderable handle an object owns: which primitive mesh to draw and its tint.
// Meshes are unit sized (cube side 1, sphere radius 1, cylinder radius 0.5 height 1) and take
// their size from the owning transform's scale.
type Object struct {
	Primitive string
	Colour    rl.Color
	Visible   bool
}

// NewObject returns a visible render handle for the given primitive.
func NewObject(primitive string, colour rl.Color) *Object {
	return &Object{Primitive: primitive, Colour: colour, Visible: true}
}

// SetColour changes the tint.
func (o *Object) SetColour(c rl.Color) {
	o.Colour = c
}
