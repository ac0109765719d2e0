package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

var (
	gridMinor = rl.NewColor(128, 128, 128, gridMinorAlpha)
	gridMajor = rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX     = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY     = rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ     = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// gridLineColour picks the major colour every gridMajorStep lines.
func gridLineColour(i int) rl.Color {
	if i%gridMajorStep == 0 {
		return gridMajor
	}
	return gridMinor
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and the three axes through
// the origin. Must be called inside a 3D pass.
func drawEditorGrid() {
	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := gridLineColour(i)
		start.X, start.Y, start.Z = float32(i), 0, -gridExtent
		end.X, end.Y, end.Z = float32(i), 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, float32(i)
		end.X, end.Y, end.Z = gridExtent, 0, float32(i)
		rl.DrawLine3D(start, end, c)
	}
	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), axisY)
	rl.DrawLine3D(rl.NewVector3(0, 0, -gridExtent), rl.NewVector3(0, 0, gridExtent), axisZ)
}
