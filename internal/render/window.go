package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Loop holds the per-frame callbacks Run drives.
type Loop struct {
	// Update advances the simulation; returning false closes the window.
	Update func(dt float32) bool
	// Scene lists what to draw in the 3D pass.
	Scene func() []Drawable
	// Overlay draws 2D content (console, HUD) after the 3D pass. Optional.
	Overlay func()
	// Input runs before Update. Returning true means it captured the keyboard and the camera
	// stays put this frame. Optional.
	Input func() bool
}

// Run opens a window and drives the frame loop until the window is closed or Update returns false.
// ESC is left to Input (the console toggles on it); close via the window button.
func Run(title string, width, height int32, loop Loop, reg *Registry) {
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()
	defer reg.Unload()
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{
		Position:   rl.NewVector3(-60, 40, 60),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		captured := loop.Input != nil && loop.Input()
		if !loop.Update(rl.GetFrameTime()) {
			return
		}
		if !captured {
			rl.UpdateCamera(&camera, rl.CameraFree)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.BeginMode3D(camera)
		drawEditorGrid()
		for _, d := range loop.Scene() {
			reg.Draw(d)
		}
		rl.EndMode3D()
		if loop.Overlay != nil {
			loop.Overlay()
		}
		rl.EndDrawing()
	}
}
