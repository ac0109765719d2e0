package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the window overlays: FPS and heap size on the right, status lines on the left.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Status returns the lines drawn top-left every frame (score, tick, state). Optional.
	Status func() []string

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug overlay with FPS and memory hidden.
func New(status func() []string) *Debug {
	return &Debug{Status: status}
}

// refresh recomputes cached FPS/Mem text on the first frame and every updateInterval frames.
func (d *Debug) refresh(fps int32) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.lastFpsText == "") || (d.ShowMemAlloc && d.lastMemText == "") {
		update = true
	}
	if !update {
		return
	}
	if d.ShowFPS {
		d.lastFpsText = fmt.Sprintf("FPS: %d", fps)
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.lastMemStats)
		d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
	}
}

// rightLines returns the enabled right-hand overlay texts in draw order.
func (d *Debug) rightLines() []string {
	var out []string
	if d.ShowFPS && d.lastFpsText != "" {
		out = append(out, d.lastFpsText)
	}
	if d.ShowMemAlloc && d.lastMemText != "" {
		out = append(out, d.lastMemText)
	}
	return out
}

// Draw renders the overlays. Call after the 3D pass.
func (d *Debug) Draw() {
	d.refresh(rl.GetFPS())

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.rightLines() {
		rl.DrawText(text, screenW-rl.MeasureText(text, fontSize)-padding, y, fontSize, rl.Green)
		y += lineHeight
	}

	if d.Status == nil {
		return
	}
	y = padding
	for _, text := range d.Status() {
		rl.DrawText(text, padding, y, fontSize, rl.RayWhite)
		y += lineHeight
	}
}
