package mapgen

import (
	"time"

	"github.com/chewxy/math32"
)

// GenerateOptions controls procedural grid generation.
// Width/Depth are in cells. Cells whose noise exceeds WallThreshold become walls; the outer ring
// is always wall. Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type GenerateOptions struct {
	Width         int
	Depth         int
	WallThreshold float32

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultGenerateOptions returns a sane default configuration.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Width:         16,
		Depth:         16,
		WallThreshold: 0.7,
		Octaves:       4,
		Frequency:     0.15,
		Lacunarity:    2.0,
		Gain:          0.5,
	}
}

// Generate builds a walled arena. The start is the cell after the north-west corner and the finish
// the cell before the south-east corner; both are kept clear along with their neighbours. Every
// other interior cell is wall or coin-topped floor depending on the noise.
func Generate(opts GenerateOptions) Grid {
	d := DefaultGenerateOptions()
	if opts.Width < 4 {
		opts.Width = 4
	}
	if opts.Depth < 4 {
		opts.Depth = 4
	}
	if opts.WallThreshold <= 0 {
		opts.WallThreshold = d.WallThreshold
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}
	if opts.Frequency <= 0 {
		opts.Frequency = d.Frequency
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = d.Lacunarity
	}
	if opts.Gain <= 0 {
		opts.Gain = d.Gain
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := NewGrid(opts.Width, opts.Depth)
	sx, sy := 1, 1
	ex, ey := opts.Width-2, opts.Depth-2
	near := func(x, y, cx, cy int) bool {
		return x >= cx-1 && x <= cx+1 && y >= cy-1 && y <= cy+1
	}
	for y := 0; y < opts.Depth; y++ {
		for x := 0; x < opts.Width; x++ {
			if x == 0 || y == 0 || x == opts.Width-1 || y == opts.Depth-1 {
				g.Set(x, y, Wall)
				continue
			}
			if near(x, y, sx, sy) || near(x, y, ex, ey) {
				g.Set(x, y, PlainFloor)
				continue
			}
			h := fractalValueNoise2D(float32(x)*opts.Frequency, float32(y)*opts.Frequency, seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			if isFinite(h) && h > opts.WallThreshold {
				g.Set(x, y, Wall)
			} else {
				g.Set(x, y, Floor)
			}
		}
	}
	g.Set(sx, sy, Start)
	g.Set(ex, ey, Finish)
	return g
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value noise with
// configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amplitude := float32(1)
	freq := float32(1)
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, int32(seed)+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] over a hashed integer lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	sx := smoothStep(x - float32(x0))
	sy := smoothStep(y - float32(y0))

	ix0 := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	ix1 := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
