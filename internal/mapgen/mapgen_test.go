package mapgen

import (
	"strings"
	"testing"

	"entity-engine/internal/object"
	"entity-engine/internal/volume"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const level = `# demo
xxxxx
xs.ex
x/p\x
xo_
`

func countByName(objs []*object.Object) map[string]int {
	out := make(map[string]int)
	for _, o := range objs {
		out[o.Name()]++
	}
	return out
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(strings.NewReader(level))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Width)
	assert.Equal(t, 4, g.Height)
	assert.Equal(t, byte(Start), g.At(1, 1))
	assert.Equal(t, byte(Empty), g.At(4, 3), "short rows are padded")
	assert.Equal(t, byte(Empty), g.At(-1, 0))
	assert.Equal(t, strings.TrimPrefix(level, "# demo\n"), g.String())
}

func TestParseGridRejectsUnknownCells(t *testing.T) {
	_, err := ParseGrid(strings.NewReader("xx\nx?x\n"))
	assert.ErrorContains(t, err, "line 2 col 2")
}

func TestBuild(t *testing.T) {
	g, err := ParseGrid(strings.NewReader(level))
	require.NoError(t, err)
	lvl := Build(g, BuildOptions{NodeSize: 2})

	assert.Equal(t, map[string]int{
		NameWall:     10,
		NameFloor:    4, // s, ., p, _
		NameCoin:     1,
		NameFinish:   1,
		NameSlope:    2,
		NameProp:     1,
		NameObstacle: 1,
	}, countByName(lvl.Objects))
	assert.Equal(t, rl.NewVector3(2, 1.6, 2), lvl.Start)

	for _, o := range lvl.Objects {
		_, ok := o.BroadphaseAABB()
		assert.True(t, ok, o.Name())
		require.NotNil(t, o.PhysicsObject(), o.Name())
		switch o.Name() {
		case NameProp:
			assert.False(t, o.PhysicsObject().Static())
			assert.Equal(t, NameProp, o.Tag())
		case NameCoin:
			assert.True(t, o.PhysicsObject().Trigger)
			assert.Equal(t, volume.Sphere, o.BoundingVolume().Kind)
			assert.Equal(t, rl.NewVector3(4, 1, 2), o.Transform().Position)
		default:
			assert.True(t, o.PhysicsObject().Static(), o.Name())
		}
	}
}

func TestBuildSlopeExtentFollowsTilt(t *testing.T) {
	lvl := Build(Grid{Width: 1, Height: 1, Cells: []byte{SlopeUp}}, BuildOptions{NodeSize: 2})
	require.Len(t, lvl.Objects, 1)
	ext, _ := lvl.Objects[0].BroadphaseAABB()
	assert.Greater(t, ext.Y, float32(0.2), "tilted slab is taller than its half height")
}

func TestBuildWithoutStart(t *testing.T) {
	lvl := Build(NewGrid(2, 2), BuildOptions{})
	assert.Empty(t, lvl.Objects)
	assert.Equal(t, rl.NewVector3(0, 1.6, 0), lvl.Start)
}

func TestGenerate(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Seed = 7
	g := Generate(opts)
	require.Equal(t, 16, g.Width)
	require.Equal(t, 16, g.Height)

	for x := 0; x < g.Width; x++ {
		assert.Equal(t, byte(Wall), g.At(x, 0))
		assert.Equal(t, byte(Wall), g.At(x, g.Height-1))
	}
	assert.Equal(t, byte(Start), g.At(1, 1))
	assert.Equal(t, byte(Finish), g.At(14, 14))
	assert.Equal(t, byte(PlainFloor), g.At(2, 2))
	assert.Equal(t, g, Generate(opts), "same seed, same grid")

	parsed, err := ParseGrid(strings.NewReader(g.String()))
	require.NoError(t, err)
	assert.Equal(t, g, parsed)
}

func TestNoiseRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := fractalValueNoise2D(float32(i)*0.37, float32(i)*0.11, 3, 4, 2, 0.5)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestParseGridAcceptsPendulumCells(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("xlrx\n"))
	require.NoError(t, err)
	assert.Equal(t, byte(PendulumLeft), g.At(1, 0))
	assert.Equal(t, byte(PendulumRight), g.At(2, 0))
}

func TestBuildPendulum(t *testing.T) {
	for _, tt := range []struct {
		cell byte
		side float32
	}{
		{PendulumLeft, -1},
		{PendulumRight, 1},
	} {
		t.Run(string(tt.cell), func(t *testing.T) {
			lvl := Build(Grid{Width: 1, Height: 1, Cells: []byte{tt.cell}}, BuildOptions{NodeSize: 2})
			assert.Equal(t, map[string]int{
				NameFloor:    1,
				NameCoin:     1,
				NameAnchor:   1,
				NameLink:     2,
				NameObstacle: 1,
			}, countByName(lvl.Objects))
			require.Len(t, lvl.Links, 3)

			anchor := lvl.Links[0].A
			assert.Equal(t, NameAnchor, anchor.Name())
			assert.True(t, anchor.PhysicsObject().Static())
			assert.Equal(t, rl.NewVector3(0, 26, 0), anchor.Transform().Position)
			for i, l := range lvl.Links {
				assert.Equal(t, float32(8), l.MaxDistance)
				assert.False(t, l.B.PhysicsObject().Static())
				if i > 0 {
					assert.Same(t, lvl.Links[i-1].B, l.A, "chained")
				}
			}

			ball := lvl.Links[2].B
			assert.Equal(t, NameObstacle, ball.Name())
			assert.Equal(t, volume.Sphere, ball.BoundingVolume().Kind)
			assert.Equal(t, rl.NewVector3(tt.side*16, 26, 0), ball.Transform().Position)
			assert.Empty(t, lvl.Patrols)
		})
	}
}

func TestBuildObstaclePatrols(t *testing.T) {
	lvl := Build(Grid{Width: 1, Height: 1, Cells: []byte{Obstacle}}, BuildOptions{NodeSize: 2})
	require.Len(t, lvl.Objects, 1)
	require.Len(t, lvl.Patrols, 1)
	o := lvl.Patrols[0].Object()
	assert.Same(t, lvl.Objects[0], o)
	assert.Equal(t, volume.AABB, o.BoundingVolume().Kind)

	start := o.Transform().Position
	lvl.Patrols[0].Update(0.5)
	assert.InDelta(t, start.X+1, o.Transform().Position.X, 1e-5)
	assert.Equal(t, start.Z, o.Transform().Position.Z)
}
