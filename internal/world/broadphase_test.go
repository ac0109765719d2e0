package world

import (
	"testing"

	"entity-engine/internal/collision"
	"entity-engine/internal/object"
	"entity-engine/internal/volume"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairNames(ps []Pair) [][2]string {
	out := make([][2]string, len(ps))
	for i, p := range ps {
		out[i] = [2]string{p.A.Name(), p.B.Name()}
	}
	return out
}

func TestUpdateBroadphaseSkipsInactive(t *testing.T) {
	w := NewSeeded(1)
	live := object.New("live")
	live.SetBoundingVolume(volume.NewSphere(2))
	idle := object.New("idle")
	idle.SetBoundingVolume(volume.NewSphere(2))
	idle.SetActive(false)
	w.AddGameObject(live)
	w.AddGameObject(idle)

	w.UpdateBroadphase()
	ext, _ := live.BroadphaseAABB()
	assert.Equal(t, rl.NewVector3(2, 2, 2), ext)
	ext, _ = idle.BroadphaseAABB()
	assert.Equal(t, rl.Vector3{}, ext)
}

func TestBroadphasePairs(t *testing.T) {
	w := NewSeeded(1)
	// c sorts first on X but was inserted last.
	a := sphere("a", 1, 0, 0, 0)
	b := sphere("b", 1, 1.5, 0, 0)
	far := sphere("far", 1, 50, 0, 0)
	high := sphere("high", 1, 0.5, 10, 0)
	touch := sphere("touch", 1, 3.5, 0, 0)
	c := sphere("c", 1, -1, 0, 0)
	bare := object.New("bare")
	for _, o := range []*object.Object{a, b, far, high, touch, c, bare} {
		w.AddGameObject(o)
	}
	w.UpdateBroadphase()

	got := w.BroadphasePairs()
	assert.Equal(t, [][2]string{
		{"a", "b"},
		{"a", "c"},
		{"b", "touch"},
	}, pairNames(got))
}

func TestBroadphasePairsUseOrientedExtent(t *testing.T) {
	w := NewSeeded(1)
	plank := object.New("plank")
	plank.SetBoundingVolume(volume.NewOBB(rl.NewVector3(4, 0.5, 0.5)))
	ball := sphere("ball", 0.5, 0, 3, 0)
	w.AddGameObject(plank)
	w.AddGameObject(ball)

	w.UpdateBroadphase()
	assert.Empty(t, w.BroadphasePairs())

	plank.Transform().SetAxisAngle(rl.NewVector3(0, 0, 1), 90)
	w.UpdateBroadphase()
	require.Len(t, w.BroadphasePairs(), 1)
}

func TestBroadphasePairsSkipInactive(t *testing.T) {
	w := NewSeeded(1)
	a := sphere("a", 1, 0, 0, 0)
	b := sphere("b", 1, 0.5, 0, 0)
	w.AddGameObject(a)
	w.AddGameObject(b)
	w.UpdateBroadphase()
	b.SetActive(false)
	assert.Empty(t, w.BroadphasePairs())
}

func TestBroadphaseKeepsRotatedContacts(t *testing.T) {
	axis := rl.NewVector3(1, 2, 3)
	tests := []struct {
		name  string
		vol   *volume.Volume
		deg   float32
		local rl.Vector3
	}{
		{"bar end corner", volume.NewOBB(rl.NewVector3(3, 0.2, 0.2)), 41, rl.NewVector3(3.05, 0.2, 0.2)},
		{"bar far corner", volume.NewOBB(rl.NewVector3(3, 0.2, 0.2)), 41, rl.NewVector3(-3.05, -0.2, 0.2)},
		{"slab edge", volume.NewOBB(rl.NewVector3(2, 1, 0.5)), -70, rl.NewVector3(2.05, -1, 0)},
		{"capsule tip", volume.NewCapsule(3, 0.5), 60, rl.NewVector3(0, 3.05, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewSeeded(1)
			long := object.New("long")
			long.SetBoundingVolume(tt.vol)
			long.Transform().SetAxisAngle(axis, tt.deg)
			tip := long.Transform().ToWorld(tt.local)
			ball := sphere("ball", 0.1, tip.X, tip.Y, tip.Z)
			w.AddGameObject(long)
			w.AddGameObject(ball)

			_, hit := collision.ObjectIntersection(long, ball)
			require.True(t, hit, "narrow phase")
			w.UpdateBroadphase()
			assert.Equal(t, [][2]string{{"long", "ball"}}, pairNames(w.BroadphasePairs()))
		})
	}
}
