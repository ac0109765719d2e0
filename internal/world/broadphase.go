package world

import (
	"cmp"
	"slices"

	"entity-engine/internal/object"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pair is a candidate contact produced by the broad phase. A precedes B in world order.
type Pair struct {
	A, B *object.Object

	order [2]int
}

// UpdateBroadphase recomputes the cached extent of every active object.
func (w *World) UpdateBroadphase() {
	for _, o := range w.objects {
		if !o.IsActive() {
			continue
		}
		o.UpdateBroadphaseAABB()
	}
}

type sweepEntry struct {
	obj   *object.Object
	box   rl.BoundingBox
	order int
}

// BroadphasePairs sweeps the cached extents of active objects along X and returns every pair whose
// boxes overlap on all three axes. Touching boxes count as overlapping. Pairs follow the current
// world order, so ShuffleObjects also reorders contact resolution.
func (w *World) BroadphasePairs() []Pair {
	entries := make([]sweepEntry, 0, len(w.objects))
	for i, o := range w.objects {
		if !o.IsActive() {
			continue
		}
		box, ok := o.BroadphaseBounds()
		if !ok {
			continue
		}
		entries = append(entries, sweepEntry{obj: o, box: box, order: i})
	}
	slices.SortStableFunc(entries, func(a, b sweepEntry) int {
		return cmp.Compare(a.box.Min.X, b.box.Min.X)
	})

	var pairs []Pair
	for i := range entries {
		a := entries[i]
		for j := i + 1; j < len(entries); j++ {
			b := entries[j]
			if b.box.Min.X > a.box.Max.X {
				break
			}
			if !overlapYZ(a.box, b.box) {
				continue
			}
			first, second := a, b
			if first.order > second.order {
				first, second = second, first
			}
			pairs = append(pairs, Pair{
				A:     first.obj,
				B:     second.obj,
				order: [2]int{first.order, second.order},
			})
		}
	}
	slices.SortFunc(pairs, func(p, q Pair) int {
		if c := cmp.Compare(p.order[0], q.order[0]); c != 0 {
			return c
		}
		return cmp.Compare(p.order[1], q.order[1])
	})
	return pairs
}

func overlapYZ(a, b rl.BoundingBox) bool {
	return a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y &&
		a.Min.Z <= b.Max.Z && b.Min.Z <= a.Max.Z
}
