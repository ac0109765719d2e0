// Package world is the scene container objects live in. It owns insertion order, resolves the
// weak object IDs that trigger queries record, and prunes candidate pairs for the solver.
package world

import (
	"math/rand/v2"
	"slices"
	"time"

	"entity-engine/internal/object"
)

// World holds the objects of one scene in insertion order.
type World struct {
	objects     []*object.Object
	byID        map[object.ID]*object.Object
	nextWorldID int

	shuffle bool
	rng     *rand.Rand
}

// New returns an empty world whose shuffling is seeded from the clock.
func New() *World {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// NewSeeded returns an empty world with a deterministic shuffle sequence.
func NewSeeded(seed uint64) *World {
	return &World{
		byID: make(map[object.ID]*object.Object),
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// AddGameObject appends o and assigns its world index. Adding an object twice is a no-op.
func (w *World) AddGameObject(o *object.Object) object.ID {
	if _, ok := w.byID[o.ID()]; ok {
		return o.ID()
	}
	o.SetWorldID(w.nextWorldID)
	w.nextWorldID++
	w.objects = append(w.objects, o)
	w.byID[o.ID()] = o
	return o.ID()
}

// RemoveGameObject takes o out of the world, keeping the order of the rest. With release set the
// object's handles are dropped as well. Reports whether o was present.
func (w *World) RemoveGameObject(o *object.Object, release bool) bool {
	if o == nil {
		return false
	}
	if _, ok := w.byID[o.ID()]; !ok {
		return false
	}
	delete(w.byID, o.ID())
	if i := slices.Index(w.objects, o); i >= 0 {
		w.objects = slices.Delete(w.objects, i, i+1)
	}
	o.SetWorldID(-1)
	if release {
		o.Release()
	}
	return true
}

// GetAllObjs returns a snapshot of the objects in their current order. Removing objects while
// iterating the snapshot is safe.
func (w *World) GetAllObjs() []*object.Object {
	return slices.Clone(w.objects)
}

// Len returns the number of objects in the world.
func (w *World) Len() int {
	return len(w.objects)
}

// Object resolves id. ok is false once the object has been removed.
func (w *World) Object(id object.ID) (*object.Object, bool) {
	o, ok := w.byID[id]
	return o, ok
}

// FindByName returns the first object named name, or nil.
func (w *World) FindByName(name string) *object.Object {
	for _, o := range w.objects {
		if o.Name() == name {
			return o
		}
	}
	return nil
}

// FindByTag returns every object carrying tag, in world order.
func (w *World) FindByTag(tag string) []*object.Object {
	var out []*object.Object
	for _, o := range w.objects {
		if o.Tag() == tag {
			out = append(out, o)
		}
	}
	return out
}

// TriggerTarget resolves o's last trigger match through the world. A target that has since left
// the world is reported absent.
func (w *World) TriggerTarget(o *object.Object) (*object.Object, bool) {
	id, ok := o.TriggerTarget()
	if !ok {
		return nil, false
	}
	return w.Object(id)
}

// ConsumeTriggerTarget resolves o's trigger target, removes it from the world and clears o's
// record, so the next failed query does not report the same match again.
func (w *World) ConsumeTriggerTarget(o *object.Object, release bool) (*object.Object, bool) {
	target, ok := w.TriggerTarget(o)
	o.ClearTriggerTarget()
	if !ok {
		return nil, false
	}
	w.RemoveGameObject(target, release)
	return target, true
}

// ShuffleObjects turns per-update randomisation of the object order on or off. Running the solver
// over the same order every tick lets the same objects keep winning contacts.
func (w *World) ShuffleObjects(shuffle bool) {
	w.shuffle = shuffle
}

// Shuffling reports whether ShuffleObjects is on.
func (w *World) Shuffling() bool {
	return w.shuffle
}

// Update runs once per tick before the solver.
func (w *World) Update() {
	if w.shuffle {
		w.rng.Shuffle(len(w.objects), func(i, j int) {
			w.objects[i], w.objects[j] = w.objects[j], w.objects[i]
		})
	}
}

// Clear forgets every object without releasing it.
func (w *World) Clear() {
	for _, o := range w.objects {
		o.SetWorldID(-1)
	}
	w.objects = nil
	clear(w.byID)
	w.nextWorldID = 0
}

// ClearAndErase removes and releases every object.
func (w *World) ClearAndErase() {
	for _, o := range w.objects {
		o.Release()
	}
	w.Clear()
}
