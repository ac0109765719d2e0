package object

import (
	"entity-engine/internal/collision"
)

// OnTriggerEnter scans candidates in order with the narrow-phase test and stops at the first one
// that both intersects o and is named name. That candidate is recorded as the trigger target and
// true is returned. Overlaps with differently named candidates do not stop the scan.
//
// When nothing matches the previous trigger target is kept. Consumers that want per-frame state
// call ClearTriggerTarget once they have acted on a match.
func (o *Object) OnTriggerEnter(candidates []*Object, name string) bool {
	return o.OnTriggerEnterFunc(candidates, name, collision.ObjectIntersection)
}

// OnTriggerEnterFunc is OnTriggerEnter with an explicit intersection predicate.
func (o *Object) OnTriggerEnterFunc(candidates []*Object, name string, test collision.Func) bool {
	for _, c := range candidates {
		if c == nil || c == o {
			continue
		}
		if _, hit := test(o, c); !hit {
			continue
		}
		if c.name != name {
			continue
		}
		o.triggerTarget = c.id
		return true
	}
	return false
}

// TriggerTarget returns the ID of the last trigger match, if any. Resolve it through the world;
// the object may have been removed since.
func (o *Object) TriggerTarget() (ID, bool) {
	return o.triggerTarget, o.triggerTarget != NoID
}

// ClearTriggerTarget forgets the last trigger match.
func (o *Object) ClearTriggerTarget() {
	o.triggerTarget = NoID
}
