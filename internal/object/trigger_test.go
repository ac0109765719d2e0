package object

import (
	"testing"

	"entity-engine/internal/collision"
	"entity-engine/internal/volume"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sphereAt(name string, r, x, y, z float32) *Object {
	o := New(name)
	o.SetBoundingVolume(volume.NewSphere(r))
	o.Transform().SetPosition(rl.NewVector3(x, y, z))
	return o
}

// always reports a hit and records the order candidates were visited in.
type recorder struct {
	visited []*Object
	hit     func(b *Object) bool
}

func (r *recorder) test(_, b collision.Collider) (collision.Info, bool) {
	o := b.(*Object)
	r.visited = append(r.visited, o)
	if r.hit == nil {
		return collision.Info{}, true
	}
	return collision.Info{}, r.hit(o)
}

func requireTarget(t *testing.T, o *Object, want *Object) {
	t.Helper()
	id, ok := o.TriggerTarget()
	require.True(t, ok)
	assert.Equal(t, want.ID(), id)
}

func TestTriggerCoinScenario(t *testing.T) {
	a := sphereAt("Player", 3, 0, 0, 0)
	b := sphereAt("Coin", 0.25, 2, 0, 0)
	c := sphereAt("Coin", 0.25, 100, 0, 0)

	assert.True(t, a.OnTriggerEnter([]*Object{b, c}, "Coin"))
	requireTarget(t, a, b)
}

func TestTriggerEmptyCandidatesKeepsPrevious(t *testing.T) {
	a := sphereAt("Player", 1, 0, 0, 0)
	assert.False(t, a.OnTriggerEnter(nil, "Coin"))
	_, ok := a.TriggerTarget()
	assert.False(t, ok)

	prev := sphereAt("Coin", 1, 0.5, 0, 0)
	require.True(t, a.OnTriggerEnter([]*Object{prev}, "Coin"))
	assert.False(t, a.OnTriggerEnter([]*Object{}, "Coin"))
	requireTarget(t, a, prev)
}

func TestTriggerFirstMatchWinsInListOrder(t *testing.T) {
	a := sphereAt("Player", 3, 0, 0, 0)
	b := sphereAt("Coin", 0.5, 1, 0, 0)
	c := sphereAt("Coin", 0.5, -1, 0, 0)

	require.True(t, a.OnTriggerEnter([]*Object{b, c}, "Coin"))
	requireTarget(t, a, b)

	require.True(t, a.OnTriggerEnter([]*Object{c, b}, "Coin"))
	requireTarget(t, a, c)
}

func TestTriggerShortCircuits(t *testing.T) {
	a := New("Player")
	b, c, d := New("Wall"), New("Coin"), New("Coin")
	r := &recorder{}

	require.True(t, a.OnTriggerEnterFunc([]*Object{b, c, d}, "Coin", r.test))
	assert.Equal(t, []*Object{b, c}, r.visited, "scan stops at the first match")
	requireTarget(t, a, c)
}

func TestTriggerNonTargetOverlapDoesNotMatch(t *testing.T) {
	a := sphereAt("Player", 3, 0, 0, 0)
	wall := sphereAt("Wall", 1, 1, 0, 0)
	earlier := sphereAt("Coin", 1, 0, 1, 0)
	require.True(t, a.OnTriggerEnter([]*Object{earlier}, "Coin"))

	assert.False(t, a.OnTriggerEnter([]*Object{wall}, "Coin"))
	requireTarget(t, a, earlier)
}

func TestTriggerNonTargetOverlapContinuesScan(t *testing.T) {
	a := sphereAt("Player", 3, 0, 0, 0)
	wall := sphereAt("Wall", 1, 1, 0, 0)
	coin := sphereAt("Coin", 0.25, 0, 2, 0)
	assert.True(t, a.OnTriggerEnter([]*Object{wall, coin}, "Coin"))
	requireTarget(t, a, coin)
}

func TestTriggerNameMatchWithoutOverlap(t *testing.T) {
	a := sphereAt("Player", 1, 0, 0, 0)
	far := sphereAt("Coin", 1, 50, 0, 0)
	assert.False(t, a.OnTriggerEnter([]*Object{far}, "Coin"))
	_, ok := a.TriggerTarget()
	assert.False(t, ok)
}

func TestTriggerWithoutVolume(t *testing.T) {
	a := New("Player")
	a.UpdateBroadphaseAABB()
	_, ok := a.BroadphaseAABB()
	assert.False(t, ok)

	coin := sphereAt("Coin", 5, 0, 0, 0)
	assert.False(t, a.OnTriggerEnter([]*Object{coin}, "Coin"))

	// volume-less candidate
	b := sphereAt("Player", 5, 0, 0, 0)
	assert.False(t, b.OnTriggerEnter([]*Object{New("Coin")}, "Coin"))
}

func TestTriggerSkipsSelfAndNil(t *testing.T) {
	a := sphereAt("Coin", 1, 0, 0, 0)
	r := &recorder{}
	assert.False(t, a.OnTriggerEnterFunc([]*Object{nil, a}, "Coin", r.test))
	assert.Empty(t, r.visited)
}

func TestTriggerDoesNotMutateCandidates(t *testing.T) {
	a := sphereAt("Player", 3, 0, 0, 0)
	b := sphereAt("Coin", 0.25, 1, 0, 0)
	list := []*Object{b}
	before := *b.Transform()

	require.True(t, a.OnTriggerEnter(list, "Coin"))
	assert.Equal(t, before, *b.Transform())
	assert.Equal(t, []*Object{b}, list)
	_, ok := b.TriggerTarget()
	assert.False(t, ok)
}

func TestClearTriggerTarget(t *testing.T) {
	a := sphereAt("Player", 3, 0, 0, 0)
	require.True(t, a.OnTriggerEnter([]*Object{sphereAt("Finish", 1, 0, 0, 0)}, "Finish"))
	a.ClearTriggerTarget()
	_, ok := a.TriggerTarget()
	assert.False(t, ok)
}
