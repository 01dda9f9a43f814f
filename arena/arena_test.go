package arena

import (
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestInsertGet(t *testing.T) {
	var a Arena[string]
	assert.Equal(t, a.Len(), 0)

	h1 := a.Insert("one")
	h2 := a.Insert("two")
	assert.Equal(t, a.Len(), 2)
	assert.Check(t, h1 != h2)
	assert.Equal(t, *a.Get(h1), "one")
	assert.Equal(t, *a.Get(h2), "two")

	*a.Get(h1) = "uno"
	assert.Equal(t, *a.Get(h1), "uno")
	assert.Equal(t, a.Owners(h1), 1)
}

func TestNilHandle(t *testing.T) {
	var a Arena[int]
	assert.Check(t, Nil.IsNil())
	assert.Equal(t, Nil.String(), "nil")
	assert.Check(t, !a.Contains(Nil))
	assert.Check(t, is.Panics(func() { a.Get(Nil) }))

	// Releasing nil is allowed, like dropping an absent link.
	a.Release(Nil)

	h := a.Insert(1)
	assert.Check(t, !h.IsNil())
	assert.Equal(t, h.String(), "#0.1")
}

func TestSharedOwnership(t *testing.T) {
	var a Arena[int]
	h := a.Insert(7)
	other := a.Retain(h)
	assert.Equal(t, other, h)
	assert.Equal(t, a.Owners(h), 2)

	// Take with a second owner outstanding is a fatal error.
	assert.Check(t, is.Panics(func() { a.Take(h) }))
	assert.Check(t, a.Contains(h))

	a.Release(other)
	assert.Equal(t, a.Owners(h), 1)
	assert.Equal(t, a.Take(h), 7)
	assert.Equal(t, a.Len(), 0)
	assert.Check(t, !a.Contains(h))
}

func TestReleaseReclaims(t *testing.T) {
	var a Arena[*int]
	v := 3
	h := a.Insert(&v)
	a.Retain(h)
	a.Release(h)
	assert.Check(t, a.Contains(h))
	a.Release(h)
	assert.Check(t, !a.Contains(h))
	assert.Equal(t, a.Len(), 0)
	assert.Check(t, is.Panics(func() { a.Release(h) }))
}

func TestStaleHandle(t *testing.T) {
	var a Arena[int]
	old := a.Insert(1)
	assert.Equal(t, a.Take(old), 1)

	// The slot is reused with a new generation.
	fresh := a.Insert(2)
	assert.Equal(t, fresh.index, old.index)
	assert.Check(t, fresh.gen != old.gen)

	assert.Check(t, is.Panics(func() { a.Get(old) }))
	assert.Check(t, is.Panics(func() { a.Retain(old) }))
	assert.Check(t, is.Panics(func() { a.Take(old) }))
	assert.Equal(t, *a.Get(fresh), 2)

	assert.Check(t, is.Panics(func() { a.Get(Handle{index: 40, gen: 1}) }))
}

func TestPointerStability(t *testing.T) {
	var a Arena[int]
	h := a.Insert(0)
	p := a.Get(h)
	for i := 1; i < 1000; i++ {
		a.Insert(i)
	}
	*p = 42
	assert.Equal(t, *a.Get(h), 42)
	assert.Equal(t, a.Len(), 1000)
}
