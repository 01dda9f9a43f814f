// Package arena implements a slab of values addressed by generational handles.
// Each live slot carries an owner count: a slot is shared by every holder of a
// retained handle, and its value is reclaimed when the last owner releases it.
//
// Using a handle whose slot has been reclaimed panics, as does taking a value
// out of a slot that still has other owners. Both indicate a bug in the caller,
// not a recoverable condition. The arena is not thread-safe.
package arena

import (
	"fmt"

	"hop.computer/lists/pkg"
)

// Handle addresses a slot. The zero Handle is nil and addresses nothing.
type Handle struct {
	index uint32
	gen   uint32
}

// Nil is the zero Handle.
var Nil Handle

// IsNil reports whether h addresses nothing.
func (h Handle) IsNil() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("#%d.%d", h.index, h.gen)
}

type slot[T any] struct {
	gen    uint32
	owners int
	value  T
}

// Arena stores values of type T. The zero value is an empty arena ready to
// use. Pointers returned by Get stay valid until the slot is reclaimed.
type Arena[T any] struct {
	slots []*slot[T]
	free  []uint32
	live  int
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.live
}

// Insert stores v in a fresh slot and returns its handle. The caller holds the
// only owner of the slot.
func (a *Arena[T]) Insert(v T) Handle {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, &slot[T]{})
	}
	s := a.slots[index]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.owners = 1
	s.value = v
	a.live++
	return Handle{index: index, gen: s.gen}
}

func (a *Arena[T]) lookup(h Handle) *slot[T] {
	if h.IsNil() {
		pkg.Panicf("arena: nil handle")
	}
	if int(h.index) >= len(a.slots) {
		pkg.Panicf("arena: handle %v out of range", h)
	}
	s := a.slots[h.index]
	if s.gen != h.gen || s.owners == 0 {
		pkg.Panicf("arena: stale handle %v", h)
	}
	return s
}

// Contains reports whether h addresses a live slot.
func (a *Arena[T]) Contains(h Handle) bool {
	if h.IsNil() || int(h.index) >= len(a.slots) {
		return false
	}
	s := a.slots[h.index]
	return s.gen == h.gen && s.owners > 0
}

// Get returns a pointer to the value stored at h.
func (a *Arena[T]) Get(h Handle) *T {
	return &a.lookup(h).value
}

// Owners returns the owner count of the slot at h.
func (a *Arena[T]) Owners(h Handle) int {
	return a.lookup(h).owners
}

// Retain adds an owner to the slot at h and returns h, for storing in another
// location.
func (a *Arena[T]) Retain(h Handle) Handle {
	a.lookup(h).owners++
	return h
}

// Release drops one owner of the slot at h. Releasing the nil handle is a
// no-op. When the last owner is dropped, the slot is reclaimed.
func (a *Arena[T]) Release(h Handle) {
	if h.IsNil() {
		return
	}
	s := a.lookup(h)
	s.owners--
	if s.owners == 0 {
		a.reclaim(h.index, s)
	}
}

// Take reclaims the slot at h and returns its value. The caller must hold the
// last owner; if any other owner remains, Take panics.
func (a *Arena[T]) Take(h Handle) T {
	s := a.lookup(h)
	if s.owners != 1 {
		pkg.Panicf("arena: take of %v with %d owners", h, s.owners)
	}
	v := s.value
	a.reclaim(h.index, s)
	return v
}

func (a *Arena[T]) reclaim(index uint32, s *slot[T]) {
	var zero T
	s.value = zero
	s.owners = 0
	a.free = append(a.free, index)
	a.live--
}
