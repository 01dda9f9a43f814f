package cell

import (
	"hop.computer/lists/pkg"
)

// Ref is a read-only view of a value held by a Cell.
type Ref[T any] struct {
	value *T
	flag  *Flag
}

// Get returns a copy of the viewed value.
func (r *Ref[T]) Get() T {
	if r.value == nil {
		pkg.Panicf("cell: use of released Ref")
	}
	return *r.value
}

// Release ends the view. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	if r.value == nil {
		return
	}
	r.value = nil
	r.flag.ReleaseShared()
}

// MapRef narrows r to a component of the viewed value. The borrow moves to the
// returned view; r must not be used afterwards.
func MapRef[T, U any](r *Ref[T], f func(*T) *U) *Ref[U] {
	if r.value == nil {
		pkg.Panicf("cell: use of released Ref")
	}
	u := &Ref[U]{value: f(r.value), flag: r.flag}
	r.value = nil
	return u
}

// RefMut is an exclusive view of a value held by a Cell.
type RefMut[T any] struct {
	value *T
	flag  *Flag
}

// Get returns a copy of the viewed value.
func (m *RefMut[T]) Get() T {
	return *m.Ptr()
}

// Set overwrites the viewed value.
func (m *RefMut[T]) Set(v T) {
	*m.Ptr() = v
}

// Ptr returns a pointer to the viewed value. It is valid until Release.
func (m *RefMut[T]) Ptr() *T {
	if m.value == nil {
		pkg.Panicf("cell: use of released RefMut")
	}
	return m.value
}

// Release ends the view. Releasing twice is a no-op.
func (m *RefMut[T]) Release() {
	if m.value == nil {
		return
	}
	m.value = nil
	m.flag.ReleaseExclusive()
}

// MapRefMut narrows m to a component of the viewed value. The borrow moves to
// the returned view; m must not be used afterwards.
func MapRefMut[T, U any](m *RefMut[T], f func(*T) *U) *RefMut[U] {
	u := &RefMut[U]{value: f(m.Ptr()), flag: m.flag}
	m.value = nil
	return u
}
