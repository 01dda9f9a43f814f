// Package cell implements a shared, dynamically-checked mutable cell. A Cell
// hands out either any number of read-only views (Ref) or exactly one exclusive
// view (RefMut) at a time. Conflicting requests are refused at the moment they
// are made: the Try variants return an error, the others panic with a
// *BorrowError.
//
// Views must be released explicitly. A released view cannot be used again.
package cell

import (
	"fmt"

	"github.com/pkg/errors"

	"hop.computer/lists/pkg"
)

// ErrBorrowed is returned when an exclusive view is requested while any other
// view is outstanding.
var ErrBorrowed = errors.New("already borrowed")

// ErrMutablyBorrowed is returned when a view is requested while an exclusive
// view is outstanding.
var ErrMutablyBorrowed = errors.New("already mutably borrowed")

// BorrowError describes a refused borrow. It is the panic value of Borrow and
// BorrowMut.
type BorrowError struct {
	Op  string
	Err error
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("cell: %s: %s", e.Op, e.Err)
}

// Unwrap returns ErrBorrowed or ErrMutablyBorrowed.
func (e *BorrowError) Unwrap() error {
	return e.Err
}

// writing marks a flag held by an exclusive view.
const writing = -1

// Flag is the borrow state of a single shared location. The zero value has no
// outstanding views. A Flag must not be copied while views are outstanding.
type Flag struct {
	state int
}

// TryShared registers a read-only view.
func (f *Flag) TryShared() error {
	if f.state == writing {
		return &BorrowError{Op: "borrow", Err: ErrMutablyBorrowed}
	}
	f.state++
	return nil
}

// TryExclusive registers an exclusive view.
func (f *Flag) TryExclusive() error {
	if f.state != 0 {
		return &BorrowError{Op: "borrow_mut", Err: ErrBorrowed}
	}
	f.state = writing
	return nil
}

// Shared is TryShared, but panics on conflict.
func (f *Flag) Shared() {
	if err := f.TryShared(); err != nil {
		panic(err)
	}
}

// Exclusive is TryExclusive, but panics on conflict.
func (f *Flag) Exclusive() {
	if err := f.TryExclusive(); err != nil {
		panic(err)
	}
}

// ReleaseShared drops one read-only view.
func (f *Flag) ReleaseShared() {
	pkg.Assertf(f.state > 0, "release of shared view with flag state %d", f.state)
	f.state--
}

// ReleaseExclusive drops the exclusive view.
func (f *Flag) ReleaseExclusive() {
	pkg.Assertf(f.state == writing, "release of exclusive view with flag state %d", f.state)
	f.state = 0
}

// Readers returns the number of outstanding read-only views.
func (f *Flag) Readers() int {
	if f.state == writing {
		return 0
	}
	return f.state
}

// Writing reports whether an exclusive view is outstanding.
func (f *Flag) Writing() bool {
	return f.state == writing
}

// Idle reports whether no view is outstanding.
func (f *Flag) Idle() bool {
	return f.state == 0
}

// Cell holds a value of type T behind a Flag. The zero value holds the zero
// value of T.
type Cell[T any] struct {
	flag  Flag
	value T
}

// New returns a cell holding v.
func New[T any](v T) Cell[T] {
	return Cell[T]{value: v}
}

// TryBorrow returns a read-only view of the value.
func (c *Cell[T]) TryBorrow() (*Ref[T], error) {
	if err := c.flag.TryShared(); err != nil {
		return nil, err
	}
	return &Ref[T]{value: &c.value, flag: &c.flag}, nil
}

// Borrow returns a read-only view of the value. It panics if an exclusive view
// is outstanding.
func (c *Cell[T]) Borrow() *Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}
	return r
}

// TryBorrowMut returns an exclusive view of the value.
func (c *Cell[T]) TryBorrowMut() (*RefMut[T], error) {
	if err := c.flag.TryExclusive(); err != nil {
		return nil, err
	}
	return &RefMut[T]{value: &c.value, flag: &c.flag}, nil
}

// BorrowMut returns an exclusive view of the value. It panics if any view is
// outstanding.
func (c *Cell[T]) BorrowMut() *RefMut[T] {
	m, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return m
}

// Replace stores v and returns the old value. It panics if any view is
// outstanding.
func (c *Cell[T]) Replace(v T) T {
	m := c.BorrowMut()
	defer m.Release()
	old := m.Get()
	m.Set(v)
	return old
}

// IntoInner returns the value, leaving the zero value behind. It panics if any
// view is outstanding.
func (c *Cell[T]) IntoInner() T {
	if !c.flag.Idle() {
		panic(&BorrowError{Op: "into_inner", Err: ErrBorrowed})
	}
	v := c.value
	var zero T
	c.value = zero
	return v
}

// Flag exposes the borrow state of the cell.
func (c *Cell[T]) Flag() *Flag {
	return &c.flag
}
