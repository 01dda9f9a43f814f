package cell

import (
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

// borrowPanic runs f and returns the *BorrowError it panicked with, or nil.
func borrowPanic(f func()) (err *BorrowError) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(*BorrowError)
		}
	}()
	f()
	return nil
}

func TestSharedViews(t *testing.T) {
	c := New(3)
	a := c.Borrow()
	b := c.Borrow()
	assert.Equal(t, a.Get(), 3)
	assert.Equal(t, b.Get(), 3)
	assert.Equal(t, c.Flag().Readers(), 2)

	_, err := c.TryBorrowMut()
	assert.Check(t, errors.Is(err, ErrBorrowed))

	a.Release()
	_, err = c.TryBorrowMut()
	assert.Check(t, errors.Is(err, ErrBorrowed))

	b.Release()
	assert.Check(t, c.Flag().Idle())
	m := c.BorrowMut()
	m.Release()
}

func TestExclusiveView(t *testing.T) {
	c := New("a")
	m := c.BorrowMut()
	assert.Check(t, c.Flag().Writing())

	err := borrowPanic(func() { c.Borrow() })
	assert.Assert(t, err != nil)
	assert.Check(t, errors.Is(err, ErrMutablyBorrowed))
	assert.Equal(t, err.Op, "borrow")

	err = borrowPanic(func() { c.BorrowMut() })
	assert.Assert(t, err != nil)
	assert.Check(t, errors.Is(err, ErrBorrowed))

	m.Set("b")
	*m.Ptr() += "c"
	assert.Equal(t, m.Get(), "bc")
	m.Release()
	m.Release()

	r := c.Borrow()
	assert.Equal(t, r.Get(), "bc")
	r.Release()
}

func TestReleasedViewPanics(t *testing.T) {
	c := New(1)
	r := c.Borrow()
	r.Release()
	assert.Check(t, is.Panics(func() { r.Get() }))

	m := c.BorrowMut()
	m.Release()
	assert.Check(t, is.Panics(func() { m.Set(2) }))
}

func TestReplaceAndIntoInner(t *testing.T) {
	c := New(1)
	assert.Equal(t, c.Replace(2), 1)

	r := c.Borrow()
	assert.Check(t, is.Panics(func() { c.Replace(3) }))
	err := borrowPanic(func() { c.IntoInner() })
	assert.Assert(t, err != nil)
	assert.Equal(t, err.Op, "into_inner")
	r.Release()

	assert.Equal(t, c.IntoInner(), 2)
	assert.Equal(t, c.IntoInner(), 0)
}

type pair struct {
	left, right int
}

func TestMap(t *testing.T) {
	c := New(pair{left: 1, right: 2})

	m := MapRefMut(c.BorrowMut(), func(p *pair) *int { return &p.right })
	m.Set(20)
	assert.Check(t, c.Flag().Writing())
	m.Release()
	assert.Check(t, c.Flag().Idle())

	orig := c.Borrow()
	r := MapRef(orig, func(p *pair) *int { return &p.right })
	assert.Equal(t, r.Get(), 20)
	assert.Check(t, is.Panics(func() { orig.Get() }))

	// The moved-from view does not release the borrow.
	orig.Release()
	assert.Equal(t, c.Flag().Readers(), 1)
	r.Release()
	assert.Check(t, c.Flag().Idle())
}

func TestFlagReleaseMismatch(t *testing.T) {
	var f Flag
	assert.Check(t, is.Panics(func() { f.ReleaseShared() }))
	assert.Check(t, is.Panics(func() { f.ReleaseExclusive() }))

	f.Shared()
	assert.Check(t, is.Panics(func() { f.ReleaseExclusive() }))
	f.ReleaseShared()

	f.Exclusive()
	assert.Check(t, is.Panics(func() { f.Shared() }))
	assert.Check(t, is.Panics(func() { f.ReleaseShared() }))
	assert.Equal(t, f.Readers(), 0)
	f.ReleaseExclusive()
	assert.Check(t, f.Idle())
}

func TestBorrowErrorMessage(t *testing.T) {
	var f Flag
	f.Exclusive()
	err := f.TryShared()
	assert.Error(t, err, "cell: borrow: already mutably borrowed")
}
