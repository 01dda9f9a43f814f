package deque

import (
	"hop.computer/lists/cell"
)

// Ref is a read-only view of an element at one end of a List. While it is
// alive the list cannot be mutated and no exclusive view can be taken.
type Ref[T any] struct {
	elem *cell.Ref[T]
	list *cell.Flag
}

// Get returns a copy of the element.
func (r *Ref[T]) Get() T {
	return r.elem.Get()
}

// Release ends the view. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	if r.list == nil {
		return
	}
	r.elem.Release()
	r.list.ReleaseShared()
	r.list = nil
}

// RefMut is an exclusive view of an element at one end of a List. While it is
// alive it is the only view of the list.
type RefMut[T any] struct {
	elem *cell.RefMut[T]
	list *cell.Flag
}

// Get returns a copy of the element.
func (m *RefMut[T]) Get() T {
	return m.elem.Get()
}

// Set replaces the element.
func (m *RefMut[T]) Set(v T) {
	m.elem.Set(v)
}

// Ptr returns a pointer to the element, valid until Release.
func (m *RefMut[T]) Ptr() *T {
	return m.elem.Ptr()
}

// Release ends the view. Releasing twice is a no-op.
func (m *RefMut[T]) Release() {
	if m.list == nil {
		return
	}
	m.elem.Release()
	m.list.ReleaseExclusive()
	m.list = nil
}

func elemOf[T any](n *node[T]) *T {
	return &n.elem
}

// PeekFront returns a read-only view of the front element. The boolean is false
// if the list is empty.
func (l *List[T]) PeekFront() (*Ref[T], bool) {
	return l.peek(l.head)
}

// PeekBack returns a read-only view of the back element. The boolean is false
// if the list is empty.
func (l *List[T]) PeekBack() (*Ref[T], bool) {
	return l.peek(l.tail)
}

// PeekFrontMut returns an exclusive view of the front element. The boolean is
// false if the list is empty.
func (l *List[T]) PeekFrontMut() (*RefMut[T], bool) {
	return l.peekMut(l.head)
}

// PeekBackMut returns an exclusive view of the back element. The boolean is
// false if the list is empty.
func (l *List[T]) PeekBackMut() (*RefMut[T], bool) {
	return l.peekMut(l.tail)
}

func (l *List[T]) peek(h link) (*Ref[T], bool) {
	l.flag.Shared()
	if h.IsNil() {
		l.flag.ReleaseShared()
		return nil, false
	}
	r, err := l.at(h).TryBorrow()
	if err != nil {
		l.flag.ReleaseShared()
		panic(err)
	}
	return &Ref[T]{elem: cell.MapRef(r, elemOf[T]), list: &l.flag}, true
}

func (l *List[T]) peekMut(h link) (*RefMut[T], bool) {
	l.flag.Exclusive()
	if h.IsNil() {
		l.flag.ReleaseExclusive()
		return nil, false
	}
	m, err := l.at(h).TryBorrowMut()
	if err != nil {
		l.flag.ReleaseExclusive()
		panic(err)
	}
	return &RefMut[T]{elem: cell.MapRefMut(m, elemOf[T]), list: &l.flag}, true
}
