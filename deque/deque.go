// Package deque implements a double-ended queue as a doubly-linked list of
// shared nodes. Nodes live in an arena and are addressed by handles; a node is
// owned by the list's head or tail slot when it sits at an end, and by the
// links of its neighbours. Each node sits behind a runtime-checked cell, and the
// list itself carries a borrow flag, so element views handed out by the Peek
// functions exclude conflicting access for as long as they are alive.
//
// Misuse, such as pushing while a view is held or taking a second exclusive
// view, panics with a *cell.BorrowError at the offending call. Popping or
// peeking an empty list is not misuse: it reports the element as absent.
package deque

import (
	"iter"

	"hop.computer/lists/arena"
	"hop.computer/lists/cell"
)

// link is either arena.Nil or a handle retained on behalf of the field that
// stores it.
type link = arena.Handle

type node[T any] struct {
	elem       T
	prev, next link
}

// List is a double-ended queue of T. The zero value is an empty list ready to
// use. A List must not be copied after first use. It is not thread-safe.
type List[T any] struct {
	nodes      arena.Arena[cell.Cell[node[T]]]
	head, tail link
	flag       cell.Flag
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// take empties l and returns what it held, transferring its ownership.
func take(l *link) link {
	h := *l
	*l = arena.Nil
	return h
}

func (l *List[T]) at(h link) *cell.Cell[node[T]] {
	return l.nodes.Get(h)
}

// Len returns the number of elements in the list. It is constant time.
func (l *List[T]) Len() int {
	return l.nodes.Len()
}

// PushFront inserts elem at the front of the list.
func (l *List[T]) PushFront(elem T) {
	l.flag.Exclusive()
	defer l.flag.ReleaseExclusive()

	newHead := l.nodes.Insert(cell.New(node[T]{elem: elem}))
	if oldHead := take(&l.head); !oldHead.IsNil() {
		m := l.at(oldHead).BorrowMut()
		m.Ptr().prev = l.nodes.Retain(newHead)
		m.Release()

		m = l.at(newHead).BorrowMut()
		m.Ptr().next = oldHead
		m.Release()
	} else {
		l.tail = l.nodes.Retain(newHead)
	}
	l.head = newHead
}

// PushBack inserts elem at the back of the list.
func (l *List[T]) PushBack(elem T) {
	l.flag.Exclusive()
	defer l.flag.ReleaseExclusive()

	newTail := l.nodes.Insert(cell.New(node[T]{elem: elem}))
	if oldTail := take(&l.tail); !oldTail.IsNil() {
		m := l.at(oldTail).BorrowMut()
		m.Ptr().next = l.nodes.Retain(newTail)
		m.Release()

		m = l.at(newTail).BorrowMut()
		m.Ptr().prev = oldTail
		m.Release()
	} else {
		l.head = l.nodes.Retain(newTail)
	}
	l.tail = newTail
}

// PopFront removes and returns the element at the front of the list. The
// boolean is false if the list was empty.
func (l *List[T]) PopFront() (T, bool) {
	l.flag.Exclusive()
	defer l.flag.ReleaseExclusive()

	oldHead := take(&l.head)
	if oldHead.IsNil() {
		var zero T
		return zero, false
	}

	m := l.at(oldHead).BorrowMut()
	newHead := take(&m.Ptr().next)
	m.Release()

	if !newHead.IsNil() {
		m = l.at(newHead).BorrowMut()
		l.nodes.Release(take(&m.Ptr().prev))
		m.Release()
		l.head = newHead
	} else {
		l.nodes.Release(take(&l.tail))
	}
	return l.reclaim(oldHead), true
}

// PopBack removes and returns the element at the back of the list. The boolean
// is false if the list was empty.
func (l *List[T]) PopBack() (T, bool) {
	l.flag.Exclusive()
	defer l.flag.ReleaseExclusive()

	oldTail := take(&l.tail)
	if oldTail.IsNil() {
		var zero T
		return zero, false
	}

	m := l.at(oldTail).BorrowMut()
	newTail := take(&m.Ptr().prev)
	m.Release()

	if !newTail.IsNil() {
		m = l.at(newTail).BorrowMut()
		l.nodes.Release(take(&m.Ptr().next))
		m.Release()
		l.tail = newTail
	} else {
		l.nodes.Release(take(&l.head))
	}
	return l.reclaim(oldTail), true
}

// reclaim frees a detached node and returns its element. h must be the last
// owner of the node; anything else is a broken list and panics.
func (l *List[T]) reclaim(h link) T {
	c := l.nodes.Take(h)
	return c.IntoInner().elem
}

// Clear pops every element, front to back. It runs in a loop, so the depth of
// the call stack does not depend on the length of the list.
func (l *List[T]) Clear() {
	for {
		if _, ok := l.PopFront(); !ok {
			return
		}
	}
}

// All returns an iterator over the elements, front to back. The list is
// borrowed for reading while the iteration runs, so mutating it from the loop
// body panics.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		l.flag.Shared()
		defer l.flag.ReleaseShared()

		for h := l.head; !h.IsNil(); {
			r := l.at(h).Borrow()
			n := r.Get()
			r.Release()
			if !yield(n.elem) {
				return
			}
			h = n.next
		}
	}
}

// Values returns a snapshot of the elements, front to back.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}
