package deque

import (
	"iter"
)

// IntoIter drains a list from both ends. Next yields elements front to back,
// NextBack yields them back to front, and the two meet in the middle. Once
// both ends report absent the iterator stays exhausted.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves the contents of l into a draining iterator. l is left empty
// and may be reused. It panics if a view of l is outstanding.
func (l *List[T]) IntoIter() *IntoIter[T] {
	l.flag.Exclusive()
	defer l.flag.ReleaseExclusive()

	it := &IntoIter[T]{}
	it.list.nodes, l.nodes = l.nodes, it.list.nodes
	it.list.head = take(&l.head)
	it.list.tail = take(&l.tail)
	return it
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int {
	return it.list.Len()
}

// Next pops the front element.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.list.PopFront()
}

// NextBack pops the back element.
func (it *IntoIter[T]) NextBack() (T, bool) {
	return it.list.PopBack()
}

// Close drops every element not yet yielded.
func (it *IntoIter[T]) Close() {
	it.list.Clear()
}

// All returns an iterator draining the remaining elements front to back.
// Stopping the loop early leaves the rest in place.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return drain(it.Next)
}

// Backward returns an iterator draining the remaining elements back to front.
func (it *IntoIter[T]) Backward() iter.Seq[T] {
	return drain(it.NextBack)
}

func drain[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
