// Package stack implements a singly-linked stack. Each node is owned by exactly
// one link, either the stack's head or the node before it.
package stack

import (
	"iter"
)

type node[T any] struct {
	elem T
	next *node[T]
}

// Stack is a last-in first-out list of T. The zero value is an empty stack
// ready to use. Head and size are tracked internally, so all operations are
// constant time unless noted otherwise. The stack is not thread-safe.
type Stack[T any] struct {
	head *node[T]
	size int
}

// Len returns the number of elements on the stack. This function is constant
// time.
func (s *Stack[T]) Len() int {
	return s.size
}

// Push puts elem on top of the stack.
func (s *Stack[T]) Push(elem T) {
	s.head = &node[T]{
		elem: elem,
		next: s.head,
	}
	s.size++
}

// Pop removes the top element and returns it. The boolean is false if the
// stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	n := s.head
	if n == nil {
		var zero T
		return zero, false
	}
	s.head = n.next
	n.next = nil
	s.size--
	return n.elem, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.elem, true
}

// PeekMut returns a pointer to the top element. The pointer is valid until the
// element is popped.
func (s *Stack[T]) PeekMut() (*T, bool) {
	if s.head == nil {
		return nil, false
	}
	return &s.head.elem, true
}

// Clear drops every element. Nodes are unlinked one at a time in a loop. This
// function is O(n).
func (s *Stack[T]) Clear() {
	cur := s.head
	s.head = nil
	s.size = 0
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
}

// All returns an iterator over the elements from top to bottom. The stack must
// not be modified during iteration.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Mut returns an iterator over pointers to the elements from top to bottom.
// The stack must not be pushed or popped during iteration.
func (s *Stack[T]) Mut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(&n.elem) {
				return
			}
		}
	}
}

// IntoIter pops elements off a stack it owns.
type IntoIter[T any] struct {
	s Stack[T]
}

// IntoIter moves the contents of s into a popping iterator. s is left empty.
func (s *Stack[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{s: *s}
	*s = Stack[T]{}
	return it
}

// Next pops the next element.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.s.Pop()
}
