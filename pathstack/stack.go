/*
Package pathstack provides a small LIFO used to record root-to-leaf descents.

Tree nodes of package bplus carry no parent links. A mutation therefore
records every node it passes on the way down, together with the child slot
it chose, and replays that record bottom-up while fixing occupancy.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package pathstack

// Stack is a LIFO of values of type T. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

// New creates an empty stack with room for capacity items.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push puts item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item.
// If the stack is empty, Pop returns the zero value and false.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := len(s.items) - 1
	item := s.items[top]
	s.items[top] = zero // do not keep a reference to popped nodes
	s.items = s.items[:top]
	return item, true
}

// Peek returns the top item without removing it.
// If the stack is empty, Peek returns the zero value and false.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Clear drops all items, keeping the allocated storage.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
