package minstack

import (
	"cmp"
	"errors"
)

// ErrEmpty is returned by Pop, Top and Min on an empty stack.
var ErrEmpty = errors.New("minstack: stack is empty")

// Stack is a LIFO stack with O(1) minimum lookup.
type Stack[T cmp.Ordered] struct {
	items []T
	mins  []T // non-increasing; mins[len-1] is the current minimum
}

// New returns an empty stack with room for capacity elements.
func New[T cmp.Ordered](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Len reports the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// Push adds x on top of the stack.
func (s *Stack[T]) Push(x T) {
	s.items = append(s.items, x)
	// ties are pushed too, so a later Pop of one copy keeps the other
	if len(s.mins) == 0 || cmp.Compare(x, s.mins[len(s.mins)-1]) <= 0 {
		s.mins = append(s.mins, x)
	}
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	x := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	if cmp.Compare(x, s.mins[len(s.mins)-1]) == 0 {
		s.mins = s.mins[:len(s.mins)-1]
	}

	return x, nil
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return s.items[len(s.items)-1], nil
}

// Min returns the smallest element currently on the stack.
func (s *Stack[T]) Min() (T, error) {
	if len(s.mins) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return s.mins[len(s.mins)-1], nil
}
