// Package minstack provides a LIFO stack that also reports its minimum
// element in constant time.
//
// What:
//
//   - Stack[T] supports Push, Pop, Top, Min and Len, all O(1) amortized.
//   - A second stack holds every element that was a minimum when pushed;
//     Pop drops it again when the popped value equals the current minimum.
//
// Why:
//
//   - Sliding minima, undo histories with a running best, and bounded
//     backtracking where the cheapest frame must be known at every depth.
//
// Ordering uses cmp.Compare, so NaN sorts below every float and equals
// itself; float stacks containing NaN stay consistent.
//
// Errors:
//
//   - ErrEmpty: Pop, Top or Min on an empty stack.
//
// The zero value is an empty stack ready to use. A Stack is not safe for
// concurrent use.
package minstack
