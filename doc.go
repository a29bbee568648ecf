// Package gridwalk is a small collection of exact algorithms over in-memory
// grids and slices, each small enough to call, test and benchmark alone.
//
// What is inside:
//
//	grid/       : rectangular, immutable Grid[T], Point, Conn4/ConnForward
//	              neighbor orders, row-major indexing and spiral traversal
//	wordsearch/ : does a word trace through adjacent cells without reuse?
//	region/     : how many cells are reachable under a digit-sum threshold?
//	pattern/    : whole-string matching with '.' and '*'
//	minstack/   : LIFO stack with O(1) minimum
//	partition/  : in-place two-pointer split, e.g. odd values first
//	numgen/     : 1 .. 10^n-1 as strings, by digit backtracking
//
// Shared conventions:
//
//   - Inputs are never mutated; grids are deep-copied on entry.
//   - Depth-first walks use explicit stacks, so large boards cannot overflow
//     the goroutine stack.
//   - Functional options (WithContext, WithLogger, ...) follow one pattern
//     across packages; the zero configuration is silent and uncancellable.
//   - Errors are sentinel values checked with errors.Is.
//
// Quick ASCII example:
//
//	A B
//	C D
//
// "ABDC" is spelled by the path right, down, left; "ABCD" is not, because
// C is only diagonal to B.
//
//	go get github.com/katalvlaran/gridwalk
package gridwalk
